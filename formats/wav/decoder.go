// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/internal/pcmsource"
)

// Decoder reads PCM (8 to 32-bit) and IEEE float WAV streams. The chunk
// layout is parsed by go-audio; samples are read straight from the data
// chunk. A data chunk of unknown size, as written to a pipe, is read until
// the end of the stream.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	f, err := audio.NewTaggedFormat(audio.FormatTag(dec.WavAudioFormat),
		int(dec.SampleRate), int(dec.BitDepth), int(dec.NumChans))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedEncoding, err)
	}
	if !f.IsFloat() && f.BitsPerSample() > 32 {
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedEncoding, f.BitsPerSample())
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrUnsupportedWavChunks
	}

	// go-audio rounds the 0xFFFFFFFF streaming marker up to a zero size
	if dec.PCMChunk.Size == 0 {
		return pcmsource.New(dec.PCMChunk.R, f), nil
	}

	return pcmsource.New(dec.PCMChunk, f), nil
}
