// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/utils"
)

// framesPerWrite sets the preferred chunk: 4096 frames.
const framesPerWrite = 4096

// Encoder writes an AIFF stream with the go-audio encoder. The payload is
// little-endian PCM (8-bit unsigned) like every other sink; it is converted
// to AIFF's big-endian signed samples. The stream must be seekable and
// positioned at its start, since the sizes are written on close.
type Encoder struct {
	format  audio.Format
	enc     *aiff.Encoder
	ints    *goaudio.IntBuffer
	pending []byte
}

// NewEncoder returns an Encoder for a single stream.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// New returns a sink writing an AIFF stream to w.
func New(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error) {
	return audio.NewSink(w, cfg, NewEncoder(), opts...)
}

func (e *Encoder) OptimalBufferSize(f audio.Format) int {
	return framesPerWrite * f.BlockAlign()
}

func (e *Encoder) Begin(dst io.Writer, f audio.Format) error {
	if f.IsFloat() || f.BitsPerSample() > 32 {
		return fmt.Errorf("%w: AIFF holds 8 to 32-bit PCM, got %s", audio.ErrInvalidFormat, f)
	}

	ws, ok := dst.(io.WriteSeeker)
	if !ok {
		return audio.ErrNotSeekable
	}
	if pos, err := ws.Seek(0, io.SeekCurrent); err != nil || pos != 0 {
		return fmt.Errorf("%w: stream must be positioned at its start", audio.ErrNotSeekable)
	}

	e.format = f
	e.enc = aiff.NewEncoder(ws, f.SampleRate(), f.BitsPerSample(), f.Channels())
	e.ints = &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: f.Channels(),
			SampleRate:  f.SampleRate(),
		},
		SourceBitDepth: f.BitsPerSample(),
	}

	// an empty buffer emits the FORM, COMM and SSND headers
	return e.flush()
}

func (e *Encoder) Encode(_ io.Writer, p []byte) error {
	e.pending = append(e.pending, p...)
	return e.flush()
}

// End fixes the sizes; a trailing partial frame is dropped.
func (e *Encoder) End(io.Writer) error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (e *Encoder) flush() error {
	whole := len(e.pending) - len(e.pending)%e.format.BlockAlign()
	samples := whole / e.format.BytesPerSample()

	if cap(e.ints.Data) < samples {
		e.ints.Data = make([]int, samples)
	}
	e.ints.Data = e.ints.Data[:samples]
	utils.UnpackInts(e.ints.Data, e.pending[:whole], e.format.BitsPerSample())

	if err := e.enc.Write(e.ints); err != nil {
		return err
	}

	e.pending = e.pending[:copy(e.pending, e.pending[whole:])]
	return nil
}
