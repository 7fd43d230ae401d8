// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/utils"
)

// framesPerWrite sets the preferred chunk: 4096 frames.
const framesPerWrite = 4096

// Encoder writes a RIFF/WAVE stream.
//
// On a seekable stream positioned at its start, 16, 24 and 32-bit PCM goes
// through the go-audio encoder, which fixes the sizes on close; a trailing
// partial frame is dropped there. Every other case gets a streaming header
// with unknown sizes, patched on close when the stream can seek.
type Encoder struct {
	format audio.Format

	enc     *gowav.Encoder
	ints    *goaudio.IntBuffer
	pending []byte

	seeker   io.WriteSeeker
	start    int64
	dataSize int64
}

// NewEncoder returns an Encoder for a single stream.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// New returns a sink writing a WAV stream to w.
func New(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error) {
	return audio.NewSink(w, cfg, NewEncoder(), opts...)
}

func (e *Encoder) OptimalBufferSize(f audio.Format) int {
	return framesPerWrite * f.BlockAlign()
}

func (e *Encoder) Begin(dst io.Writer, f audio.Format) error {
	if f.BlockAlign() > math.MaxUint16 || int64(f.AvgBytesPerSec()) > math.MaxUint32 {
		return fmt.Errorf("%w: %s overflows the WAV fmt chunk", audio.ErrInvalidFormat, f)
	}

	e.format = f

	if ws, ok := dst.(io.WriteSeeker); ok {
		// pipes and terminals fail here
		if pos, err := ws.Seek(0, io.SeekCurrent); err == nil {
			e.seeker, e.start = ws, pos
		}
	}

	if e.seeker != nil && e.start == 0 && nativeDepth(f) {
		e.enc = gowav.NewEncoder(e.seeker, f.SampleRate(), f.BitsPerSample(), f.Channels(), int(audio.TagPCM))
		e.ints = &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: f.Channels(),
				SampleRate:  f.SampleRate(),
			},
			SourceBitDepth: f.BitsPerSample(),
		}

		// an empty buffer emits the RIFF, fmt and data headers
		return e.flush()
	}

	return writeHeader(dst, f, streamingSize)
}

func (e *Encoder) Encode(dst io.Writer, p []byte) error {
	if e.enc == nil {
		n, err := dst.Write(p)
		e.dataSize += int64(n)
		return err
	}

	e.pending = append(e.pending, p...)
	return e.flush()
}

func (e *Encoder) End(dst io.Writer) error {
	if e.enc != nil {
		if err := e.enc.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	// sizes stay unknown on a stream that cannot seek, so no pad byte
	if e.seeker == nil {
		return nil
	}

	if e.dataSize%2 == 1 {
		if _, err := dst.Write([]byte{0}); err != nil {
			return err
		}
	}

	return patchSizes(e.seeker, e.start, e.format, e.dataSize)
}

// flush hands every whole frame in pending to the go-audio encoder.
func (e *Encoder) flush() error {
	align := e.format.BlockAlign()
	whole := len(e.pending) - len(e.pending)%align
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
	e.dataSize += int64(whole)

	return nil
}

func nativeDepth(f audio.Format) bool {
	if f.IsFloat() {
		return false
	}

	switch f.BitsPerSample() {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}
