// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"io"

	"github.com/ik5/pcmsink/audio"
)

// framesPerWrite sets the preferred chunk: 1024 frames.
const framesPerWrite = 1024

// Encoder writes samples to the output stream unchanged, with no header.
type Encoder struct{}

func (Encoder) Begin(io.Writer, audio.Format) error { return nil }
func (Encoder) End(io.Writer) error                 { return nil }

// Encode returns errors of dst unchanged.
func (Encoder) Encode(dst io.Writer, p []byte) error {
	_, err := dst.Write(p)
	return err
}

func (Encoder) OptimalBufferSize(f audio.Format) int {
	return framesPerWrite * f.BlockAlign()
}

// New returns a sink writing headerless samples to w.
func New(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error) {
	return audio.NewSink(w, cfg, Encoder{}, opts...)
}
