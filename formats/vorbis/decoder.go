// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/pcmsink/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	eof        bool
}

func newSource(dec oggReader) (*source, error) {
	if dec.SampleRate() <= 0 || dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", audio.ErrInvalidFormat, dec.SampleRate(), dec.Channels())
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis reports a count of
// values, always a whole number of frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil:
		return n, nil
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		s.eof = true
		return n, io.EOF
	default:
		return n, fmt.Errorf("%w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}
