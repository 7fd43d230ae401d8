// SPDX-License-Identifier: EPL-2.0

// Package pcmsource reads interleaved little-endian PCM or float samples from
// a byte stream as an audio.Source.
package pcmsource

import (
	"fmt"
	"io"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/utils"
)

// Source decodes raw sample bytes. A trailing partial frame at the end of
// the stream is dropped.
type Source struct {
	r       io.Reader
	format  audio.Format
	buf     []byte
	pending int // bytes of an incomplete frame kept at the front of buf
	eof     bool
}

func New(r io.Reader, f audio.Format) *Source {
	return &Source{
		r:      r,
		format: f,
		buf:    make([]byte, 4096*f.BlockAlign()),
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate() }
func (s *Source) Channels() int   { return s.format.Channels() }
func (s *Source) BufSize() int    { return len(s.buf) / s.format.BytesPerSample() }
func (s *Source) Close() error    { return nil }

// Format is the layout of the underlying bytes.
func (s *Source) Format() audio.Format { return s.format }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	channels := s.format.Channels()
	if len(dst)%channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	need := frames * s.format.BlockAlign()
	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.pending])
		s.buf = grown
	}
	s.buf = s.buf[:cap(s.buf)]

	n, err := io.ReadAtLeast(s.r, s.buf[s.pending:need], min(s.format.BlockAlign(), need-s.pending))
	total := s.pending + n

	usable := total - total%s.format.BlockAlign()
	got := utils.UnpackSamples(dst, s.buf[:usable], s.format.BitsPerSample(), s.format.IsFloat())
	s.pending = copy(s.buf, s.buf[usable:total])

	switch err {
	case nil:
		return got, nil
	case io.EOF, io.ErrUnexpectedEOF:
		s.eof = true
		return got, io.EOF
	default:
		return got, fmt.Errorf("%w", err)
	}
}
