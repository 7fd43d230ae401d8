// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/pcmsink/audio"
	hopus "gopkg.in/hraban/opus.v2"
)

// maxFrameSamples is 120 ms at 48 kHz, the longest Opus frame.
const maxFrameSamples = 5760

// packetDecoder is an interface for hopus.Decoder to allow testing
type packetDecoder interface {
	Decode(data []byte, pcm []int16) (int, error)
}

type source struct {
	r        io.Reader
	dec      packetDecoder
	format   audio.Format
	header   [lengthPrefix]byte
	packet   []byte
	pcm      []int16
	buffered []int16 // decoded samples not yet returned
	eof      bool
}

func (s *source) SampleRate() int { return s.format.SampleRate() }
func (s *source) Channels() int   { return s.format.Channels() }
func (s *source) BufSize() int    { return frameBytes(s.format) / 2 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.format.Channels() != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n := 0
	for n < len(dst) {
		if len(s.buffered) == 0 {
			if s.eof {
				break
			}
			if err := s.nextPacket(); err != nil {
				if err == io.EOF {
					s.eof = true
					break
				}
				return n, err
			}
			continue
		}

		c := min(len(dst)-n, len(s.buffered))
		for i, v := range s.buffered[:c] {
			dst[n+i] = float32(v) / 32768
		}
		s.buffered = s.buffered[c:]
		n += c
	}

	if s.eof && len(s.buffered) == 0 {
		return n, io.EOF
	}

	return n, nil
}

// nextPacket decodes one length-prefixed packet into buffered.
func (s *source) nextPacket() error {
	if _, err := io.ReadFull(s.r, s.header[:]); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedPacket
		}
		return fmt.Errorf("%w", err)
	}

	size := int(binary.BigEndian.Uint16(s.header[:]))
	if cap(s.packet) < size {
		s.packet = make([]byte, size)
	}
	s.packet = s.packet[:size]

	if _, err := io.ReadFull(s.r, s.packet); err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedPacket
		}
		return fmt.Errorf("%w", err)
	}

	frames, err := s.dec.Decode(s.packet, s.pcm)
	if err != nil {
		return fmt.Errorf("opus decode: %w", err)
	}
	s.buffered = s.pcm[:frames*s.format.Channels()]

	return nil
}

// Decoder reads the framed packet stream written by Encoder. The stream
// carries no header, so Format must match the one it was encoded with.
type Decoder struct {
	Format audio.Format
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if !Supported(d.Format) {
		return nil, fmt.Errorf("%w: %s", audio.ErrInvalidFormat, d.Format)
	}

	dec, err := hopus.NewDecoder(d.Format.SampleRate(), d.Format.Channels())
	if err != nil {
		return nil, fmt.Errorf("create opus decoder: %w", err)
	}

	return newSource(r, dec, d.Format), nil
}

func newSource(r io.Reader, dec packetDecoder, f audio.Format) *source {
	return &source{
		r:      r,
		dec:    dec,
		format: f,
		pcm:    make([]int16, maxFrameSamples*f.Channels()),
	}
}
