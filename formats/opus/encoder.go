// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmsink/audio"
	hopus "gopkg.in/hraban/opus.v2"
)

const (
	// framesPerSecond gives 20 ms frames.
	framesPerSecond = 50

	// maxPacketSize is the largest packet libopus produces.
	maxPacketSize = 4000

	lengthPrefix = 2
)

// Encoder compresses 16-bit PCM into a stream of Opus packets, each preceded
// by its length as a big-endian uint16. The last partial frame is padded with
// silence on close.
type Encoder struct {
	// Bitrate in bits per second, 0 keeps the libopus default.
	Bitrate int

	format  audio.Format
	enc     *hopus.Encoder
	frame   []int16
	pending []byte
	packet  []byte
}

// NewEncoder returns an Encoder for a single stream.
func NewEncoder(bitrate int) *Encoder {
	return &Encoder{Bitrate: bitrate}
}

// New returns a sink writing framed Opus packets to w.
func New(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error) {
	return audio.NewSink(w, cfg, NewEncoder(0), opts...)
}

// Supported reports whether libopus can take samples laid out as f.
func Supported(f audio.Format) bool {
	if f.IsFloat() || f.BitsPerSample() != 16 {
		return false
	}
	if f.Channels() < 1 || f.Channels() > 2 {
		return false
	}

	switch f.SampleRate() {
	case 8000, 12000, 16000, 24000, 48000:
		return true
	default:
		return false
	}
}

// OptimalBufferSize is one 20 ms frame.
func (e *Encoder) OptimalBufferSize(f audio.Format) int {
	return frameBytes(f)
}

func (e *Encoder) Begin(_ io.Writer, f audio.Format) error {
	if !Supported(f) {
		return fmt.Errorf("%w: opus needs 16-bit PCM, 1 or 2 channels at 8, 12, 16, 24 or 48 kHz, got %s",
			audio.ErrInvalidFormat, f)
	}

	enc, err := hopus.NewEncoder(f.SampleRate(), f.Channels(), hopus.AppAudio)
	if err != nil {
		return fmt.Errorf("create opus encoder: %w", err)
	}
	if e.Bitrate > 0 {
		if err := enc.SetBitrate(e.Bitrate); err != nil {
			return fmt.Errorf("set opus bitrate %d: %w", e.Bitrate, err)
		}
	}

	e.format = f
	e.enc = enc
	e.frame = make([]int16, frameBytes(f)/2)
	e.pending = make([]byte, 0, frameBytes(f))
	e.packet = make([]byte, lengthPrefix+maxPacketSize)

	return nil
}

func (e *Encoder) Encode(dst io.Writer, p []byte) error {
	size := cap(e.pending)

	for len(p) > 0 {
		n := min(size-len(e.pending), len(p))
		e.pending = append(e.pending, p[:n]...)
		p = p[n:]

		if len(e.pending) == size {
			if err := e.writeFrame(dst); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Encoder) End(dst io.Writer) error {
	if e.enc == nil || len(e.pending) == 0 {
		return nil
	}

	// silence
	filled := len(e.pending)
	e.pending = e.pending[:cap(e.pending)]
	clear(e.pending[filled:])

	return e.writeFrame(dst)
}

func (e *Encoder) writeFrame(dst io.Writer) error {
	for i := range e.frame {
		e.frame[i] = int16(binary.LittleEndian.Uint16(e.pending[2*i:]))
	}
	e.pending = e.pending[:0]

	n, err := e.enc.Encode(e.frame, e.packet[lengthPrefix:])
	if err != nil {
		return fmt.Errorf("opus encode: %w", err)
	}

	binary.BigEndian.PutUint16(e.packet, uint16(n))
	_, err = dst.Write(e.packet[:lengthPrefix+n])

	return err
}

func frameBytes(f audio.Format) int {
	return f.SampleRate() / framesPerSecond * f.BlockAlign()
}
