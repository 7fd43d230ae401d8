// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/pcmsink/utils"
)

// Resampler converts src to another sample rate with cubic interpolation,
// preserving the channel count. A one-pole low-pass runs ahead of the
// interpolator when downsampling.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// window holds frames t-1, t, t+1, t+2; output is interpolated between
	// window[1] and window[2] at phase/dstRate. valid counts the real (not
	// edge-repeated) frames in window[1:].
	window [4][]float32
	valid  int
	primed bool
	phase  int

	in    []float32
	inPos int
	inLen int
	eof   bool

	lowpass []float32
	seeded  bool
	alpha   float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		in:       make([]float32, max(src.BufSize()/channels, 256)*channels),
	}

	if r.srcRate > dstRate {
		r.alpha = float32(dstRate) / float32(r.srcRate)
		r.lowpass = make([]float32, channels)
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst, or returns io.EOF once
// the source is drained.
func (r *Resampler) nextFrame(dst []float32) error {
	for r.inPos+r.channels > r.inLen {
		if r.eof {
			return io.EOF
		}

		// keep a partial frame at the front of the buffer
		rest := copy(r.in, r.in[r.inPos:r.inLen])
		n, err := r.src.ReadSamples(r.in[rest:])
		r.inPos, r.inLen = 0, rest+n

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass != nil {
		if !r.seeded {
			copy(r.lowpass, dst)
			r.seeded = true
		}
		for c := range dst {
			r.lowpass[c] += r.alpha * (dst[c] - r.lowpass[c])
			dst[c] = r.lowpass[c]
		}
	}

	return nil
}

// advance shifts the window by one frame, repeating the last frame once the
// source is drained.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:3], r.window[1:])
	r.window[3] = first

	err := r.nextFrame(r.window[3])
	if err == io.EOF {
		copy(r.window[3], r.window[2])
		r.valid = max(r.valid-1, 0)
		return nil
	}

	return err
}

func (r *Resampler) prime() error {
	if err := r.nextFrame(r.window[1]); err != nil {
		return err
	}
	copy(r.window[0], r.window[1])
	r.valid = 1

	for i := 2; i < 4; i++ {
		err := r.nextFrame(r.window[i])
		if err == io.EOF {
			copy(r.window[i], r.window[i-1])
			continue
		}
		if err != nil {
			return err
		}
		r.valid++
	}

	r.primed = true
	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.phase >= r.dstRate && r.valid > 0 {
			r.phase -= r.dstRate
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// the last source frame is held for one source period
		if r.valid == 0 {
			return written * r.channels, io.EOF
		}

		x := float32(r.phase) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.phase += r.srcRate
	}

	return written * r.channels, nil
}
