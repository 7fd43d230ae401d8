// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// FormatTag identifies the sample encoding, using the WAVE format tag values.
type FormatTag uint16

const (
	TagPCM   FormatTag = 1
	TagFloat FormatTag = 3
)

func (t FormatTag) String() string {
	switch t {
	case TagPCM:
		return "PCM"
	case TagFloat:
		return "Float"
	default:
		return fmt.Sprintf("FormatTag(%d)", uint16(t))
	}
}

// Format describes an interleaved sample layout. It is an immutable value:
// block alignment and byte rate are derived from the primary fields when the
// Format is built and can never be set on their own.
type Format struct {
	tag            FormatTag
	channels       int
	sampleRate     int
	bitsPerSample  int
	blockAlign     int
	avgBytesPerSec int
}

// NewFormat builds a PCM format.
func NewFormat(sampleRate, bitsPerSample, channels int) (Format, error) {
	return NewTaggedFormat(TagPCM, sampleRate, bitsPerSample, channels)
}

// NewFloatFormat builds an IEEE float format; bitsPerSample must be 32 or 64.
func NewFloatFormat(sampleRate, bitsPerSample, channels int) (Format, error) {
	return NewTaggedFormat(TagFloat, sampleRate, bitsPerSample, channels)
}

// NewTaggedFormat validates the primary fields and derives the rest.
func NewTaggedFormat(tag FormatTag, sampleRate, bitsPerSample, channels int) (Format, error) {
	switch {
	case sampleRate <= 0 || sampleRate > math.MaxInt32:
		return Format{}, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, sampleRate)
	case bitsPerSample <= 0 || bitsPerSample%8 != 0 || bitsPerSample > 64:
		return Format{}, fmt.Errorf("%w: bits per sample %d", ErrInvalidFormat, bitsPerSample)
	case channels <= 0 || channels > math.MaxUint16:
		return Format{}, fmt.Errorf("%w: channel count %d", ErrInvalidFormat, channels)
	}

	switch tag {
	case TagPCM:
	case TagFloat:
		if bitsPerSample != 32 && bitsPerSample != 64 {
			return Format{}, fmt.Errorf("%w: float samples must be 32 or 64 bits, got %d",
				ErrInvalidFormat, bitsPerSample)
		}
	default:
		return Format{}, fmt.Errorf("%w: %s", ErrInvalidFormat, tag)
	}

	blockAlign := channels * (bitsPerSample / 8)
	return Format{
		tag:            tag,
		channels:       channels,
		sampleRate:     sampleRate,
		bitsPerSample:  bitsPerSample,
		blockAlign:     blockAlign,
		avgBytesPerSec: sampleRate * blockAlign,
	}, nil
}

func (f Format) Tag() FormatTag      { return f.tag }
func (f Format) Channels() int       { return f.channels }
func (f Format) SampleRate() int     { return f.sampleRate }
func (f Format) BitsPerSample() int  { return f.bitsPerSample }
func (f Format) BlockAlign() int     { return f.blockAlign }
func (f Format) AvgBytesPerSec() int { return f.avgBytesPerSec }

// ExtraSize is the size of the format extension block; always 0 for the
// simple PCM and float layouts.
func (f Format) ExtraSize() int { return 0 }

// BytesPerSample is the width of a single channel sample.
func (f Format) BytesPerSample() int { return f.bitsPerSample / 8 }

// IsFloat reports whether samples are IEEE floats.
func (f Format) IsFloat() bool { return f.tag == TagFloat }

// IsZero reports whether f is the zero Format, which no constructor returns.
func (f Format) IsZero() bool { return f == Format{} }

// Frames returns the number of whole frames held by byteCount bytes.
func (f Format) Frames(byteCount int) int {
	if f.blockAlign == 0 {
		return 0
	}
	return byteCount / f.blockAlign
}

// Duration returns the playback time of byteCount bytes.
func (f Format) Duration(byteCount int64) time.Duration {
	if f.avgBytesPerSec == 0 {
		return 0
	}
	return time.Duration(float64(byteCount) / float64(f.avgBytesPerSec) * float64(time.Second))
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %d-bit %dch", f.tag, f.sampleRate, f.bitsPerSample, f.channels)
}
