// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// MockSource generates audio for tests. It satisfies audio.Source without
// importing it, so the audio package itself can use it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(sample int, channel int) float32
	failAfter    int
	closed       int
}

// ErrMockSource is returned by a source built with FailAfter.
var ErrMockSource = errors.New("mock source failure")

// NewMockSource creates a source of totalSamples frames; waveform yields the
// value of every (frame, channel) pair.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		failAfter:    -1,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with a constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// FailAfter makes ReadSamples return ErrMockSource once frames frames were produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Closed() int     { return m.closed }

func (m *MockSource) Close() error {
	m.closed++
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockSource
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
