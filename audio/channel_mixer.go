// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer changes the channel count of src: any layout folds down to
// mono by averaging, and mono spreads to any layout by duplication.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
}

// NewChannelMixer returns a mixer producing channels outputs per frame.
// Mappings other than N→1, 1→N and N→N fail with ErrChannelMapping.
func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	in := src.Channels()
	if channels <= 0 || (in != channels && in != 1 && channels != 1) {
		return nil, fmt.Errorf("%w: %d to %d channels", ErrChannelMapping, in, channels)
	}

	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 8192),
	}, nil
}

// NewMonoMixer folds src down to a single channel.
func NewMonoMixer(src Source) *ChannelMixer {
	m, _ := NewChannelMixer(src, 1)
	return m
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / m.channels
	if frames == 0 {
		return 0, nil
	}

	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	got := n / in

	if m.channels == 1 {
		inv := 1 / float32(in)
		for f := range got {
			sum := float32(0)
			for _, v := range m.tmp[f*in : (f+1)*in] {
				sum += v
			}
			dst[f] = sum * inv
		}
	} else {
		for f := range got {
			v := m.tmp[f]
			for c := range m.channels {
				dst[f*m.channels+c] = v
			}
		}
	}

	return got * m.channels, err
}
