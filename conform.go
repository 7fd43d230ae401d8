// SPDX-License-Identifier: EPL-2.0

package pcmsink

import (
	"fmt"

	"github.com/ik5/pcmsink/audio"
)

// Conform returns src converted to the sample rate and channel count of f.
// Channels are folded down before resampling and spread out after it, so the
// resampler always runs on the narrower layout. A source that already
// matches is returned as is.
//
// Mappings the ChannelMixer cannot perform fail with audio.ErrChannelMapping.
func Conform(src audio.Source, f audio.Format) (audio.Source, error) {
	out := src

	if out.Channels() > f.Channels() {
		mixed, err := audio.NewChannelMixer(out, f.Channels())
		if err != nil {
			return nil, err
		}
		out = mixed
	}

	if out.Channels() != f.Channels() && out.Channels() != 1 {
		return nil, fmt.Errorf("%w: %d to %d channels", audio.ErrChannelMapping, out.Channels(), f.Channels())
	}

	if out.SampleRate() != f.SampleRate() {
		out = audio.NewResampler(out, f.SampleRate())
	}

	if out.Channels() < f.Channels() {
		spread, err := audio.NewChannelMixer(out, f.Channels())
		if err != nil {
			return nil, err
		}
		out = spread
	}

	return out, nil
}
