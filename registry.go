// SPDX-License-Identifier: EPL-2.0

package pcmsink

import (
	"io"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/formats/aiff"
	"github.com/ik5/pcmsink/formats/mp3"
	"github.com/ik5/pcmsink/formats/opus"
	"github.com/ik5/pcmsink/formats/raw"
	"github.com/ik5/pcmsink/formats/vorbis"
	"github.com/ik5/pcmsink/formats/wav"
)

// SinkFactory opens a sink of one encoding on w.
type SinkFactory func(w io.WriteCloser, cfg *audio.Config, opts ...audio.Option) (*audio.Sink, error)

// Decoders returns a registry of every built-in decoder, keyed by file
// extension. "raw" reads headerless samples in the default format.
func Decoders() *audio.Registry[audio.Decoder] {
	r := audio.NewRegistry[audio.Decoder]()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("raw", raw.Decoder{})

	return r
}

// Encoders returns a registry of every built-in sink.
func Encoders() *audio.Registry[SinkFactory] {
	r := audio.NewRegistry[SinkFactory]()
	r.Register("raw", raw.New)
	r.Register("wav", wav.New)
	r.Register("aiff", aiff.New)
	r.Register("opus", opus.New)

	return r
}
