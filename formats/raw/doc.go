// SPDX-License-Identifier: EPL-2.0

// Package raw writes and reads headerless interleaved samples.
//
// The sink emits exactly the bytes it is given, so the output is only
// meaningful together with the format of the sink's configuration:
//
//	sink, err := raw.New(out, cfg)
//	err = sink.WriteSamples(pcm, 0, len(pcm))
//	err = sink.Close()
//
// The preferred chunk is 1024 frames. The Decoder reads such a stream back
// when given the same Format.
package raw
