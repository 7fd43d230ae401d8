// SPDX-License-Identifier: EPL-2.0

// Package pcmsink writes raw audio samples to encoding sinks.
//
// The audio subpackage holds the model: a Format describes interleaved
// samples, a Config persists it, and a Sink is a write-only stream of raw
// sample bytes bound to an Encoder. This package ties decoded sources to
// sinks.
//
// # Supported Formats
//
// Sinks:
//   - raw, headerless samples, via formats/raw
//   - WAV (PCM 8 to 32-bit, IEEE float) via formats/wav
//   - AIFF (PCM 8 to 32-bit, seekable output only) via formats/aiff
//   - Opus (16-bit PCM, length-prefixed packets) via formats/opus
//
// Decoders:
//   - WAV, AIFF, MP3, Ogg Vorbis and raw PCM
//
// Encoders and Decoders return registries keyed by name.
//
// # Quick Start
//
//	src, _ := mp3.Decoder{}.Decode(in)
//
//	f, _ := audio.NewFormat(16000, 16, 1)
//	cfg, _ := audio.NewConfig(f)
//	sink, _ := wav.New(out, cfg)
//	defer sink.Close()
//
//	conformed, _ := pcmsink.Conform(src, f)
//	n, err := pcmsink.Stream(ctx, conformed, sink)
//
// Conform resamples and remixes a source to the rate and channel count of a
// format. Stream reads the source in chunks of the sink's optimal buffer
// size, quantises each chunk to the sink's bit depth and writes it. It stops
// at the end of the source, on the first error or when ctx is done, and never
// closes the sink.
//
// # Writing Directly
//
// A sink accepts byte buffers already laid out in its format:
//
//	err := sink.WriteSamples(pcm, 0, len(pcm))
//
// The first write locks the format. Scalar writes are rejected with
// audio.ErrUnsupportedOperation. See the audio package for the full
// contract.
package pcmsink
