// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding on top of
// github.com/jfreymuth/oggvorbis.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Channel count and sample rate are those of the stream. Samples are float32
// in [-1.0, 1.0], interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// A destination buffer must hold a whole number of frames, otherwise
// ReadSamples fails with audio.ErrInvalidDstSize. A truncated stream ends
// with io.EOF after the last complete packet.
//
// # Encoding
//
// There is no Vorbis sink. Decode and stream into one of the PCM sinks:
//
//	source, _ := vorbis.Decoder{}.Decode(in)
//	conformed, _ := pcmsink.Conform(source, cfg.Format())
//	_, err := pcmsink.Stream(ctx, conformed, sink)
package vorbis
