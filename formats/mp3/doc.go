// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding on top of github.com/hajimehoshi/go-mp3.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The source is always stereo at the sample rate of the file; go-mp3
// duplicates mono streams. Samples are float32 in [-1.0, 1.0].
//
// # Encoding
//
// There is no MP3 sink: no MP3 compressor is available to this module. To
// turn an MP3 into another format, decode it and stream it into a sink:
//
//	source, _ := mp3.Decoder{}.Decode(in)
//	sink, _ := wav.New(out, cfg)
//	conformed, _ := pcmsink.Conform(source, cfg.Format())
//	_, err := pcmsink.Stream(ctx, conformed, sink)
//	err = sink.Close()
package mp3
