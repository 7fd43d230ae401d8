// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV (RIFF/WAVE) encoding and decoding.
//
// # Writing WAV Files
//
// New returns an audio.Sink that writes a WAV stream:
//
//	file, _ := os.Create("output.wav")
//	sink, err := wav.New(file, cfg)
//	err = sink.WriteSamples(pcm, 0, len(pcm))
//	err = sink.Close() // also closes file
//
// The payload must be interleaved little-endian samples in the format of
// the sink's configuration. 8-bit PCM is unsigned, as WAV requires.
//
// On a seekable stream 16, 24 and 32-bit PCM is written with the go-audio
// encoder, which fills in the RIFF and data sizes when the sink closes.
// Other layouts, and streams that cannot seek such as pipes, get a header
// whose sizes hold the streaming marker 0xFFFFFFFF; they are patched on close
// when the stream can seek. IEEE float formats carry an 18 byte fmt chunk.
//
// The preferred chunk size reported by the sink is 4096 frames.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// PCM from 8 to 32 bits and 32 or 64-bit float are supported. Unknown chunks
// before the data chunk are skipped. Streams without io.Seeker are read into
// memory first.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedEncoding: compressed, extensible or oversized samples
//   - ErrUnsupportedWavChunks: no data chunk was found
//
// Errors from the output stream are returned unchanged by the sink.
package wav
