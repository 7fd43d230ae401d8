// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF encoding and decoding on top of go-audio.
//
// # Writing AIFF Files
//
// New returns an audio.Sink writing an AIFF stream:
//
//	file, _ := os.Create("output.aiff")
//	sink, err := aiff.New(file, cfg)
//	err = sink.WriteSamples(pcm, 0, len(pcm))
//	err = sink.Close()
//
// The payload uses the same little-endian layout as every other sink (8-bit
// unsigned, wider signed); the encoder converts it to AIFF's big-endian
// signed samples. AIFF stores 8 to 32-bit PCM only: float formats fail with
// audio.ErrInvalidFormat on the first write.
//
// The sizes in the FORM, COMM and SSND chunks are written when the sink
// closes, so the output must be an io.WriteSeeker positioned at its start.
// Anything else fails the first write with audio.ErrNotSeekable and leaves
// the sink open. A trailing partial frame is dropped.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("input.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// 8, 16, 24 and 32-bit files are supported. Input without io.Seeker is read
// into memory first, since go-audio needs to seek between chunks.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: sample width outside 8 to 32 bits
//   - ErrUnsupportedAiffLayout: missing or invalid format information
package aiff
