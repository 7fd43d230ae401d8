// SPDX-License-Identifier: EPL-2.0

// Package opus provides an Opus sink on top of libopus through
// gopkg.in/hraban/opus.v2.
//
// The sink takes 16-bit PCM, mono or stereo, at 8, 12, 16, 24 or 48 kHz;
// Supported reports whether a format qualifies. Other formats fail the first
// write with audio.ErrInvalidFormat and leave the sink open and unlocked.
//
// Samples are cut into 20 ms frames. Each encoded frame is written as a
// big-endian uint16 length followed by the packet:
//
//	+--------+----------------+--------+---------
//	| len 2B | packet (len B) | len 2B | packet ...
//	+--------+----------------+--------+---------
//
// OptimalBufferSize is exactly one frame. A trailing partial frame is padded
// with silence when the sink closes.
//
//	sink, err := opus.New(out, cfg)
//	err = sink.WriteSamples(pcm, 0, len(pcm))
//	err = sink.Close()
//
// The stream has no header, so Decoder needs the format it was written with:
//
//	src, err := opus.Decoder{Format: cfg.Format()}.Decode(in)
package opus
