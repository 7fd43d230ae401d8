// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample format model, the sink abstraction and
// the low-level processing primitives shared by every codec package.
//
// This package contains:
//   - Format, an immutable description of an interleaved sample layout
//   - Config, the persistable configuration owned by a sink
//   - Sink, a write-only stream of raw samples bound to an Encoder
//   - Source interface for decoded audio input
//   - Resampler and ChannelMixer for conforming a Source to a Format
//   - Registry for decoder and encoder registration
//
// # Formats
//
// A Format is built from its primary fields; block alignment and byte rate
// are derived and cannot be set independently:
//
//	f, err := audio.NewFormat(48000, 24, 2)
//	f.BlockAlign()     // 6
//	f.AvgBytesPerSec() // 288000
//
// Invalid rates, bit depths and channel counts fail with ErrInvalidFormat.
// NewFloatFormat describes IEEE float samples of 32 or 64 bits.
//
// # Configuration
//
// A Config wraps a Format. DefaultConfig is 44.1 kHz, 16-bit stereo PCM.
// The stored form is exactly three int32 values (sample rate, bits per
// sample, channels), available as Persisted, as YAML and as a 12 byte
// little-endian binary record:
//
//	p := cfg.Persist()
//	restored, err := audio.Restore(p)
//
// # Sinks
//
// A Sink accepts raw byte buffers only. It is created Open, moves to Writing
// on the first WriteSamples call and to Closed on Close:
//
//	sink, err := audio.NewSink(out, cfg, encoder)
//	err = sink.WriteSamples(buf, 0, len(buf))
//	err = sink.Close()
//
// The first write locks the format: SetFormat fails with ErrInvalidState
// afterwards. Any write on a closed sink fails with ErrInvalidState, and a
// slice outside the buffer fails with ErrInvalidArgument before anything is
// emitted. Errors from the output stream are returned unchanged and leave
// the sink open, so the caller still owns the Close.
//
// Scalar writes (WriteTyped, WriteByte, WriteRune, WriteString) are always
// rejected with an error matching ErrUnsupportedOperation, whatever the
// state of the sink.
//
// OptimalBufferSize is the encoder's preferred chunk size in bytes. It is a
// hint: WriteSamples accepts buffers of any length.
//
// # Encoders
//
// An Encoder receives the locked format in Begin, every accepted buffer in
// Encode and a final End when the sink closes. Encoders whose output format
// differs from the requested one implement FormatReporter; the sink reports
// the effective format through Config.
//
// # Source Interface
//
// The Source interface is the input side of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel.
//
// # Resampling and Channel Mixing
//
// The Resampler changes the sample rate using cubic interpolation, with a
// one-pole low-pass ahead of the interpolator when downsampling. The
// ChannelMixer folds any layout down to mono or spreads mono out:
//
//	resampled := audio.NewResampler(source, 16000)
//	stereo, err := audio.NewChannelMixer(resampled, 2)
//
// # Error Handling
//
// All errors can be matched with errors.Is against the sentinels declared in
// errors.go. Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
