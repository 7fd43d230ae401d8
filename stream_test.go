// SPDX-License-Identifier: EPL-2.0

package pcmsink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/formats/raw"
	"github.com/ik5/pcmsink/internal/audiotest"
	"github.com/ik5/pcmsink/utils"
)

var quiet = audio.WithLogger(slog.New(slog.DiscardHandler))

func newRawSink(t testing.TB, out io.WriteCloser, f audio.Format) *audio.Sink {
	t.Helper()

	cfg, err := audio.NewConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	sink, err := raw.New(out, cfg, quiet)
	if err != nil {
		t.Fatal(err)
	}
	return sink
}

// chunkEncoder records the size of every buffer it receives.
type chunkEncoder struct {
	raw.Encoder
	optimal int
	chunks  []int
}

func (e *chunkEncoder) OptimalBufferSize(audio.Format) int { return e.optimal }

func (e *chunkEncoder) Encode(dst io.Writer, p []byte) error {
	e.chunks = append(e.chunks, len(p))
	return e.Encoder.Encode(dst, p)
}

func TestStream_PCM16(t *testing.T) {
	t.Parallel()

	f := mustFormat(t, 8000, 16, 1)
	out := &audiotest.Buffer{}
	sink := newRawSink(t, out, f)

	n, err := Stream(context.Background(), audiotest.NewSineSource(8000, 1, 8000, 440), sink)
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if n != 16000 || out.Len() != 16000 {
		t.Errorf("Stream() = %d bytes, output has %d, want 16000", n, out.Len())
	}
	if sink.State() != audio.StateWriting {
		t.Errorf("State() = %v, Stream must not close the sink", sink.State())
	}
	if out.Closed() != 0 {
		t.Error("output closed by Stream")
	}

	// same bytes as packing the source directly
	want := make([]byte, 16000)
	samples := drain(t, audiotest.NewSineSource(8000, 1, 8000, 440))
	utils.PackSamples(want, samples, 16, false)
	if !bytes.Equal(out.Bytes(), want) {
		t.Error("streamed bytes differ from the packed source")
	}

	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStream_Formats(t *testing.T) {
	t.Parallel()

	float32Format, _ := audio.NewFloatFormat(16000, 32, 2)
	float64Format, _ := audio.NewFloatFormat(16000, 64, 2)

	tests := []struct {
		name string
		f    audio.Format
	}{
		{"8-bit", mustFormat(t, 16000, 8, 2)},
		{"24-bit", mustFormat(t, 16000, 24, 2)},
		{"32-bit", mustFormat(t, 16000, 32, 2)},
		{"float32", float32Format},
		{"float64", float64Format},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := &audiotest.Buffer{}
			sink := newRawSink(t, out, tt.f)

			const frames = 1000
			n, err := Stream(context.Background(), audiotest.NewConstantSource(16000, 2, frames, 0.5), sink)
			if err != nil {
				t.Fatalf("Stream() error = %v", err)
			}
			if want := int64(frames * tt.f.BlockAlign()); n != want {
				t.Errorf("Stream() = %d bytes, want %d", n, want)
			}

			decoded := make([]float32, frames*2)
			utils.UnpackSamples(decoded, out.Bytes(), tt.f.BitsPerSample(), tt.f.IsFloat())
			for i, v := range decoded {
				if d := v - 0.5; d > 0.01 || d < -0.01 {
					t.Fatalf("sample %d = %v, want 0.5", i, v)
				}
			}
		})
	}
}

func TestStream_Chunking(t *testing.T) {
	t.Parallel()

	f := mustFormat(t, 8000, 16, 2)
	cfg, _ := audio.NewConfig(f)
	enc := &chunkEncoder{optimal: 400}
	sink, err := audio.NewSink(&audiotest.Buffer{}, cfg, enc, quiet)
	if err != nil {
		t.Fatal(err)
	}

	// 250 frames: two full chunks of 100 frames and a 50 frame tail
	if _, err := Stream(context.Background(), audiotest.NewSilentSource(8000, 2, 250), sink); err != nil {
		t.Fatal(err)
	}

	want := []int{400, 400, 200}
	if len(enc.chunks) != len(want) {
		t.Fatalf("chunks = %v, want %v", enc.chunks, want)
	}
	for i := range want {
		if enc.chunks[i] != want[i] {
			t.Errorf("chunk %d = %d bytes, want %d", i, enc.chunks[i], want[i])
		}
	}
}

func TestStream_FormatMismatch(t *testing.T) {
	t.Parallel()

	out := &audiotest.Buffer{}
	sink := newRawSink(t, out, mustFormat(t, 16000, 16, 1))

	tests := []audio.Source{
		audiotest.NewSilentSource(8000, 1, 10),
		audiotest.NewSilentSource(16000, 2, 10),
	}
	for _, src := range tests {
		if _, err := Stream(context.Background(), src, sink); !errors.Is(err, ErrFormatMismatch) {
			t.Errorf("Stream() error = %v, want %v", err, ErrFormatMismatch)
		}
	}

	if sink.State() != audio.StateOpen || out.Len() != 0 {
		t.Error("mismatched stream touched the sink")
	}
}

func TestStream_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &audiotest.Buffer{}
	sink := newRawSink(t, out, mustFormat(t, 8000, 16, 1))

	n, err := Stream(ctx, audiotest.NewSilentSource(8000, 1, 8000), sink)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Stream() error = %v, want %v", err, context.Canceled)
	}
	if n != 0 || out.Len() != 0 {
		t.Errorf("Stream() wrote %d bytes after cancellation", n)
	}
}

func TestStream_SourceError(t *testing.T) {
	t.Parallel()

	out := &audiotest.Buffer{}
	sink := newRawSink(t, out, mustFormat(t, 8000, 16, 1))

	src := audiotest.NewSilentSource(8000, 1, 8000).FailAfter(100)
	n, err := Stream(context.Background(), src, sink)
	if !errors.Is(err, audiotest.ErrMockSource) {
		t.Errorf("Stream() error = %v, want %v", err, audiotest.ErrMockSource)
	}
	if n != 200 {
		t.Errorf("Stream() = %d bytes, want the 200 read before the failure", n)
	}
}

func TestStream_SinkError(t *testing.T) {
	t.Parallel()

	out := &audiotest.FailingWriter{Limit: 100}
	sink := newRawSink(t, out, mustFormat(t, 8000, 16, 1))

	_, err := Stream(context.Background(), audiotest.NewSilentSource(8000, 1, 8000), sink)
	if !errors.Is(err, audiotest.ErrWriteFailed) {
		t.Errorf("Stream() error = %v, want %v", err, audiotest.ErrWriteFailed)
	}
	if sink.State() != audio.StateWriting {
		t.Errorf("State() = %v, want %v", sink.State(), audio.StateWriting)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestStream_ClosedSink(t *testing.T) {
	t.Parallel()

	sink := newRawSink(t, &audiotest.Buffer{}, mustFormat(t, 8000, 16, 1))
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	_, err := Stream(context.Background(), audiotest.NewSilentSource(8000, 1, 10), sink)
	if !errors.Is(err, audio.ErrInvalidState) {
		t.Errorf("Stream() error = %v, want %v", err, audio.ErrInvalidState)
	}
}

func BenchmarkStream(b *testing.B) {
	f, _ := audio.NewFormat(44100, 16, 2)

	b.ReportAllocs()
	for b.Loop() {
		sink := newRawSink(b, audio.NopCloser(io.Discard), f)
		_, _ = Stream(context.Background(), audiotest.NewSineSource(44100, 2, 44100, 440), sink)
		_ = sink.Close()
	}
}
