// SPDX-License-Identifier: EPL-2.0

package pcmsink

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/utils"
)

// Stream reads src until io.EOF and writes it to sink in chunks of the
// sink's optimal buffer size, quantised to the sink format. It returns the
// number of bytes handed to the sink.
//
// The context is checked between chunks. Stream never closes the sink: on
// success and on error alike the caller still owns the Close.
func Stream(ctx context.Context, src audio.Source, sink *audio.Sink) (int64, error) {
	f := sink.Config().Format()
	if src.SampleRate() != f.SampleRate() || src.Channels() != f.Channels() {
		return 0, fmt.Errorf("%w: source %d Hz %d channels, sink %s",
			ErrFormatMismatch, src.SampleRate(), src.Channels(), f)
	}

	frames := max(f.Frames(sink.OptimalBufferSize()), 1)
	samples := make([]float32, frames*f.Channels())
	buf := make([]byte, frames*f.BlockAlign())

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := src.ReadSamples(samples)
		if n > 0 {
			m := utils.PackSamples(buf, samples[:n], f.BitsPerSample(), f.IsFloat())
			if werr := sink.WriteSamples(buf, 0, m); werr != nil {
				return total, werr
			}
			total += int64(m)
		}

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("read source: %w", err)
		}
	}
}
