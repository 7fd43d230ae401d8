// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrWriteFailed is returned by FailingWriter.
var ErrWriteFailed = errors.New("write failed")

// Buffer is an in-memory output stream that records how often it was closed.
type Buffer struct {
	bytes.Buffer
	closed int
}

func (b *Buffer) Close() error {
	b.closed++
	return nil
}

// Closed returns the number of Close calls.
func (b *Buffer) Closed() int { return b.closed }

// SeekBuffer is an in-memory io.WriteSeeker with Close, for encoders that
// patch headers after the payload.
type SeekBuffer struct {
	data   []byte
	pos    int64
	closed int
}

func (s *SeekBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}
	copy(s.data[s.pos:], p)
	s.pos = end

	return len(p), nil
}

func (s *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("negative position")
	}
	s.pos = abs

	return abs, nil
}

func (s *SeekBuffer) Close() error {
	s.closed++
	return nil
}

// Bytes returns the written data.
func (s *SeekBuffer) Bytes() []byte { return s.data }

// Closed returns the number of Close calls.
func (s *SeekBuffer) Closed() int { return s.closed }

// FailingWriter accepts Limit bytes and then fails every write with
// ErrWriteFailed. A failing Close can be requested with CloseErr.
type FailingWriter struct {
	Limit    int
	CloseErr error
	written  int
	closed   int
}

func (f *FailingWriter) Write(p []byte) (int, error) {
	if f.written+len(p) > f.Limit {
		n := f.Limit - f.written
		f.written = f.Limit
		return n, ErrWriteFailed
	}
	f.written += len(p)

	return len(p), nil
}

func (f *FailingWriter) Close() error {
	f.closed++
	return f.CloseErr
}

// Written returns the number of bytes accepted.
func (f *FailingWriter) Written() int { return f.written }

// Closed returns the number of Close calls.
func (f *FailingWriter) Closed() int { return f.closed }
