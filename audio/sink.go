// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// State is the lifecycle position of a Sink.
type State int

const (
	StateOpen State = iota
	StateWriting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateWriting:
		return "writing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Encoder turns raw sample bytes into the bytes of an output format.
// A Sink calls Begin once with the locked format before the first payload,
// Encode for every accepted buffer and End once when it is closed.
type Encoder interface {
	Begin(dst io.Writer, f Format) error
	Encode(dst io.Writer, p []byte) error
	End(dst io.Writer) error

	// OptimalBufferSize is the preferred write size in bytes for f.
	OptimalBufferSize(f Format) int
}

// FormatReporter is implemented by encoders whose effective format differs
// from the one requested in the configuration.
type FormatReporter interface {
	EffectiveFormat(requested Format) Format
}

// Option configures a Sink.
type Option func(*Sink)

// WithLogger sets the logger; the sink adds its own id to it.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sink is a write-only stream of raw audio samples bound to an encoder.
// Only raw byte buffers can be written: scalar writes are always rejected.
//
// A Sink is driven by a single writer and is not safe for concurrent use.
type Sink struct {
	id      uuid.UUID
	out     io.WriteCloser
	cfg     *Config
	enc     Encoder
	state   State
	written int64
	logger  *slog.Logger
}

// NewSink takes exclusive ownership of out. cfg is copied; a nil cfg means
// DefaultConfig.
func NewSink(out io.WriteCloser, cfg *Config, enc Encoder, opts ...Option) (*Sink, error) {
	if out == nil {
		return nil, fmt.Errorf("%w: nil output stream", ErrInvalidArgument)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encoder", ErrInvalidArgument)
	}

	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}

	s := &Sink{
		id:     uuid.New(),
		out:    out,
		cfg:    cfg,
		enc:    enc,
		state:  StateOpen,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("sink", s.id)

	s.logger.Debug("sink opened", "format", cfg.Format())

	return s, nil
}

func (s *Sink) ID() uuid.UUID       { return s.id }
func (s *Sink) State() State        { return s.state }
func (s *Sink) BytesWritten() int64 { return s.written }

// Config returns a copy of the effective configuration.
func (s *Sink) Config() *Config {
	cfg := s.cfg.Clone()
	cfg.format = s.effectiveFormat()
	if s.cfg.Locked() {
		cfg.lock()
	}

	return cfg
}

// SetFormat changes the format before the first write.
func (s *Sink) SetFormat(f Format) error {
	if s.state == StateClosed {
		return fmt.Errorf("%w: sink is closed", ErrInvalidState)
	}

	return s.cfg.SetFormat(f)
}

// OptimalBufferSize is the encoder's preferred write size in bytes. It is a
// hint for chunking only: WriteSamples accepts any length.
func (s *Sink) OptimalBufferSize() int {
	f := s.effectiveFormat()
	if n := s.enc.OptimalBufferSize(f); n > 0 {
		return n
	}

	return max(f.BlockAlign(), 1)
}

// WriteSamples forwards buf[offset:offset+count] to the encoder. The first
// call locks the format and begins the encoder. Errors from the output stream
// are returned unchanged and leave the sink open; Close is still required.
func (s *Sink) WriteSamples(buf []byte, offset, count int) error {
	if s.state == StateClosed {
		return fmt.Errorf("%w: write on closed sink", ErrInvalidState)
	}
	if offset < 0 || count < 0 || offset > len(buf) || count > len(buf)-offset {
		return fmt.Errorf("%w: slice [%d:%d+%d] of %d bytes",
			ErrInvalidArgument, offset, offset, count, len(buf))
	}

	if s.state == StateOpen {
		if err := s.begin(); err != nil {
			return err
		}
	}

	if count == 0 {
		return nil
	}

	if err := s.enc.Encode(s.out, buf[offset:offset+count]); err != nil {
		return err
	}
	s.written += int64(count)

	return nil
}

// Write implements io.Writer on top of WriteSamples.
func (s *Sink) Write(p []byte) (int, error) {
	if err := s.WriteSamples(p, 0, len(p)); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close ends the encoder and releases the output stream. The stream is
// closed exactly once; a second Close fails with ErrInvalidState.
func (s *Sink) Close() error {
	if s.state == StateClosed {
		return fmt.Errorf("%w: sink already closed", ErrInvalidState)
	}

	var endErr error
	if s.state == StateWriting {
		endErr = s.enc.End(s.out)
		if endErr != nil {
			s.logger.Warn("encoder did not finish cleanly", "err", endErr)
		}
	}

	closeErr := s.out.Close()
	if closeErr != nil {
		s.logger.Warn("closing output stream failed", "err", closeErr)
	}

	s.state = StateClosed
	s.logger.Debug("sink closed", "bytes", s.written)

	return errors.Join(endErr, closeErr)
}

func (s *Sink) begin() error {
	f := s.effectiveFormat()
	s.cfg.lock()

	if err := s.enc.Begin(s.out, f); err != nil {
		s.cfg.unlock()
		return err
	}

	s.state = StateWriting
	s.logger.Debug("sink writing", "format", f, "chunk", s.OptimalBufferSize())

	return nil
}

func (s *Sink) effectiveFormat() Format {
	requested := s.cfg.Format()
	if r, ok := s.enc.(FormatReporter); ok {
		if f := r.EffectiveFormat(requested); !f.IsZero() {
			return f
		}
	}

	return requested
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser wraps w so a Sink can own it without closing it.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
