// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidFormat reports a malformed sample rate, bit depth or channel count.
	ErrInvalidFormat = errors.New("invalid sample format")

	// ErrInvalidArgument reports a malformed buffer slice or a missing collaborator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState reports an operation on a closed sink, or a format
	// change after the sink started writing.
	ErrInvalidState = errors.New("invalid sink state")

	// ErrUnsupportedOperation is matched by every scalar write rejection.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrChannelMapping reports a channel layout change the mixer cannot perform.
	ErrChannelMapping = errors.New("unsupported channel mapping")

	// ErrNotSeekable reports an encoder that needs to rewrite its header but
	// was handed a stream without io.Seeker.
	ErrNotSeekable = errors.New("output stream is not seekable")
)

// UnsupportedOperationError names the rejected write entry point.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s, sinks accept raw sample buffers only", ErrUnsupportedOperation, e.Op)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}
