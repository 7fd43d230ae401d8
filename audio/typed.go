// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math/big"
)

// Every typed entry point a general binary writer offers fails with
// ErrUnsupportedOperation, in any state.

// WriteTyped rejects a scalar write and names the operation it maps to.
func (s *Sink) WriteTyped(v any) error {
	return &UnsupportedOperationError{Op: typedOp(v)}
}

// WriteByte rejects single byte writes (io.ByteWriter).
func (s *Sink) WriteByte(byte) error {
	return &UnsupportedOperationError{Op: "WriteByte"}
}

// WriteRune rejects character writes (bufio-style rune writer).
func (s *Sink) WriteRune(rune) (int, error) {
	return 0, &UnsupportedOperationError{Op: "WriteChar"}
}

// WriteString rejects string writes (io.StringWriter).
func (s *Sink) WriteString(string) (int, error) {
	return 0, &UnsupportedOperationError{Op: "WriteString"}
}

func typedOp(v any) string {
	switch v.(type) {
	case int8:
		return "WriteInt8"
	case uint8:
		return "WriteUint8"
	case int16:
		return "WriteInt16"
	case uint16:
		return "WriteUint16"
	case int32:
		// rune is an alias of int32 and lands here too
		return "WriteInt32"
	case uint32:
		return "WriteUint32"
	case int64, int:
		return "WriteInt64"
	case uint64, uint:
		return "WriteUint64"
	case float32:
		return "WriteFloat32"
	case float64:
		return "WriteFloat64"
	case bool:
		return "WriteBool"
	case []rune:
		return "WriteChars"
	case *big.Float, *big.Rat:
		return "WriteDecimal"
	case string:
		return "WriteString"
	default:
		return fmt.Sprintf("WriteTyped(%T)", v)
	}
}
