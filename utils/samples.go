// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// Clamp limits x to the normalised sample range [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// FloatToPCM converts a normalised sample to a signed integer of the given
// bit depth (8 to 32 bits).
func FloatToPCM(x float32, bits int) int {
	peak := float64(int64(1)<<(bits-1) - 1)
	return int(math.Round(float64(Clamp(x)) * peak))
}

// PCMToFloat converts a signed integer sample of the given bit depth to the
// normalised range.
func PCMToFloat(v int, bits int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bits-1)))
}

// PackSamples encodes src into dst as interleaved little-endian samples.
// 8-bit PCM is written unsigned (offset binary), wider PCM signed, float as
// IEEE 754. It returns the number of bytes written; dst must hold
// len(src)*bits/8 bytes.
func PackSamples(dst []byte, src []float32, bits int, float bool) int {
	width := bits / 8
	for i, x := range src {
		b := dst[i*width : i*width+width]
		if float {
			if bits == 64 {
				binary.LittleEndian.PutUint64(b, math.Float64bits(float64(x)))
			} else {
				binary.LittleEndian.PutUint32(b, math.Float32bits(x))
			}
			continue
		}
		putInt(b, FloatToPCM(x, min(bits, 32)), bits)
	}

	return len(src) * width
}

// UnpackSamples decodes little-endian samples from src into dst as
// normalised float32 values. Trailing bytes that do not form a whole sample
// are ignored. It returns the number of samples decoded.
func UnpackSamples(dst []float32, src []byte, bits int, float bool) int {
	width := bits / 8
	n := min(len(dst), len(src)/width)
	for i := range n {
		b := src[i*width : i*width+width]
		if float {
			if bits == 64 {
				dst[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
			} else {
				dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(b))
			}
			continue
		}
		dst[i] = PCMToFloat(getInt(b, bits), min(bits, 32))
	}

	return n
}

// UnpackInts decodes little-endian PCM from src into signed integers
// centred on zero (8-bit input is treated as unsigned). It returns the number
// of samples decoded.
func UnpackInts(dst []int, src []byte, bits int) int {
	width := bits / 8
	n := min(len(dst), len(src)/width)
	for i := range n {
		dst[i] = getInt(src[i*width:i*width+width], bits)
	}

	return n
}

func putInt(b []byte, v int, bits int) {
	switch bits {
	case 8:
		b[0] = byte(v + 128)
	case 16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case 24:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case 32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	default:
		// wider containers keep the 32-bit value in the top bytes
		clear(b)
		binary.LittleEndian.PutUint32(b[len(b)-4:], uint32(int32(v)))
	}
}

func getInt(b []byte, bits int) int {
	switch bits {
	case 8:
		return int(b[0]) - 128
	case 16:
		return int(int16(binary.LittleEndian.Uint16(b)))
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return int(v)
	case 32:
		return int(int32(binary.LittleEndian.Uint32(b)))
	default:
		return int(int32(binary.LittleEndian.Uint32(b[len(b)-4:])))
	}
}
