// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/pcmsink/audio"
)

// streamingSize marks RIFF and data sizes that are unknown while streaming.
const streamingSize = math.MaxUint32

// headerSize returns the size of the RIFF, fmt and data chunk headers for f.
// Float formats carry the 2 byte cbSize extension in their fmt chunk.
func headerSize(f audio.Format) int {
	if f.IsFloat() {
		return 46
	}
	return 44
}

// writeHeader writes the canonical header for f with the given payload size.
func writeHeader(w io.Writer, f audio.Format, dataSize uint32) error {
	size := headerSize(f)
	fmtSize := uint32(16)
	if f.IsFloat() {
		fmtSize = 18
	}

	riffSize := uint32(streamingSize)
	if dataSize != streamingSize {
		riffSize = uint32(size-8) + dataSize + dataSize%2
	}

	header := make([]byte, size)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtSize)
	binary.LittleEndian.PutUint16(header[20:22], uint16(f.Tag()))
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels()))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate()))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.AvgBytesPerSec()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample()))

	off := 36
	if f.IsFloat() {
		binary.LittleEndian.PutUint16(header[36:38], uint16(f.ExtraSize()))
		off = 38
	}

	// data chunk header (8 bytes)
	copy(header[off:off+4], "data")
	binary.LittleEndian.PutUint32(header[off+4:off+8], dataSize)

	_, err := w.Write(header)
	return err
}

// patchSizes rewrites the RIFF and data sizes of a header that starts at
// start, then returns to the end of the stream.
func patchSizes(ws io.WriteSeeker, start int64, f audio.Format, dataSize int64) error {
	riffSize, chunkSize := uint32(streamingSize), uint32(streamingSize)
	if total := int64(headerSize(f)-8) + dataSize + dataSize%2; total < streamingSize {
		riffSize, chunkSize = uint32(total), uint32(dataSize)
	}

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], riffSize)
	if _, err := ws.Seek(start+4, io.SeekStart); err != nil {
		return err
	}
	if _, err := ws.Write(b[:]); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(b[:], chunkSize)
	if _, err := ws.Seek(start+int64(headerSize(f))-4, io.SeekStart); err != nil {
		return err
	}
	if _, err := ws.Write(b[:]); err != nil {
		return err
	}

	_, err := ws.Seek(0, io.SeekEnd)
	return err
}
