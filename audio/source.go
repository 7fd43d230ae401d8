// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Source is a stream of normalised, interleaved float32 samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns the
	// number of float32 values written (not frames). n == 0 with io.EOF ends
	// the stream.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "opus") to decoders or
// encoder factories. It is safe for concurrent use.
type Registry[T any] struct {
	entries map[string]T

	mtx *sync.RWMutex
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
		mtx:     &sync.RWMutex{},
	}
}

func (r *Registry[T]) Register(format string, v T) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.entries[format] = v
}

func (r *Registry[T]) Get(format string) (T, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	v, ok := r.entries[format]
	return v, ok
}

// Names returns the registered keys in sorted order.
func (r *Registry[T]) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
