// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/internal/pcmsource"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// newSource reads the decoder output: go-mp3 always produces 16-bit
// little-endian stereo.
func newSource(dec mp3Reader) (audio.Source, error) {
	f, err := audio.NewFormat(dec.SampleRate(), 16, 2)
	if err != nil {
		return nil, err
	}

	return pcmsource.New(dec, f), nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}
