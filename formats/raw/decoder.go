// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"io"

	"github.com/ik5/pcmsink/audio"
	"github.com/ik5/pcmsink/internal/pcmsource"
)

// Decoder reads headerless samples laid out as Format. A zero Format means
// the default sink configuration.
type Decoder struct {
	Format audio.Format
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	f := d.Format
	if f.IsZero() {
		f = audio.DefaultConfig().Format()
	}

	return pcmsource.New(r, f), nil
}
