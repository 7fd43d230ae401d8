// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding reports a format tag or bit depth the decoder
	// cannot read, such as compressed or extensible WAV.
	ErrUnsupportedEncoding = errors.New("unsupported WAV encoding")

	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
