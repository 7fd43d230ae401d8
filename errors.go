// SPDX-License-Identifier: EPL-2.0

package pcmsink

import "errors"

// ErrFormatMismatch is returned by Stream when the source rate or channel
// count differs from the sink format. Conform the source first.
var ErrFormatMismatch = errors.New("source does not match sink format")
