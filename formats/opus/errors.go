// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

// ErrTruncatedPacket is returned when a stream ends inside a packet.
var ErrTruncatedPacket = errors.New("opus stream ends inside a packet")
