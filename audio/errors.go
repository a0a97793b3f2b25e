// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize indicates a destination that cannot hold whole frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
