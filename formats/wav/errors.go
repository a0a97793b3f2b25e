// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrTruncatedInput indicates the stream ended (or failed) before a field was complete.
	ErrTruncatedInput = errors.New("truncated WAVE input")

	// ErrInvalidFormat indicates a chunk id or format tag that does not belong in a WAVE file.
	ErrInvalidFormat = errors.New("invalid WAVE format")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8 or 16.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")

	// ErrIncompleteData indicates sample data that does not end on a frame boundary.
	ErrIncompleteData = errors.New("incomplete sample data")
)
