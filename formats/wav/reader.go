// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// readUint16LE reads exactly two bytes and decodes them least significant byte first.
func readUint16LE(r io.Reader) (uint16, error) {
	var b [2]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: reading u16: %w", ErrTruncatedInput, err)
	}

	return binary.LittleEndian.Uint16(b[:]), nil
}

// readUint32LE reads exactly four bytes and decodes them least significant byte first.
func readUint32LE(r io.Reader) (uint32, error) {
	var b [4]byte

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: reading u32: %w", ErrTruncatedInput, err)
	}

	return binary.LittleEndian.Uint32(b[:]), nil
}

// expectID consumes a 4 byte chunk id and fails unless it equals id.
// A short read counts as a mismatch.
func expectID(r io.Reader, id [4]byte) error {
	var b [4]byte

	n, err := io.ReadFull(r, b[:])
	if err != nil || !bytes.Equal(b[:], id[:]) {
		return fmt.Errorf("%w: expected chunk id %q, found %q", ErrInvalidFormat, id[:], b[:n])
	}

	return nil
}
