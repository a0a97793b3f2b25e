// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// FormatTag identifies the sample encoding declared by the fmt chunk.
type FormatTag uint16

// Recognised format tags. Any other code is rejected by ParseFormatTag.
const (
	FormatPCM        FormatTag = 0x0001
	FormatIEEEFloat  FormatTag = 0x0003
	FormatALaw       FormatTag = 0x0006
	FormatMuLaw      FormatTag = 0x0007
	FormatExtensible FormatTag = 0xFFFE
)

// ParseFormatTag maps a raw 16-bit code to a FormatTag.
func ParseFormatTag(code uint16) (FormatTag, error) {
	tag := FormatTag(code)
	if !tag.Valid() {
		return 0, fmt.Errorf("%w: unknown format tag 0x%04X", ErrInvalidFormat, code)
	}

	return tag, nil
}

// Valid reports whether t is one of the recognised format tags.
func (t FormatTag) Valid() bool {
	switch t {
	case FormatPCM, FormatIEEEFloat, FormatALaw, FormatMuLaw, FormatExtensible:
		return true
	default:
		return false
	}
}

func (t FormatTag) String() string {
	switch t {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE_FLOAT"
	case FormatALaw:
		return "A_LAW"
	case FormatMuLaw:
		return "MU_LAW"
	case FormatExtensible:
		return "EXTENSIBLE"
	default:
		return fmt.Sprintf("FormatTag(0x%04X)", uint16(t))
	}
}

// Format holds the fmt chunk fields of a decoded file. The bit depth is not
// stored here; it is implied by the SampleBuffer variant.
type Format struct {
	Tag            FormatTag
	Channels       uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
}

// FormatParameters is the fmt chunk exactly as read from the stream.
type FormatParameters struct {
	Format
	BitsPerSample uint16
}

func readFormatTag(r io.Reader) (FormatTag, error) {
	code, err := readUint16LE(r)
	if err != nil {
		return 0, err
	}

	return ParseFormatTag(code)
}

// readFormatChunk reads the 16 byte fmt chunk body. Values are not range
// checked; a zero channel count is left for the deinterleaver to reject.
func readFormatChunk(r io.Reader) (FormatParameters, error) {
	var (
		p   FormatParameters
		err error
	)

	if p.Tag, err = readFormatTag(r); err != nil {
		return FormatParameters{}, err
	}

	if p.Channels, err = readUint16LE(r); err != nil {
		return FormatParameters{}, err
	}

	if p.SampleRate, err = readUint32LE(r); err != nil {
		return FormatParameters{}, err
	}

	if p.AvgBytesPerSec, err = readUint32LE(r); err != nil {
		return FormatParameters{}, err
	}

	if p.BlockAlign, err = readUint16LE(r); err != nil {
		return FormatParameters{}, err
	}

	if p.BitsPerSample, err = readUint16LE(r); err != nil {
		return FormatParameters{}, err
	}

	return p, nil
}
