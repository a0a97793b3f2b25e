// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
)

// SampleBuffer holds deinterleaved samples, one slice per channel.
// It is implemented only by BytePerSample and WordPerSample; consumers
// are expected to type switch over both.
type SampleBuffer interface {
	// NumChannels is the number of channel slices.
	NumChannels() int
	// Frames is the number of samples in each channel.
	Frames() int
	// BitsPerSample is 8 or 16, depending on the variant.
	BitsPerSample() int

	sampleBuffer()
}

// BytePerSample carries 8-bit samples reinterpreted as signed values.
type BytePerSample [][]int8

// WordPerSample carries 16-bit little endian words as read from the stream.
type WordPerSample [][]uint16

func (b BytePerSample) NumChannels() int   { return len(b) }
func (b BytePerSample) Frames() int        { return frames(b) }
func (b BytePerSample) BitsPerSample() int { return 8 }
func (BytePerSample) sampleBuffer()        {}

func (w WordPerSample) NumChannels() int   { return len(w) }
func (w WordPerSample) Frames() int        { return frames(w) }
func (w WordPerSample) BitsPerSample() int { return 16 }
func (WordPerSample) sampleBuffer()        {}

func frames[T int8 | uint16](chans [][]T) int {
	if len(chans) == 0 {
		return 0
	}

	return len(chans[0])
}

func balanced[T int8 | uint16](chans [][]T) bool {
	for _, ch := range chans {
		if len(ch) != frames(chans) {
			return false
		}
	}

	return true
}

// Deinterleave reads r to the end and splits the interleaved payload into
// one sequence per channel. Only 8 and 16 bits per sample are supported;
// the bit depth is checked before anything is read from r.
func Deinterleave(r io.Reader, channels, bitsPerSample uint16) (SampleBuffer, error) {
	if bitsPerSample != 8 && bitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedBitDepth, bitsPerSample)
	}

	if channels == 0 {
		return nil, fmt.Errorf("%w: no channels to deinterleave into", ErrIncompleteData)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sample data: %w", ErrTruncatedInput, err)
	}

	if bitsPerSample == 8 {
		b, err := deinterleaveBytes(payload, int(channels))
		if err != nil {
			return nil, err
		}

		return b, nil
	}

	w, err := deinterleaveWords(payload, int(channels))
	if err != nil {
		return nil, err
	}

	return w, nil
}

func deinterleaveBytes(payload []byte, channels int) (BytePerSample, error) {
	out := make(BytePerSample, channels)
	for ch := range out {
		out[ch] = make([]int8, 0, len(payload)/channels)
	}

	cursor := 0
	for _, b := range payload {
		out[cursor] = append(out[cursor], int8(b))
		cursor = (cursor + 1) % channels
	}

	if cursor != 0 {
		return nil, fmt.Errorf("%w: %d bytes do not fill %d-channel frames",
			ErrIncompleteData, len(payload), channels)
	}

	if !balanced(out) {
		return nil, fmt.Errorf("%w: channel lengths differ", ErrIncompleteData)
	}

	return out, nil
}

func deinterleaveWords(payload []byte, channels int) (WordPerSample, error) {
	out := make(WordPerSample, channels)
	for ch := range out {
		out[ch] = make([]uint16, 0, len(payload)/(2*channels))
	}

	var (
		cursor  int
		low     byte
		pending bool
	)

	for _, b := range payload {
		if !pending {
			low, pending = b, true
			continue
		}

		out[cursor] = append(out[cursor], uint16(low)|uint16(b)<<8)
		pending = false
		cursor = (cursor + 1) % channels
	}

	if cursor != 0 || pending {
		return nil, fmt.Errorf("%w: %d bytes do not fill %d-channel 16-bit frames",
			ErrIncompleteData, len(payload), channels)
	}

	if !balanced(out) {
		return nil, fmt.Errorf("%w: channel lengths differ", ErrIncompleteData)
	}

	return out, nil
}
