// SPDX-License-Identifier: EPL-2.0

package audio

// Source is a pull based view of decoded audio.
type Source interface {
	// SampleRate in Hz.
	SampleRate() int
	// Channels per frame.
	Channels() int
	// ReadSamples copies whole frames into dst as interleaved float32 values
	// in [-1,1] and returns how many values (not frames) were written.
	// It returns 0, io.EOF once every frame has been read.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is a suggested length for dst.
	BufSize() int

	Close() error
}
