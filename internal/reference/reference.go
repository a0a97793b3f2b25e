// SPDX-License-Identifier: EPL-2.0

// Package reference cross-checks decoded files against github.com/go-audio/wav.
package reference

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/riffwave/formats/wav"
)

var (
	// ErrMismatch indicates that the two decoders produced different results.
	ErrMismatch = errors.New("decode differs from go-audio/wav")
)

// Decode reads every sample in r with the go-audio/wav decoder.
func Decode(r io.ReadSeeker) (*goaudio.IntBuffer, error) {
	buf, err := gowav.NewDecoder(r).FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("go-audio/wav: %w", err)
	}

	return buf, nil
}

// Compare reports the first difference between file and ref.
func Compare(file *wav.WaveFile, ref *goaudio.IntBuffer) error {
	got := file.IntBuffer()

	if ref.Format == nil {
		return fmt.Errorf("%w: reference has no format", ErrMismatch)
	}

	if got.Format.NumChannels != ref.Format.NumChannels {
		return fmt.Errorf("%w: %d channels, reference has %d",
			ErrMismatch, got.Format.NumChannels, ref.Format.NumChannels)
	}

	if got.Format.SampleRate != ref.Format.SampleRate {
		return fmt.Errorf("%w: %d Hz, reference has %d Hz",
			ErrMismatch, got.Format.SampleRate, ref.Format.SampleRate)
	}

	if got.SourceBitDepth != ref.SourceBitDepth {
		return fmt.Errorf("%w: %d bits, reference has %d",
			ErrMismatch, got.SourceBitDepth, ref.SourceBitDepth)
	}

	for i := range min(len(got.Data), len(ref.Data)) {
		if got.Data[i] != ref.Data[i] {
			return fmt.Errorf("%w: sample %d is %d, reference has %d",
				ErrMismatch, i, got.Data[i], ref.Data[i])
		}
	}

	if len(got.Data) != len(ref.Data) {
		return fmt.Errorf("%w: %d samples, reference has %d",
			ErrMismatch, len(got.Data), len(ref.Data))
	}

	return nil
}

// VerifyFile decodes path with go-audio/wav and compares the result with file.
func VerifyFile(path string, file *wav.WaveFile) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	ref, err := Decode(f)
	if err != nil {
		return err
	}

	return Compare(file, ref)
}
