// SPDX-License-Identifier: EPL-2.0

package riffwave

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ik5/riffwave/formats/wav"
)

// DecodeFile opens path and decodes it with dec.
//
// A file that cannot be opened is reported as wav.ErrTruncatedInput, the
// same as a stream that ends early. The file is closed before returning.
//
// Example:
//
//	file, err := riffwave.DecodeFile("audio.wav", wav.Decoder{ReadDataSize: true})
//	if errors.Is(err, wav.ErrInvalidFormat) {
//	    // not a WAVE file
//	}
func DecodeFile(path string, dec wav.Decoder) (*wav.WaveFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wav.ErrTruncatedInput, err)
	}
	defer f.Close()

	return dec.Decode(bufio.NewReader(f))
}
