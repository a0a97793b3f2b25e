// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"
	"time"

	"github.com/go-audio/riff"
)

// WaveFile is the result of a successful decode.
type WaveFile struct {
	Format  Format
	Samples SampleBuffer

	// Declared sizes as found in the stream. They are never used to
	// delimit chunks; the data chunk always runs to the end of input.
	RIFFSize   uint32
	FormatSize uint32
	// DataSize is only populated when decoding with ReadDataSize.
	DataSize uint32
}

// BitsPerSample returns 8 or 16, as selected by the sample buffer variant.
func (w *WaveFile) BitsPerSample() int { return w.Samples.BitsPerSample() }

// Frames returns the number of samples in each channel.
func (w *WaveFile) Frames() int { return w.Samples.Frames() }

// Duration is the playing time implied by the frame count and sample rate.
func (w *WaveFile) Duration() time.Duration {
	if w.Format.SampleRate == 0 {
		return 0
	}

	return time.Duration(w.Frames()) * time.Second / time.Duration(w.Format.SampleRate)
}

// Decoder decodes a RIFF/WAVE stream laid out as RIFF, WAVE, "fmt " and
// "data", in that order, with no other chunks in between.
type Decoder struct {
	// ReadDataSize consumes the u32 size canonical files store right after
	// the data chunk id. Without it every byte after the id is sample data.
	ReadDataSize bool
}

// Decode reads the whole stream and returns the decoded file, or the first
// error encountered. No partial result is ever returned.
func (d Decoder) Decode(r io.Reader) (*WaveFile, error) {
	if err := expectID(r, riff.RiffID); err != nil {
		return nil, err
	}

	riffSize, err := readUint32LE(r)
	if err != nil {
		return nil, err
	}

	if err := expectID(r, riff.WavFormatID); err != nil {
		return nil, err
	}

	if err := expectID(r, riff.FmtID); err != nil {
		return nil, err
	}

	fmtSize, err := readUint32LE(r)
	if err != nil {
		return nil, err
	}

	params, err := readFormatChunk(r)
	if err != nil {
		return nil, err
	}

	if err := expectID(r, riff.DataFormatID); err != nil {
		return nil, err
	}

	var dataSize uint32
	if d.ReadDataSize {
		if dataSize, err = readUint32LE(r); err != nil {
			return nil, err
		}
	}

	samples, err := Deinterleave(r, params.Channels, params.BitsPerSample)
	if err != nil {
		return nil, err
	}

	return &WaveFile{
		Format:     params.Format,
		Samples:    samples,
		RIFFSize:   riffSize,
		FormatSize: fmtSize,
		DataSize:   dataSize,
	}, nil
}

// Decode decodes r with a zero value Decoder.
func Decode(r io.Reader) (*WaveFile, error) {
	return Decoder{}.Decode(r)
}
