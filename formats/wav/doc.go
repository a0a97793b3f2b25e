// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into format metadata and
// per-channel sample slices.
//
// # Layout
//
// The decoder expects the chunks in a fixed order, with nothing in between:
//
//	"RIFF" <u32 size> "WAVE"
//	"fmt " <u32 size> <tag u16> <channels u16> <rate u32> <byte rate u32> <block align u16> <bits u16>
//	"data" <samples ... to end of input>
//
// All integers are little endian. The declared RIFF and fmt sizes are read
// and reported on the WaveFile but never used to delimit anything: the data
// chunk always extends to the end of the stream, so trailing chunks after
// "data" are read as samples. Canonical files also store a u32 size after
// "data"; set Decoder.ReadDataSize to consume it.
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	file, err := wav.Decoder{ReadDataSize: true}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	switch s := file.Samples.(type) {
//	case wav.BytePerSample:
//	    // s[ch] is []int8
//	case wav.WordPerSample:
//	    // s[ch] is []uint16
//	}
//
// Only 8-bit and 16-bit samples are supported. 8-bit bytes are reinterpreted
// as signed values; 16-bit samples are kept as the raw little endian words.
//
// # Errors
//
// Every failure wraps one of four sentinels, to be tested with errors.Is:
//   - ErrTruncatedInput: the stream ended before a header field was complete
//   - ErrInvalidFormat: a chunk id or the format tag did not match
//   - ErrUnsupportedBitDepth: bits per sample is neither 8 nor 16
//   - ErrIncompleteData: the sample data does not end on a frame boundary
//
// The first error aborts the decode; no partial WaveFile is returned.
//
// # Interop
//
// WaveFile.Source exposes the samples through the audio.Source interface as
// normalised float32 frames, and WaveFile.IntBuffer converts them into a
// github.com/go-audio/audio IntBuffer.
package wav
