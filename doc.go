// SPDX-License-Identifier: EPL-2.0

// Package riffwave decodes RIFF/WAVE audio files into format metadata and
// one sample slice per channel.
//
// The decoder itself lives in formats/wav; this package adds file level
// helpers on top of it.
//
// # Quick Start
//
//	file, err := riffwave.DecodeFile("audio.wav", wav.Decoder{ReadDataSize: true})
//	if err != nil {
//	    // errors.Is(err, wav.ErrInvalidFormat), wav.ErrIncompleteData, ...
//	}
//
//	fmt.Println(file.Format.Tag, file.Format.Channels, file.Format.SampleRate)
//
// # Samples
//
// Samples are deinterleaved into a wav.SampleBuffer, which is one of two
// shapes selected by the bit depth:
//   - wav.BytePerSample ([][]int8) for 8-bit files
//   - wav.WordPerSample ([][]uint16) for 16-bit files
//
// Every channel holds the same number of samples. Other bit depths are
// rejected with wav.ErrUnsupportedBitDepth.
//
// # Audio Interop
//
// A decoded file can be consumed as normalised float32 frames through the
// audio.Source interface:
//
//	src := file.Source()
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// or converted to a github.com/go-audio/audio IntBuffer with IntBuffer.
//
// # Command Line
//
// cmd/wavinfo decodes every file given on the command line and prints a
// summary of each, continuing past files that fail to decode.
package riffwave
