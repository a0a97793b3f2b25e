// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAVE byte streams for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Header describes the fmt chunk of a generated stream.
type Header struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16

	// DataSize writes the u32 payload length after the "data" id, as
	// canonical files do.
	DataSize bool
}

// PCMHeader returns a PCM header with byte rate and block align left to WAVE.
func PCMHeader(channels uint16, sampleRate uint32, bitsPerSample uint16) Header {
	return Header{
		FormatTag:     1,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}
}

// WAVE returns "RIFF", "WAVE", a 16 byte fmt chunk and a data chunk holding payload.
func WAVE(h Header, payload []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := h.Channels * (h.BitsPerSample / 8)
	byteRate := h.SampleRate * uint32(blockAlign)

	riffSize := uint32(4 + 8 + 16 + 4 + len(payload))
	if h.DataSize {
		riffSize += 4
	}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, h.FormatTag)
	binary.Write(buf, binary.LittleEndian, h.Channels)
	binary.Write(buf, binary.LittleEndian, h.SampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, h.BitsPerSample)

	buf.WriteString("data")
	if h.DataSize {
		binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	}

	buf.Write(payload)

	return buf.Bytes()
}

// PCM16 encodes samples as little endian 16-bit words.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 0, 2*len(samples))
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}

	return out
}

// CountingReader records how many bytes were read through it.
type CountingReader struct {
	R io.Reader
	N int
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += n

	return n, err
}
