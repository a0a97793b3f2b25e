// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/internal/audiotest"
)

func decodeOrFatal(t *testing.T, data []byte) *WaveFile {
	t.Helper()

	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	return file
}

func TestSource_Interleaves16bit(t *testing.T) {
	t.Parallel()

	file := decodeOrFatal(t, audiotest.WAVE(audiotest.PCMHeader(2, 22050, 16),
		audiotest.PCM16(16384, -16384, 0, -32768, 8192, 32767)))

	src := file.Source()
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("SampleRate() = %d, Channels() = %d", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 4)

	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}

	if want := []float32{0.5, -0.5, 0, -1}; !reflect.DeepEqual(buf[:n], want) {
		t.Errorf("ReadSamples() = %v, want %v", buf[:n], want)
	}

	n, err = src.ReadSamples(buf)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}

	if buf[0] != 0.25 || buf[1] != 32767.0/32768.0 {
		t.Errorf("ReadSamples() = %v", buf[:n])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_8bit(t *testing.T) {
	t.Parallel()

	file := decodeOrFatal(t, audiotest.WAVE(audiotest.PCMHeader(1, 8000, 8), []byte{0x40, 0xC0, 0x80}))

	buf := make([]float32, 8)

	n, err := file.Source().ReadSamples(buf)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() = %d, %v; want 3, nil", n, err)
	}

	if want := []float32{0.5, -0.5, -1}; !reflect.DeepEqual(buf[:n], want) {
		t.Errorf("ReadSamples() = %v, want %v", buf[:n], want)
	}
}

func TestSource_RejectsPartialFrames(t *testing.T) {
	t.Parallel()

	file := decodeOrFatal(t, audiotest.WAVE(audiotest.PCMHeader(2, 8000, 8), []byte{1, 2, 3, 4}))

	_, err := file.Source().ReadSamples(make([]float32, 3))
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_IsIndependent(t *testing.T) {
	t.Parallel()

	file := decodeOrFatal(t, audiotest.WAVE(audiotest.PCMHeader(1, 8000, 8), []byte{1, 2}))

	first := file.Source()
	if _, err := first.ReadSamples(make([]float32, 2)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	n, err := file.Source().ReadSamples(make([]float32, 2))
	if n != 2 || err != nil {
		t.Errorf("second Source ReadSamples() = %d, %v; want 2, nil", n, err)
	}
}

func TestWaveFile_IntBuffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want []int
		bits int
	}{
		{
			name: "8-bit keeps byte values",
			data: audiotest.WAVE(audiotest.PCMHeader(2, 8000, 8), []byte{0x00, 0xFF, 0x80, 0x7F}),
			want: []int{0, 255, 128, 127},
			bits: 8,
		},
		{
			name: "16-bit is signed",
			data: audiotest.WAVE(audiotest.PCMHeader(2, 8000, 16), audiotest.PCM16(-1, 2, 300, -32768)),
			want: []int{-1, 2, 300, -32768},
			bits: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := decodeOrFatal(t, tt.data).IntBuffer()

			if !reflect.DeepEqual(buf.Data, tt.want) {
				t.Errorf("Data = %v, want %v", buf.Data, tt.want)
			}

			if buf.SourceBitDepth != tt.bits {
				t.Errorf("SourceBitDepth = %d, want %d", buf.SourceBitDepth, tt.bits)
			}

			if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 8000 {
				t.Errorf("Format = %+v", buf.Format)
			}
		})
	}
}
