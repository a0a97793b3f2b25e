// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/utils"
)

type waveSource struct {
	samples    SampleBuffer
	sampleRate int
	pos        int // frames already read
}

// Source returns a fresh audio.Source that replays the decoded samples
// as interleaved float32 frames.
func (w *WaveFile) Source() audio.Source {
	return &waveSource{
		samples:    w.Samples,
		sampleRate: int(w.Format.SampleRate),
	}
}

func (s *waveSource) SampleRate() int { return s.sampleRate }
func (s *waveSource) Channels() int   { return s.samples.NumChannels() }
func (s *waveSource) BufSize() int    { return 4096 }
func (s *waveSource) Close() error    { return nil }

func (s *waveSource) ReadSamples(dst []float32) (int, error) {
	channels := s.samples.NumChannels()
	if channels == 0 || len(dst)%channels != 0 {
		return 0, fmt.Errorf("%w: %d values for %d channels", audio.ErrInvalidDstSize, len(dst), channels)
	}

	remaining := s.samples.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	count := min(len(dst)/channels, remaining)

	switch b := s.samples.(type) {
	case BytePerSample:
		for f := range count {
			for ch := range channels {
				dst[f*channels+ch] = utils.Int8ToFloat32(b[ch][s.pos+f])
			}
		}
	case WordPerSample:
		for f := range count {
			for ch := range channels {
				dst[f*channels+ch] = utils.Word16ToFloat32(b[ch][s.pos+f])
			}
		}
	}

	s.pos += count

	return count * channels, nil
}

// IntBuffer interleaves the samples into a go-audio IntBuffer. Values follow
// go-audio's conventions: 8-bit samples are unsigned byte values, 16-bit
// samples are signed.
func (w *WaveFile) IntBuffer() *goaudio.IntBuffer {
	channels := w.Samples.NumChannels()
	data := make([]int, 0, channels*w.Frames())

	switch b := w.Samples.(type) {
	case BytePerSample:
		for f := range w.Frames() {
			for ch := range channels {
				data = append(data, int(uint8(b[ch][f])))
			}
		}
	case WordPerSample:
		for f := range w.Frames() {
			for ch := range channels {
				data = append(data, int(int16(b[ch][f])))
			}
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  int(w.Format.SampleRate),
		},
		Data:           data,
		SourceBitDepth: w.BitsPerSample(),
	}
}
