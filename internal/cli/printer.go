// SPDX-License-Identifier: EPL-2.0

// Package cli renders decode results for the wavinfo command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/formats/wav"
	"github.com/ik5/riffwave/utils"
)

// Printer writes styled reports to out and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	o      styles
	e      styles
}

// NewPrinter creates a Printer. Styling is chosen per writer.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		o:      newStyles(out),
		e:      newStyles(errOut),
	}
}

// Version prints version information.
func (p *Printer) Version(version string) {
	fmt.Fprintln(p.out, p.o.title.Render("wavinfo"))
	fmt.Fprintf(p.out, "%s %s\n", p.o.key.Render("Version:"), p.o.value.Render(version))
}

// Error prints an error message.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.errOut, "%s %v\n", p.e.err.Render("Error:"), err)
}

// Warning prints a warning that does not stop processing.
func (p *Printer) Warning(message string) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.e.highlight.Render("Warning:"), message)
}

// Success prints a confirmation line.
func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", p.o.success.Render("✓"), message)
}

func (p *Printer) info(key, value string) {
	fmt.Fprintf(p.out, "  %s %s\n", p.o.key.Render(fmt.Sprintf("%-12s", key+":")), p.o.value.Render(value))
}

// WaveFile prints the format fields of file followed by the first preview
// samples of channel 0.
func (p *Printer) WaveFile(path string, file *wav.WaveFile, preview int) error {
	fmt.Fprintln(p.out, p.o.title.Render(path))

	f := file.Format
	p.info("Format", fmt.Sprintf("%s (0x%04X)", f.Tag, uint16(f.Tag)))
	p.info("Channels", fmt.Sprintf("%d", f.Channels))
	p.info("Sample rate", fmt.Sprintf("%d Hz", f.SampleRate))
	p.info("Byte rate", fmt.Sprintf("%d B/s", f.AvgBytesPerSec))
	p.info("Block align", fmt.Sprintf("%d", f.BlockAlign))
	p.info("Bit depth", fmt.Sprintf("%d", file.BitsPerSample()))
	p.info("Declared", fmt.Sprintf("RIFF %d, fmt %d, data %d", file.RIFFSize, file.FormatSize, file.DataSize))
	p.info("Frames", fmt.Sprintf("%d", file.Frames()))
	p.info("Duration", FormatDuration(file.Duration()))

	peak, err := Peak(file.Source())
	if err != nil {
		return err
	}

	p.info("Peak", FormatDBFS(peak))

	if preview > 0 {
		p.info("Preview", Preview(file.Samples, preview)+fmt.Sprintf(" %s", p.o.subtitle.Render("(channel 0)")))
	}

	return nil
}

// Preview renders up to n samples of the first channel.
func Preview(samples wav.SampleBuffer, n int) string {
	if samples.NumChannels() == 0 {
		return "[]"
	}

	var s string

	switch b := samples.(type) {
	case wav.BytePerSample:
		s = fmt.Sprint(b[0][:min(n, len(b[0]))])
	case wav.WordPerSample:
		s = fmt.Sprint(b[0][:min(n, len(b[0]))])
	}

	if samples.Frames() > n {
		s = strings.TrimSuffix(s, "]") + " ...]"
	}

	return s
}

// Peak reads src to the end and returns the largest absolute sample value.
func Peak(src audio.Source) (float32, error) {
	defer src.Close()

	channels := src.Channels()
	if channels == 0 {
		return 0, nil
	}

	size := max(src.BufSize()/channels, 1) * channels
	buf := make([]float32, size)

	var peak float32
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			peak = max(peak, v, -v)
		}

		if errors.Is(err, io.EOF) {
			return peak, nil
		}

		if err != nil {
			return peak, fmt.Errorf("%w", err)
		}
	}
}

// FormatDBFS formats a linear peak amplitude as dBFS.
func FormatDBFS(peak float32) string {
	if peak <= 0 {
		return "-inf dBFS"
	}

	return fmt.Sprintf("%.1f dBFS", utils.AmplitudeToDBFS(peak))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}

	return fmt.Sprintf("%.1fs", d.Seconds())
}
