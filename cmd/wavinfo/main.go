// SPDX-License-Identifier: EPL-2.0

// wavinfo decodes every WAVE file passed on the command line and prints
// its format and a preview of its samples.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ik5/riffwave"
	"github.com/ik5/riffwave/formats/wav"
	"github.com/ik5/riffwave/internal/cli"
	"github.com/ik5/riffwave/internal/reference"
)

// version is set via ldflags at build time
var version = "dev"

type options struct {
	Files    []string `arg:"" name:"file" help:"WAVE files to decode" optional:""`
	Preview  int      `help:"Number of channel 0 samples to print" default:"8" env:"WAVINFO_PREVIEW"`
	DataSize bool     `help:"Read the data chunk size that canonical files store after the data id" default:"true" negatable:""`
	Verify   bool     `help:"Cross-check every decode against go-audio/wav"`
	Version  bool     `help:"Show version information"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	p := cli.NewPrinter(stdout, stderr)

	parser, err := kong.New(&opts,
		kong.Name("wavinfo"),
		kong.Description("Decode RIFF/WAVE files and print their format and samples."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		p.Error(err)
		return 2
	}

	if _, err := parser.Parse(args); err != nil {
		p.Error(err)
		return 2
	}

	if opts.Version {
		p.Version(version)
		return 0
	}

	if opts.Verify && !opts.DataSize {
		p.Warning("--verify without --data-size compares the data size field as samples")
	}

	dec := wav.Decoder{ReadDataSize: opts.DataSize}

	failed := 0
	for _, path := range opts.Files {
		if err := inspect(p, dec, path, opts); err != nil {
			p.Error(fmt.Errorf("%s: %w", path, err))
			failed++
		}
	}

	if failed > 0 {
		return 1
	}

	return 0
}

func inspect(p *cli.Printer, dec wav.Decoder, path string, opts options) error {
	file, err := riffwave.DecodeFile(path, dec)
	if err != nil {
		return err
	}

	if err := p.WaveFile(path, file, opts.Preview); err != nil {
		return err
	}

	if !opts.Verify {
		return nil
	}

	if err := reference.VerifyFile(path, file); err != nil {
		return err
	}

	p.Success("matches go-audio/wav")

	return nil
}
