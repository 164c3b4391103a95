package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	logview "github.com/luftkode/logviewer/lib"
	"github.com/luftkode/logviewer/lib/plot"
)

const plotUsage = `Usage: logviewer plot [options] [<file>...]

Outputs an HTML time series plot of log samples over time. Series with
enough samples are rendered as min/max envelope lines picked from their
mipmap pyramid, so spikes stay visible at any zoom level.

Arguments:
  <file>  A file with log samples encoded with one of
          the supported encodings (gob | json | csv) [default: stdin]

Options:
  --title      Title and header of the resulting HTML page.
               [default: Logviewer Plot]
  --mipmap     Level of detail selection: auto, disabled, or a
               level number to force. [default: auto]
  --width      Plot width in pixels assumed for auto level
               selection. [default: 1280]
  --threshold  Threshold of data points above which rendered lines
               are downsampled with LTTB. 0 disables. [default: 4000]
  --output     Output file. [default: stdout]

Examples:
  motor-decoder dump pid.bin > samples.bin
  cat samples.bin | logviewer plot > plot.html
  logviewer plot -mipmap=disabled samples.bin samples2.bin > plot.html
`

func plotCmd() command {
	fs := flag.NewFlagSet("logviewer plot", flag.ExitOnError)
	title := fs.String("title", "Logviewer Plot", "Title and header of the resulting HTML page")
	threshold := fs.Int("threshold", 4000, "Threshold of data points above which lines are downsampled. 0 disables")
	width := fs.Int("width", 1280, "Plot width in pixels assumed for auto level selection")
	output := fs.String("output", "stdout", "Output file")

	mipmap := logview.MipMapConfig{Mode: logview.ModeAuto}
	fs.Var(&mipmapFlag{cfg: &mipmap}, "mipmap", "Level of detail selection [auto, disabled, <level>]")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, plotUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return plotRun(files, mipmap, *threshold, *width, *title, *output)
	}}
}

func plotRun(files []string, mipmap logview.MipMapConfig, threshold, width int, title, output string) error {
	dec, mc, err := decoder(files)
	defer mc.Close()
	if err != nil {
		return err
	}

	out, err := file(output, true)
	if err != nil {
		return err
	}
	defer out.Close()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	p := plot.New(
		plot.Title(title),
		plot.Downsample(threshold),
		plot.Width(width),
		plot.MipMap(mipmap),
	)

decode:
	for {
		select {
		case <-sigch:
			break decode
		default:
			var r logview.Record
			if err = dec.Decode(&r); err != nil {
				if err == io.EOF {
					break decode
				}
				return err
			}

			p.Add(&r)
		}
	}

	p.Close()

	_, err = p.WriteTo(out)
	return err
}
