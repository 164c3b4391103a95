package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logview "github.com/luftkode/logviewer/lib"
)

const reportUsage = `Usage: logviewer report [options] [<file>...]

Outputs per-series summary statistics of log samples.

Arguments:
  <file>  A file with log samples encoded with one of
          the supported encodings (gob | json | csv) [default: stdin]

Options:
  --type    Report type to generate [text, json]. [default: text]
  --output  Output file. [default: stdout]
  --logs    Comma separated list of log ids to report on.
            Empty means all. [default: ]

Examples:
  logviewer report samples.bin
  cat samples.bin | logviewer report -type=json > metrics.json
  logviewer report -logs=mbed-log-v6,mbed-log-v2 samples.bin
`

func reportCmd() command {
	fs := flag.NewFlagSet("logviewer report", flag.ExitOnError)
	typ := fs.String("type", "text", "Report type to generate [text, json]")
	output := fs.String("output", "stdout", "Output file")

	var logs csl
	fs.Var(&logs, "logs", "Comma separated list of log ids to report on. Empty means all")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, reportUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return report(files, *typ, *output, logs)
	}}
}

func report(files []string, typ, output string, logs csl) error {
	var rep logview.Reporter
	switch typ {
	case "text":
		rep = logview.ReportText
	case "json":
		rep = logview.ReportJSON
	default:
		return fmt.Errorf("unsupported report type: %s", typ)
	}

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

	pd := logview.NewPlotData()
	for {
		var r logview.Record
		if err = dec.Decode(&r); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		pd.Add(r)
	}

	series := pd.Series()
	if len(logs) > 0 {
		keep := series[:0]
		for _, s := range series {
			for _, id := range logs {
				if s.LogID == id {
					keep = append(keep, s)
					break
				}
			}
		}
		series = keep
	}

	b, err := rep(series)
	if err != nil {
		return err
	}

	_, err = out.Write(b)
	return err
}
