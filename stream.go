package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	logview "github.com/luftkode/logviewer/lib"
	"github.com/luftkode/logviewer/lib/prom"
)

const streamUsage = `Usage: logviewer stream [options] [<file>...]

Continuously ingests log samples, growing each series' mipmap pyramid
incrementally as records arrive. Ingestion progress can be exposed as a
Prometheus metrics endpoint. On EOF or interrupt, a summary report of
everything ingested is written to the output.

Arguments:
  <file>  A file with log samples encoded with one of
          the supported encodings (gob | json | csv) [default: stdin]

Options:
  --type        Report type to generate at exit [text, json].
                [default: text]
  --output      Output file. [default: stdout]
  --prometheus  Prometheus exposition bind URL, e.g.
                http://0.0.0.0:8880. Empty disables. [default: ]
  --max-buffer  Max bytes of samples to keep in memory, e.g. 512MB.
                Ingestion stops when reached. -1 means no limit.
                [default: -1]

Examples:
  motor-decoder follow pid.bin | logviewer stream -prometheus=http://0.0.0.0:8880
`

// rough in-memory footprint of one stored sample: a Point plus its share
// of the pyramid levels above it.
const bytesPerSample = 2 * 16

func streamCmd() command {
	fs := flag.NewFlagSet("logviewer stream", flag.ExitOnError)
	typ := fs.String("type", "text", "Report type to generate at exit [text, json]")
	output := fs.String("output", "stdout", "Output file")
	promURL := fs.String("prometheus", "", "Prometheus exposition bind URL. Empty disables")

	maxBuffer := int64(-1)
	fs.Var(&maxBufFlag{n: &maxBuffer}, "max-buffer", "Max bytes of samples to keep in memory. -1 means no limit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, streamUsage)
	}

	return command{fs, func(args []string) error {
		fs.Parse(args)
		files := fs.Args()
		if len(files) == 0 {
			files = append(files, "stdin")
		}
		return stream(files, *typ, *output, *promURL, maxBuffer)
	}}
}

func stream(files []string, typ, output, promURL string, maxBuffer int64) error {
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

	var pm *prom.Metrics
	if promURL != "" {
		if pm, err = prom.NewMetricsWithParams(promURL); err != nil {
			return err
		}
		defer pm.Close()
	}

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	pd := logview.NewPlotData()

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

			pd.Add(r)

			if pm != nil {
				pm.Observe(&r)
				if s := pd.Lookup(r.LogID, r.Series); s != nil {
					pm.Update(s)
				}
			}

			if maxBuffer >= 0 && int64(pd.Samples())*bytesPerSample > maxBuffer {
				log.Printf("stream: max-buffer of %d bytes reached, stopping ingestion", maxBuffer)
				break decode
			}
		}
	}

	b, err := rep(pd.Series())
	if err != nil {
		return err
	}

	_, err = out.Write(b)
	return err
}
