package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logview "github.com/luftkode/logviewer/lib"
)

const (
	encodingCSV  = "csv"
	encodingGob  = "gob"
	encodingJSON = "json"
)

type decoderFunc func(io.Reader) logview.Decoder
type encoderFunc func(io.Writer) logview.Encoder

func encodeCmd() command {
	var (
		fs     = flag.NewFlagSet("logviewer encode", flag.ExitOnError)
		from   = fs.String("from", "gob", "Input decoding [csv, gob, json]")
		to     = fs.String("to", "json", "Output encoding [csv, gob, json]")
		output = fs.String("output", "", "Output file")
	)

	fs.Usage = func() {
		fmt.Println("Usage: logviewer encode [flags] [<file>...]")
		fs.PrintDefaults()
	}

	return command{
		fs,
		func(args []string) error {
			fs.Parse(args)
			return encode(*from, *to, *output, fs.Args()...)
		},
	}
}

func encode(from, to, output string, inputs ...string) error {
	var decFn decoderFunc

	switch from {
	case encodingCSV:
		decFn = logview.NewCSVDecoder
	case encodingJSON:
		decFn = logview.NewJSONDecoder
	default:
		// Gob is our default decode format to play nicely in pipes with
		// upstream decoders.
		decFn = logview.NewDecoder
	}

	decs := []logview.Decoder{}

	if len(inputs) > 0 {
		for _, name := range inputs {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			decs = append(decs, decFn(f))
		}
	} else {
		decs = append(decs, decFn(os.Stdin))
	}

	in := logview.NewRoundRobinDecoder(decs...)

	var encFn encoderFunc

	switch to {
	case encodingCSV:
		encFn = logview.NewCSVEncoder
	case encodingGob:
		encFn = logview.NewEncoder
	default:
		// JSON is our default encoding format to play nicely in pipes with
		// auxiliary tools like jq.
		encFn = logview.NewJSONEncoder
	}

	var out logview.Encoder

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()

		out = encFn(f)
	} else {
		out = encFn(os.Stdout)
	}

	for {
		var r logview.Record
		if err := in.Decode(&r); err != nil {
			if err == io.EOF {
				break
			}
			return err
		} else if err := out.Encode(&r); err != nil {
			return err
		}
	}

	return nil
}
