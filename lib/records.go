package logview

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/gob"
	"io"
	"strconv"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

func init() {
	gob.Register(&Record{})
}

// A Record is one decoded sample from an upstream log decoder: a point of
// a named series within a source log. X is a timestamp in nanoseconds
// since the log's epoch. A non-empty Text marks a discrete annotation
// (e.g. a state change) instead of a plain sample.
type Record struct {
	LogID  string  `json:"log_id"`
	Series string  `json:"series"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Text   string  `json:"text,omitempty"`
}

// Equal returns true if the given Record is equal to the receiver.
func (r Record) Equal(other Record) bool { return r == other }

// A Decoder decodes a Record and returns an error in case of failure.
type Decoder func(*Record) error

// A DecoderFactory constructs a new Decoder from a given io.Reader.
type DecoderFactory func(io.Reader) Decoder

// DecoderFor automatically detects the encoding of the first few bytes in
// the given io.Reader and then returns the corresponding Decoder or nil
// in case of failing to detect a supported encoding.
func DecoderFor(r io.Reader) Decoder {
	var buf bytes.Buffer
	for _, dec := range []DecoderFactory{
		NewDecoder,
		NewJSONDecoder,
		NewCSVDecoder,
	} {
		rd := io.MultiReader(bytes.NewReader(buf.Bytes()), io.TeeReader(r, &buf))
		if err := dec(rd).Decode(&Record{}); err == nil {
			return dec(io.MultiReader(&buf, r))
		}
	}
	return nil
}

// NewRoundRobinDecoder returns a new Decoder that round robins across the
// given Decoders on every invocation or decoding error.
func NewRoundRobinDecoder(dec ...Decoder) Decoder {
	// Optimization for single Decoder case.
	if len(dec) == 1 {
		return dec[0]
	}

	var seq uint64
	return func(r *Record) (err error) {
		for range dec {
			robin := seq % uint64(len(dec))
			seq++
			if err = dec[robin].Decode(r); err != nil {
				continue
			}
			return nil
		}
		return err
	}
}

// NewDecoder returns a new gob Decoder for the given io.Reader.
func NewDecoder(rd io.Reader) Decoder {
	dec := gob.NewDecoder(rd)
	return func(r *Record) error { return dec.Decode(r) }
}

// Decode is an adapter method calling the Decoder function itself with the
// given parameters.
func (dec Decoder) Decode(r *Record) error { return dec(r) }

// An Encoder encodes a Record and returns an error in case of failure.
type Encoder func(*Record) error

// NewEncoder returns a new Record encoder closure for the given io.Writer.
func NewEncoder(w io.Writer) Encoder {
	enc := gob.NewEncoder(w)
	return func(r *Record) error { return enc.Encode(r) }
}

// Encode is an adapter method calling the Encoder function itself with the
// given parameters.
func (enc Encoder) Encode(r *Record) error { return enc(r) }

// NewCSVEncoder returns an Encoder that dumps the given *Record as a CSV
// record. The columns are: log id, series name, x (ns since the log's
// epoch), y, and the annotation text.
func NewCSVEncoder(w io.Writer) Encoder {
	enc := csv.NewWriter(w)
	return func(r *Record) error {
		err := enc.Write([]string{
			r.LogID,
			r.Series,
			strconv.FormatFloat(r.X, 'f', -1, 64),
			strconv.FormatFloat(r.Y, 'f', -1, 64),
			r.Text,
		})
		if err != nil {
			return err
		}

		enc.Flush()

		return enc.Error()
	}
}

// NewCSVDecoder returns a Decoder that decodes CSV encoded Records.
func NewCSVDecoder(rd io.Reader) Decoder {
	dec := csv.NewReader(rd)
	dec.FieldsPerRecord = 5
	dec.TrimLeadingSpace = true

	return func(r *Record) error {
		rec, err := dec.Read()
		if err != nil {
			return err
		}

		r.LogID = rec[0]
		r.Series = rec[1]

		if r.X, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return err
		}

		if r.Y, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return err
		}

		r.Text = rec[4]

		return nil
	}
}

//go:generate easyjson -no_std_marshalers -output_filename records_easyjson.go records.go
//easyjson:json
type jsonRecord Record

// NewJSONEncoder returns an Encoder that dumps the given *Record as a JSON
// object on its own line.
func NewJSONEncoder(w io.Writer) Encoder {
	var jw jwriter.Writer
	return func(r *Record) error {
		(*jsonRecord)(r).MarshalEasyJSON(&jw)
		if jw.Error != nil {
			return jw.Error
		}
		jw.RawByte('\n')
		_, err := jw.DumpTo(w)
		return err
	}
}

// NewJSONDecoder returns a Decoder that decodes JSON encoded Records.
func NewJSONDecoder(r io.Reader) Decoder {
	rd := bufio.NewReader(r)
	return func(rec *Record) (err error) {
		var jl jlexer.Lexer
		if jl.Data, err = rd.ReadBytes('\n'); err != nil {
			return err
		}
		(*jsonRecord)(rec).UnmarshalEasyJSON(&jl)
		return jl.Error()
	}
}
