package logview

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

func TestRecordDecoding(t *testing.T) {
	t.Parallel()

	var b1, b2 bytes.Buffer
	enc := []Encoder{NewEncoder(&b1), NewEncoder(&b2)}

	for i := 0; i < 10; i++ {
		if err := enc[i%len(enc)](&Record{X: float64(i + 1)}); err != nil {
			t.Fatal(err)
		}
	}

	got := make([]float64, 10)
	dec := NewRoundRobinDecoder(
		NewDecoder(&b2),
		NewDecoder(&bytes.Reader{}),
		NewDecoder(&b1),
	)

	for i := range got {
		var r Record
		if err := dec(&r); err != nil {
			t.Fatal(err)
		}
		got[i] = r.X
	}

	want := []float64{2, 1, 4, 3, 6, 5, 8, 7, 10, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got: %v, want: %v", got, want)
	}

	var r Record
	if got, want := dec(&r), io.EOF; got != want {
		t.Errorf("got: %v, want: %v", got, want)
	}
}

func TestEncoding(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		encoding string
		enc      func(io.Writer) Encoder
		dec      DecoderFactory
	}{
		{"gob", NewEncoder, NewDecoder},
		{"csv", NewCSVEncoder, NewCSVDecoder},
		{"json", NewJSONEncoder, NewJSONDecoder},
	} {
		t.Run(tc.encoding, func(t *testing.T) {
			var buf bytes.Buffer
			enc := tc.enc(&buf)
			dec := tc.dec(&buf)

			want := Record{
				LogID:  "mbed-log-v6",
				Series: "engine_temp",
				X:      1.25e9,
				Y:      86.5,
			}
			if err := enc.Encode(&want); err != nil {
				t.Fatal(err)
			}

			note := want
			note.Text = "fan on"
			if err := enc.Encode(&note); err != nil {
				t.Fatal(err)
			}

			var got Record
			if err := dec.Decode(&got); err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("got: %+v, want: %+v", got, want)
			}
			if err := dec.Decode(&got); err != nil {
				t.Fatal(err)
			}
			if !got.Equal(note) {
				t.Errorf("got: %+v, want: %+v", got, note)
			}
		})
	}
}

func TestDecoderFor(t *testing.T) {
	t.Parallel()

	record := Record{LogID: "log", Series: "rpm", X: 1e9, Y: 3000}

	for _, tc := range []struct {
		encoding string
		enc      func(io.Writer) Encoder
	}{
		{"gob", NewEncoder},
		{"csv", NewCSVEncoder},
		{"json", NewJSONEncoder},
	} {
		t.Run(tc.encoding, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.enc(&buf).Encode(&record); err != nil {
				t.Fatal(err)
			}

			dec := DecoderFor(&buf)
			if dec == nil {
				t.Fatal("no decoder detected")
			}

			var got Record
			if err := dec.Decode(&got); err != nil {
				t.Fatal(err)
			}
			if !got.Equal(record) {
				t.Errorf("got: %+v, want: %+v", got, record)
			}
		})
	}

	if dec := DecoderFor(bytes.NewReader([]byte("no known encoding"))); dec != nil {
		t.Errorf("got a decoder for garbage input")
	}
}
