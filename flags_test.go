package main

import (
	"reflect"
	"testing"

	logview "github.com/luftkode/logviewer/lib"
)

func TestMipmapFlag(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in      string
		want    logview.MipMapConfig
		str     string
		wantErr bool
	}{
		{in: "auto", want: logview.MipMapConfig{Mode: logview.ModeAuto}, str: "auto"},
		{in: "disabled", want: logview.MipMapConfig{Mode: logview.ModeDisabled}, str: "disabled"},
		{in: "3", want: logview.MipMapConfig{Mode: logview.ModeManual, Level: 3}, str: "3"},
		{in: "0", want: logview.MipMapConfig{Mode: logview.ModeManual, Level: 0}, str: "0"},
		{in: "-2", wantErr: true},
		{in: "bogus", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			var cfg logview.MipMapConfig
			f := mipmapFlag{cfg: &cfg}
			err := f.Set(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Set(%q): expected error, got %+v", tc.in, cfg)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg != tc.want {
				t.Errorf("Set(%q): got %+v, want %+v", tc.in, cfg, tc.want)
			}
			if got := f.String(); got != tc.str {
				t.Errorf("String(): got %q, want %q", got, tc.str)
			}
		})
	}
}

func TestMaxBufFlag(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in      string
		want    int64
		str     string
		wantErr bool
	}{
		{in: "-1", want: -1, str: "-1"},
		{in: "1024", want: 1024, str: "1KB"},
		{in: "512MB", want: 512 << 20, str: "512MB"},
		{in: "2GB", want: 2 << 30, str: "2GB"},
		{in: "bogus", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			var n int64
			f := maxBufFlag{n: &n}
			err := f.Set(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Set(%q): expected error, got %d", tc.in, n)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if n != tc.want {
				t.Errorf("Set(%q): got %d, want %d", tc.in, n, tc.want)
			}
			if got := f.String(); got != tc.str {
				t.Errorf("String(): got %q, want %q", got, tc.str)
			}
		})
	}
}

func TestCSL(t *testing.T) {
	t.Parallel()

	var l csl
	if err := l.Set("a,b,c"); err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual([]string(l), want) {
		t.Errorf("got %v, want %v", l, want)
	}
	if got, want := l.String(), "a,b,c"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}
