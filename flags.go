package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"

	logview "github.com/luftkode/logviewer/lib"
)

// mipmapFlag implements the flag.Value interface for selecting the level
// of detail mode: "auto", "disabled", or a literal level number to force.
type mipmapFlag struct{ cfg *logview.MipMapConfig }

func (f *mipmapFlag) Set(v string) error {
	switch v {
	case "auto":
		*f.cfg = logview.MipMapConfig{Mode: logview.ModeAuto}
		return nil
	case "disabled":
		*f.cfg = logview.MipMapConfig{Mode: logview.ModeDisabled}
		return nil
	}

	lvl, err := strconv.Atoi(v)
	if err != nil || lvl < 0 {
		return fmt.Errorf("-mipmap must be auto, disabled or a level number, got %q", v)
	}

	*f.cfg = logview.MipMapConfig{Mode: logview.ModeManual, Level: lvl}
	return nil
}

func (f *mipmapFlag) String() string {
	if f.cfg == nil {
		return ""
	}
	switch f.cfg.Mode {
	case logview.ModeDisabled:
		return "disabled"
	case logview.ModeManual:
		return strconv.Itoa(f.cfg.Level)
	default:
		return "auto"
	}
}

// maxBufFlag implements the flag.Value interface for a byte size cap on
// in-memory sample storage. -1 means no limit.
type maxBufFlag struct{ n *int64 }

func (f *maxBufFlag) Set(v string) (err error) {
	if v == "-1" {
		*(f.n) = -1
		return nil
	}

	var ds datasize.ByteSize
	if err = ds.UnmarshalText([]byte(v)); err != nil {
		return err
	}

	if ds > math.MaxInt64 {
		return fmt.Errorf("-max-buffer=%d overflows int64", ds)
	}

	*(f.n) = int64(ds)
	return nil
}

func (f *maxBufFlag) String() string {
	if f.n == nil {
		return ""
	} else if *(f.n) == -1 {
		return "-1"
	}
	return datasize.ByteSize(*(f.n)).String()
}

// csl implements the flag.Value interface for comma separated lists
type csl []string

func (l *csl) Set(v string) error {
	*l = strings.Split(v, ",")
	return nil
}

func (l csl) String() string { return strings.Join(l, ",") }
