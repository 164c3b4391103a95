package logview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"
)

// Reporter represents any function which takes a slice of Series and
// generates a report returned as a slice of bytes and an error in case
// of failure.
type Reporter func([]*Series) ([]byte, error)

// ReportText returns per-series summary statistics as aligned, formatted
// text.
func ReportText(series []*Series) ([]byte, error) {
	out := &bytes.Buffer{}

	w := tabwriter.NewWriter(out, 0, 8, 2, '\t', tabwriter.StripEscape)
	fmt.Fprintf(w, "Log\tSeries\tCount\tMin\tMax\tMean\tP50\tP95\tP99\tLevels\n")
	for _, s := range series {
		m := NewMetrics(s)
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%g\t%g\t%g\t%g\t%g\t%d\n",
			m.LogID, m.Series, m.Count, m.Min, m.Max, m.Mean, m.P50, m.P95, m.P99, m.Levels)
	}

	if err := w.Flush(); err != nil {
		return []byte{}, err
	}
	return out.Bytes(), nil
}

// ReportJSON returns per-series summary statistics as a JSON array.
func ReportJSON(series []*Series) ([]byte, error) {
	ms := make([]*Metrics, 0, len(series))
	for _, s := range series {
		ms = append(ms, NewMetrics(s))
	}
	return json.Marshal(ms)
}
