package logview

import "sort"

// palette is cycled through as series are first seen, in arrival order.
// Colors are hex strings as consumed by the renderers.
var palette = []string{
	"#E9D758",
	"#297373",
	"#39393A",
	"#A1CDF4",
	"#593C8F",
	"#DD624E",
	"#A1674A",
	"#171738",
	"#CA4E3E",
	"#9F2823",
}

// PaletteColor returns the color assigned to the i-th series.
func PaletteColor(i int) string { return palette[i%len(palette)] }

type seriesKey struct{ logID, name string }

// PlotData groups incoming records into Series keyed by (log id, series
// name), assigning palette colors in arrival order. It is the in-memory
// store behind streaming ingestion: every Add extends the affected
// series' pyramid incrementally.
type PlotData struct {
	series []*Series
	index  map[seriesKey]*Series
}

// NewPlotData returns an empty PlotData.
func NewPlotData() *PlotData {
	return &PlotData{index: map[seriesKey]*Series{}}
}

// Add routes the record into its series, creating the series on first
// sight. Records with a non-empty Text become annotations, anything else
// appends a sample.
func (pd *PlotData) Add(r Record) {
	key := seriesKey{logID: r.LogID, name: r.Series}
	s, ok := pd.index[key]
	if !ok {
		s = NewSeries(r.LogID, r.Series, PaletteColor(len(pd.series)))
		pd.index[key] = s
		pd.series = append(pd.series, s)
	}

	if r.Text != "" {
		s.Mark(Marker{At: Point{X: r.X, Y: r.Y}, Text: r.Text})
		return
	}
	s.Append(Point{X: r.X, Y: r.Y})
}

// Lookup returns the series with the given identity, or nil when no
// record for it has been seen.
func (pd *PlotData) Lookup(logID, name string) *Series {
	return pd.index[seriesKey{logID: logID, name: name}]
}

// Len returns the number of distinct series seen so far.
func (pd *PlotData) Len() int { return len(pd.series) }

// Samples returns the total number of stored samples across all series.
func (pd *PlotData) Samples() int {
	var n int
	for _, s := range pd.series {
		n += s.Len()
	}
	return n
}

// Series returns the stored series sorted by (log id, name) so that
// output derived from them is deterministic regardless of arrival
// interleaving.
func (pd *PlotData) Series() []*Series {
	out := append(make([]*Series, 0, len(pd.series)), pd.series...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].LogID != out[j].LogID {
			return out[i].LogID < out[j].LogID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Bounds returns the x-domain spanned by all stored samples, or a zero
// Viewport when no samples have been added.
func (pd *PlotData) Bounds() Viewport {
	var vp Viewport
	var init bool
	for _, s := range pd.series {
		if s.Len() == 0 {
			continue
		}
		lo := s.points[0].X + s.XOffset
		hi := s.points[len(s.points)-1].X + s.XOffset
		if !init {
			vp, init = Viewport{Lo: lo, Hi: hi}, true
			continue
		}
		if lo < vp.Lo {
			vp.Lo = lo
		}
		if hi > vp.Hi {
			vp.Hi = hi
		}
	}
	return vp
}
