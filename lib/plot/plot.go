package plot

import (
	"encoding/json"
	"html/template"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/dgryski/go-lttb"
	tsz "github.com/tsenart/go-tsz"

	logview "github.com/luftkode/logviewer/lib"
)

// A Plot represents an interactive HTML time series plot of log samples,
// rendered with dygraphs. Samples are buffered Gorilla-compressed until
// WriteTo, which assembles them through the mipmap pipeline and emits a
// self contained page. Annotation records (non-empty Text) are not drawn
// by this renderer and are dropped on Add.
type Plot struct {
	title     string
	threshold int
	width     int
	mipmap    logview.MipMapConfig
	series    map[seriesKey]*timeSeries
}

type seriesKey struct{ logID, name string }

// An in-memory timeSeries of samples with high compression of both
// timestamps and values. Timestamps are kept in millisecond precision,
// which is what the exported plot resolves anyway. It's not safe for
// concurrent use.
type timeSeries struct {
	logID string
	name  string
	epoch float64 // x of the first sample, ns
	data  *tsz.Series
	len   int
}

func newTimeSeries(logID, name string) *timeSeries {
	return &timeSeries{logID: logID, name: name, data: tsz.New(0)}
}

func (ts *timeSeries) add(xns, y float64) {
	// The compressor wants small timestamp deltas, so x is stored in
	// milliseconds relative to the first sample.
	if ts.len == 0 {
		ts.epoch = xns
	}
	ts.data.Push(uint64((xns-ts.epoch)/1e6), y)
	ts.len++
}

func (ts *timeSeries) points() (logview.Points, error) {
	it := ts.data.Iter()
	ps := make(logview.Points, 0, ts.len)
	for it.Next() {
		t, v := it.Values()
		ps = append(ps, logview.Point{X: ts.epoch + float64(t)*1e6, Y: v})
	}
	return ps, it.Err()
}

// Opt is a functional option type for Plot.
type Opt func(*Plot)

// Title returns an Opt that sets the title of a Plot.
func Title(title string) Opt {
	return func(p *Plot) { p.title = title }
}

// Downsample returns an Opt that caps every rendered line at the given
// number of points with LTTB downsampling. This bounds the size of the
// exported page; it is independent of the mipmap level selection.
func Downsample(threshold int) Opt {
	return func(p *Plot) { p.threshold = threshold }
}

// Width returns an Opt that sets the pixel width assumed for mipmap level
// selection in Auto mode.
func Width(pixels int) Opt {
	return func(p *Plot) { p.width = pixels }
}

// MipMap returns an Opt that sets the level selection mode used when
// assembling the plot.
func MipMap(cfg logview.MipMapConfig) Opt {
	return func(p *Plot) { p.mipmap = cfg }
}

// New returns a Plot with the given Opts applied. The default is Auto
// level selection at a 1280 pixel budget with no LTTB cap.
func New(opts ...Opt) *Plot {
	p := &Plot{
		width:  1280,
		mipmap: logview.MipMapConfig{Mode: logview.ModeAuto},
		series: map[seriesKey]*timeSeries{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add adds the given Record to the Plot time series.
func (p *Plot) Add(r *logview.Record) {
	if r.Text != "" {
		return
	}
	key := seriesKey{logID: r.LogID, name: r.Series}
	ts, ok := p.series[key]
	if !ok {
		ts = newTimeSeries(r.LogID, r.Series)
		p.series[key] = ts
	}
	ts.add(r.X, r.Y)
}

// Close closes the HTML plot for writing.
func (p *Plot) Close() {
	for _, ts := range p.series {
		ts.data.Finish()
	}
}

// WriteTo writes the HTML plot to the given io.Writer.
func (p *Plot) WriteTo(w io.Writer) (n int64, err error) {
	type dygraphsOpts struct {
		Title       string   `json:"title"`
		Labels      []string `json:"labels,omitempty"`
		YLabel      string   `json:"ylabel"`
		XLabel      string   `json:"xlabel"`
		Colors      []string `json:"colors,omitempty"`
		Legend      string   `json:"legend"`
		ShowRoller  bool     `json:"showRoller"`
		StrokeWidth float64  `json:"strokeWidth"`
	}

	type plotData struct {
		Title string
		Data  template.JS
		Opts  template.JS
	}

	dp, labels, colors, err := p.data()
	if err != nil {
		return 0, err
	}

	var sz int
	if len(dp) > 0 {
		sz = len(dp) * len(dp[0]) * 12 // heuristic
	}

	data := dp.Append(make([]byte, 0, sz))

	opts := dygraphsOpts{
		Title:       p.title,
		Labels:      labels,
		YLabel:      "Value",
		XLabel:      "Seconds elapsed",
		Colors:      colors,
		Legend:      "always",
		ShowRoller:  true,
		StrokeWidth: 1.3,
	}

	optsJSON, err := json.MarshalIndent(&opts, "    ", " ")
	if err != nil {
		return 0, err
	}

	cw := countingWriter{w: w}
	err = plotTemplate.Execute(&cw, &plotData{
		Title: p.title,
		Data:  template.JS(data),
		Opts:  template.JS(optsJSON),
	})

	return cw.n, err
}

// data assembles the buffered series through the mipmap pipeline into the
// NaN-padded row format dygraphs wants. See http://dygraphs.com/data.html
func (p *Plot) data() (dataPoints, []string, []string, error) {
	keys := make([]seriesKey, 0, len(p.series))
	for k := range p.series {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].logID != keys[j].logID {
			return keys[i].logID < keys[j].logID
		}
		return keys[i].name < keys[j].name
	})

	series := make([]*logview.Series, 0, len(keys))
	var count int
	for i, k := range keys {
		ts := p.series[k]
		ps, err := ts.points()
		if err != nil {
			return nil, nil, nil, err
		}
		s := logview.NewSeries(ts.logID, ts.name, logview.PaletteColor(i))
		s.Append(ps...)
		series = append(series, s)
		count += len(ps)
	}

	bounds := domain(series)
	drawables := logview.Assemble(series, bounds, logview.FrameConfig{
		MipMap:     p.mipmap,
		PixelWidth: p.width,
		LineWidth:  1.3,
	})

	var (
		size   = 1 + len(drawables.Lines)
		nan    = math.NaN()
		labels = make([]string, size)
		colors = make([]string, 0, size-1)
		data   = make(dataPoints, 0, count)
	)

	labels[0] = "Seconds"

	for i, line := range drawables.Lines {
		points := line.Points
		if p.threshold >= 3 && len(points) > p.threshold {
			points = downsample(points, p.threshold)
		}

		for _, pt := range points {
			row := make([]float64, size)
			for j := range row {
				row[j] = nan
			}
			row[0], row[i+1] = (pt.X-bounds.Lo)/1e9, pt.Y
			data = append(data, row)
		}

		labels[i+1] = line.Name
		colors = append(colors, line.Color)
	}

	sort.Sort(data)

	return data, labels, colors, nil
}

// downsample caps ps at threshold points with Largest-Triangle-Three-
// Buckets, which keeps the line visually close to the original data.
func downsample(ps logview.Points, threshold int) logview.Points {
	in := make([]lttb.Point[float64], 0, len(ps))
	for _, p := range ps {
		in = append(in, lttb.Point[float64]{X: p.X, Y: p.Y})
	}

	sampled := lttb.LTTB(in, threshold)

	out := make(logview.Points, 0, len(sampled))
	for _, p := range sampled {
		out = append(out, logview.Point{X: p.X, Y: p.Y})
	}
	return out
}

// domain returns the x-interval spanned by all series.
func domain(series []*logview.Series) logview.Viewport {
	var vp logview.Viewport
	var init bool
	for _, s := range series {
		raw := s.Raw()
		if len(raw) == 0 {
			continue
		}
		lo, hi := raw[0].X, raw[len(raw)-1].X
		if !init {
			vp, init = logview.Viewport{Lo: lo, Hi: hi}, true
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

type countingWriter struct {
	n int64
	w io.Writer
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type dataPoints [][]float64

func (ps dataPoints) Len() int { return len(ps) }

func (ps dataPoints) Less(i, j int) bool {
	// Sort by X axis (seconds elapsed)
	return ps[i][0] < ps[j][0]
}

func (ps dataPoints) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

func (ps dataPoints) Append(buf []byte) []byte {
	buf = append(buf, "[\n  "...)

	for i, p := range ps {
		buf = append(buf, "  ["...)

		for j, f := range p {
			if math.IsNaN(f) {
				buf = append(buf, "NaN"...)
			} else {
				buf = strconv.AppendFloat(buf, f, 'f', -1, 64)
			}

			if j < len(p)-1 {
				buf = append(buf, ',')
			}
		}

		if buf = append(buf, "]"...); i < len(ps)-1 {
			buf = append(buf, ",\n  "...)
		}
	}

	return append(buf, "  ]"...)
}

var plotTemplate = template.Must(template.New("plot").Parse(`
<!doctype html>
<html>
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8">
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.css">
  <script src="https://cdnjs.cloudflare.com/ajax/libs/dygraph/2.2.1/dygraph.min.js"></script>
</head>
<body>
  <div id="plot" style="font-family: Courier; width: 100%; height: 600px"></div>
  <script>
  var container = document.getElementById("plot");
  var opts = {{.Opts}};
  var data = {{.Data}};
  var plot = new Dygraph(container, data, opts);
  </script>
</body>
</html>`))
