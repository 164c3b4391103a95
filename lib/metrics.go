package logview

import "github.com/influxdata/tdigest"

// Metrics holds the summary statistics of one series' y-values, as
// consumed by the Reporters.
type Metrics struct {
	LogID  string  `json:"log_id"`
	Series string  `json:"series"`
	Count  uint64  `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
	XSpan  float64 `json:"x_span"`
	Levels int     `json:"mipmap_levels"`

	sum         float64
	first, last float64
	ys          *tdigest.TDigest
}

// Add updates the metrics with the given sample.
func (m *Metrics) Add(p Point) {
	if m.ys == nil {
		m.ys = tdigest.NewWithCompression(100)
	}

	if m.Count == 0 {
		m.Min, m.Max = p.Y, p.Y
		m.first = p.X
	}

	m.Count++
	m.sum += p.Y
	m.last = p.X

	if p.Y < m.Min {
		m.Min = p.Y
	}
	if p.Y > m.Max {
		m.Max = p.Y
	}

	m.ys.Add(p.Y, 1)
}

// Close computes the derived fields of Metrics. It must be called after
// all samples have been added.
func (m *Metrics) Close() {
	if m.Count == 0 {
		return
	}

	m.Mean = m.sum / float64(m.Count)
	m.XSpan = m.last - m.first
	m.P50 = m.ys.Quantile(0.50)
	m.P95 = m.ys.Quantile(0.95)
	m.P99 = m.ys.Quantile(0.99)
}

// NewMetrics computes and returns the Metrics of a single series.
func NewMetrics(s *Series) *Metrics {
	m := &Metrics{LogID: s.LogID, Series: s.Name, Levels: s.Levels()}
	for _, p := range s.Raw() {
		m.Add(p)
	}
	m.Close()
	return m
}
