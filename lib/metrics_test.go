package logview

import (
	"math"
	"math/rand"
	"testing"

	perks "github.com/bmizerany/perks/quantile"
	"github.com/dgryski/go-gk"
	"github.com/influxdata/tdigest"
	"github.com/streadway/quantile"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	s := NewSeries("mbed-log-v6", "engine_temp", "#1f77b4")
	batch := make(Points, 10000)
	for i := range batch {
		batch[i] = Point{X: float64(i), Y: float64(i + 1)}
	}
	s.Append(batch...)

	m := NewMetrics(s)

	if m.LogID != "mbed-log-v6" || m.Series != "engine_temp" {
		t.Errorf("identity: got (%q, %q)", m.LogID, m.Series)
	}
	if m.Count != 10000 {
		t.Errorf("Count: got %d, want 10000", m.Count)
	}
	if m.Min != 1 || m.Max != 10000 {
		t.Errorf("Min, Max: got (%g, %g), want (1, 10000)", m.Min, m.Max)
	}
	if m.Mean != 5000.5 {
		t.Errorf("Mean: got %g, want 5000.5", m.Mean)
	}
	if m.XSpan != 9999 {
		t.Errorf("XSpan: got %g, want 9999", m.XSpan)
	}
	if m.Levels != 5 {
		t.Errorf("Levels: got %d, want 5", m.Levels)
	}

	// The digest is approximate; hold it to 1% of the exact quantiles.
	for _, q := range []struct {
		got, want float64
	}{
		{m.P50, 5000.5},
		{m.P95, 9500.5},
		{m.P99, 9900.5},
	} {
		if math.Abs(q.got-q.want) > q.want*0.01 {
			t.Errorf("quantile: got %g, want %g within 1%%", q.got, q.want)
		}
	}
}

func TestMetricsEmptySeries(t *testing.T) {
	t.Parallel()

	m := NewMetrics(NewSeries("log", "sig", "#1f77b4"))
	if m.Count != 0 || m.Mean != 0 || m.XSpan != 0 {
		t.Errorf("empty series metrics: %+v", m)
	}
}

// The t-digest behind Metrics was picked over the other streaming
// estimators in go.mod; this keeps the comparison honest.
func BenchmarkQuantileEstimators(b *testing.B) {
	rng := rand.New(rand.NewSource(0xdecafbad))
	ys := make([]float64, 100000)
	for i := range ys {
		ys[i] = rng.NormFloat64()*15 + 80
	}

	b.Run("tdigest", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			td := tdigest.NewWithCompression(100)
			for _, y := range ys {
				td.Add(y, 1)
			}
			_ = td.Quantile(0.95)
		}
	})

	b.Run("gk", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			g := gk.New(0.001)
			for _, y := range ys {
				g.Insert(y)
			}
			_ = g.Query(0.95)
		}
	})

	b.Run("streadway", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			est := quantile.New(
				quantile.Known(0.50, 0.01),
				quantile.Known(0.95, 0.001),
				quantile.Known(0.99, 0.0005),
			)
			for _, y := range ys {
				est.Add(y)
			}
			_ = est.Get(0.95)
		}
	})

	b.Run("perks", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			st := perks.NewTargeted(0.50, 0.95, 0.99)
			for _, y := range ys {
				st.Insert(y)
			}
			_ = st.Query(0.95)
		}
	})
}
