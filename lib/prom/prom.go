// Package prom exposes streaming ingestion progress as a Prometheus
// metrics endpoint, so a long running ingest can be watched from the
// outside while series and their pyramids grow.
package prom

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	logview "github.com/luftkode/logviewer/lib"
)

// Metrics observes ingested records with exposition as a Prometheus
// metrics endpoint.
type Metrics struct {
	samplesCounter     *prometheus.CounterVec
	annotationsCounter *prometheus.CounterVec
	seriesPointsGauge  *prometheus.GaugeVec
	mipmapLevelsGauge  *prometheus.GaugeVec
	srv                http.Server
	registry           *prometheus.Registry
}

// NewMetrics same as NewMetricsWithParams with default params.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithParams("http://0.0.0.0:8880")
}

// NewMetricsWithParams creates a new Prometheus Metrics to observe ingested
// records and expose metrics. For example, after using
// NewMetricsWithParams("http://0.0.0.0:8880"), during an ingest you can
// call "curl http://127.0.0.1:8880" to see current metrics. This endpoint
// can be configured in the scrape section of your Prometheus server.
func NewMetricsWithParams(bindURL string) (*Metrics, error) {
	p, err := url.Parse(bindURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s. Must be in format 'http://0.0.0.0:8880'. err=%s", bindURL, err)
	}
	bindHost, bindPort, err := net.SplitHostPort(p.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s. Must be in format 'http://0.0.0.0:8880'. err=%s", bindURL, err)
	}

	pm := NewRegisteredMetrics()

	pm.srv = http.Server{
		Addr:    fmt.Sprintf("%s:%s", bindHost, bindPort),
		Handler: pm.Handler(),
	}

	go func() {
		pm.srv.ListenAndServe()
	}()

	return pm, nil
}

// NewRegisteredMetrics returns Metrics registered in their own registry
// without serving them. Callers wire Handler into their own server.
func NewRegisteredMetrics() *Metrics {
	pm := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	pm.samplesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_samples_total",
		Help: "Samples ingested per series",
	}, []string{
		"log_id",
		"series",
	})
	pm.registry.MustRegister(pm.samplesCounter)

	pm.annotationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_annotations_total",
		Help: "Annotation records ingested per series",
	}, []string{
		"log_id",
		"series",
	})
	pm.registry.MustRegister(pm.annotationsCounter)

	pm.seriesPointsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "series_points",
		Help: "Raw points currently stored per series",
	}, []string{
		"log_id",
		"series",
	})
	pm.registry.MustRegister(pm.seriesPointsGauge)

	pm.mipmapLevelsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "series_mipmap_levels",
		Help: "Pyramid depth per series, counting the raw series as level 0",
	}, []string{
		"log_id",
		"series",
	})
	pm.registry.MustRegister(pm.mipmapLevelsGauge)

	return pm
}

// Handler returns the exposition handler for the observed metrics.
func (pm *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(pm.registry, promhttp.HandlerOpts{})
}

// Close shuts down the http server exposing the Prometheus metrics.
func (pm *Metrics) Close() error {
	return pm.srv.Shutdown(context.Background())
}

// Observe registers metrics about an ingested record.
func (pm *Metrics) Observe(r *logview.Record) {
	if r.Text != "" {
		pm.annotationsCounter.WithLabelValues(r.LogID, r.Series).Inc()
		return
	}
	pm.samplesCounter.WithLabelValues(r.LogID, r.Series).Inc()
}

// Update refreshes the per-series gauges from the current series state.
func (pm *Metrics) Update(s *logview.Series) {
	pm.seriesPointsGauge.WithLabelValues(s.LogID, s.Name).Set(float64(s.Len()))
	pm.mipmapLevelsGauge.WithLabelValues(s.LogID, s.Name).Set(float64(s.Levels()))
}
