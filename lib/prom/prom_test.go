package prom

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/prometheus/model/textparse"

	logview "github.com/luftkode/logviewer/lib"
)

func TestMetrics_Observe(t *testing.T) {
	pm := NewRegisteredMetrics()

	srv := httptest.NewServer(pm.Handler())
	defer srv.Close()

	pm.Observe(&logview.Record{LogID: "mbed-log-v6", Series: "engine_temp", X: 1e9, Y: 86.5})
	pm.Observe(&logview.Record{LogID: "mbed-log-v6", Series: "engine_temp", X: 2e9, Y: 87.0})
	pm.Observe(&logview.Record{LogID: "mbed-log-v6", Series: "state", X: 2e9, Text: "fan on"})

	s := logview.NewSeries("mbed-log-v6", "engine_temp", "#1f77b4")
	s.Append(logview.Point{X: 1e9, Y: 86.5}, logview.Point{X: 2e9, Y: 87.0})
	pm.Update(s)

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("failed to get prometheus metrics. err=%s", err)
	}

	if resp.StatusCode != 200 {
		t.Fatalf("status code should be 200. code=%d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Errorf("error reading response body: err=%v", err)
	}

	p, err := textparse.New(data, resp.Header.Get("Content-Type"), true)
	if err != nil {
		t.Fatalf("error creating prometheus metrics parser. err=%v", err)
	}

	want := map[string]struct{}{
		"ingest_samples_total":     struct{}{},
		"ingest_annotations_total": struct{}{},
		"series_points":            struct{}{},
		"series_mipmap_levels":     struct{}{},
	}

	t.Log(string(data))

	for len(want) > 0 {
		_, err := p.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("error parsing prometheus metrics. err=%v", err)
		}

		name, _ := p.Help()
		nameStr := string(name)

		if _, ok := want[nameStr]; ok {
			delete(want, nameStr)
		}
	}

	if len(want) > 0 {
		t.Errorf("missing metrics: %v", want)
	}
}
