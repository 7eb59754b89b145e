package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavk23/LQG-Analysis/internal/report"
)

func buildTestReport(t *testing.T, points int) *report.Report {
	t.Helper()
	opts := report.DefaultOptions()
	opts.Points = points
	rep, err := report.Build(opts)
	require.NoError(t, err)
	return rep
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New("127.0.0.1:0", slog.New(slog.NewTextHandler(io.Discard, nil)), buildTestReport(t, 240))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}

func TestIndexServesGallery(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<section id="pv-isotherms">`)
	assert.Contains(t, body, "Constants")

	resp, _ = get(t, ts.URL+"/bogus")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFigureRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/figures/pv-isotherms.svg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, "<svg")

	resp, _ = get(t, ts.URL+"/figures/unknown.svg")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A figure ID without the .svg suffix is not a route.
	resp, _ = get(t, ts.URL+"/figures/pv-isotherms")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSamplesEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/samples")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var payload struct {
		PublishedRatio float64 `json:"published_ratio"`
		Samples        []struct {
			R float64  `json:"r"`
			M *float64 `json:"m"`
		} `json:"samples"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Samples, 240)
	assert.InDelta(t, 7.0/18.0, payload.PublishedRatio, 1e-15)

	// The window opens below the minimum horizon radius, so the first
	// sample's mass serializes as null.
	assert.Nil(t, payload.Samples[0].M)
	assert.NotNil(t, payload.Samples[len(payload.Samples)-1].M)
}

func TestCriticalEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/critical")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Critical struct {
			Radius      float64 `json:"radius"`
			Pressure    float64 `json:"pressure"`
			Temperature float64 `json:"temperature"`
		} `json:"critical"`
		PublishedRatio float64 `json:"published_ratio"`
		ClassicalRatio float64 `json:"classical_ratio"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.InDelta(t, 3.7411170, payload.Critical.Radius, 1e-5)
	assert.InDelta(t, 0.01137149, payload.Critical.Pressure, 1e-7)
	assert.InDelta(t, 7.0/18.0, payload.PublishedRatio, 1e-15)
	assert.InDelta(t, 3.0/8.0, payload.ClassicalRatio, 1e-15)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)
}

func TestMetricsCountRequestsAndRebuilds(t *testing.T) {
	srv, ts := newTestServer(t)

	get(t, ts.URL+"/")
	get(t, ts.URL+"/api/samples")
	srv.ReplaceReport(buildTestReport(t, 99), 3*time.Millisecond)

	_, body := get(t, ts.URL+"/metrics")
	assert.Contains(t, body, "lqg_http_requests_total")
	assert.Contains(t, body, `route="index"`)
	assert.Contains(t, body, `route="samples"`)
	assert.Contains(t, body, "lqg_report_rebuilds_total 1")
	assert.Contains(t, body, "lqg_report_build_seconds_count 1")
}

func TestReplaceReportSwapsLiveTraffic(t *testing.T) {
	srv, ts := newTestServer(t)

	var payload struct {
		Samples []json.RawMessage `json:"samples"`
	}
	_, body := get(t, ts.URL+"/api/samples")
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Samples, 240)

	srv.ReplaceReport(buildTestReport(t, 99), time.Millisecond)

	_, body = get(t, ts.URL+"/api/samples")
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Len(t, payload.Samples, 99)
}
