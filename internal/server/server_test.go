package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algosts "github.com/cwbudde/algo-sts"
)

type fixedDetector struct {
	name string
	p    float64
}

func (d fixedDetector) Name() string { return d.name }
func (d fixedDetector) MinBits() int { return 1 }
func (d fixedDetector) Assess([]uint8) ([]float64, error) {
	return []float64{d.p}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	battery := algosts.New(algosts.WithDetectors(
		fixedDetector{name: "good", p: 0.5},
		fixedDetector{name: "bad", p: 0.001},
	))

	return New(Options{
		Battery: battery,
		Logger:  zerolog.Nop(),
	})
}

func TestAssessASCII(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader("1010 0110"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp assessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 8, resp.Bits)
	assert.False(t, resp.Passed)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "good", resp.Results[0].Detector)
	assert.True(t, resp.Results[0].Passed)
	assert.Equal(t, "bad", resp.Results[1].Detector)
	assert.False(t, resp.Results[1].Passed)
}

func TestAssessBinaryBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader("\xA5\x5A"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp assessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 16, resp.Bits)
}

func TestAssessRejectsBadInput(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader("10x1"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(""))
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/assess", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sts_assessments_total")
}
