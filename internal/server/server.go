// Package server exposes the detector battery over HTTP: bit sequences in,
// per-detector verdicts out, with Prometheus metrics on the side.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	algosts "github.com/cwbudde/algo-sts"
	"github.com/cwbudde/algo-sts/bitstream"
)

// DefaultMaxBodyBytes bounds the request body: 16 MiB of input is two
// orders of magnitude past the longest sequence the battery needs.
const DefaultMaxBodyBytes = 16 << 20

// Options configures a Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Battery runs the assessments. Defaults to algosts.New().
	Battery *algosts.Battery

	// Logger receives request-level log events.
	Logger zerolog.Logger

	// MaxBodyBytes overrides DefaultMaxBodyBytes when positive.
	MaxBodyBytes int64
}

// Server is the HTTP front end of the battery.
type Server struct {
	battery *algosts.Battery
	logger  zerolog.Logger
	metrics *Metrics
	maxBody int64
	httpSrv *http.Server
}

// New creates a Server from opts.
func New(opts Options) *Server {
	if opts.Battery == nil {
		opts.Battery = algosts.New()
	}

	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		battery: opts.Battery,
		logger:  opts.Logger,
		metrics: NewMetrics(),
		maxBody: opts.MaxBodyBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/assess", s.handleAssess)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", s.metrics)

	s.httpSrv = &http.Server{
		Addr:              opts.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("listening")

	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// assessResponse is the JSON shape of one battery run.
type assessResponse struct {
	Bits    int              `json:"bits"`
	Alpha   float64          `json:"alpha"`
	Passed  bool             `json:"passed"`
	Results []detectorResult `json:"results"`
}

type detectorResult struct {
	Detector string    `json:"detector"`
	PValue   float64   `json:"p_value"`
	PValues  []float64 `json:"p_values,omitempty"`
	Passed   bool      `json:"passed"`
	Error    string    `json:"error,omitempty"`
}

// handleAssess accepts the sequence to test in the request body: ASCII
// '0'/'1' text for Content-Type text/plain, packed binary otherwise.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBody)

	var (
		bits []uint8
		err  error
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		bits, err = bitstream.FromASCII(body)
	} else {
		bits, err = bitstream.FromReader(body, 0)
	}

	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(bits) == 0 {
		s.writeError(w, http.StatusBadRequest, "empty sequence")
		return
	}

	assessmentsTotal.Inc()
	bitsProcessed.Add(float64(len(bits)))

	results := s.battery.Run(r.Context(), bits)

	resp := assessResponse{
		Bits:    len(bits),
		Alpha:   s.battery.Alpha(),
		Passed:  true,
		Results: make([]detectorResult, 0, len(results)),
	}

	for _, res := range results {
		dr := detectorResult{
			Detector: res.Detector,
			PValue:   res.PValue,
			PValues:  res.PValues,
			Passed:   res.Passed,
		}

		if res.Err != nil {
			dr.Error = res.Err.Error()
		}

		if !res.Passed {
			resp.Passed = false

			detectorFailures.WithLabelValues(res.Detector).Inc()
		}

		resp.Results = append(resp.Results, dr)
	}

	if !resp.Passed {
		assessmentsFailed.Inc()
	}

	s.logger.Info().
		Int("bits", resp.Bits).
		Bool("passed", resp.Passed).
		Msg("assessment complete")

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, "ok")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
