// Package web serves generated charts and result data over HTTP.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Xyedo/message-benchmark/internal/results"
	"github.com/Xyedo/message-benchmark/internal/telemetry"
)

// Server exposes the charts directory, a JSON API over the loaded results,
// and Prometheus metrics.
type Server struct {
	groups    []results.WorkloadGroup
	chartsDir string
	port      int
}

// NewServer creates a server over the grouped results. chartsDir is the
// directory the generate command wrote charts into.
func NewServer(groups []results.WorkloadGroup, chartsDir string, port int) *Server {
	return &Server{
		groups:    groups,
		chartsDir: chartsDir,
		port:      port,
	}
}

// Handler builds the HTTP mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/charts/", http.StripPrefix("/charts/", http.FileServer(http.Dir(s.chartsDir))))
	mux.HandleFunc("/api/results", s.handleResults)
	mux.HandleFunc("/api/workloads", s.handleWorkloads)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/charts/", http.StatusFound)
	})

	return countRequests(mux)
}

// Start runs the HTTP server. Binds to localhost only.
func (s *Server) Start() error {
	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	telemetry.LogInfo("Starting charts server", "addr", "http://"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	type workloadJSON struct {
		Workload string           `json:"workload"`
		Results  []results.Result `json:"results"`
	}

	out := make([]workloadJSON, len(s.groups))
	for i, g := range s.groups {
		out[i] = workloadJSON{Workload: g.Name, Results: g.Results}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (s *Server) handleWorkloads(w http.ResponseWriter, r *http.Request) {
	names := make([]string, len(s.groups))
	for i, g := range s.groups {
		names[i] = g.Name
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		telemetry.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
	})
}
