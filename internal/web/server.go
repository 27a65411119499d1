package web

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/app"
	"github.com/wandermaxq-star/GeoblogRF-sub005/internal/metrics"
)

//go:embed all:static
var staticFS embed.FS

// Server serves the offline region map app and API.
type Server struct {
	Composer *app.Composer
	Addr     string
	Log      *slog.Logger
}

// Handler builds the full route table. Exposed separately so tests can drive
// it through httptest.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/regions", s.handleRegions)
	mux.HandleFunc("/api/districts", s.handleDistricts)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/panel", s.handlePanel)
	mux.HandleFunc("/api/map.svg", s.handleMapSVG)
	mux.HandleFunc("/api/download", s.handleDownload)
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/metrics", metrics.Handler())

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating sub filesystem: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticSub)))

	return withDuration(mux), nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	h, err := s.Handler()
	if err != nil {
		return err
	}
	s.log().Info("serving", "addr", s.Addr)
	return http.ListenAndServe(s.Addr, h)
}

func (s *Server) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func withDuration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	})
}
