// Package metrics exposes prometheus collectors for the offline map service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DownloadsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "regionmap_downloads_started_total",
		Help: "Region tile downloads started",
	})
	DownloadsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "regionmap_downloads_completed_total",
		Help: "Region tile downloads completed",
	})
	DownloadsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "regionmap_downloads_failed_total",
		Help: "Region tile downloads failed or cancelled",
	})
	RendersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "regionmap_svg_renders_total",
		Help: "Server-side SVG renders",
	})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "regionmap_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

func init() {
	prometheus.MustRegister(DownloadsStarted)
	prometheus.MustRegister(DownloadsCompleted)
	prometheus.MustRegister(DownloadsFailed)
	prometheus.MustRegister(RendersTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
