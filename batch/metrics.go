package batch

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	filesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridscan_files_processed_total",
			Help: "Input files processed, partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	pagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_pages_processed_total",
		Help: "Page images run through the segmentation pipeline.",
	})
	tablesFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_tables_found_total",
		Help: "Table regions detected across all processed pages.",
	})
	cellsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gridscan_cells_extracted_total",
		Help: "Cell images extracted across all processed tables.",
	})
	inFlightFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gridscan_in_flight_files",
		Help: "Files currently being processed by the worker pool.",
	})
)

// ServeMetrics exposes the prometheus registry over HTTP at /metrics.
// It blocks, so callers run it in a goroutine alongside Process.
func ServeMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info().Str("component", "BATCH").Str("addr", addr).Msg("serving metrics")
	return http.ListenAndServe(addr, mux)
}
