package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ImportRunsTotal tracks ingestion runs by outcome (ok, warning, error).
	ImportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afmg",
			Subsystem: "import",
			Name:      "runs_total",
			Help:      "Total number of ingestion runs by outcome",
		},
		[]string{"outcome"},
	)

	// ImportDuration tracks the duration of a full ingestion run.
	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "afmg",
			Subsystem: "import",
			Name:      "duration_seconds",
			Help:      "Duration of ingestion runs in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	// RecordsClassified tracks classified source lines by kind.
	RecordsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afmg",
			Subsystem: "classify",
			Name:      "records_total",
			Help:      "Total number of classified source lines by kind",
		},
		[]string{"kind"},
	)

	// DocumentsWritten tracks documents written by collection and mode.
	DocumentsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afmg",
			Subsystem: "reconcile",
			Name:      "documents_total",
			Help:      "Total number of documents written by collection and mode",
		},
		[]string{"collection", "mode"},
	)

	// IntegrityWarnings tracks blocked reconciliations by collection.
	IntegrityWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "afmg",
			Subsystem: "reconcile",
			Name:      "integrity_warnings_total",
			Help:      "Total number of integrity warnings by collection",
		},
		[]string{"collection"},
	)
)

// Handler exposes the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
