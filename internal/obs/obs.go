// Package obs holds the process-wide observability surface: structured
// logging setup and Prometheus counters for workflow transitions and
// degraded best-effort steps.
package obs

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "winetrade",
		Name:      "status_transitions_total",
		Help:      "Completed status transitions by entity kind and edge.",
	}, []string{"kind", "from", "to"})

	degradedStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "winetrade",
		Name:      "degraded_steps_total",
		Help:      "Best-effort workflow steps that failed after the primary write committed.",
	}, []string{"operation", "step"})
)

// RecordTransition counts one completed status transition.
func RecordTransition(kind, from, to string) {
	transitionsTotal.WithLabelValues(kind, from, to).Inc()
}

// RecordDegraded counts one failed best-effort step of an operation and logs
// the cause at warn level, since the caller keeps going without it.
func RecordDegraded(operation, step string, cause error) {
	degradedStepsTotal.WithLabelValues(operation, step).Inc()
	slog.Warn("degraded step",
		slog.String("operation", operation),
		slog.String("step", step),
		slog.Any("error", cause),
	)
}

// NewLogger builds the process logger writing JSON to stderr.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
