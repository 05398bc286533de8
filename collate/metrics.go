package collate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// tracer is the package tracer; spans are no-ops until a provider is installed.
var tracer = otel.Tracer("collate")

const metricsNamespace = "collate"

// Metrics holds the Prometheus collectors of collation runs.
type Metrics struct {
	// WitnessesAligned counts witnesses aligned against a graph.
	// Labels: algorithm
	WitnessesAligned *prometheus.CounterVec

	// MatchesAccepted counts accepted token-to-vertex correspondences.
	// Labels: algorithm
	MatchesAccepted *prometheus.CounterVec

	// AlignmentDuration measures one witness alignment, cube included.
	// Labels: algorithm
	AlignmentDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		WitnessesAligned: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "witnesses_aligned_total",
			Help:      "Total witnesses aligned against a variant graph",
		}, []string{"algorithm"}),
		MatchesAccepted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "matches_accepted_total",
			Help:      "Total token to vertex correspondences accepted",
		}, []string{"algorithm"}),
		AlignmentDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "alignment_duration_seconds",
			Help:      "Duration of one witness alignment in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(a Algorithm, matches int, d time.Duration) {
	if m == nil {
		return
	}
	m.WitnessesAligned.WithLabelValues(string(a)).Inc()
	m.MatchesAccepted.WithLabelValues(string(a)).Add(float64(matches))
	m.AlignmentDuration.WithLabelValues(string(a)).Observe(d.Seconds())
}
