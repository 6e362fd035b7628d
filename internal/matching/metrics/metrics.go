package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the matching module.
type Metrics struct {
	SwipesRecorded *prometheus.CounterVec
	MatchesCreated *prometheus.CounterVec
}

// New creates a Metrics instance with all matching metrics registered.
func New() *Metrics {
	return &Metrics{
		SwipesRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_swipes_recorded_total",
			Help: "Total number of swipe decisions recorded, by action",
		}, []string{"action"}),
		MatchesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_matches_created_total",
			Help: "Total number of matches created, by type",
		}, []string{"type"}),
	}
}

// IncrementSwipesRecorded records a swipe decision.
func (m *Metrics) IncrementSwipesRecorded(action string) {
	if m == nil {
		return
	}
	m.SwipesRecorded.WithLabelValues(action).Inc()
}

// IncrementMatchesCreated records a new match.
func (m *Metrics) IncrementMatchesCreated(matchType string) {
	if m == nil {
		return
	}
	m.MatchesCreated.WithLabelValues(matchType).Inc()
}
