package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reputation module.
type Metrics struct {
	KarmaAwarded  *prometheus.CounterVec
	BadgesAwarded *prometheus.CounterVec
}

// New creates a Metrics instance with all reputation metrics registered.
func New() *Metrics {
	return &Metrics{
		KarmaAwarded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_karma_points_awarded_total",
			Help: "Total karma points awarded, by contribution event",
		}, []string{"event"}),
		BadgesAwarded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_badges_awarded_total",
			Help: "Total badges awarded, by badge name",
		}, []string{"badge"}),
	}
}

// AddKarmaAwarded records karma granted for a contribution event.
func (m *Metrics) AddKarmaAwarded(event string, points int) {
	if m == nil {
		return
	}
	m.KarmaAwarded.WithLabelValues(event).Add(float64(points))
}

// IncrementBadgesAwarded records a badge grant.
func (m *Metrics) IncrementBadgesAwarded(badge string) {
	if m == nil {
		return
	}
	m.BadgesAwarded.WithLabelValues(badge).Inc()
}
