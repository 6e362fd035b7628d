package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the identity module.
type Metrics struct {
	UsersRegistered      *prometheus.CounterVec
	PetsAdded            prometheus.Counter
	VerificationsDecided *prometheus.CounterVec
}

// New creates a Metrics instance with all identity metrics registered.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_users_registered_total",
			Help: "Total number of users registered, by role",
		}, []string{"role"}),
		PetsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawmates_pets_added_total",
			Help: "Total number of pet profiles created",
		}),
		VerificationsDecided: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_verifications_decided_total",
			Help: "Total number of provider verification decisions, by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementUsersRegistered records a successful registration.
func (m *Metrics) IncrementUsersRegistered(role string) {
	if m == nil {
		return
	}
	m.UsersRegistered.WithLabelValues(role).Inc()
}

// IncrementPetsAdded records a successful pet profile creation.
func (m *Metrics) IncrementPetsAdded() {
	if m == nil {
		return
	}
	m.PetsAdded.Inc()
}

// IncrementVerificationsDecided records a verification decision.
func (m *Metrics) IncrementVerificationsDecided(outcome string) {
	if m == nil {
		return
	}
	m.VerificationsDecided.WithLabelValues(outcome).Inc()
}
