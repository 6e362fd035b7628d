package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the messaging module.
type Metrics struct {
	MessagesSent *prometheus.CounterVec
}

// New creates a Metrics instance with all messaging metrics registered.
func New() *Metrics {
	return &Metrics{
		MessagesSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawmates_messages_sent_total",
			Help: "Total number of messages sent, by message type",
		}, []string{"type"}),
	}
}

// IncrementMessagesSent records a sent message.
func (m *Metrics) IncrementMessagesSent(msgType string) {
	if m == nil {
		return
	}
	m.MessagesSent.WithLabelValues(msgType).Inc()
}
