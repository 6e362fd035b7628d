package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the community module.
type Metrics struct {
	CommunitiesCreated prometheus.Counter
	PostsCreated       prometheus.Counter
	CommentsCreated    prometheus.Counter
	EventsCreated      prometheus.Counter
}

// New creates a Metrics instance with all community metrics registered.
func New() *Metrics {
	return &Metrics{
		CommunitiesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawmates_communities_created_total",
			Help: "Total number of communities created",
		}),
		PostsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawmates_posts_created_total",
			Help: "Total number of community posts created",
		}),
		CommentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawmates_comments_created_total",
			Help: "Total number of comments created",
		}),
		EventsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawmates_events_created_total",
			Help: "Total number of community events created",
		}),
	}
}

// IncrementCommunitiesCreated records a community creation.
func (m *Metrics) IncrementCommunitiesCreated() {
	if m == nil {
		return
	}
	m.CommunitiesCreated.Inc()
}

// IncrementPostsCreated records a post creation.
func (m *Metrics) IncrementPostsCreated() {
	if m == nil {
		return
	}
	m.PostsCreated.Inc()
}

// IncrementCommentsCreated records a comment creation.
func (m *Metrics) IncrementCommentsCreated() {
	if m == nil {
		return
	}
	m.CommentsCreated.Inc()
}

// IncrementEventsCreated records an event creation.
func (m *Metrics) IncrementEventsCreated() {
	if m == nil {
		return
	}
	m.EventsCreated.Inc()
}
