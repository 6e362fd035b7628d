// Package app assembles the engine: every store and service behind a single
// facade that serializes operations, owns the client session and notifies
// subscribers after each successful mutation.
package app

import (
	"log/slog"
	"sync"

	"pawmates/internal/community"
	communitymetrics "pawmates/internal/community/metrics"
	"pawmates/internal/identity"
	identitymetrics "pawmates/internal/identity/metrics"
	"pawmates/internal/matching"
	matchingmetrics "pawmates/internal/matching/metrics"
	"pawmates/internal/messaging"
	messagingmetrics "pawmates/internal/messaging/metrics"
	"pawmates/internal/reputation"
	reputationmetrics "pawmates/internal/reputation/metrics"
	"pawmates/internal/session"
)

// Metrics bundles the per-module metric sets. The zero value disables
// instrumentation; module methods tolerate nil receivers.
type Metrics struct {
	Identity   *identitymetrics.Metrics
	Matching   *matchingmetrics.Metrics
	Messaging  *messagingmetrics.Metrics
	Community  *communitymetrics.Metrics
	Reputation *reputationmetrics.Metrics
}

// NewMetrics registers every module metric set on the default registry.
func NewMetrics() Metrics {
	return Metrics{
		Identity:   identitymetrics.New(),
		Matching:   matchingmetrics.New(),
		Messaging:  messagingmetrics.New(),
		Community:  communitymetrics.New(),
		Reputation: reputationmetrics.New(),
	}
}

// Engine is the facade over the whole domain. All operations are serialized
// behind one mutex; stores keep their own locks so they stay independently
// safe, but cross-module sequences observe a single total order.
type Engine struct {
	mu sync.Mutex

	users       *identity.InMemoryUserStore
	pets        *identity.InMemoryPetStore
	swipes      *matching.InMemorySwipeStore
	matchStore  *matching.InMemoryMatchStore
	messages    *messaging.InMemoryMessageStore
	communities *community.InMemoryCommunityStore
	events      *community.InMemoryEventStore
	activity    *reputation.InMemoryActivityStore

	identity   *identity.Service
	matching   *matching.Service
	messaging  *messaging.Service
	community  *community.Service
	reputation *reputation.Service

	session *session.Session
	logger  *slog.Logger
	metrics Metrics

	subscribers []func()
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics wires module metrics through every service.
func WithMetrics(m Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New builds an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		session: session.New(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.users = identity.NewInMemoryUserStore()
	e.pets = identity.NewInMemoryPetStore()
	e.swipes = matching.NewInMemorySwipeStore()
	e.matchStore = matching.NewInMemoryMatchStore()
	e.messages = messaging.NewInMemoryMessageStore()
	e.communities = community.NewInMemoryCommunityStore()
	e.events = community.NewInMemoryEventStore()
	e.activity = reputation.NewInMemoryActivityStore()

	e.identity = identity.NewService(e.users, e.pets,
		identity.WithMetrics(e.metrics.Identity))
	e.matching = matching.NewService(e.users, e.pets, e.swipes, e.matchStore,
		matching.WithMetrics(e.metrics.Matching))
	e.messaging = messaging.NewService(e.messages, e.matchStore, e.users,
		messaging.WithMetrics(e.metrics.Messaging))
	e.reputation = reputation.NewService(e.users, e.activity,
		reputation.WithMetrics(e.metrics.Reputation))
	e.community = community.NewService(e.communities, e.events, e.users,
		community.WithRecorder(e.reputation),
		community.WithMetrics(e.metrics.Community))

	return e
}

// Subscribe registers a callback invoked after every successful mutating
// operation. Callbacks run outside the engine lock, so they may read a fresh
// Snapshot. Not safe to call concurrently with operations.
func (e *Engine) Subscribe(fn func()) {
	e.subscribers = append(e.subscribers, fn)
}

func (e *Engine) notify() {
	for _, fn := range e.subscribers {
		fn()
	}
}
