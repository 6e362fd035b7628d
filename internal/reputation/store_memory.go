package reputation

import (
	"context"
	"sync"

	"pawmates/pkg/domain"
)

// InMemoryActivityStore is the canonical ActivityStore implementation.
type InMemoryActivityStore struct {
	mu     sync.RWMutex
	counts map[domain.UserID]map[domain.KarmaEvent]int
}

func NewInMemoryActivityStore() *InMemoryActivityStore {
	return &InMemoryActivityStore{counts: make(map[domain.UserID]map[domain.KarmaEvent]int)}
}

func (s *InMemoryActivityStore) Increment(_ context.Context, userID domain.UserID, event domain.KarmaEvent) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byEvent, ok := s.counts[userID]
	if !ok {
		byEvent = make(map[domain.KarmaEvent]int)
		s.counts[userID] = byEvent
	}
	byEvent[event]++
	return byEvent[event], nil
}

func (s *InMemoryActivityStore) Count(_ context.Context, userID domain.UserID, event domain.KarmaEvent) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[userID][event], nil
}
