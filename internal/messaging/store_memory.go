package messaging

import (
	"context"
	"sync"

	"pawmates/pkg/domain"
)

// InMemoryMessageStore is the canonical MessageStore implementation.
type InMemoryMessageStore struct {
	mu      sync.RWMutex
	byMatch map[domain.MatchID][]*Message
	all     []*Message
}

func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{byMatch: make(map[domain.MatchID][]*Message)}
}

func copyMessage(m *Message) *Message {
	cp := *m
	return &cp
}

func (s *InMemoryMessageStore) Append(_ context.Context, msg *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.byMatch[msg.MatchID]
	stored := copyMessage(msg)
	if n := len(log); n > 0 && stored.Timestamp.Before(log[n-1].Timestamp) {
		// Keep per-match timestamps non-decreasing even if the caller's
		// clock stalls.
		stored.Timestamp = log[n-1].Timestamp
	}
	s.byMatch[msg.MatchID] = append(log, stored)
	s.all = append(s.all, stored)
	*msg = *stored
	return nil
}

func (s *InMemoryMessageStore) ListByMatch(_ context.Context, matchID domain.MatchID) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.byMatch[matchID]
	out := make([]*Message, 0, len(log))
	for _, m := range log {
		out = append(out, copyMessage(m))
	}
	return out, nil
}

func (s *InMemoryMessageStore) MarkRead(_ context.Context, matchID domain.MatchID, reader domain.UserID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, m := range s.byMatch[matchID] {
		if m.SenderID != reader && !m.Read {
			m.Read = true
			changed++
		}
	}
	return changed, nil
}

func (s *InMemoryMessageStore) List(_ context.Context) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Message, 0, len(s.all))
	for _, m := range s.all {
		out = append(out, copyMessage(m))
	}
	return out, nil
}
