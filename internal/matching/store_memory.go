package matching

import (
	"context"
	"sync"

	"pawmates/pkg/domain"
	"pawmates/pkg/platform/sentinel"
)

type swipeRecord struct {
	actions map[domain.PetID]domain.SwipeAction
	liked   []domain.PetID
	passed  []domain.PetID
}

// InMemorySwipeStore is the canonical SwipeStore implementation.
type InMemorySwipeStore struct {
	mu     sync.RWMutex
	byUser map[domain.UserID]*swipeRecord
}

func NewInMemorySwipeStore() *InMemorySwipeStore {
	return &InMemorySwipeStore{byUser: make(map[domain.UserID]*swipeRecord)}
}

func (s *InMemorySwipeStore) record(viewer domain.UserID) *swipeRecord {
	r, ok := s.byUser[viewer]
	if !ok {
		r = &swipeRecord{actions: make(map[domain.PetID]domain.SwipeAction)}
		s.byUser[viewer] = r
	}
	return r
}

func (s *InMemorySwipeStore) Record(_ context.Context, viewer domain.UserID, pet domain.PetID, action domain.SwipeAction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.record(viewer)
	if _, ok := r.actions[pet]; ok {
		return true, nil
	}
	r.actions[pet] = action
	if action.IsPositive() {
		r.liked = append(r.liked, pet)
	} else {
		r.passed = append(r.passed, pet)
	}
	return false, nil
}

func (s *InMemorySwipeStore) HasSwiped(_ context.Context, viewer domain.UserID, pet domain.PetID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byUser[viewer]
	if !ok {
		return false, nil
	}
	_, swiped := r.actions[pet]
	return swiped, nil
}

func (s *InMemorySwipeStore) HasLiked(_ context.Context, viewer domain.UserID, pet domain.PetID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byUser[viewer]
	if !ok {
		return false, nil
	}
	return r.actions[pet].IsPositive(), nil
}

func (s *InMemorySwipeStore) Liked(_ context.Context, viewer domain.UserID) ([]domain.PetID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byUser[viewer]
	if !ok {
		return nil, nil
	}
	return append([]domain.PetID(nil), r.liked...), nil
}

func (s *InMemorySwipeStore) Passed(_ context.Context, viewer domain.UserID) ([]domain.PetID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byUser[viewer]
	if !ok {
		return nil, nil
	}
	return append([]domain.PetID(nil), r.passed...), nil
}

// InMemoryMatchStore is the canonical MatchStore implementation. Matches are
// kept newest-first, matching the feed order the original client rendered.
type InMemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[domain.MatchID]*Match
	order   []domain.MatchID // newest first
}

func NewInMemoryMatchStore() *InMemoryMatchStore {
	return &InMemoryMatchStore{matches: make(map[domain.MatchID]*Match)}
}

func copyMatch(m *Match) *Match {
	cp := *m
	if m.Playdate != nil {
		pd := *m.Playdate
		cp.Playdate = &pd
	}
	if m.Service != nil {
		sv := *m.Service
		cp.Service = &sv
	}
	return &cp
}

func (s *InMemoryMatchStore) Create(_ context.Context, match *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; ok {
		return sentinel.ErrConflict
	}
	s.matches[match.ID] = copyMatch(match)
	s.order = append([]domain.MatchID{match.ID}, s.order...)
	return nil
}

func (s *InMemoryMatchStore) FindByID(_ context.Context, matchID domain.MatchID) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.matches[matchID]; ok {
		return copyMatch(m), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryMatchStore) ListByUser(_ context.Context, userID domain.UserID) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Match
	for _, mid := range s.order {
		if m := s.matches[mid]; m.HasParticipant(userID) {
			out = append(out, copyMatch(m))
		}
	}
	return out, nil
}

func (s *InMemoryMatchStore) List(_ context.Context) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Match, 0, len(s.order))
	for _, mid := range s.order {
		out = append(out, copyMatch(s.matches[mid]))
	}
	return out, nil
}

func (s *InMemoryMatchStore) PlaydateExists(_ context.Context, ownerA, ownerB domain.UserID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.Playdate == nil {
			continue
		}
		p := m.Playdate
		if (p.OwnerA == ownerA && p.OwnerB == ownerB) || (p.OwnerA == ownerB && p.OwnerB == ownerA) {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryMatchStore) ServiceExists(_ context.Context, parent, provider domain.UserID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.Service != nil && m.Service.Parent == parent && m.Service.Provider == provider {
			return true, nil
		}
	}
	return false, nil
}

func (s *InMemoryMatchStore) SetUnread(_ context.Context, matchID domain.MatchID, unread bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[matchID]
	if !ok {
		return sentinel.ErrNotFound
	}
	m.HasUnreadMessages = unread
	return nil
}
