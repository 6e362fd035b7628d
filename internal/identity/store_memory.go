package identity

import (
	"context"
	"sync"

	"pawmates/pkg/domain"
	"pawmates/pkg/platform/sentinel"
)

// In-memory stores keep the engine memory-resident. They favor clarity over
// performance and preserve insertion order so discovery streams stay stable.

// InMemoryUserStore is the canonical UserStore implementation.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[domain.UserID]*User
	order []domain.UserID
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[domain.UserID]*User)}
}

func copyUser(u *User) *User {
	cp := *u
	cp.Badges = append([]Badge(nil), u.Badges...)
	cp.Documents = append([]VerificationDocument(nil), u.Documents...)
	return &cp
}

func (s *InMemoryUserStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; ok {
		return sentinel.ErrConflict
	}
	s.users[user.ID] = copyUser(user)
	s.order = append(s.order, user.ID)
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, userID domain.UserID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return copyUser(u), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryUserStore) List(_ context.Context) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*User, 0, len(s.order))
	for _, uid := range s.order {
		out = append(out, copyUser(s.users[uid]))
	}
	return out, nil
}

func (s *InMemoryUserStore) Execute(_ context.Context, userID domain.UserID, validate func(*User) error, apply func(*User)) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(u); err != nil {
			return nil, err
		}
	}
	if apply != nil {
		apply(u)
	}
	return copyUser(u), nil
}

// InMemoryPetStore is the canonical PetStore implementation.
type InMemoryPetStore struct {
	mu    sync.RWMutex
	pets  map[domain.PetID]*Pet
	order []domain.PetID
}

func NewInMemoryPetStore() *InMemoryPetStore {
	return &InMemoryPetStore{pets: make(map[domain.PetID]*Pet)}
}

func copyPet(p *Pet) *Pet {
	cp := *p
	return &cp
}

func (s *InMemoryPetStore) Create(_ context.Context, pet *Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pets[pet.ID]; ok {
		return sentinel.ErrConflict
	}
	s.pets[pet.ID] = copyPet(pet)
	s.order = append(s.order, pet.ID)
	return nil
}

func (s *InMemoryPetStore) FindByID(_ context.Context, petID domain.PetID) (*Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.pets[petID]; ok {
		return copyPet(p), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryPetStore) ListByOwner(_ context.Context, ownerID domain.UserID) ([]*Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Pet
	for _, pid := range s.order {
		if p := s.pets[pid]; p.OwnerID == ownerID {
			out = append(out, copyPet(p))
		}
	}
	return out, nil
}

func (s *InMemoryPetStore) List(_ context.Context) ([]*Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Pet, 0, len(s.order))
	for _, pid := range s.order {
		out = append(out, copyPet(s.pets[pid]))
	}
	return out, nil
}
