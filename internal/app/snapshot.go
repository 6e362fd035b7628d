package app

import (
	"context"

	"pawmates/internal/community"
	"pawmates/internal/identity"
	"pawmates/internal/matching"
	"pawmates/internal/messaging"
	"pawmates/pkg/domain"
)

// Snapshot is a self-consistent view of the engine for the session's user.
// Every slice and entity is a copy; mutating it does not touch engine state.
type Snapshot struct {
	CurrentUser   *identity.User   `json:"current_user,omitempty"`
	CurrentPet    *identity.Pet    `json:"current_pet,omitempty"`
	CurrentScreen domain.Screen    `json:"current_screen"`
	Filters       matching.Filters `json:"filters"`

	DiscoveryPets  []*identity.Pet                         `json:"discovery_pets"`
	DiscoveryUsers []*identity.Profile                     `json:"discovery_users"`
	Matches        []*matching.Match                       `json:"matches"`
	Messages       map[domain.MatchID][]*messaging.Message `json:"messages"`
	LikedPets      []domain.PetID                          `json:"liked_pets"`
	PassedPets     []domain.PetID                          `json:"passed_pets"`

	Communities []*community.Community      `json:"communities"`
	Events      []*community.CommunityEvent `json:"events"`
}

// Snapshot assembles the reactive view under the engine lock. Signed-out
// sessions see only the shared community state.
func (e *Engine) Snapshot(ctx context.Context) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := &Snapshot{
		CurrentScreen: e.session.CurrentScreen(),
		Filters:       e.session.Filters(),
		Messages:      make(map[domain.MatchID][]*messaging.Message),
	}

	var err error
	if snap.Communities, err = e.community.List(ctx); err != nil {
		return nil, err
	}
	if snap.Events, err = e.community.ListEvents(ctx); err != nil {
		return nil, err
	}

	if !e.session.SignedIn() {
		return snap, nil
	}
	viewer := e.session.CurrentUser()

	if snap.CurrentUser, err = e.identity.GetUser(ctx, viewer); err != nil {
		return nil, err
	}
	if petID := e.session.CurrentPet(); !petID.IsZero() {
		if snap.CurrentPet, err = e.identity.GetPet(ctx, petID); err != nil {
			return nil, err
		}
	}

	if snap.CurrentUser.Role == domain.RolePetParent {
		if snap.DiscoveryPets, err = e.matching.DiscoverPets(ctx, viewer, e.session.Filters()); err != nil {
			return nil, err
		}
		if snap.DiscoveryUsers, err = e.matching.DiscoverProviders(ctx, viewer, e.session.Filters()); err != nil {
			return nil, err
		}
		if snap.LikedPets, err = e.matching.LikedPets(ctx, viewer); err != nil {
			return nil, err
		}
		if snap.PassedPets, err = e.matching.PassedPets(ctx, viewer); err != nil {
			return nil, err
		}
	}

	if snap.Matches, err = e.matching.ListMatches(ctx, viewer); err != nil {
		return nil, err
	}
	for _, m := range snap.Matches {
		msgs, err := e.messaging.List(ctx, m.ID, viewer)
		if err != nil {
			return nil, err
		}
		snap.Messages[m.ID] = msgs
	}
	return snap, nil
}
