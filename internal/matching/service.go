package matching

import (
	"context"
	"errors"

	"pawmates/internal/identity"
	matchingmetrics "pawmates/internal/matching/metrics"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/sentinel"
	"pawmates/pkg/requestcontext"
)

// UserDirectory is the slice of the identity store the matching engine reads.
type UserDirectory interface {
	FindByID(ctx context.Context, userID domain.UserID) (*identity.User, error)
	List(ctx context.Context) ([]*identity.User, error)
}

// PetDirectory is the slice of the pet store the matching engine reads.
type PetDirectory interface {
	FindByID(ctx context.Context, petID domain.PetID) (*identity.Pet, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*identity.Pet, error)
	List(ctx context.Context) ([]*identity.Pet, error)
}

// Service implements discovery, swipes and connects.
type Service struct {
	users   UserDirectory
	pets    PetDirectory
	swipes  SwipeStore
	matches MatchStore
	metrics *matchingmetrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches module metrics.
func WithMetrics(m *matchingmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(users UserDirectory, pets PetDirectory, swipes SwipeStore, matches MatchStore, opts ...Option) *Service {
	s := &Service{users: users, pets: pets, swipes: swipes, matches: matches}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) findUser(ctx context.Context, userID domain.UserID) (*identity.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return u, nil
}

// requireSwiper checks that the viewer exists and may use pet discovery.
func (s *Service) requireSwiper(ctx context.Context, viewerID domain.UserID) (*identity.User, error) {
	viewer, err := s.findUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer.Role != domain.RolePetParent {
		return nil, dErrors.New(dErrors.CodeRoleViolation, "only pet-parents swipe on pets")
	}
	return viewer, nil
}

// DiscoverPets returns the viewer's candidate pet stream: pets of other
// pet-parents, never swiped, passing the session filters. The stream order is
// the pet creation order, stable under unrelated mutation.
func (s *Service) DiscoverPets(ctx context.Context, viewerID domain.UserID, f Filters) ([]*identity.Pet, error) {
	if _, err := s.requireSwiper(ctx, viewerID); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	pets, err := s.pets.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*identity.Pet
	for _, pet := range pets {
		if pet.OwnerID == viewerID {
			continue
		}
		swiped, err := s.swipes.HasSwiped(ctx, viewerID, pet.ID)
		if err != nil {
			return nil, err
		}
		if swiped {
			continue
		}
		if !f.MatchesPet(pet.AgeYears, pet.DistanceKm, pet.Type, pet.Size) {
			continue
		}
		out = append(out, pet)
	}
	return out, nil
}

// DiscoverProviders returns verified providers the viewer has not yet
// connected with, privacy-masked for the viewer.
func (s *Service) DiscoverProviders(ctx context.Context, viewerID domain.UserID, f Filters) ([]*identity.Profile, error) {
	viewer, err := s.findUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer.Role != domain.RolePetParent {
		return nil, dErrors.New(dErrors.CodeRoleViolation, "only pet-parents browse providers")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*identity.Profile
	for _, u := range users {
		if !u.Role.IsProvider() || !u.Verified {
			continue
		}
		if !f.MatchesProvider(u.Role) {
			continue
		}
		connected, err := s.matches.ServiceExists(ctx, viewerID, u.ID)
		if err != nil {
			return nil, err
		}
		if connected {
			continue
		}
		out = append(out, u.ProfileFor(viewerID))
	}
	return out, nil
}

// Swipe records the viewer's decision on a pet. Swiping an already-swiped pet
// is a no-op. On like or superlike the mutual-like predicate is evaluated:
// when the target pet's owner has previously liked any of the viewer's pets,
// a pet-playdate match is created (at most one per owner pair). The returned
// match is nil when no match was created.
func (s *Service) Swipe(ctx context.Context, viewerID domain.UserID, petID domain.PetID, action domain.SwipeAction) (*Match, error) {
	if !action.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid swipe action")
	}
	if _, err := s.requireSwiper(ctx, viewerID); err != nil {
		return nil, err
	}
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "pet not found")
		}
		return nil, err
	}
	if pet.OwnerID == viewerID {
		return nil, dErrors.New(dErrors.CodeValidation, "cannot swipe on your own pet")
	}

	already, err := s.swipes.Record(ctx, viewerID, petID, action)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, nil
	}
	s.metrics.IncrementSwipesRecorded(action.String())

	if !action.IsPositive() {
		return nil, nil
	}
	mutual, viewerPet, err := s.mutualLike(ctx, viewerID, pet.OwnerID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return nil, nil
	}
	exists, err := s.matches.PlaydateExists(ctx, viewerID, pet.OwnerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	match, err := NewPlaydateMatch(domain.NewMatchID(), PlaydatePair{
		OwnerA: viewerID,
		OwnerB: pet.OwnerID,
		PetA:   viewerPet,
		PetB:   petID,
	}, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create match")
	}
	s.metrics.IncrementMatchesCreated(match.Type.String())
	return match, nil
}

// mutualLike reports whether the other owner has liked any of the viewer's
// pets, returning the first such pet. Uses only state recorded before the
// current swipe.
func (s *Service) mutualLike(ctx context.Context, viewerID, otherOwner domain.UserID) (bool, domain.PetID, error) {
	viewerPets, err := s.pets.ListByOwner(ctx, viewerID)
	if err != nil {
		return false, domain.PetID{}, err
	}
	for _, vp := range viewerPets {
		liked, err := s.swipes.HasLiked(ctx, otherOwner, vp.ID)
		if err != nil {
			return false, domain.PetID{}, err
		}
		if liked {
			return true, vp.ID, nil
		}
	}
	return false, domain.PetID{}, nil
}

// Connect creates a service match between a pet-parent and a verified
// provider. The match type is derived from the provider's role.
func (s *Service) Connect(ctx context.Context, parentID, providerID domain.UserID) (*Match, error) {
	parent, err := s.findUser(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.Role != domain.RolePetParent {
		return nil, dErrors.New(dErrors.CodeRoleViolation, "only pet-parents connect with providers")
	}
	provider, err := s.findUser(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !provider.Role.IsProvider() {
		return nil, dErrors.New(dErrors.CodeRoleViolation, "connect target must be a provider")
	}
	if provider.Gated() {
		return nil, dErrors.New(dErrors.CodeGated, "provider is not verified")
	}
	exists, err := s.matches.ServiceExists(ctx, parentID, providerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dErrors.New(dErrors.CodeConflict, "already connected with this provider")
	}

	match, err := NewServiceMatch(domain.NewMatchID(), ServicePair{Parent: parentID, Provider: providerID}, provider.Role, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create match")
	}
	s.metrics.IncrementMatchesCreated(match.Type.String())
	return match, nil
}

// ListMatches returns the user's matches, newest first.
func (s *Service) ListMatches(ctx context.Context, userID domain.UserID) ([]*Match, error) {
	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.matches.ListByUser(ctx, userID)
}

// GetMatch fetches a match by ID.
func (s *Service) GetMatch(ctx context.Context, matchID domain.MatchID) (*Match, error) {
	m, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "match not found")
		}
		return nil, err
	}
	return m, nil
}

// LikedPets returns the viewer's liked pet IDs in swipe order.
func (s *Service) LikedPets(ctx context.Context, viewerID domain.UserID) ([]domain.PetID, error) {
	return s.swipes.Liked(ctx, viewerID)
}

// PassedPets returns the viewer's passed pet IDs in swipe order.
func (s *Service) PassedPets(ctx context.Context, viewerID domain.UserID) ([]domain.PetID, error) {
	return s.swipes.Passed(ctx, viewerID)
}
