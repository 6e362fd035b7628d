package identity

import (
	"context"
	"errors"
	"strings"

	identitymetrics "pawmates/internal/identity/metrics"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/sentinel"
	"pawmates/pkg/requestcontext"
)

// Service orchestrates account onboarding, verification and profile changes.
type Service struct {
	users   UserStore
	pets    PetStore
	metrics *identitymetrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches module metrics.
func WithMetrics(m *identitymetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(users UserStore, pets PetStore, opts ...Option) *Service {
	s := &Service{users: users, pets: pets}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func wrapUserErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	return err
}

// Register creates a user in its initial state. Pet-parents come out
// approved and verified; provider roles start pending review.
func (s *Service) Register(ctx context.Context, p NewUserParams) (*User, error) {
	user, err := NewUser(domain.NewUserID(), p, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register user")
	}
	s.metrics.IncrementUsersRegistered(user.Role.String())
	return user, nil
}

// DecideVerification records an approval or rejection for a pending provider
// and derives the verified flag.
func (s *Service) DecideVerification(ctx context.Context, userID domain.UserID, outcome domain.VerificationStatus) (*User, error) {
	if outcome != domain.VerificationApproved && outcome != domain.VerificationRejected {
		return nil, dErrors.New(dErrors.CodeValidation, "verification outcome must be approved or rejected")
	}
	user, err := s.users.Execute(ctx, userID,
		func(u *User) error { return u.CanDecideVerification() },
		func(u *User) { u.ApplyVerificationDecision(outcome) },
	)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	s.metrics.IncrementVerificationsDecided(outcome.String())
	return user, nil
}

// SubmitDocuments appends opaque document handles to a pending provider's
// verification request.
func (s *Service) SubmitDocuments(ctx context.Context, userID domain.UserID, handles []string) (*User, error) {
	now := requestcontext.Now(ctx)
	user, err := s.users.Execute(ctx, userID,
		func(u *User) error {
			if !u.Role.IsProvider() {
				return dErrors.New(dErrors.CodeRoleViolation, "only provider accounts submit documents")
			}
			if u.VerificationStatus != domain.VerificationPending {
				return dErrors.New(dErrors.CodeConflict, "verification already decided")
			}
			return nil
		},
		func(u *User) {
			for _, h := range handles {
				h = strings.TrimSpace(h)
				if h == "" {
					continue
				}
				u.Documents = append(u.Documents, VerificationDocument{Handle: h, SubmittedAt: now})
			}
		},
	)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return user, nil
}

// UpdatePrivacy sets the flag controlling whether karma and badges are shown
// to matching peers.
func (s *Service) UpdatePrivacy(ctx context.Context, userID domain.UserID, show bool) (*User, error) {
	user, err := s.users.Execute(ctx, userID, nil,
		func(u *User) { u.ShowCommunityActivity = show },
	)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return user, nil
}

// ProfileUpdate carries the editable profile fields. Nil pointers leave the
// field untouched.
type ProfileUpdate struct {
	DisplayName *string
	Location    *string
	Bio         *string
	PhotoURL    *string
	Contact     *ContactInfo

	Specialties      []string
	Services         []string
	OrganizationType *string
	BusinessHours    *string
}

// UpdateProfile applies a partial profile edit.
func (s *Service) UpdateProfile(ctx context.Context, userID domain.UserID, upd ProfileUpdate) (*User, error) {
	user, err := s.users.Execute(ctx, userID,
		func(u *User) error {
			if upd.DisplayName != nil && strings.TrimSpace(*upd.DisplayName) == "" {
				return dErrors.New(dErrors.CodeValidation, "display name cannot be empty")
			}
			if !u.Role.IsProvider() && (upd.Specialties != nil || upd.Services != nil || upd.OrganizationType != nil || upd.BusinessHours != nil) {
				return dErrors.New(dErrors.CodeRoleViolation, "provider fields require a provider role")
			}
			return nil
		},
		func(u *User) {
			if upd.DisplayName != nil {
				u.DisplayName = strings.TrimSpace(*upd.DisplayName)
			}
			if upd.Location != nil {
				u.Location = strings.TrimSpace(*upd.Location)
			}
			if upd.Bio != nil {
				u.Bio = *upd.Bio
			}
			if upd.PhotoURL != nil {
				u.PhotoURL = *upd.PhotoURL
			}
			if upd.Contact != nil {
				u.Contact = *upd.Contact
			}
			if upd.Specialties != nil {
				u.Specialties = upd.Specialties
			}
			if upd.Services != nil {
				u.Services = upd.Services
			}
			if upd.OrganizationType != nil {
				u.OrganizationType = *upd.OrganizationType
			}
			if upd.BusinessHours != nil {
				u.BusinessHours = *upd.BusinessHours
			}
		},
	)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return user, nil
}

// AddPet creates a pet profile owned by a pet-parent.
func (s *Service) AddPet(ctx context.Context, p NewPetParams) (*Pet, error) {
	owner, err := s.users.FindByID(ctx, p.OwnerID)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	if owner.Role != domain.RolePetParent {
		return nil, dErrors.New(dErrors.CodeRoleViolation, "only pet-parents own pets")
	}
	pet, err := NewPet(domain.NewPetID(), p)
	if err != nil {
		return nil, err
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create pet")
	}
	s.metrics.IncrementPetsAdded()
	return pet, nil
}

// GetUser fetches a user by ID.
func (s *Service) GetUser(ctx context.Context, userID domain.UserID) (*User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return user, nil
}

// GetProfile fetches the privacy-masked view of a user as seen by viewer.
func (s *Service) GetProfile(ctx context.Context, userID, viewer domain.UserID) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapUserErr(err)
	}
	return user.ProfileFor(viewer), nil
}

// GetPet fetches a pet by ID.
func (s *Service) GetPet(ctx context.Context, petID domain.PetID) (*Pet, error) {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "pet not found")
		}
		return nil, err
	}
	return pet, nil
}

// ListPets returns the pets owned by a user, in creation order.
func (s *Service) ListPets(ctx context.Context, ownerID domain.UserID) ([]*Pet, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, wrapUserErr(err)
	}
	return s.pets.ListByOwner(ctx, ownerID)
}
