package identity

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/requestcontext"
)

func newIdentityService() *Service {
	return NewService(NewInMemoryUserStore(), NewInMemoryPetStore())
}

func registerParent(t *testing.T, svc *Service, name string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), NewUserParams{
		Role:        domain.RolePetParent,
		Email:       name + "@example.com",
		DisplayName: name,
	})
	require.NoError(t, err)
	return u
}

func registerProvider(t *testing.T, svc *Service, role domain.Role, name string) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), NewUserParams{
		Role:        role,
		Email:       name + "@example.com",
		DisplayName: name,
	})
	require.NoError(t, err)
	return u
}

func TestService_Register(t *testing.T) {
	joined := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), joined)

	t.Run("pet-parent comes out approved and verified", func(t *testing.T) {
		svc := newIdentityService()
		u, err := svc.Register(ctx, NewUserParams{
			Role:        domain.RolePetParent,
			Email:       "sarah@example.com",
			DisplayName: "Sarah",
			Location:    "Central Park Area",
		})
		require.NoError(t, err)
		assert.False(t, u.ID.IsZero())
		assert.Equal(t, domain.VerificationApproved, u.VerificationStatus)
		assert.True(t, u.Verified)
		assert.False(t, u.Gated())
		assert.Zero(t, u.KarmaPoints)
		assert.Empty(t, u.Badges)
		assert.Equal(t, joined, u.JoinedAt)
	})

	t.Run("provider starts pending with documents stored", func(t *testing.T) {
		svc := newIdentityService()
		u, err := svc.Register(ctx, NewUserParams{
			Role:            domain.RoleVeterinarian,
			Email:           "chen@example.com",
			DisplayName:     "Dr. Emily Chen",
			Specialties:     []string{"Dogs", "Cats", "Dogs"},
			DocumentHandles: []string{"license.pdf", " ", "diploma.pdf"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationPending, u.VerificationStatus)
		assert.False(t, u.Verified)
		assert.True(t, u.Gated())
		assert.Equal(t, []string{"Dogs", "Cats"}, u.Specialties, "duplicates collapse")
		require.Len(t, u.Documents, 2)
		assert.Equal(t, "license.pdf", u.Documents[0].Handle)
		assert.Equal(t, joined, u.Documents[0].SubmittedAt)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newIdentityService()
		cases := []struct {
			name   string
			params NewUserParams
		}{
			{"invalid role", NewUserParams{Role: "wizard", Email: "a@b.c", DisplayName: "A"}},
			{"empty email", NewUserParams{Role: domain.RolePetParent, Email: "  ", DisplayName: "A"}},
			{"empty display name", NewUserParams{Role: domain.RolePetParent, Email: "a@b.c", DisplayName: " "}},
			{"oversized display name", NewUserParams{Role: domain.RolePetParent, Email: "a@b.c", DisplayName: strings.Repeat("x", 129)}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tc.params)
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			})
		}
	})
}

func TestService_DecideVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("approval verifies the provider", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		u, err := svc.DecideVerification(ctx, vet.ID, domain.VerificationApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationApproved, u.VerificationStatus)
		assert.True(t, u.Verified)
		assert.False(t, u.Gated())
	})

	t.Run("rejection leaves the provider gated", func(t *testing.T) {
		svc := newIdentityService()
		store := registerProvider(t, svc, domain.RolePetStore, "store")
		u, err := svc.DecideVerification(ctx, store.ID, domain.VerificationRejected)
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationRejected, u.VerificationStatus)
		assert.False(t, u.Verified)
		assert.True(t, u.Gated())
	})

	t.Run("a decision is final", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		_, err := svc.DecideVerification(ctx, vet.ID, domain.VerificationApproved)
		require.NoError(t, err)
		_, err = svc.DecideVerification(ctx, vet.ID, domain.VerificationRejected)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("pet-parents are not reviewed", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		_, err := svc.DecideVerification(ctx, sarah.ID, domain.VerificationApproved)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeRoleViolation))
	})

	t.Run("outcome must be terminal", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		_, err := svc.DecideVerification(ctx, vet.ID, domain.VerificationPending)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newIdentityService()
		_, err := svc.DecideVerification(ctx, domain.NewUserID(), domain.VerificationApproved)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestService_SubmitDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("appends to a pending provider", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		u, err := svc.SubmitDocuments(ctx, vet.ID, []string{"license.pdf", "", "insurance.pdf"})
		require.NoError(t, err)
		require.Len(t, u.Documents, 2)
		assert.Equal(t, "insurance.pdf", u.Documents[1].Handle)
	})

	t.Run("rejected after the decision", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		_, err := svc.DecideVerification(ctx, vet.ID, domain.VerificationApproved)
		require.NoError(t, err)
		_, err = svc.SubmitDocuments(ctx, vet.ID, []string{"late.pdf"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("pet-parents have no verification flow", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		_, err := svc.SubmitDocuments(ctx, sarah.ID, []string{"doc.pdf"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeRoleViolation))
	})
}

func TestService_PrivacyMasking(t *testing.T) {
	ctx := context.Background()
	svc := newIdentityService()
	sarah := registerParent(t, svc, "sarah")
	mike := registerParent(t, svc, "mike")

	// Give Sarah some community activity to mask.
	_, err := svc.users.Execute(ctx, sarah.ID, nil, func(u *User) {
		require.NoError(t, u.AddKarma(25))
		u.AwardBadge(Badge{Name: "First Post"})
	})
	require.NoError(t, err)

	t.Run("hidden from peers by default", func(t *testing.T) {
		p, err := svc.GetProfile(ctx, sarah.ID, mike.ID)
		require.NoError(t, err)
		assert.Nil(t, p.Activity)
		assert.Equal(t, "sarah", p.DisplayName)
	})

	t.Run("always visible to the owner", func(t *testing.T) {
		p, err := svc.GetProfile(ctx, sarah.ID, sarah.ID)
		require.NoError(t, err)
		require.NotNil(t, p.Activity)
		assert.Equal(t, 25, p.Activity.KarmaPoints)
		require.Len(t, p.Activity.Badges, 1)
	})

	t.Run("opting in reveals to peers", func(t *testing.T) {
		_, err := svc.UpdatePrivacy(ctx, sarah.ID, true)
		require.NoError(t, err)
		p, err := svc.GetProfile(ctx, sarah.ID, mike.ID)
		require.NoError(t, err)
		require.NotNil(t, p.Activity)
		assert.Equal(t, 25, p.Activity.KarmaPoints)
		require.Len(t, p.Activity.Badges, 1)
	})

	t.Run("opting back out hides again", func(t *testing.T) {
		_, err := svc.UpdatePrivacy(ctx, sarah.ID, false)
		require.NoError(t, err)
		p, err := svc.GetProfile(ctx, sarah.ID, mike.ID)
		require.NoError(t, err)
		assert.Nil(t, p.Activity)
	})

	t.Run("an opted-in zero-karma profile is distinguishable from a masked one", func(t *testing.T) {
		_, err := svc.UpdatePrivacy(ctx, mike.ID, true)
		require.NoError(t, err)
		p, err := svc.GetProfile(ctx, mike.ID, sarah.ID)
		require.NoError(t, err)
		require.NotNil(t, p.Activity)
		assert.Zero(t, p.Activity.KarmaPoints)
		assert.NotNil(t, p.Activity.Badges)

		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"karma_points":0`)
		assert.Contains(t, string(data), `"badges":[]`)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	str := func(s string) *string { return &s }

	t.Run("partial edit leaves other fields untouched", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		u, err := svc.UpdateProfile(ctx, sarah.ID, ProfileUpdate{
			Location: str("Downtown"),
			Bio:      str("Dog mom."),
		})
		require.NoError(t, err)
		assert.Equal(t, "sarah", u.DisplayName)
		assert.Equal(t, "Downtown", u.Location)
		assert.Equal(t, "Dog mom.", u.Bio)
	})

	t.Run("display name cannot be blanked", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		_, err := svc.UpdateProfile(ctx, sarah.ID, ProfileUpdate{DisplayName: str("  ")})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("provider fields need a provider role", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		_, err := svc.UpdateProfile(ctx, sarah.ID, ProfileUpdate{BusinessHours: str("9-5")})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeRoleViolation))

		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		u, err := svc.UpdateProfile(ctx, vet.ID, ProfileUpdate{
			Specialties:   []string{"Exotics"},
			BusinessHours: str("Mon-Fri 9AM-6PM"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Exotics"}, u.Specialties)
		assert.Equal(t, "Mon-Fri 9AM-6PM", u.BusinessHours)
	})

	t.Run("failed validation leaves the user unchanged", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		_, err := svc.UpdateProfile(ctx, sarah.ID, ProfileUpdate{
			DisplayName: str(""),
			Location:    str("Elsewhere"),
		})
		require.Error(t, err)
		u, err := svc.GetUser(ctx, sarah.ID)
		require.NoError(t, err)
		assert.Equal(t, "sarah", u.DisplayName)
		assert.Empty(t, u.Location)
	})
}

func TestService_AddPet(t *testing.T) {
	ctx := context.Background()

	validParams := func(owner domain.UserID) NewPetParams {
		return NewPetParams{
			OwnerID:    owner,
			Name:       "Bella",
			AgeYears:   3,
			Type:       domain.PetTypeDog,
			Breed:      "Golden Retriever",
			Size:       domain.PetSizeLarge,
			Energy:     domain.EnergyHigh,
			DistanceKm: 2,
		}
	}

	t.Run("creates an unverified pet for a pet-parent", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		pet, err := svc.AddPet(ctx, validParams(sarah.ID))
		require.NoError(t, err)
		assert.False(t, pet.ID.IsZero())
		assert.Equal(t, sarah.ID, pet.OwnerID)
		assert.False(t, pet.Verified)

		pets, err := svc.ListPets(ctx, sarah.ID)
		require.NoError(t, err)
		require.Len(t, pets, 1)
		assert.Equal(t, pet.ID, pets[0].ID)
	})

	t.Run("providers cannot own pets", func(t *testing.T) {
		svc := newIdentityService()
		vet := registerProvider(t, svc, domain.RoleVeterinarian, "vet")
		_, err := svc.AddPet(ctx, validParams(vet.ID))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeRoleViolation))
	})

	t.Run("unknown owner", func(t *testing.T) {
		svc := newIdentityService()
		_, err := svc.AddPet(ctx, validParams(domain.NewUserID()))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("profile invariants", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		cases := []struct {
			name   string
			mutate func(*NewPetParams)
		}{
			{"empty name", func(p *NewPetParams) { p.Name = " " }},
			{"negative age", func(p *NewPetParams) { p.AgeYears = -1 }},
			{"invalid type", func(p *NewPetParams) { p.Type = "dragon" }},
			{"invalid size", func(p *NewPetParams) { p.Size = "huge" }},
			{"invalid energy", func(p *NewPetParams) { p.Energy = "turbo" }},
			{"oversized bio", func(p *NewPetParams) { p.Bio = strings.Repeat("a", 301) }},
			{"too many interests", func(p *NewPetParams) {
				p.Interests = []string{"a", "b", "c", "d", "e", "f", "g"}
			}},
			{"too many personality traits", func(p *NewPetParams) {
				p.Personality = []string{"a", "b", "c", "d", "e"}
			}},
			{"negative distance", func(p *NewPetParams) { p.DistanceKm = -1 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				params := validParams(sarah.ID)
				tc.mutate(&params)
				_, err := svc.AddPet(ctx, params)
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			})
		}
	})

	t.Run("list attributes dedupe before the limits apply", func(t *testing.T) {
		svc := newIdentityService()
		sarah := registerParent(t, svc, "sarah")
		params := validParams(sarah.ID)
		params.Interests = []string{"Fetch", " Fetch ", "Swimming", "Swimming", "Parks", "Treats", "Naps", "Walks"}
		pet, err := svc.AddPet(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fetch", "Swimming", "Parks", "Treats", "Naps", "Walks"}, pet.Interests)
	})
}

func TestUser_KarmaAndBadges(t *testing.T) {
	u := &User{}

	require.NoError(t, u.AddKarma(5))
	require.NoError(t, u.AddKarma(0))
	assert.Equal(t, 5, u.KarmaPoints)

	err := u.AddKarma(-1)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	assert.Equal(t, 5, u.KarmaPoints)

	assert.True(t, u.AwardBadge(Badge{Name: "First Post"}))
	assert.False(t, u.AwardBadge(Badge{Name: "First Post"}), "badges are unique by name")
	assert.Len(t, u.Badges, 1)
	assert.True(t, u.HasBadge("First Post"))
	assert.False(t, u.HasBadge("Event Organizer"))
}
