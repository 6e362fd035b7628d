package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmates/internal/identity"
	"pawmates/internal/matching"
	"pawmates/internal/reputation"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

func parentParams(name string) identity.NewUserParams {
	return identity.NewUserParams{
		Role:        domain.RolePetParent,
		Email:       name + "@example.com",
		DisplayName: name,
	}
}

func petParams(owner domain.UserID, name string) identity.NewPetParams {
	return identity.NewPetParams{
		OwnerID:    owner,
		Name:       name,
		AgeYears:   3,
		Type:       domain.PetTypeDog,
		Size:       domain.PetSizeMedium,
		Energy:     domain.EnergyMedium,
		DistanceKm: 5,
	}
}

func TestEngine_Onboarding(t *testing.T) {
	ctx := context.Background()

	t.Run("registering a pet-parent signs in and heads to profile setup", func(t *testing.T) {
		e := New()
		sarah, err := e.Register(ctx, parentParams("sarah"))
		require.NoError(t, err)

		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		require.NotNil(t, snap.CurrentUser)
		assert.Equal(t, sarah.ID, snap.CurrentUser.ID)
		assert.Equal(t, domain.ScreenProfileSetup, snap.CurrentScreen)
	})

	t.Run("registering a provider heads to verification pending", func(t *testing.T) {
		e := New()
		_, err := e.Register(ctx, identity.NewUserParams{
			Role:        domain.RoleVeterinarian,
			Email:       "vet@example.com",
			DisplayName: "vet",
		})
		require.NoError(t, err)

		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ScreenVerificationPending, snap.CurrentScreen)
	})

	t.Run("failed registration leaves the session alone", func(t *testing.T) {
		e := New()
		_, err := e.Register(ctx, identity.NewUserParams{Role: domain.RolePetParent})
		require.Error(t, err)

		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Nil(t, snap.CurrentUser)
		assert.Equal(t, domain.ScreenWelcome, snap.CurrentScreen)
	})

	t.Run("sign in, navigate, sign out", func(t *testing.T) {
		e := New()
		sarah, err := e.Register(ctx, parentParams("sarah"))
		require.NoError(t, err)
		require.NoError(t, e.SignOut(ctx))

		_, err = e.SignIn(ctx, sarah.ID)
		require.NoError(t, err)
		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ScreenMain, snap.CurrentScreen)

		require.NoError(t, e.Navigate(ctx, domain.ScreenCommunity))
		err = e.Navigate(ctx, "lobby")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

		require.NoError(t, e.SignOut(ctx))
		snap, err = e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Nil(t, snap.CurrentUser)
		assert.Equal(t, domain.ScreenWelcome, snap.CurrentScreen)
		assert.Equal(t, matching.DefaultFilters(), snap.Filters)
	})

	t.Run("sign in with an unknown user fails", func(t *testing.T) {
		e := New()
		_, err := e.SignIn(ctx, domain.NewUserID())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestEngine_PetSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("first own pet becomes the active profile", func(t *testing.T) {
		e := New()
		sarah, err := e.Register(ctx, parentParams("sarah"))
		require.NoError(t, err)

		bella, err := e.AddPet(ctx, petParams(sarah.ID, "Bella"))
		require.NoError(t, err)
		luna, err := e.AddPet(ctx, petParams(sarah.ID, "Luna"))
		require.NoError(t, err)

		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		require.NotNil(t, snap.CurrentPet)
		assert.Equal(t, bella.ID, snap.CurrentPet.ID, "second pet does not displace the first")

		require.NoError(t, e.SelectPet(ctx, luna.ID))
		snap, err = e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, luna.ID, snap.CurrentPet.ID)
	})

	t.Run("selecting another user's pet is rejected", func(t *testing.T) {
		e := New()
		sarah, err := e.Register(ctx, parentParams("sarah"))
		require.NoError(t, err)
		bella, err := e.AddPet(ctx, petParams(sarah.ID, "Bella"))
		require.NoError(t, err)

		_, err = e.Register(ctx, parentParams("mike"))
		require.NoError(t, err)
		err = e.SelectPet(ctx, bella.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestEngine_Subscribers(t *testing.T) {
	ctx := context.Background()
	e := New()
	notified := 0
	e.Subscribe(func() { notified++ })

	_, err := e.Register(ctx, parentParams("sarah"))
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	_, err = e.Register(ctx, identity.NewUserParams{Role: domain.RolePetParent})
	require.Error(t, err)
	assert.Equal(t, 1, notified, "failed operations notify nobody")

	_, err = e.ListCommunities(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, notified, "views notify nobody")

	t.Run("subscribers can read a fresh snapshot", func(t *testing.T) {
		var seen domain.Screen
		e.Subscribe(func() {
			snap, err := e.Snapshot(ctx)
			require.NoError(t, err)
			seen = snap.CurrentScreen
		})
		require.NoError(t, e.Navigate(ctx, domain.ScreenMatches))
		assert.Equal(t, domain.ScreenMatches, seen)
	})
}

func TestEngine_MatchAndMessageFlow(t *testing.T) {
	ctx := context.Background()
	e := New()

	sarah, err := e.Register(ctx, parentParams("sarah"))
	require.NoError(t, err)
	bella, err := e.AddPet(ctx, petParams(sarah.ID, "Bella"))
	require.NoError(t, err)

	mike, err := e.Register(ctx, parentParams("mike"))
	require.NoError(t, err)
	maxPet, err := e.AddPet(ctx, petParams(mike.ID, "Max"))
	require.NoError(t, err)

	// Mike is signed in; Bella shows up in his discovery stream.
	snap, err := e.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.DiscoveryPets, 1)
	assert.Equal(t, bella.ID, snap.DiscoveryPets[0].ID)

	m, err := e.Swipe(ctx, mike.ID, bella.ID, domain.SwipeLike)
	require.NoError(t, err)
	require.Nil(t, m)

	m, err = e.Swipe(ctx, sarah.ID, maxPet.ID, domain.SwipeLike)
	require.NoError(t, err)
	require.NotNil(t, m, "mutual like matches")

	msg, err := e.SendMessage(ctx, m.ID, sarah.ID, "Bella says hi!", domain.MessageTypeText)
	require.NoError(t, err)
	assert.Equal(t, sarah.ID, msg.SenderID)

	matches, err := e.ListMatches(ctx, mike.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].HasUnreadMessages)

	require.NoError(t, e.MarkRead(ctx, m.ID, mike.ID))
	got, err := e.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.HasUnreadMessages)

	t.Run("snapshot carries matches and their logs", func(t *testing.T) {
		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Matches, 1)
		require.Len(t, snap.Messages[m.ID], 1)
		assert.Equal(t, "Bella says hi!", snap.Messages[m.ID][0].Content)
		assert.Equal(t, []domain.PetID{bella.ID}, snap.LikedPets, "mike is signed in")
		assert.Empty(t, snap.DiscoveryPets, "bella was swiped away")
	})
}

func TestEngine_SessionFilters(t *testing.T) {
	ctx := context.Background()
	e := New()
	sarah, err := e.Register(ctx, parentParams("sarah"))
	require.NoError(t, err)
	_, err = e.AddPet(ctx, petParams(sarah.ID, "Bella"))
	require.NoError(t, err)
	mike, err := e.Register(ctx, parentParams("mike"))
	require.NoError(t, err)
	far := petParams(mike.ID, "Rex")
	far.DistanceKm = 50
	_, err = e.AddPet(ctx, far)
	require.NoError(t, err)
	_, err = e.SignIn(ctx, sarah.ID)
	require.NoError(t, err)

	pets, err := e.DiscoverPets(ctx, sarah.ID)
	require.NoError(t, err)
	assert.Empty(t, pets, "default 25km hides Rex")

	wide := matching.DefaultFilters()
	wide.MaxDistance = 100
	require.NoError(t, e.SetFilters(ctx, wide))
	assert.Equal(t, wide, e.Filters())

	pets, err = e.DiscoverPets(ctx, sarah.ID)
	require.NoError(t, err)
	assert.Len(t, pets, 1)
}

func TestEngine_CommunityFlow(t *testing.T) {
	ctx := context.Background()
	e := New()
	sarah, err := e.Register(ctx, parentParams("sarah"))
	require.NoError(t, err)
	mike, err := e.Register(ctx, parentParams("mike"))
	require.NoError(t, err)

	c, err := e.CreateCommunity(ctx, sarah.ID, "Dog Lovers", "All things dogs.", domain.CommunityTypeDog)
	require.NoError(t, err)
	_, err = e.JoinCommunity(ctx, c.ID, mike.ID)
	require.NoError(t, err)

	post, err := e.AddPost(ctx, c.ID, sarah.ID, "Welcome everyone!", "")
	require.NoError(t, err)
	_, err = e.AddComment(ctx, post.ID, mike.ID, "Glad to be here")
	require.NoError(t, err)

	event, err := e.CreateEvent(ctx, c.ID, sarah.ID, "Park Meetup", "", "Central Park", time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = e.JoinEvent(ctx, event.ID, mike.ID)
	require.NoError(t, err)

	t.Run("karma accrues through the facade", func(t *testing.T) {
		totals, err := e.ContributionTotals(ctx, sarah.ID)
		require.NoError(t, err)
		assert.Equal(t, reputation.Totals{Posts: 1, Communities: 1, Events: 1}, totals)

		u, err := e.GetUser(ctx, sarah.ID)
		require.NoError(t, err)
		assert.Equal(t, 15+5+10, u.KarmaPoints)
		assert.True(t, u.HasBadge("Community Starter"))
		assert.True(t, u.HasBadge("First Post"))
		assert.True(t, u.HasBadge("Event Organizer"))
	})

	t.Run("community state is visible signed out", func(t *testing.T) {
		require.NoError(t, e.SignOut(ctx))
		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Nil(t, snap.CurrentUser)
		require.Len(t, snap.Communities, 1)
		require.Len(t, snap.Events, 1)
		assert.Empty(t, snap.Matches)
		assert.Empty(t, snap.Messages)
	})
}

func TestEngine_ProviderVerificationFlow(t *testing.T) {
	ctx := context.Background()
	e := New()
	sarah, err := e.Register(ctx, parentParams("sarah"))
	require.NoError(t, err)

	vet, err := e.Register(ctx, identity.NewUserParams{
		Role:        domain.RoleVeterinarian,
		Email:       "vet@example.com",
		DisplayName: "Dr. Chen",
	})
	require.NoError(t, err)

	_, err = e.Connect(ctx, sarah.ID, vet.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeGated), "pending provider is gated")

	_, err = e.SubmitDocuments(ctx, vet.ID, []string{"license.pdf"})
	require.NoError(t, err)
	_, err = e.DecideVerification(ctx, vet.ID, domain.VerificationApproved)
	require.NoError(t, err)

	m, err := e.Connect(ctx, sarah.ID, vet.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchTypeBusinessService, m.Type)

	_, err = e.SignIn(ctx, sarah.ID)
	require.NoError(t, err)
	snap, err := e.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.DiscoveryUsers, "connected providers leave discovery")
}

func TestEngine_Seed(t *testing.T) {
	ctx := context.Background()
	e := New()
	require.NoError(t, e.Seed(ctx))

	t.Run("seeding does not sign anyone in", func(t *testing.T) {
		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		assert.Nil(t, snap.CurrentUser)
		assert.Equal(t, domain.ScreenWelcome, snap.CurrentScreen)
	})

	users, err := e.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	pets, err := e.pets.List(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Bella", pets[0].Name)
	assert.Equal(t, "Max", pets[1].Name)

	t.Run("providers come out verified and rated", func(t *testing.T) {
		rated := 0
		for _, u := range users {
			if !u.Role.IsProvider() {
				continue
			}
			assert.True(t, u.Verified, u.DisplayName)
			assert.Greater(t, u.Rating, 4.0, u.DisplayName)
			rated++
		}
		assert.Equal(t, 3, rated)
	})

	t.Run("a seeded parent can discover the other's pet", func(t *testing.T) {
		sarah := users[0]
		_, err := e.SignIn(ctx, sarah.ID)
		require.NoError(t, err)
		snap, err := e.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snap.DiscoveryPets, 1)
		assert.Equal(t, "Max", snap.DiscoveryPets[0].Name)
		assert.Len(t, snap.DiscoveryUsers, 3)
	})
}
