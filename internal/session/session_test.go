package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmates/internal/matching"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

func TestNew(t *testing.T) {
	s := New()
	assert.False(t, s.SignedIn())
	assert.True(t, s.CurrentUser().IsZero())
	assert.True(t, s.CurrentPet().IsZero())
	assert.Equal(t, domain.ScreenWelcome, s.CurrentScreen())
	assert.Equal(t, matching.DefaultFilters(), s.Filters())
}

func TestSession_SignInOut(t *testing.T) {
	s := New()
	user := domain.NewUserID()
	pet := domain.NewPetID()

	s.SetCurrentUser(user)
	assert.True(t, s.SignedIn())
	assert.Equal(t, user, s.CurrentUser())

	s.SetCurrentPet(pet)
	assert.Equal(t, pet, s.CurrentPet())

	t.Run("switching user clears the active pet", func(t *testing.T) {
		s.SetCurrentPet(pet)
		s.SetCurrentUser(domain.NewUserID())
		assert.True(t, s.CurrentPet().IsZero())
	})

	t.Run("signing out clears the active pet", func(t *testing.T) {
		s.SetCurrentPet(pet)
		s.SetCurrentUser(domain.UserID{})
		assert.False(t, s.SignedIn())
		assert.True(t, s.CurrentPet().IsZero())
	})
}

func TestSession_SetScreen(t *testing.T) {
	s := New()

	require.NoError(t, s.SetScreen(domain.ScreenDiscovery))
	assert.Equal(t, domain.ScreenDiscovery, s.CurrentScreen())

	err := s.SetScreen("lobby")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.Equal(t, domain.ScreenDiscovery, s.CurrentScreen(), "rejected navigation does not move")
}

func TestSession_SetFilters(t *testing.T) {
	s := New()

	narrow := matching.DefaultFilters()
	narrow.MaxDistance = 5
	narrow.PetType = "dog"
	require.NoError(t, s.SetFilters(narrow))
	assert.Equal(t, narrow, s.Filters())

	t.Run("invalid filters leave the current ones untouched", func(t *testing.T) {
		bad := narrow
		bad.MinAge = 10
		bad.MaxAge = 2
		err := s.SetFilters(bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, narrow, s.Filters())
	})
}

func TestSession_Reset(t *testing.T) {
	s := New()
	s.SetCurrentUser(domain.NewUserID())
	s.SetCurrentPet(domain.NewPetID())
	require.NoError(t, s.SetScreen(domain.ScreenMatches))
	f := matching.DefaultFilters()
	f.Size = "small"
	require.NoError(t, s.SetFilters(f))

	s.Reset()
	assert.False(t, s.SignedIn())
	assert.True(t, s.CurrentPet().IsZero())
	assert.Equal(t, domain.ScreenWelcome, s.CurrentScreen())
	assert.Equal(t, matching.DefaultFilters(), s.Filters())
}
