package session

import (
	"pawmates/internal/matching"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// Session is the explicit per-client state object. The app facade owns one
// instance per engine and serializes access; Session itself carries no lock.
type Session struct {
	currentUser   domain.UserID
	currentPet    domain.PetID
	currentScreen domain.Screen
	filters       matching.Filters
}

// New starts a session on the welcome screen with default filters.
func New() *Session {
	return &Session{
		currentScreen: domain.ScreenWelcome,
		filters:       matching.DefaultFilters(),
	}
}

// CurrentUser returns the signed-in user ID, zero when nobody is signed in.
func (s *Session) CurrentUser() domain.UserID { return s.currentUser }

// SignedIn reports whether a user is set.
func (s *Session) SignedIn() bool { return !s.currentUser.IsZero() }

// SetCurrentUser signs a user in. A zero ID signs out. Changing user clears
// the current pet so one user's pet never stays active for another.
func (s *Session) SetCurrentUser(userID domain.UserID) {
	if userID != s.currentUser {
		s.currentPet = domain.PetID{}
	}
	s.currentUser = userID
}

// CurrentPet returns the active pet ID, zero when none is selected.
func (s *Session) CurrentPet() domain.PetID { return s.currentPet }

// SetCurrentPet selects the active pet.
func (s *Session) SetCurrentPet(petID domain.PetID) { s.currentPet = petID }

// CurrentScreen returns the navigation tag.
func (s *Session) CurrentScreen() domain.Screen { return s.currentScreen }

// SetScreen navigates. The tag must be a known screen.
func (s *Session) SetScreen(screen domain.Screen) error {
	if !screen.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid screen")
	}
	s.currentScreen = screen
	return nil
}

// Filters returns the session's discovery filters.
func (s *Session) Filters() matching.Filters { return s.filters }

// SetFilters replaces the discovery filters after validating them. Invalid
// filters leave the current ones untouched.
func (s *Session) SetFilters(f matching.Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.filters = f
	return nil
}

// Reset returns the session to its initial state.
func (s *Session) Reset() {
	s.currentUser = domain.UserID{}
	s.currentPet = domain.PetID{}
	s.currentScreen = domain.ScreenWelcome
	s.filters = matching.DefaultFilters()
}
