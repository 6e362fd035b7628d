package domain

import dErrors "pawmates/pkg/domain-errors"

// Screen is the navigation tag the session exposes so presentation
// collaborators can render the correct view. The engine assigns no semantics
// beyond routing.
type Screen string

const (
	ScreenWelcome             Screen = "welcome"
	ScreenUserSetup           Screen = "user-setup"
	ScreenVerificationPending Screen = "verification-pending"
	ScreenProfileSetup        Screen = "profile-setup"
	ScreenMain                Screen = "main"
	ScreenDiscovery           Screen = "discovery"
	ScreenBusinessDiscovery   Screen = "business-discovery"
	ScreenCommunity           Screen = "community"
	ScreenMatches             Screen = "matches"
	ScreenChat                Screen = "chat"
	ScreenProfile             Screen = "profile"
)

var validScreens = map[Screen]bool{
	ScreenWelcome:             true,
	ScreenUserSetup:           true,
	ScreenVerificationPending: true,
	ScreenProfileSetup:        true,
	ScreenMain:                true,
	ScreenDiscovery:           true,
	ScreenBusinessDiscovery:   true,
	ScreenCommunity:           true,
	ScreenMatches:             true,
	ScreenChat:                true,
	ScreenProfile:             true,
}

// ParseScreen constructs a Screen from external input.
func ParseScreen(s string) (Screen, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "screen cannot be empty")
	}
	sc := Screen(s)
	if !sc.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid screen")
	}
	return sc, nil
}

func (s Screen) IsValid() bool  { return validScreens[s] }
func (s Screen) String() string { return string(s) }
