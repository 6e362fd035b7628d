package matching

import (
	"time"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// PlaydatePair links two pet-parents through the pets that matched.
type PlaydatePair struct {
	OwnerA domain.UserID `json:"owner_a"`
	OwnerB domain.UserID `json:"owner_b"`
	PetA   domain.PetID  `json:"pet_a"`
	PetB   domain.PetID  `json:"pet_b"`
}

// ServicePair links a pet-parent to a verified provider.
type ServicePair struct {
	Parent   domain.UserID `json:"parent"`
	Provider domain.UserID `json:"provider"`
}

// Match is a bidirectional association enabling messaging between two users.
//
// Invariants:
//   - exactly one of Playdate/Service is populated, matching the type
//   - a given unordered owner pair has at most one live playdate match
//   - a given (parent, provider) pair has at most one live service match
//
// Matches hold IDs only; participants are resolved through the identity
// stores, never embedded.
type Match struct {
	ID                domain.MatchID   `json:"id"`
	Type              domain.MatchType `json:"type"`
	Playdate          *PlaydatePair    `json:"playdate,omitempty"`
	Service           *ServicePair     `json:"service,omitempty"`
	MatchedAt         time.Time        `json:"matched_at"`
	HasUnreadMessages bool             `json:"has_unread_messages"`
}

// NewPlaydateMatch builds a pet-playdate match between two owner/pet pairs.
func NewPlaydateMatch(matchID domain.MatchID, pair PlaydatePair, now time.Time) (*Match, error) {
	if pair.OwnerA == pair.OwnerB {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "a playdate match needs two distinct owners")
	}
	return &Match{
		ID:        matchID,
		Type:      domain.MatchTypePlaydate,
		Playdate:  &pair,
		MatchedAt: now,
	}, nil
}

// NewServiceMatch builds a business-service or organization-support match,
// deriving the type from the provider's role.
func NewServiceMatch(matchID domain.MatchID, pair ServicePair, providerRole domain.Role, now time.Time) (*Match, error) {
	var matchType domain.MatchType
	switch providerRole {
	case domain.RoleVeterinarian, domain.RolePetStore:
		matchType = domain.MatchTypeBusinessService
	case domain.RoleOrganization:
		matchType = domain.MatchTypeOrgSupport
	default:
		return nil, dErrors.New(dErrors.CodeRoleViolation, "connect target must be a provider")
	}
	return &Match{
		ID:        matchID,
		Type:      matchType,
		Service:   &pair,
		MatchedAt: now,
	}, nil
}

// Participants returns the two user IDs on either side of the match.
func (m *Match) Participants() [2]domain.UserID {
	if m.Playdate != nil {
		return [2]domain.UserID{m.Playdate.OwnerA, m.Playdate.OwnerB}
	}
	return [2]domain.UserID{m.Service.Parent, m.Service.Provider}
}

// HasParticipant reports whether the user is one of the two sides.
func (m *Match) HasParticipant(userID domain.UserID) bool {
	p := m.Participants()
	return p[0] == userID || p[1] == userID
}

// Peer returns the other participant as seen from userID.
func (m *Match) Peer(userID domain.UserID) domain.UserID {
	p := m.Participants()
	if p[0] == userID {
		return p[1]
	}
	return p[0]
}
