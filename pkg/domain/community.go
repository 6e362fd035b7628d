package domain

import dErrors "pawmates/pkg/domain-errors"

// CommunityType is the topical bucket a community advertises.
type CommunityType string

const (
	CommunityTypeDog      CommunityType = "dog"
	CommunityTypeCat      CommunityType = "cat"
	CommunityTypeTopic    CommunityType = "topic"
	CommunityTypeInterest CommunityType = "interest"
	CommunityTypeOther    CommunityType = "other"
)

var validCommunityTypes = map[CommunityType]bool{
	CommunityTypeDog:      true,
	CommunityTypeCat:      true,
	CommunityTypeTopic:    true,
	CommunityTypeInterest: true,
	CommunityTypeOther:    true,
}

// ParseCommunityType constructs a CommunityType from external input.
func ParseCommunityType(s string) (CommunityType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "community type cannot be empty")
	}
	t := CommunityType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid community type")
	}
	return t, nil
}

func (t CommunityType) IsValid() bool  { return validCommunityTypes[t] }
func (t CommunityType) String() string { return string(t) }

// KarmaEvent names a community contribution that earns reputation. The
// reputation module maps each event to its point value and badge predicate.
type KarmaEvent string

const (
	KarmaEventPostCreated      KarmaEvent = "post-created"
	KarmaEventCommentCreated   KarmaEvent = "comment-created"
	KarmaEventCommunityCreated KarmaEvent = "community-created"
	KarmaEventEventCreated     KarmaEvent = "event-created"
)

var validKarmaEvents = map[KarmaEvent]bool{
	KarmaEventPostCreated:      true,
	KarmaEventCommentCreated:   true,
	KarmaEventCommunityCreated: true,
	KarmaEventEventCreated:     true,
}

func (e KarmaEvent) IsValid() bool  { return validKarmaEvents[e] }
func (e KarmaEvent) String() string { return string(e) }
