// Package domain holds the shared vocabulary of the engine: typed entity IDs
// and the enumerations every module validates against.
//
// IDs are uuid-backed named types so the compiler rejects cross-kind
// assignment. Construct via NewXxxID for fresh entities and ParseXxxID at
// trust boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "pawmates/pkg/domain-errors"
)

type (
	// UserID identifies a User of any role.
	UserID uuid.UUID
	// PetID identifies a Pet.
	PetID uuid.UUID
	// MatchID identifies a Match.
	MatchID uuid.UUID
	// MessageID identifies a Message.
	MessageID uuid.UUID
	// CommunityID identifies a Community.
	CommunityID uuid.UUID
	// PostID identifies a Post.
	PostID uuid.UUID
	// CommentID identifies a Comment.
	CommentID uuid.UUID
	// EventID identifies a CommunityEvent.
	EventID uuid.UUID
)

func (id UserID) String() string      { return uuid.UUID(id).String() }
func (id PetID) String() string       { return uuid.UUID(id).String() }
func (id MatchID) String() string     { return uuid.UUID(id).String() }
func (id MessageID) String() string   { return uuid.UUID(id).String() }
func (id CommunityID) String() string { return uuid.UUID(id).String() }
func (id PostID) String() string      { return uuid.UUID(id).String() }
func (id CommentID) String() string   { return uuid.UUID(id).String() }
func (id EventID) String() string     { return uuid.UUID(id).String() }

// MarshalText renders the ID as its canonical UUID string, which also makes
// ID-keyed maps JSON-encodable.
func (id UserID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id PetID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id MatchID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id MessageID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id CommunityID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id PostID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id CommentID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id EventID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }

func unmarshalUUID(b []byte) (uuid.UUID, error) { return uuid.ParseBytes(b) }

func (id *UserID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = UserID(u)
	return err
}

func (id *PetID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = PetID(u)
	return err
}

func (id *MatchID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = MatchID(u)
	return err
}

func (id *MessageID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = MessageID(u)
	return err
}

func (id *CommunityID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = CommunityID(u)
	return err
}

func (id *PostID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = PostID(u)
	return err
}

func (id *CommentID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = CommentID(u)
	return err
}

func (id *EventID) UnmarshalText(b []byte) error {
	u, err := unmarshalUUID(b)
	*id = EventID(u)
	return err
}

func (id UserID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }
func (id PetID) IsZero() bool       { return uuid.UUID(id) == uuid.Nil }
func (id MatchID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CommunityID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id PostID) IsZero() bool      { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// NewPetID returns a fresh random PetID.
func NewPetID() PetID { return PetID(uuid.New()) }

// NewMatchID returns a fresh random MatchID.
func NewMatchID() MatchID { return MatchID(uuid.New()) }

// NewMessageID returns a fresh random MessageID.
func NewMessageID() MessageID { return MessageID(uuid.New()) }

// NewCommunityID returns a fresh random CommunityID.
func NewCommunityID() CommunityID { return CommunityID(uuid.New()) }

// NewPostID returns a fresh random PostID.
func NewPostID() PostID { return PostID(uuid.New()) }

// NewCommentID returns a fresh random CommentID.
func NewCommentID() CommentID { return CommentID(uuid.New()) }

// NewEventID returns a fresh random EventID.
func NewEventID() EventID { return EventID(uuid.New()) }

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" id cannot be nil")
	}
	return u, nil
}

// ParseUserID constructs a UserID from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user")
	return UserID(u), err
}

// ParsePetID constructs a PetID from external input.
func ParsePetID(s string) (PetID, error) {
	u, err := parseUUID(s, "pet")
	return PetID(u), err
}

// ParseMatchID constructs a MatchID from external input.
func ParseMatchID(s string) (MatchID, error) {
	u, err := parseUUID(s, "match")
	return MatchID(u), err
}

// ParseCommunityID constructs a CommunityID from external input.
func ParseCommunityID(s string) (CommunityID, error) {
	u, err := parseUUID(s, "community")
	return CommunityID(u), err
}

// ParsePostID constructs a PostID from external input.
func ParsePostID(s string) (PostID, error) {
	u, err := parseUUID(s, "post")
	return PostID(u), err
}

// ParseEventID constructs an EventID from external input.
func ParseEventID(s string) (EventID, error) {
	u, err := parseUUID(s, "event")
	return EventID(u), err
}
