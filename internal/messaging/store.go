package messaging

import (
	"context"

	"pawmates/internal/matching"
	"pawmates/pkg/domain"
)

// MessageStore persists per-match message logs.
type MessageStore interface {
	// Append adds a message to its match's log. The store clamps the
	// timestamp so per-match order stays non-decreasing.
	Append(ctx context.Context, msg *Message) error
	// ListByMatch returns the match's messages in insertion order.
	ListByMatch(ctx context.Context, matchID domain.MatchID) ([]*Message, error)
	// MarkRead flips read=true on every message in the match not sent by
	// reader. Reports how many messages changed.
	MarkRead(ctx context.Context, matchID domain.MatchID, reader domain.UserID) (int, error)
	// List returns all messages across matches in append order.
	List(ctx context.Context) ([]*Message, error)
}

// Matches is the slice of the match store messaging depends on: participant
// lookup and the directed unread bit.
type Matches interface {
	FindByID(ctx context.Context, matchID domain.MatchID) (*matching.Match, error)
	SetUnread(ctx context.Context, matchID domain.MatchID, unread bool) error
}
