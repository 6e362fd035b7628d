package messaging

import (
	"strings"
	"time"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// Message is one entry in a match's append-only log.
//
// Invariants: the sender is a participant of the match, content is non-empty
// after trimming, and timestamps are non-decreasing within a match.
type Message struct {
	ID        domain.MessageID   `json:"id"`
	MatchID   domain.MatchID     `json:"match_id"`
	SenderID  domain.UserID      `json:"sender_id"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
	Read      bool               `json:"read"`
	Type      domain.MessageType `json:"message_type"`
}

// NewMessage builds a Message, trimming and validating the content.
func NewMessage(msgID domain.MessageID, matchID domain.MatchID, senderID domain.UserID, content string, msgType domain.MessageType, now time.Time) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "message content cannot be empty")
	}
	if !msgType.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid message type")
	}
	return &Message{
		ID:        msgID,
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: now,
		Read:      false,
		Type:      msgType,
	}, nil
}
