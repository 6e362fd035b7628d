package messaging

import (
	"context"
	"errors"

	"pawmates/internal/identity"
	"pawmates/internal/matching"
	messagingmetrics "pawmates/internal/messaging/metrics"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/sentinel"
	"pawmates/pkg/requestcontext"
)

// Users is the slice of the identity store messaging reads for gating.
type Users interface {
	FindByID(ctx context.Context, userID domain.UserID) (*identity.User, error)
}

// Service implements the per-match message log.
type Service struct {
	messages MessageStore
	matches  Matches
	users    Users
	metrics  *messagingmetrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches module metrics.
func WithMetrics(m *messagingmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(messages MessageStore, matches Matches, users Users, opts ...Option) *Service {
	s := &Service{messages: messages, matches: matches, users: users}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) participant(ctx context.Context, matchID domain.MatchID, userID domain.UserID) (*matching.Match, error) {
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "match not found")
		}
		return nil, err
	}
	if !match.HasParticipant(userID) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "not a participant of this match")
	}
	return match, nil
}

// Send appends a message to the match log and raises the unread flag for the
// recipient. The sender must be a participant; unverified providers are gated.
func (s *Service) Send(ctx context.Context, matchID domain.MatchID, senderID domain.UserID, content string, msgType domain.MessageType) (*Message, error) {
	if _, err := s.participant(ctx, matchID, senderID); err != nil {
		return nil, err
	}
	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, err
	}
	if sender.Gated() {
		return nil, dErrors.New(dErrors.CodeGated, "messaging requires verified professional status")
	}

	msg, err := NewMessage(domain.NewMessageID(), matchID, senderID, content, msgType, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to append message")
	}
	if err := s.matches.SetUnread(ctx, matchID, true); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to flag unread messages")
	}
	s.metrics.IncrementMessagesSent(msg.Type.String())
	return msg, nil
}

// MarkRead flips read on every message the reader did not send and clears the
// match's unread flag. Idempotent.
func (s *Service) MarkRead(ctx context.Context, matchID domain.MatchID, readerID domain.UserID) error {
	if _, err := s.participant(ctx, matchID, readerID); err != nil {
		return err
	}
	if _, err := s.messages.MarkRead(ctx, matchID, readerID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark messages read")
	}
	if err := s.matches.SetUnread(ctx, matchID, false); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear unread flag")
	}
	return nil
}

// List returns the match's messages in insertion order. The caller must be a
// participant.
func (s *Service) List(ctx context.Context, matchID domain.MatchID, readerID domain.UserID) ([]*Message, error) {
	if _, err := s.participant(ctx, matchID, readerID); err != nil {
		return nil, err
	}
	return s.messages.ListByMatch(ctx, matchID)
}
