package reputation

import (
	"context"

	"pawmates/pkg/domain"
)

// ActivityStore tracks lifetime contribution counts per user.
type ActivityStore interface {
	// Increment bumps the user's count for the event and returns the new
	// total.
	Increment(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) (int, error)
	// Count returns the user's lifetime count for the event.
	Count(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) (int, error)
}
