package matching

import (
	"context"

	"pawmates/pkg/domain"
)

// SwipeStore records swipe decisions per viewer.
type SwipeStore interface {
	// Record stores the decision. Reports whether the pet had already been
	// swiped by this viewer (in which case nothing changes).
	Record(ctx context.Context, viewer domain.UserID, pet domain.PetID, action domain.SwipeAction) (already bool, err error)
	// HasSwiped reports whether the viewer has any decision on the pet.
	HasSwiped(ctx context.Context, viewer domain.UserID, pet domain.PetID) (bool, error)
	// HasLiked reports whether the viewer has a like/superlike on the pet.
	HasLiked(ctx context.Context, viewer domain.UserID, pet domain.PetID) (bool, error)
	// Liked returns the viewer's liked pets in swipe order.
	Liked(ctx context.Context, viewer domain.UserID) ([]domain.PetID, error)
	// Passed returns the viewer's passed pets in swipe order.
	Passed(ctx context.Context, viewer domain.UserID) ([]domain.PetID, error)
}

// MatchStore persists matches.
type MatchStore interface {
	Create(ctx context.Context, match *Match) error
	FindByID(ctx context.Context, matchID domain.MatchID) (*Match, error)
	// ListByUser returns the user's matches, newest first.
	ListByUser(ctx context.Context, userID domain.UserID) ([]*Match, error)
	// List returns all matches, newest first.
	List(ctx context.Context) ([]*Match, error)
	// PlaydateExists reports whether a live playdate match exists for the
	// unordered owner pair.
	PlaydateExists(ctx context.Context, ownerA, ownerB domain.UserID) (bool, error)
	// ServiceExists reports whether a live match exists for the ordered
	// (parent, provider) pair.
	ServiceExists(ctx context.Context, parent, provider domain.UserID) (bool, error)
	// SetUnread flips the unread flag on a match.
	SetUnread(ctx context.Context, matchID domain.MatchID, unread bool) error
}
