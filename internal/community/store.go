package community

import (
	"context"

	"pawmates/pkg/domain"
)

// CommunityStore persists communities with their posts and comments.
type CommunityStore interface {
	Create(ctx context.Context, c *Community) error
	FindByID(ctx context.Context, communityID domain.CommunityID) (*Community, error)
	// FindByPost resolves the community containing the post.
	FindByPost(ctx context.Context, postID domain.PostID) (*Community, error)
	// List returns all communities, newest first.
	List(ctx context.Context) ([]*Community, error)
	// Execute atomically validates and mutates a community while holding the
	// store lock, then returns the updated copy.
	Execute(ctx context.Context, communityID domain.CommunityID, validate func(*Community) error, apply func(*Community)) (*Community, error)
	// ExecuteOnPost is Execute keyed by a post ID.
	ExecuteOnPost(ctx context.Context, postID domain.PostID, validate func(*Community, *Post) error, apply func(*Community, *Post)) (*Community, error)
}

// EventStore persists community events.
type EventStore interface {
	Create(ctx context.Context, e *CommunityEvent) error
	FindByID(ctx context.Context, eventID domain.EventID) (*CommunityEvent, error)
	// List returns all events, newest first.
	List(ctx context.Context) ([]*CommunityEvent, error)
	// Execute atomically validates and mutates an event while holding the
	// store lock, then returns the updated copy.
	Execute(ctx context.Context, eventID domain.EventID, validate func(*CommunityEvent) error, apply func(*CommunityEvent)) (*CommunityEvent, error)
}
