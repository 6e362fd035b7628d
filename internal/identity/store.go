package identity

import (
	"context"

	"pawmates/pkg/domain"
)

// UserStore persists users. Implementations return sentinel errors
// (pkg/platform/sentinel) which services translate into domain errors.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, userID domain.UserID) (*User, error)
	// List returns all users in creation order. The order is stable under
	// mutation of unrelated entities.
	List(ctx context.Context) ([]*User, error)
	// Execute atomically validates and mutates a user while holding the store
	// lock, then returns the updated copy.
	Execute(ctx context.Context, userID domain.UserID, validate func(*User) error, apply func(*User)) (*User, error)
}

// PetStore persists pets.
type PetStore interface {
	Create(ctx context.Context, pet *Pet) error
	FindByID(ctx context.Context, petID domain.PetID) (*Pet, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*Pet, error)
	// List returns all pets in creation order.
	List(ctx context.Context) ([]*Pet, error)
}
