package app

import (
	"context"
	"time"

	"pawmates/internal/community"
	"pawmates/internal/identity"
	"pawmates/internal/matching"
	"pawmates/internal/messaging"
	"pawmates/internal/reputation"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// mutate runs op under the engine lock and notifies subscribers when it
// succeeds. Failed operations notify nobody.
func (e *Engine) mutate(op func() error) error {
	e.mu.Lock()
	err := op()
	e.mu.Unlock()
	if err == nil {
		e.notify()
	}
	return err
}

// view runs op under the engine lock without notification.
func (e *Engine) view(op func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return op()
}

// Register creates an account, signs it into the session and navigates to the
// next onboarding screen: profile-setup for pet-parents, verification-pending
// for providers.
func (e *Engine) Register(ctx context.Context, p identity.NewUserParams) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.Register(ctx, p)
		if err != nil {
			return err
		}
		e.session.SetCurrentUser(user.ID)
		if user.Role.IsProvider() {
			return e.session.SetScreen(domain.ScreenVerificationPending)
		}
		return e.session.SetScreen(domain.ScreenProfileSetup)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn points the session at an existing user.
func (e *Engine) SignIn(ctx context.Context, userID domain.UserID) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		e.session.SetCurrentUser(user.ID)
		return e.session.SetScreen(domain.ScreenMain)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SignOut resets the session to its initial state.
func (e *Engine) SignOut(_ context.Context) error {
	return e.mutate(func() error {
		e.session.Reset()
		return nil
	})
}

// Navigate changes the session screen.
func (e *Engine) Navigate(_ context.Context, screen domain.Screen) error {
	return e.mutate(func() error {
		return e.session.SetScreen(screen)
	})
}

// SelectPet makes the pet the session's active profile. The pet must belong
// to the signed-in user.
func (e *Engine) SelectPet(ctx context.Context, petID domain.PetID) error {
	return e.mutate(func() error {
		pet, err := e.identity.GetPet(ctx, petID)
		if err != nil {
			return err
		}
		if pet.OwnerID != e.session.CurrentUser() {
			return dErrors.New(dErrors.CodeUnauthorized, "pet belongs to another user")
		}
		e.session.SetCurrentPet(petID)
		return nil
	})
}

// SetFilters replaces the session's discovery filters.
func (e *Engine) SetFilters(_ context.Context, f matching.Filters) error {
	return e.mutate(func() error {
		return e.session.SetFilters(f)
	})
}

// Filters returns the session's discovery filters.
func (e *Engine) Filters() matching.Filters {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Filters()
}

// DecideVerification approves or rejects a pending provider.
func (e *Engine) DecideVerification(ctx context.Context, userID domain.UserID, outcome domain.VerificationStatus) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.DecideVerification(ctx, userID, outcome)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SubmitDocuments appends verification documents for a pending provider.
func (e *Engine) SubmitDocuments(ctx context.Context, userID domain.UserID, handles []string) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.SubmitDocuments(ctx, userID, handles)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePrivacy sets whether karma and badges are visible to matching peers.
func (e *Engine) UpdatePrivacy(ctx context.Context, userID domain.UserID, show bool) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.UpdatePrivacy(ctx, userID, show)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial profile edit.
func (e *Engine) UpdateProfile(ctx context.Context, userID domain.UserID, upd identity.ProfileUpdate) (*identity.User, error) {
	var user *identity.User
	err := e.mutate(func() error {
		var err error
		user, err = e.identity.UpdateProfile(ctx, userID, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AddPet creates a pet profile. When the owner is the signed-in user and no
// pet is active yet, the new pet becomes the session's current pet.
func (e *Engine) AddPet(ctx context.Context, p identity.NewPetParams) (*identity.Pet, error) {
	var pet *identity.Pet
	err := e.mutate(func() error {
		var err error
		pet, err = e.identity.AddPet(ctx, p)
		if err != nil {
			return err
		}
		if pet.OwnerID == e.session.CurrentUser() && e.session.CurrentPet().IsZero() {
			e.session.SetCurrentPet(pet.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// GetUser fetches a user by ID.
func (e *Engine) GetUser(ctx context.Context, userID domain.UserID) (*identity.User, error) {
	var user *identity.User
	err := e.view(func() error {
		var err error
		user, err = e.identity.GetUser(ctx, userID)
		return err
	})
	return user, err
}

// GetProfile fetches the privacy-masked view of a user.
func (e *Engine) GetProfile(ctx context.Context, userID, viewer domain.UserID) (*identity.Profile, error) {
	var p *identity.Profile
	err := e.view(func() error {
		var err error
		p, err = e.identity.GetProfile(ctx, userID, viewer)
		return err
	})
	return p, err
}

// GetPet fetches a pet by ID.
func (e *Engine) GetPet(ctx context.Context, petID domain.PetID) (*identity.Pet, error) {
	var pet *identity.Pet
	err := e.view(func() error {
		var err error
		pet, err = e.identity.GetPet(ctx, petID)
		return err
	})
	return pet, err
}

// ListPets returns a user's pets in creation order.
func (e *Engine) ListPets(ctx context.Context, ownerID domain.UserID) ([]*identity.Pet, error) {
	var pets []*identity.Pet
	err := e.view(func() error {
		var err error
		pets, err = e.identity.ListPets(ctx, ownerID)
		return err
	})
	return pets, err
}

// DiscoverPets returns the viewer's candidate pets under the session filters.
func (e *Engine) DiscoverPets(ctx context.Context, viewerID domain.UserID) ([]*identity.Pet, error) {
	var pets []*identity.Pet
	err := e.view(func() error {
		var err error
		pets, err = e.matching.DiscoverPets(ctx, viewerID, e.session.Filters())
		return err
	})
	return pets, err
}

// DiscoverProviders returns verified providers under the session filters,
// privacy-masked for the viewer.
func (e *Engine) DiscoverProviders(ctx context.Context, viewerID domain.UserID) ([]*identity.Profile, error) {
	var profiles []*identity.Profile
	err := e.view(func() error {
		var err error
		profiles, err = e.matching.DiscoverProviders(ctx, viewerID, e.session.Filters())
		return err
	})
	return profiles, err
}

// Swipe records a swipe decision. The returned match is non-nil only when the
// mutual-like predicate created a playdate match.
func (e *Engine) Swipe(ctx context.Context, viewerID domain.UserID, petID domain.PetID, action domain.SwipeAction) (*matching.Match, error) {
	var match *matching.Match
	err := e.mutate(func() error {
		var err error
		match, err = e.matching.Swipe(ctx, viewerID, petID, action)
		return err
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// Connect creates a service match with a verified provider.
func (e *Engine) Connect(ctx context.Context, parentID, providerID domain.UserID) (*matching.Match, error) {
	var match *matching.Match
	err := e.mutate(func() error {
		var err error
		match, err = e.matching.Connect(ctx, parentID, providerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ListMatches returns the user's matches, newest first.
func (e *Engine) ListMatches(ctx context.Context, userID domain.UserID) ([]*matching.Match, error) {
	var matches []*matching.Match
	err := e.view(func() error {
		var err error
		matches, err = e.matching.ListMatches(ctx, userID)
		return err
	})
	return matches, err
}

// GetMatch fetches a match by ID.
func (e *Engine) GetMatch(ctx context.Context, matchID domain.MatchID) (*matching.Match, error) {
	var match *matching.Match
	err := e.view(func() error {
		var err error
		match, err = e.matching.GetMatch(ctx, matchID)
		return err
	})
	return match, err
}

// LikedPets returns the viewer's liked pet IDs in swipe order.
func (e *Engine) LikedPets(ctx context.Context, viewerID domain.UserID) ([]domain.PetID, error) {
	var ids []domain.PetID
	err := e.view(func() error {
		var err error
		ids, err = e.matching.LikedPets(ctx, viewerID)
		return err
	})
	return ids, err
}

// PassedPets returns the viewer's passed pet IDs in swipe order.
func (e *Engine) PassedPets(ctx context.Context, viewerID domain.UserID) ([]domain.PetID, error) {
	var ids []domain.PetID
	err := e.view(func() error {
		var err error
		ids, err = e.matching.PassedPets(ctx, viewerID)
		return err
	})
	return ids, err
}

// SendMessage appends a message to a match log.
func (e *Engine) SendMessage(ctx context.Context, matchID domain.MatchID, senderID domain.UserID, content string, msgType domain.MessageType) (*messaging.Message, error) {
	var msg *messaging.Message
	err := e.mutate(func() error {
		var err error
		msg, err = e.messaging.Send(ctx, matchID, senderID, content, msgType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// MarkRead marks the other party's messages read and clears the unread flag.
func (e *Engine) MarkRead(ctx context.Context, matchID domain.MatchID, readerID domain.UserID) error {
	return e.mutate(func() error {
		return e.messaging.MarkRead(ctx, matchID, readerID)
	})
}

// ListMessages returns a match's messages in insertion order.
func (e *Engine) ListMessages(ctx context.Context, matchID domain.MatchID, readerID domain.UserID) ([]*messaging.Message, error) {
	var msgs []*messaging.Message
	err := e.view(func() error {
		var err error
		msgs, err = e.messaging.List(ctx, matchID, readerID)
		return err
	})
	return msgs, err
}

// CreateCommunity starts a community with the creator as first member.
func (e *Engine) CreateCommunity(ctx context.Context, creatorID domain.UserID, name, description string, communityType domain.CommunityType) (*community.Community, error) {
	var c *community.Community
	err := e.mutate(func() error {
		var err error
		c, err = e.community.Create(ctx, creatorID, name, description, communityType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// JoinCommunity adds the user to a community. Idempotent.
func (e *Engine) JoinCommunity(ctx context.Context, communityID domain.CommunityID, userID domain.UserID) (*community.Community, error) {
	var c *community.Community
	err := e.mutate(func() error {
		var err error
		c, err = e.community.Join(ctx, communityID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LeaveCommunity removes the user from a community. Idempotent.
func (e *Engine) LeaveCommunity(ctx context.Context, communityID domain.CommunityID, userID domain.UserID) (*community.Community, error) {
	var c *community.Community
	err := e.mutate(func() error {
		var err error
		c, err = e.community.Leave(ctx, communityID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AddPost publishes a post in a community the author belongs to.
func (e *Engine) AddPost(ctx context.Context, communityID domain.CommunityID, authorID domain.UserID, content, mediaURL string) (*community.Post, error) {
	var post *community.Post
	err := e.mutate(func() error {
		var err error
		post, err = e.community.AddPost(ctx, communityID, authorID, content, mediaURL)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment publishes a comment on an existing post.
func (e *Engine) AddComment(ctx context.Context, postID domain.PostID, authorID domain.UserID, content string) (*community.Comment, error) {
	var comment *community.Comment
	err := e.mutate(func() error {
		var err error
		comment, err = e.community.AddComment(ctx, postID, authorID, content)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateEvent schedules a community event.
func (e *Engine) CreateEvent(ctx context.Context, communityID domain.CommunityID, creatorID domain.UserID, name, description, location string, dateTime time.Time) (*community.CommunityEvent, error) {
	var event *community.CommunityEvent
	err := e.mutate(func() error {
		var err error
		event, err = e.community.CreateEvent(ctx, communityID, creatorID, name, description, location, dateTime)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// JoinEvent adds the user to an event's attendees. Idempotent.
func (e *Engine) JoinEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*community.CommunityEvent, error) {
	var event *community.CommunityEvent
	err := e.mutate(func() error {
		var err error
		event, err = e.community.JoinEvent(ctx, eventID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// LeaveEvent removes the user from an event's attendees. Idempotent.
func (e *Engine) LeaveEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*community.CommunityEvent, error) {
	var event *community.CommunityEvent
	err := e.mutate(func() error {
		var err error
		event, err = e.community.LeaveEvent(ctx, eventID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetPost fetches a post by ID.
func (e *Engine) GetPost(ctx context.Context, postID domain.PostID) (*community.Post, error) {
	var p *community.Post
	err := e.view(func() error {
		var err error
		p, err = e.community.GetPost(ctx, postID)
		return err
	})
	return p, err
}

// GetCommunity fetches a community by ID.
func (e *Engine) GetCommunity(ctx context.Context, communityID domain.CommunityID) (*community.Community, error) {
	var c *community.Community
	err := e.view(func() error {
		var err error
		c, err = e.community.Get(ctx, communityID)
		return err
	})
	return c, err
}

// ListCommunities returns all communities, newest first.
func (e *Engine) ListCommunities(ctx context.Context) ([]*community.Community, error) {
	var cs []*community.Community
	err := e.view(func() error {
		var err error
		cs, err = e.community.List(ctx)
		return err
	})
	return cs, err
}

// ListEvents returns all community events, newest first.
func (e *Engine) ListEvents(ctx context.Context) ([]*community.CommunityEvent, error) {
	var events []*community.CommunityEvent
	err := e.view(func() error {
		var err error
		events, err = e.community.ListEvents(ctx)
		return err
	})
	return events, err
}

// ContributionTotals returns a user's lifetime contribution counters.
func (e *Engine) ContributionTotals(ctx context.Context, userID domain.UserID) (reputation.Totals, error) {
	var t reputation.Totals
	err := e.view(func() error {
		var err error
		t, err = e.reputation.Totals(ctx, userID)
		return err
	})
	return t, err
}
