package community

import (
	"context"
	"errors"
	"time"

	communitymetrics "pawmates/internal/community/metrics"
	"pawmates/internal/identity"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	"pawmates/pkg/platform/sentinel"
	"pawmates/pkg/requestcontext"
)

// Users is the slice of the identity store the community module reads.
type Users interface {
	FindByID(ctx context.Context, userID domain.UserID) (*identity.User, error)
}

// Recorder receives reputation events after a community operation has applied
// its state change. Implementations must not fail for a user that exists.
type Recorder interface {
	Record(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) error
}

// Service implements communities, membership, posts, comments and events.
//
// Compound operations follow a fixed side-effect order: validate
// preconditions, append the entity, dispatch the reputation event, return.
// Every reputation precondition (the actor exists) is validated up front so
// the dispatch cannot fail after the append.
type Service struct {
	communities CommunityStore
	events      EventStore
	users       Users
	reputation  Recorder
	metrics     *communitymetrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithMetrics attaches module metrics.
func WithMetrics(m *communitymetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRecorder attaches the reputation recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.reputation = r }
}

func NewService(communities CommunityStore, events EventStore, users Users, opts ...Option) *Service {
	s := &Service{communities: communities, events: events, users: users}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) requireUser(ctx context.Context, userID domain.UserID) (*identity.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) record(ctx context.Context, userID domain.UserID, event domain.KarmaEvent) error {
	if s.reputation == nil {
		return nil
	}
	return s.reputation.Record(ctx, userID, event)
}

// Create starts a community with the creator as first member.
func (s *Service) Create(ctx context.Context, creatorID domain.UserID, name, description string, communityType domain.CommunityType) (*Community, error) {
	if _, err := s.requireUser(ctx, creatorID); err != nil {
		return nil, err
	}
	c, err := NewCommunity(domain.NewCommunityID(), creatorID, name, description, communityType)
	if err != nil {
		return nil, err
	}
	if err := s.communities.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create community")
	}
	if err := s.record(ctx, creatorID, domain.KarmaEventCommunityCreated); err != nil {
		return nil, err
	}
	s.metrics.IncrementCommunitiesCreated()
	return c, nil
}

// Join adds the user to the community. Joining a community the user already
// belongs to is a no-op.
func (s *Service) Join(ctx context.Context, communityID domain.CommunityID, userID domain.UserID) (*Community, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	c, err := s.communities.Execute(ctx, communityID, nil, func(c *Community) {
		c.AddMember(userID)
	})
	if err != nil {
		return nil, wrapCommunityErr(err)
	}
	return c, nil
}

// Leave removes the user. Leaving a community the user is not part of is a
// no-op; the creator may leave without deleting the community.
func (s *Service) Leave(ctx context.Context, communityID domain.CommunityID, userID domain.UserID) (*Community, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	c, err := s.communities.Execute(ctx, communityID, nil, func(c *Community) {
		c.RemoveMember(userID)
	})
	if err != nil {
		return nil, wrapCommunityErr(err)
	}
	return c, nil
}

// AddPost prepends a post authored by a member.
func (s *Service) AddPost(ctx context.Context, communityID domain.CommunityID, authorID domain.UserID, content, mediaURL string) (*Post, error) {
	if _, err := s.requireUser(ctx, authorID); err != nil {
		return nil, err
	}
	post, err := NewPost(domain.NewPostID(), communityID, authorID, content, mediaURL, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	_, err = s.communities.Execute(ctx, communityID,
		func(c *Community) error {
			if !c.IsMember(authorID) {
				return dErrors.New(dErrors.CodeUnauthorized, "only members can post")
			}
			return nil
		},
		func(c *Community) {
			c.Posts = append([]*Post{post}, c.Posts...)
		},
	)
	if err != nil {
		return nil, wrapCommunityErr(err)
	}
	if err := s.record(ctx, authorID, domain.KarmaEventPostCreated); err != nil {
		return nil, err
	}
	s.metrics.IncrementPostsCreated()
	return post, nil
}

// AddComment prepends a comment on an existing post. The author must be a
// member of the post's community.
func (s *Service) AddComment(ctx context.Context, postID domain.PostID, authorID domain.UserID, content string) (*Comment, error) {
	if _, err := s.requireUser(ctx, authorID); err != nil {
		return nil, err
	}
	comment, err := NewComment(domain.NewCommentID(), postID, authorID, content, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	_, err = s.communities.ExecuteOnPost(ctx, postID,
		func(c *Community, _ *Post) error {
			if !c.IsMember(authorID) {
				return dErrors.New(dErrors.CodeUnauthorized, "only members can comment")
			}
			return nil
		},
		func(_ *Community, p *Post) {
			p.Comments = append([]*Comment{comment}, p.Comments...)
		},
	)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "post not found")
		}
		return nil, err
	}
	if err := s.record(ctx, authorID, domain.KarmaEventCommentCreated); err != nil {
		return nil, err
	}
	s.metrics.IncrementCommentsCreated()
	return comment, nil
}

// CreateEvent schedules an event within a community the creator belongs to.
func (s *Service) CreateEvent(ctx context.Context, communityID domain.CommunityID, creatorID domain.UserID, name, description, location string, dateTime time.Time) (*CommunityEvent, error) {
	if _, err := s.requireUser(ctx, creatorID); err != nil {
		return nil, err
	}
	c, err := s.communities.FindByID(ctx, communityID)
	if err != nil {
		return nil, wrapCommunityErr(err)
	}
	if !c.IsMember(creatorID) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "only members can create events")
	}
	event, err := NewCommunityEvent(domain.NewEventID(), communityID, creatorID, name, description, location, dateTime)
	if err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create event")
	}
	if err := s.record(ctx, creatorID, domain.KarmaEventEventCreated); err != nil {
		return nil, err
	}
	s.metrics.IncrementEventsCreated()
	return event, nil
}

// JoinEvent adds the user to the attendee set. Idempotent.
func (s *Service) JoinEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*CommunityEvent, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	e, err := s.events.Execute(ctx, eventID, nil, func(e *CommunityEvent) {
		e.AddAttendee(userID)
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
		}
		return nil, err
	}
	return e, nil
}

// LeaveEvent removes the user from the attendee set. Idempotent.
func (s *Service) LeaveEvent(ctx context.Context, eventID domain.EventID, userID domain.UserID) (*CommunityEvent, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	e, err := s.events.Execute(ctx, eventID, nil, func(e *CommunityEvent) {
		e.RemoveAttendee(userID)
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
		}
		return nil, err
	}
	return e, nil
}

// GetPost fetches a post by ID, resolving the community it lives in.
func (s *Service) GetPost(ctx context.Context, postID domain.PostID) (*Post, error) {
	c, err := s.communities.FindByPost(ctx, postID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "post not found")
		}
		return nil, err
	}
	p := c.FindPost(postID)
	if p == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "post not found")
	}
	return p, nil
}

// Get fetches a community by ID.
func (s *Service) Get(ctx context.Context, communityID domain.CommunityID) (*Community, error) {
	c, err := s.communities.FindByID(ctx, communityID)
	if err != nil {
		return nil, wrapCommunityErr(err)
	}
	return c, nil
}

// List returns all communities, newest first.
func (s *Service) List(ctx context.Context) ([]*Community, error) {
	return s.communities.List(ctx)
}

// ListEvents returns all events, newest first.
func (s *Service) ListEvents(ctx context.Context) ([]*CommunityEvent, error) {
	return s.events.List(ctx)
}

func wrapCommunityErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "community not found")
	}
	return err
}
