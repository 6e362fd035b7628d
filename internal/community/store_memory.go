package community

import (
	"context"
	"sync"

	"pawmates/pkg/domain"
	"pawmates/pkg/platform/sentinel"
)

// InMemoryCommunityStore is the canonical CommunityStore implementation.
// Communities, posts and comments are kept newest first.
type InMemoryCommunityStore struct {
	mu          sync.RWMutex
	communities map[domain.CommunityID]*Community
	postIndex   map[domain.PostID]domain.CommunityID
	order       []domain.CommunityID // newest first
}

func NewInMemoryCommunityStore() *InMemoryCommunityStore {
	return &InMemoryCommunityStore{
		communities: make(map[domain.CommunityID]*Community),
		postIndex:   make(map[domain.PostID]domain.CommunityID),
	}
}

func copyComment(c *Comment) *Comment {
	cp := *c
	return &cp
}

func copyPost(p *Post) *Post {
	cp := *p
	cp.Comments = make([]*Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		cp.Comments = append(cp.Comments, copyComment(c))
	}
	return &cp
}

func copyCommunity(c *Community) *Community {
	cp := *c
	cp.MemberIDs = append([]domain.UserID(nil), c.MemberIDs...)
	cp.Posts = make([]*Post, 0, len(c.Posts))
	for _, p := range c.Posts {
		cp.Posts = append(cp.Posts, copyPost(p))
	}
	return &cp
}

func (s *InMemoryCommunityStore) Create(_ context.Context, c *Community) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.communities[c.ID]; ok {
		return sentinel.ErrConflict
	}
	s.communities[c.ID] = copyCommunity(c)
	s.order = append([]domain.CommunityID{c.ID}, s.order...)
	return nil
}

func (s *InMemoryCommunityStore) FindByID(_ context.Context, communityID domain.CommunityID) (*Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.communities[communityID]; ok {
		return copyCommunity(c), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryCommunityStore) FindByPost(_ context.Context, postID domain.PostID) (*Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cid, ok := s.postIndex[postID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyCommunity(s.communities[cid]), nil
}

func (s *InMemoryCommunityStore) List(_ context.Context) ([]*Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Community, 0, len(s.order))
	for _, cid := range s.order {
		out = append(out, copyCommunity(s.communities[cid]))
	}
	return out, nil
}

func (s *InMemoryCommunityStore) Execute(_ context.Context, communityID domain.CommunityID, validate func(*Community) error, apply func(*Community)) (*Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.communities[communityID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(c); err != nil {
			return nil, err
		}
	}
	if apply != nil {
		apply(c)
		s.reindexPosts(c)
	}
	return copyCommunity(c), nil
}

func (s *InMemoryCommunityStore) ExecuteOnPost(_ context.Context, postID domain.PostID, validate func(*Community, *Post) error, apply func(*Community, *Post)) (*Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cid, ok := s.postIndex[postID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := s.communities[cid]
	p := c.FindPost(postID)
	if p == nil {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(c, p); err != nil {
			return nil, err
		}
	}
	if apply != nil {
		apply(c, p)
	}
	return copyCommunity(c), nil
}

// reindexPosts keeps the post index aligned after an apply that may have
// prepended a post.
func (s *InMemoryCommunityStore) reindexPosts(c *Community) {
	for _, p := range c.Posts {
		s.postIndex[p.ID] = c.ID
	}
}

// InMemoryEventStore is the canonical EventStore implementation.
type InMemoryEventStore struct {
	mu     sync.RWMutex
	events map[domain.EventID]*CommunityEvent
	order  []domain.EventID // newest first
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{events: make(map[domain.EventID]*CommunityEvent)}
}

func copyEvent(e *CommunityEvent) *CommunityEvent {
	cp := *e
	cp.AttendeeIDs = append([]domain.UserID(nil), e.AttendeeIDs...)
	return &cp
}

func (s *InMemoryEventStore) Create(_ context.Context, e *CommunityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[e.ID]; ok {
		return sentinel.ErrConflict
	}
	s.events[e.ID] = copyEvent(e)
	s.order = append([]domain.EventID{e.ID}, s.order...)
	return nil
}

func (s *InMemoryEventStore) FindByID(_ context.Context, eventID domain.EventID) (*CommunityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.events[eventID]; ok {
		return copyEvent(e), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryEventStore) List(_ context.Context) ([]*CommunityEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*CommunityEvent, 0, len(s.order))
	for _, eid := range s.order {
		out = append(out, copyEvent(s.events[eid]))
	}
	return out, nil
}

func (s *InMemoryEventStore) Execute(_ context.Context, eventID domain.EventID, validate func(*CommunityEvent) error, apply func(*CommunityEvent)) (*CommunityEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(e); err != nil {
			return nil, err
		}
	}
	if apply != nil {
		apply(e)
	}
	return copyEvent(e), nil
}
