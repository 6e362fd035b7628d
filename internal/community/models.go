package community

import (
	"strings"
	"time"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

const maxCommunityNameChars = 128

// Comment is a reply on a post. Any member of the post's community may
// comment.
type Comment struct {
	ID        domain.CommentID `json:"id"`
	PostID    domain.PostID    `json:"post_id"`
	AuthorID  domain.UserID    `json:"author_id"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
}

// Post is a community contribution. Comments are ordered newest first.
type Post struct {
	ID          domain.PostID      `json:"id"`
	CommunityID domain.CommunityID `json:"community_id"`
	AuthorID    domain.UserID      `json:"author_id"`
	Content     string             `json:"content"`
	MediaURL    string             `json:"media_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Comments    []*Comment         `json:"comments"`
}

// Community is the aggregate root for a named group.
//
// Invariants:
//   - the creator is a member for the lifetime of the community unless they
//     explicitly leave
//   - member IDs are unique
//   - posts are ordered newest first and authored by members
type Community struct {
	ID          domain.CommunityID   `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        domain.CommunityType `json:"type"`
	CreatorID   domain.UserID        `json:"creator_id"`
	MemberIDs   []domain.UserID      `json:"member_ids"`
	Posts       []*Post              `json:"posts"`
}

// NewCommunity builds a community with the creator as its first member.
func NewCommunity(communityID domain.CommunityID, creatorID domain.UserID, name, description string, communityType domain.CommunityType) (*Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "community name cannot be empty")
	}
	if len(name) > maxCommunityNameChars {
		return nil, dErrors.New(dErrors.CodeValidation, "community name must be 128 characters or less")
	}
	if !communityType.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid community type")
	}
	return &Community{
		ID:          communityID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Type:        communityType,
		CreatorID:   creatorID,
		MemberIDs:   []domain.UserID{creatorID},
	}, nil
}

// IsMember reports whether the user belongs to the community.
func (c *Community) IsMember(userID domain.UserID) bool {
	for _, m := range c.MemberIDs {
		if m == userID {
			return true
		}
	}
	return false
}

// AddMember joins the user. Reports whether membership changed.
func (c *Community) AddMember(userID domain.UserID) bool {
	if c.IsMember(userID) {
		return false
	}
	c.MemberIDs = append(c.MemberIDs, userID)
	return true
}

// RemoveMember leaves the user. Reports whether membership changed.
func (c *Community) RemoveMember(userID domain.UserID) bool {
	for i, m := range c.MemberIDs {
		if m == userID {
			c.MemberIDs = append(c.MemberIDs[:i], c.MemberIDs[i+1:]...)
			return true
		}
	}
	return false
}

// FindPost returns the post with the given ID, or nil.
func (c *Community) FindPost(postID domain.PostID) *Post {
	for _, p := range c.Posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

// NewPost builds a post. Membership is checked by the service before the
// append.
func NewPost(postID domain.PostID, communityID domain.CommunityID, authorID domain.UserID, content, mediaURL string, now time.Time) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "post content cannot be empty")
	}
	return &Post{
		ID:          postID,
		CommunityID: communityID,
		AuthorID:    authorID,
		Content:     content,
		MediaURL:    mediaURL,
		CreatedAt:   now,
	}, nil
}

// NewComment builds a comment.
func NewComment(commentID domain.CommentID, postID domain.PostID, authorID domain.UserID, content string, now time.Time) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "comment content cannot be empty")
	}
	return &Comment{
		ID:        commentID,
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
	}, nil
}

// CommunityEvent is a scheduled gathering within a community.
//
// Invariants: the creator is an attendee initially; the date is a valid
// instant; attendees are unique.
type CommunityEvent struct {
	ID          domain.EventID     `json:"id"`
	CommunityID domain.CommunityID `json:"community_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	DateTime    time.Time          `json:"date_time"`
	CreatorID   domain.UserID      `json:"creator_id"`
	AttendeeIDs []domain.UserID    `json:"attendee_ids"`
}

// NewCommunityEvent builds an event with the creator as its first attendee.
func NewCommunityEvent(eventID domain.EventID, communityID domain.CommunityID, creatorID domain.UserID, name, description, location string, dateTime time.Time) (*CommunityEvent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "event name cannot be empty")
	}
	if dateTime.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "event date is required")
	}
	return &CommunityEvent{
		ID:          eventID,
		CommunityID: communityID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Location:    strings.TrimSpace(location),
		DateTime:    dateTime,
		CreatorID:   creatorID,
		AttendeeIDs: []domain.UserID{creatorID},
	}, nil
}

// IsAttendee reports whether the user is attending.
func (e *CommunityEvent) IsAttendee(userID domain.UserID) bool {
	for _, a := range e.AttendeeIDs {
		if a == userID {
			return true
		}
	}
	return false
}

// AddAttendee joins the user. Reports whether attendance changed.
func (e *CommunityEvent) AddAttendee(userID domain.UserID) bool {
	if e.IsAttendee(userID) {
		return false
	}
	e.AttendeeIDs = append(e.AttendeeIDs, userID)
	return true
}

// RemoveAttendee leaves the user. Reports whether attendance changed.
func (e *CommunityEvent) RemoveAttendee(userID domain.UserID) bool {
	for i, a := range e.AttendeeIDs {
		if a == userID {
			e.AttendeeIDs = append(e.AttendeeIDs[:i], e.AttendeeIDs[i+1:]...)
			return true
		}
	}
	return false
}
