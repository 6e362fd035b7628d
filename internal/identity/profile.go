package identity

import (
	"time"

	"pawmates/pkg/domain"
)

// CommunityActivity is the reputation slice of a profile. It is a separate
// block so masking is observable on the wire: an absent block means the owner
// keeps it private, while a present block with zero karma is a real count.
type CommunityActivity struct {
	KarmaPoints int     `json:"karma_points"`
	Badges      []Badge `json:"badges"`
}

// Profile is the cross-user view of an account. Activity is included only
// when the owner has opted in via ShowCommunityActivity; the owner always
// sees their own.
type Profile struct {
	ID               domain.UserID `json:"id"`
	Role             domain.Role   `json:"role"`
	DisplayName      string        `json:"display_name"`
	Location         string        `json:"location"`
	Bio              string        `json:"bio"`
	PhotoURL         string        `json:"photo_url,omitempty"`
	Contact          ContactInfo   `json:"contact"`
	Verified         bool          `json:"verified"`
	JoinedAt         time.Time     `json:"joined_at"`
	Specialties      []string      `json:"specialties,omitempty"`
	Services         []string      `json:"services,omitempty"`
	OrganizationType string        `json:"organization_type,omitempty"`
	BusinessHours    string        `json:"business_hours,omitempty"`
	Rating           float64       `json:"rating,omitempty"`

	Activity *CommunityActivity `json:"community_activity,omitempty"`
}

// ProfileFor renders the user as seen by viewer, applying the privacy mask.
func (u *User) ProfileFor(viewer domain.UserID) *Profile {
	p := &Profile{
		ID:               u.ID,
		Role:             u.Role,
		DisplayName:      u.DisplayName,
		Location:         u.Location,
		Bio:              u.Bio,
		PhotoURL:         u.PhotoURL,
		Contact:          u.Contact,
		Verified:         u.Verified,
		JoinedAt:         u.JoinedAt,
		Specialties:      u.Specialties,
		Services:         u.Services,
		OrganizationType: u.OrganizationType,
		BusinessHours:    u.BusinessHours,
		Rating:           u.Rating,
	}
	if viewer == u.ID || u.ShowCommunityActivity {
		p.Activity = &CommunityActivity{
			KarmaPoints: u.KarmaPoints,
			Badges:      append([]Badge{}, u.Badges...),
		}
	}
	return p
}
