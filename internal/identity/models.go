package identity

import (
	"strings"
	"time"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
	platformstrings "pawmates/pkg/platform/strings"
)

const (
	maxPetBioLength     = 300
	maxPetInterests     = 6
	maxPetPersonality   = 4
	maxDisplayNameChars = 128
)

// ContactInfo carries the optional public contact details of a profile.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// Badge is an achievement awarded once per user. Identity stores the awarded
// value; the reputation module owns the catalog and the award predicates.
type Badge struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconRef     string    `json:"icon_ref"`
	DateAwarded time.Time `json:"date_awarded"`
}

// VerificationDocument is an opaque handle to a document submitted for
// manual review. The engine never inspects its contents.
type VerificationDocument struct {
	Handle      string    `json:"handle"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// User is the aggregate root for an account of any role.
//
// Invariants:
//   - Email is non-empty at creation
//   - Role is one of the supported roles
//   - Verified is true iff VerificationStatus is approved
//   - KarmaPoints never decreases
//   - Badges contains no two entries with the same name
//   - Role-specific fields are only meaningful for the matching role
type User struct {
	ID                    domain.UserID             `json:"id"`
	Role                  domain.Role               `json:"role"`
	Email                 string                    `json:"email"`
	DisplayName           string                    `json:"display_name"`
	Location              string                    `json:"location"`
	Bio                   string                    `json:"bio"`
	PhotoURL              string                    `json:"photo_url,omitempty"`
	Contact               ContactInfo               `json:"contact"`
	VerificationStatus    domain.VerificationStatus `json:"verification_status"`
	Verified              bool                      `json:"verified"`
	KarmaPoints           int                       `json:"karma_points"`
	Badges                []Badge                   `json:"badges"`
	ShowCommunityActivity bool                      `json:"show_community_activity"`
	JoinedAt              time.Time                 `json:"joined_at"`

	// Provider-only fields.
	Specialties      []string `json:"specialties,omitempty"`       // veterinarians
	Services         []string `json:"services,omitempty"`          // pet stores, organizations
	OrganizationType string   `json:"organization_type,omitempty"` // organizations
	BusinessHours    string   `json:"business_hours,omitempty"`
	Rating           float64  `json:"rating,omitempty"`

	Documents []VerificationDocument `json:"-"`
}

// NewUserParams is the validated input for NewUser.
type NewUserParams struct {
	Role        domain.Role
	Email       string
	DisplayName string
	Location    string
	Bio         string
	PhotoURL    string
	Contact     ContactInfo

	Specialties      []string
	Services         []string
	OrganizationType string
	BusinessHours    string

	DocumentHandles []string
}

// NewUser builds a User in its initial state. Pet-parents are auto-approved;
// provider roles start pending with their documents stored opaquely.
func NewUser(userID domain.UserID, p NewUserParams, now time.Time) (*User, error) {
	if !p.Role.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid role")
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "email cannot be empty")
	}
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "display name cannot be empty")
	}
	if len(name) > maxDisplayNameChars {
		return nil, dErrors.New(dErrors.CodeValidation, "display name must be 128 characters or less")
	}

	u := &User{
		ID:          userID,
		Role:        p.Role,
		Email:       email,
		DisplayName: name,
		Location:    strings.TrimSpace(p.Location),
		Bio:         p.Bio,
		PhotoURL:    p.PhotoURL,
		Contact:     p.Contact,
		KarmaPoints: 0,
		Badges:      nil,
		JoinedAt:    now,
	}

	if p.Role.IsProvider() {
		u.VerificationStatus = domain.VerificationPending
		u.Verified = false
		u.Specialties = platformstrings.DedupeAndTrim(p.Specialties)
		u.Services = platformstrings.DedupeAndTrim(p.Services)
		u.OrganizationType = p.OrganizationType
		u.BusinessHours = p.BusinessHours
		for _, h := range p.DocumentHandles {
			h = strings.TrimSpace(h)
			if h == "" {
				continue
			}
			u.Documents = append(u.Documents, VerificationDocument{Handle: h, SubmittedAt: now})
		}
	} else {
		u.VerificationStatus = domain.VerificationApproved
		u.Verified = true
	}
	return u, nil
}

// CanDecideVerification checks that a verification decision is applicable.
func (u *User) CanDecideVerification() error {
	if !u.Role.IsProvider() {
		return dErrors.New(dErrors.CodeRoleViolation, "only provider accounts undergo verification")
	}
	if u.VerificationStatus != domain.VerificationPending {
		return dErrors.New(dErrors.CodeConflict, "verification already decided")
	}
	return nil
}

// ApplyVerificationDecision records the outcome and derives the verified flag.
// Call CanDecideVerification first.
func (u *User) ApplyVerificationDecision(outcome domain.VerificationStatus) {
	u.VerificationStatus = outcome
	u.Verified = outcome == domain.VerificationApproved
}

// Gated reports whether the user is locked out of discovery, matching and
// messaging: provider roles participate only once verified.
func (u *User) Gated() bool {
	return u.Role.IsProvider() && !u.Verified
}

// HasBadge reports whether the user already holds a badge with the given name.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// AwardBadge appends the badge unless one with the same name is already held.
// Reports whether the badge was added.
func (u *User) AwardBadge(b Badge) bool {
	if u.HasBadge(b.Name) {
		return false
	}
	u.Badges = append(u.Badges, b)
	return true
}

// AddKarma increments the karma total. Karma is monotone: negative deltas are
// rejected.
func (u *User) AddKarma(points int) error {
	if points < 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "karma cannot decrease")
	}
	u.KarmaPoints += points
	return nil
}

// Pet belongs to exactly one pet-parent user.
//
// Invariants: attribute enums are strictly validated, bio is at most 300
// characters, at most 6 interests and 4 personality traits.
type Pet struct {
	ID             domain.PetID       `json:"id"`
	OwnerID        domain.UserID      `json:"owner_id"`
	Name           string             `json:"name"`
	AgeYears       int                `json:"age_years"`
	Type           domain.PetType     `json:"pet_type"`
	Breed          string             `json:"breed"`
	Size           domain.PetSize     `json:"size"`
	Energy         domain.EnergyLevel `json:"energy"`
	Bio            string             `json:"bio"`
	Interests      []string           `json:"interests"`
	Personality    []string           `json:"personality"`
	GoodWith       []string           `json:"good_with"`
	Vaccinated     bool               `json:"vaccinated"`
	SpayedNeutered bool               `json:"spayed_neutered"`
	Photos         []string           `json:"photos"`
	Location       string             `json:"location"`
	DistanceKm     int                `json:"distance_km"`
	Verified       bool               `json:"verified"`
}

// NewPetParams is the validated input for NewPet.
type NewPetParams struct {
	OwnerID        domain.UserID
	Name           string
	AgeYears       int
	Type           domain.PetType
	Breed          string
	Size           domain.PetSize
	Energy         domain.EnergyLevel
	Bio            string
	Interests      []string
	Personality    []string
	GoodWith       []string
	Vaccinated     bool
	SpayedNeutered bool
	Photos         []string
	Location       string
	DistanceKm     int
}

// NewPet builds a Pet, enforcing the profile invariants. List attributes are
// deduplicated before the count limits apply.
func NewPet(petID domain.PetID, p NewPetParams) (*Pet, error) {
	p.Interests = platformstrings.DedupeAndTrim(p.Interests)
	p.Personality = platformstrings.DedupeAndTrim(p.Personality)
	p.GoodWith = platformstrings.DedupeAndTrim(p.GoodWith)
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "pet name cannot be empty")
	}
	if p.AgeYears < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "pet age cannot be negative")
	}
	if !p.Type.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid pet type")
	}
	if !p.Size.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid pet size")
	}
	if !p.Energy.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "invalid energy level")
	}
	if len(p.Bio) > maxPetBioLength {
		return nil, dErrors.New(dErrors.CodeValidation, "pet bio must be 300 characters or less")
	}
	if len(p.Interests) > maxPetInterests {
		return nil, dErrors.New(dErrors.CodeValidation, "a pet can list at most 6 interests")
	}
	if len(p.Personality) > maxPetPersonality {
		return nil, dErrors.New(dErrors.CodeValidation, "a pet can list at most 4 personality traits")
	}
	if p.DistanceKm < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "distance cannot be negative")
	}
	return &Pet{
		ID:             petID,
		OwnerID:        p.OwnerID,
		Name:           name,
		AgeYears:       p.AgeYears,
		Type:           p.Type,
		Breed:          strings.TrimSpace(p.Breed),
		Size:           p.Size,
		Energy:         p.Energy,
		Bio:            p.Bio,
		Interests:      p.Interests,
		Personality:    p.Personality,
		GoodWith:       p.GoodWith,
		Vaccinated:     p.Vaccinated,
		SpayedNeutered: p.SpayedNeutered,
		Photos:         p.Photos,
		Location:       strings.TrimSpace(p.Location),
		DistanceKm:     p.DistanceKm,
		Verified:       false,
	}, nil
}
