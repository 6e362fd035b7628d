package domain

import dErrors "pawmates/pkg/domain-errors"

// Role classifies an account. Pet-parents own pets and swipe; the three
// provider roles offer services and must pass verification before they can
// participate in discovery, matching, or messaging.
type Role string

const (
	RolePetParent    Role = "pet-parent"
	RoleVeterinarian Role = "veterinarian"
	RolePetStore     Role = "pet-store"
	RoleOrganization Role = "organization"
)

var validRoles = map[Role]bool{
	RolePetParent:    true,
	RoleVeterinarian: true,
	RolePetStore:     true,
	RoleOrganization: true,
}

// ParseRole constructs a Role from external input.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

// IsValid checks the role against the supported enum values.
func (r Role) IsValid() bool { return validRoles[r] }

// IsProvider reports whether the role requires verification before use.
func (r Role) IsProvider() bool { return r != RolePetParent && r.IsValid() }

func (r Role) String() string { return string(r) }

// VerificationStatus tracks the manual review of a provider account.
// Invariant: User.Verified is true iff the status is approved.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

var validVerificationStatuses = map[VerificationStatus]bool{
	VerificationPending:  true,
	VerificationApproved: true,
	VerificationRejected: true,
}

// ParseVerificationStatus constructs a VerificationStatus from external input.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "verification status cannot be empty")
	}
	v := VerificationStatus(s)
	if !validVerificationStatuses[v] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid verification status")
	}
	return v, nil
}

func (v VerificationStatus) String() string { return string(v) }
