package matching

import (
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// FilterAll is the wildcard value accepted by the enum-valued filter fields.
const FilterAll = "all"

// Filters is the per-session discovery predicate.
//
// Invariants: MinAge ≤ MaxAge, MaxDistance > 0, enum fields are either a
// valid enum value or "all".
type Filters struct {
	MinAge      int    `json:"min_age"`
	MaxAge      int    `json:"max_age"`
	MaxDistance int    `json:"max_distance"`
	PetType     string `json:"pet_type"`
	Size        string `json:"size"`
	UserType    string `json:"user_type"`
}

// DefaultFilters returns the initial session filters.
func DefaultFilters() Filters {
	return Filters{
		MinAge:      0,
		MaxAge:      15,
		MaxDistance: 25,
		PetType:     FilterAll,
		Size:        FilterAll,
		UserType:    FilterAll,
	}
}

// Validate enforces the filter invariants.
func (f Filters) Validate() error {
	if f.MinAge < 0 {
		return dErrors.New(dErrors.CodeValidation, "min age cannot be negative")
	}
	if f.MinAge > f.MaxAge {
		return dErrors.New(dErrors.CodeValidation, "min age cannot exceed max age")
	}
	if f.MaxDistance <= 0 {
		return dErrors.New(dErrors.CodeValidation, "max distance must be positive")
	}
	if f.PetType != FilterAll && !domain.PetType(f.PetType).IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid pet type filter")
	}
	if f.Size != FilterAll && !domain.PetSize(f.Size).IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid pet size filter")
	}
	if f.UserType != FilterAll && !domain.Role(f.UserType).IsProvider() {
		return dErrors.New(dErrors.CodeValidation, "user type filter must name a provider role")
	}
	return nil
}

// MatchesPet evaluates the pet-discovery predicate.
func (f Filters) MatchesPet(age, distanceKm int, petType domain.PetType, size domain.PetSize) bool {
	if age < f.MinAge || age > f.MaxAge {
		return false
	}
	if distanceKm > f.MaxDistance {
		return false
	}
	if f.PetType != FilterAll && domain.PetType(f.PetType) != petType {
		return false
	}
	if f.Size != FilterAll && domain.PetSize(f.Size) != size {
		return false
	}
	return true
}

// MatchesProvider evaluates the business-discovery predicate.
func (f Filters) MatchesProvider(role domain.Role) bool {
	return f.UserType == FilterAll || domain.Role(f.UserType) == role
}
