package domain

import dErrors "pawmates/pkg/domain-errors"

// PetType is the species bucket used by discovery filters.
type PetType string

const (
	PetTypeDog    PetType = "dog"
	PetTypeCat    PetType = "cat"
	PetTypeBird   PetType = "bird"
	PetTypeRabbit PetType = "rabbit"
	PetTypeOther  PetType = "other"
)

var validPetTypes = map[PetType]bool{
	PetTypeDog:    true,
	PetTypeCat:    true,
	PetTypeBird:   true,
	PetTypeRabbit: true,
	PetTypeOther:  true,
}

// ParsePetType constructs a PetType from external input.
func ParsePetType(s string) (PetType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "pet type cannot be empty")
	}
	t := PetType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid pet type")
	}
	return t, nil
}

func (t PetType) IsValid() bool  { return validPetTypes[t] }
func (t PetType) String() string { return string(t) }

// PetSize is the size bucket used by discovery filters.
type PetSize string

const (
	PetSizeSmall  PetSize = "small"
	PetSizeMedium PetSize = "medium"
	PetSizeLarge  PetSize = "large"
)

var validPetSizes = map[PetSize]bool{
	PetSizeSmall:  true,
	PetSizeMedium: true,
	PetSizeLarge:  true,
}

// ParsePetSize constructs a PetSize from external input.
func ParsePetSize(s string) (PetSize, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "pet size cannot be empty")
	}
	sz := PetSize(s)
	if !sz.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid pet size")
	}
	return sz, nil
}

func (s PetSize) IsValid() bool  { return validPetSizes[s] }
func (s PetSize) String() string { return string(s) }

// EnergyLevel describes a pet's activity level on its profile card.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

var validEnergyLevels = map[EnergyLevel]bool{
	EnergyLow:    true,
	EnergyMedium: true,
	EnergyHigh:   true,
}

// ParseEnergyLevel constructs an EnergyLevel from external input.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "energy level cannot be empty")
	}
	e := EnergyLevel(s)
	if !e.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid energy level")
	}
	return e, nil
}

func (e EnergyLevel) IsValid() bool  { return validEnergyLevels[e] }
func (e EnergyLevel) String() string { return string(e) }
