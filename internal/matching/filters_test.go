package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

func TestDefaultFilters(t *testing.T) {
	f := DefaultFilters()
	assert.Equal(t, 0, f.MinAge)
	assert.Equal(t, 15, f.MaxAge)
	assert.Equal(t, 25, f.MaxDistance)
	assert.Equal(t, FilterAll, f.PetType)
	assert.Equal(t, FilterAll, f.Size)
	assert.Equal(t, FilterAll, f.UserType)
	require.NoError(t, f.Validate())
}

func TestFilters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Filters)
		wantErr bool
	}{
		{"defaults are valid", func(f *Filters) {}, false},
		{"negative min age", func(f *Filters) { f.MinAge = -1 }, true},
		{"min age above max age", func(f *Filters) { f.MinAge = 10; f.MaxAge = 5 }, true},
		{"zero max distance", func(f *Filters) { f.MaxDistance = 0 }, true},
		{"negative max distance", func(f *Filters) { f.MaxDistance = -5 }, true},
		{"unknown pet type", func(f *Filters) { f.PetType = "dinosaur" }, true},
		{"concrete pet type", func(f *Filters) { f.PetType = "dog" }, false},
		{"unknown size", func(f *Filters) { f.Size = "gigantic" }, true},
		{"concrete size", func(f *Filters) { f.Size = "small" }, false},
		{"pet-parent is not a provider filter", func(f *Filters) { f.UserType = "pet-parent" }, true},
		{"provider user type", func(f *Filters) { f.UserType = "veterinarian" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultFilters()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFilters_MatchesPet(t *testing.T) {
	f := Filters{MinAge: 2, MaxAge: 8, MaxDistance: 10, PetType: "dog", Size: "large", UserType: FilterAll}

	assert.True(t, f.MatchesPet(3, 5, domain.PetTypeDog, domain.PetSizeLarge))
	assert.True(t, f.MatchesPet(2, 10, domain.PetTypeDog, domain.PetSizeLarge), "bounds are inclusive")
	assert.True(t, f.MatchesPet(8, 0, domain.PetTypeDog, domain.PetSizeLarge))

	assert.False(t, f.MatchesPet(1, 5, domain.PetTypeDog, domain.PetSizeLarge), "below min age")
	assert.False(t, f.MatchesPet(9, 5, domain.PetTypeDog, domain.PetSizeLarge), "above max age")
	assert.False(t, f.MatchesPet(3, 11, domain.PetTypeDog, domain.PetSizeLarge), "beyond max distance")
	assert.False(t, f.MatchesPet(3, 5, domain.PetTypeCat, domain.PetSizeLarge), "wrong type")
	assert.False(t, f.MatchesPet(3, 5, domain.PetTypeDog, domain.PetSizeSmall), "wrong size")

	t.Run("wildcards accept any type and size", func(t *testing.T) {
		wild := DefaultFilters()
		assert.True(t, wild.MatchesPet(3, 5, domain.PetTypeRabbit, domain.PetSizeMedium))
	})
}

func TestFilters_MatchesProvider(t *testing.T) {
	wild := DefaultFilters()
	assert.True(t, wild.MatchesProvider(domain.RoleVeterinarian))
	assert.True(t, wild.MatchesProvider(domain.RoleOrganization))

	vetOnly := wild
	vetOnly.UserType = "veterinarian"
	assert.True(t, vetOnly.MatchesProvider(domain.RoleVeterinarian))
	assert.False(t, vetOnly.MatchesProvider(domain.RolePetStore))
}
