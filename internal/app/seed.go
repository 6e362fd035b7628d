package app

import (
	"context"

	"pawmates/internal/identity"
	"pawmates/pkg/domain"
	dErrors "pawmates/pkg/domain-errors"
)

// Seed loads the demo dataset: two pet-parents with one pet each, a
// veterinarian, a pet store and a rescue organization, all providers already
// approved. Every engine contract holds with an empty seed; this exists so a
// fresh instance has something to discover.
func (e *Engine) Seed(ctx context.Context) error {
	return e.mutate(func() error { return e.seed(ctx) })
}

func (e *Engine) seed(ctx context.Context) error {
	sarah, err := e.identity.Register(ctx, identity.NewUserParams{
		Role:        domain.RolePetParent,
		Email:       "sarah@example.com",
		DisplayName: "Sarah",
		Location:    "Central Park Area",
	})
	if err != nil {
		return seedErr(err)
	}
	mike, err := e.identity.Register(ctx, identity.NewUserParams{
		Role:        domain.RolePetParent,
		Email:       "mike@example.com",
		DisplayName: "Mike",
		Location:    "Downtown",
	})
	if err != nil {
		return seedErr(err)
	}

	if _, err := e.identity.AddPet(ctx, identity.NewPetParams{
		OwnerID:        sarah.ID,
		Name:           "Bella",
		AgeYears:       3,
		Type:           domain.PetTypeDog,
		Breed:          "Golden Retriever",
		Size:           domain.PetSizeLarge,
		Energy:         domain.EnergyHigh,
		Bio:            "Friendly golden girl who loves fetch and making new friends! Great with kids and other dogs. Looking for playmates who enjoy long walks and park adventures!",
		Interests:      []string{"Fetch", "Swimming", "Hiking", "Dog Parks"},
		Personality:    []string{"Friendly", "Energetic", "Social"},
		GoodWith:       []string{"Dogs", "Kids", "Cats"},
		Vaccinated:     true,
		SpayedNeutered: true,
		Photos:         []string{"https://images.pexels.com/photos/1805164/pexels-photo-1805164.jpeg"},
		Location:       "Central Park Area",
		DistanceKm:     2,
	}); err != nil {
		return seedErr(err)
	}
	if _, err := e.identity.AddPet(ctx, identity.NewPetParams{
		OwnerID:        mike.ID,
		Name:           "Max",
		AgeYears:       2,
		Type:           domain.PetTypeDog,
		Breed:          "French Bulldog",
		Size:           domain.PetSizeSmall,
		Energy:         domain.EnergyMedium,
		Bio:            "Charming little guy with a big personality! Loves cuddles and short walks. Perfect for apartment living friends!",
		Interests:      []string{"Napping", "Treats", "Short Walks", "Socializing"},
		Personality:    []string{"Calm", "Affectionate", "Playful"},
		GoodWith:       []string{"Dogs", "Kids"},
		Vaccinated:     true,
		SpayedNeutered: true,
		Photos:         []string{"https://images.pexels.com/photos/1851164/pexels-photo-1851164.jpeg"},
		Location:       "Downtown",
		DistanceKm:     5,
	}); err != nil {
		return seedErr(err)
	}

	providers := []struct {
		params identity.NewUserParams
		rating float64
	}{
		{
			params: identity.NewUserParams{
				Role:        domain.RoleVeterinarian,
				Email:       "dr.chen@pawcare.com",
				DisplayName: "Dr. Emily Chen",
				Location:    "Downtown Veterinary Clinic",
				Bio:         "Experienced veterinarian specializing in small animal care. Here to help new pet parents with health questions and guidance!",
				PhotoURL:    "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg",
				Contact: identity.ContactInfo{
					Phone:   "(555) 123-4567",
					Website: "www.pawcare.com",
					Address: "123 Main St, Downtown",
				},
				Specialties:   []string{"Small Animal Medicine", "Preventive Care", "Emergency Medicine"},
				BusinessHours: "Mon-Fri 8AM-6PM, Sat 9AM-4PM",
			},
			rating: 4.9,
		},
		{
			params: identity.NewUserParams{
				Role:        domain.RolePetStore,
				Email:       "info@pawsomepets.com",
				DisplayName: "Pawsome Pet Supplies",
				Location:    "Pet District",
				Bio:         "Your neighborhood pet store with everything your furry friends need! Premium food, toys, grooming services, and expert advice.",
				PhotoURL:    "https://images.pexels.com/photos/1254140/pexels-photo-1254140.jpeg",
				Contact: identity.ContactInfo{
					Phone:   "(555) 987-6543",
					Website: "www.pawsomepets.com",
					Address: "456 Pet Avenue",
				},
				Services:      []string{"Pet Food & Treats", "Grooming Services", "Pet Accessories", "Training Supplies"},
				BusinessHours: "Daily 9AM-8PM",
			},
			rating: 4.7,
		},
		{
			params: identity.NewUserParams{
				Role:        domain.RoleOrganization,
				Email:       "contact@happytailsrescue.org",
				DisplayName: "Happy Tails Rescue",
				Location:    "Community Center",
				Bio:         "Non-profit animal rescue dedicated to finding loving homes for pets in need. We also provide community education and support!",
				PhotoURL:    "https://images.pexels.com/photos/1108099/pexels-photo-1108099.jpeg",
				Contact: identity.ContactInfo{
					Phone:   "(555) 456-7890",
					Website: "www.happytailsrescue.org",
					Address: "789 Community Blvd",
				},
				OrganizationType: "Animal Rescue",
				Services:         []string{"Pet Adoption", "Community Education", "Volunteer Programs", "Emergency Pet Care"},
			},
			rating: 4.8,
		},
	}

	for _, p := range providers {
		user, err := e.identity.Register(ctx, p.params)
		if err != nil {
			return seedErr(err)
		}
		if _, err := e.identity.DecideVerification(ctx, user.ID, domain.VerificationApproved); err != nil {
			return seedErr(err)
		}
		rating := p.rating
		if _, err := e.users.Execute(ctx, user.ID, nil, func(u *identity.User) {
			u.Rating = rating
		}); err != nil {
			return seedErr(err)
		}
	}
	return nil
}

func seedErr(err error) error {
	return dErrors.Wrap(err, dErrors.CodeInternal, "seed failed")
}
