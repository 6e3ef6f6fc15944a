package assistant

import (
	"time"

	"github.com/vistacasa/casamatch/internal/domain/geo"
	"github.com/vistacasa/casamatch/internal/domain/listing"
)

// demoListings is the fixed inventory served when the store is down and the
// demo fallback is enabled, so the assistant UI always has something to
// rank and display.
func demoListings() []listing.Listing {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []listing.Listing{
		{
			ID:           "demo-1",
			Title:        "Modern apartment in Piantini",
			Description:  "Two-bedroom apartment with balcony near the business district.",
			Price:        185000,
			Area:         95,
			Bedrooms:     2,
			Bathrooms:    2,
			PropertyType: listing.TypeApartment,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Av. Abraham Lincoln 504",
				City:         "Santo Domingo",
				Neighborhood: "Piantini",
				Coordinates:  &geo.Point{Lat: 18.4719, Lng: -69.9403},
			},
			AgentName: "Carmen Reyes",
			Featured:  true,
			CreatedAt: createdAt,
		},
		{
			ID:           "demo-2",
			Title:        "Family house with garden in Arroyo Hondo",
			Description:  "Four-bedroom house with a private garden and two-car garage.",
			Price:        320000,
			Area:         240,
			Bedrooms:     4,
			Bathrooms:    3,
			PropertyType: listing.TypeHouse,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Calle Camino Real 21",
				City:         "Santo Domingo",
				Neighborhood: "Arroyo Hondo",
				Coordinates:  &geo.Point{Lat: 18.5046, Lng: -69.9598},
			},
			AgentName: "Luis Peralta",
			CreatedAt: createdAt.Add(-24 * time.Hour),
		},
		{
			ID:           "demo-3",
			Title:        "Beachfront condo in Juan Dolio",
			Description:  "One-bedroom condo steps from the beach, fully furnished.",
			Price:        145000,
			Area:         70,
			Bedrooms:     1,
			Bathrooms:    1,
			PropertyType: listing.TypeCondo,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Blvd. Juan Dolio 8",
				City:         "Juan Dolio",
				Coordinates:  &geo.Point{Lat: 18.4273, Lng: -69.4235},
			},
			AgentName: "Carmen Reyes",
			CreatedAt: createdAt.Add(-48 * time.Hour),
		},
		{
			ID:           "demo-4",
			Title:        "Rental apartment near the Colonial Zone",
			Description:  "Three-bedroom apartment walking distance from El Conde.",
			Price:        950,
			Area:         120,
			Bedrooms:     3,
			Bathrooms:    2,
			PropertyType: listing.TypeApartment,
			ListingType:  listing.ForRent,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Calle Las Damas 44",
				City:         "Santo Domingo",
				Neighborhood: "Zona Colonial",
				Coordinates:  &geo.Point{Lat: 18.4734, Lng: -69.8824},
			},
			AgentName: "Luis Peralta",
			CreatedAt: createdAt.Add(-72 * time.Hour),
		},
		{
			ID:           "demo-5",
			Title:        "Commercial lot on the Santiago ring road",
			Description:  "Flat commercial land with road frontage, utilities at the curb.",
			Price:        275000,
			Area:         1500,
			PropertyType: listing.TypeLand,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address: "Autopista Duarte km 7",
				City:    "Santiago",
			},
			AgentName: "Maria Taveras",
			CreatedAt: createdAt.Add(-96 * time.Hour),
		},
	}
}
