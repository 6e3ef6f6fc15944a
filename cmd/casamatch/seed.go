package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vistacasa/casamatch/internal/domain/geo"
	"github.com/vistacasa/casamatch/internal/domain/listing"
	listingrepo "github.com/vistacasa/casamatch/internal/repository/listing"
)

// runSeed loads a demo inventory into the store. Intended for local
// development and smoke tests, not production.
func runSeed(ctx context.Context, repo *listingrepo.Repo, logger *zap.Logger) error {
	listings := seedListings()
	if err := repo.UpsertMulti(ctx, listings); err != nil {
		return err
	}
	logger.Info("Seeded demo listings", zap.Int("count", len(listings)))
	return nil
}

func seedListings() []listing.Listing {
	now := time.Now()
	point := func(lat, lng float64) *geo.Point { return &geo.Point{Lat: lat, Lng: lng} }

	seeds := []listing.Listing{
		{
			Title:        "Modern apartment in Piantini",
			Description:  "Bright two bedroom apartment with balcony, walking distance to Blue Mall.",
			Price:        185000,
			Area:         120,
			Bedrooms:     2,
			Bathrooms:    2,
			PropertyType: listing.TypeApartment,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Av. Abraham Lincoln 505",
				City:         "Santo Domingo",
				Neighborhood: "Piantini",
				Coordinates:  point(18.4728, -69.9388),
			},
			AgentName: "Maria Gomez",
			Featured:  true,
		},
		{
			Title:        "Family house in Arroyo Hondo",
			Description:  "Spacious four bedroom house with garden and two car garage.",
			Price:        320000,
			Area:         280,
			Bedrooms:     4,
			Bathrooms:    3,
			PropertyType: listing.TypeHouse,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Calle Los Robles 12",
				City:         "Santo Domingo",
				Neighborhood: "Arroyo Hondo",
				Coordinates:  point(18.5032, -69.9522),
			},
			AgentName: "Pedro Castillo",
		},
		{
			Title:        "Beachfront condo in Juan Dolio",
			Description:  "Ocean view condo with pool access, fully furnished.",
			Price:        1500,
			Area:         95,
			Bedrooms:     2,
			Bathrooms:    2,
			PropertyType: listing.TypeCondo,
			ListingType:  listing.ForRent,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Blvd. Juan Dolio km 3",
				City:         "Juan Dolio",
				Coordinates:  point(18.4242, -69.4236),
			},
			AgentName: "Laura Pena",
			Featured:  true,
		},
		{
			Title:        "Colonial studio near the Zona Colonial",
			Description:  "Restored studio in a colonial building, ideal for short stays.",
			Price:        850,
			Area:         48,
			Bedrooms:     1,
			Bathrooms:    1,
			PropertyType: listing.TypeApartment,
			ListingType:  listing.ForRent,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:      "Calle El Conde 158",
				City:         "Santo Domingo",
				Neighborhood: "Zona Colonial",
				Coordinates:  point(18.4734, -69.8849),
			},
			AgentName: "Maria Gomez",
		},
		{
			Title:        "Commercial lot in Santiago",
			Description:  "Corner lot on a main avenue, zoned for commercial use.",
			Price:        450000,
			Area:         600,
			Bedrooms:     0,
			Bathrooms:    0,
			PropertyType: listing.TypeCommercial,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address: "Av. 27 de Febrero 900",
				City:    "Santiago",
			},
			AgentName: "Pedro Castillo",
		},
		{
			Title:        "Penthouse in Naco",
			Description:  "Three bedroom penthouse with rooftop terrace and city views.",
			Price:        295000,
			Area:         210,
			Bedrooms:     3,
			Bathrooms:    3,
			PropertyType: listing.TypeApartment,
			ListingType:  listing.ForSale,
			Status:       listing.StatusPending,
			Location: listing.Location{
				Address:      "Calle Rafael Augusto Sanchez 33",
				City:         "Santo Domingo",
				Neighborhood: "Naco",
				Coordinates:  point(18.4771, -69.9312),
			},
			AgentName: "Laura Pena",
		},
		{
			Title:        "Residential land in Punta Cana",
			Description:  "Flat residential lot inside a gated community, utilities at the curb.",
			Price:        95000,
			Area:         800,
			Bedrooms:     0,
			Bathrooms:    0,
			PropertyType: listing.TypeLand,
			ListingType:  listing.ForSale,
			Status:       listing.StatusActive,
			Location: listing.Location{
				Address:     "Vista Cana, Lote B-14",
				City:        "Punta Cana",
				Coordinates: point(18.5601, -68.3725),
			},
			AgentName: "Maria Gomez",
		},
	}

	for i := range seeds {
		seeds[i].ID = uuid.NewString()
		seeds[i].CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
	}
	return seeds
}
