package listing

import (
	"fmt"
	"time"

	"github.com/vistacasa/casamatch/internal/domain/geo"
)

// Status is the moderation/lifecycle state of a listing.
type Status string

// Listing status constants. Only active listings are eligible for
// search results or matching.
const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusSold     Status = "sold"
	StatusRejected Status = "rejected"
	StatusDraft    Status = "draft"
)

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusPending || s == StatusSold ||
		s == StatusRejected || s == StatusDraft
}

// PropertyType categorizes the property itself.
type PropertyType string

// Property type constants.
const (
	TypeApartment  PropertyType = "apartment"
	TypeHouse      PropertyType = "house"
	TypeCondo      PropertyType = "condo"
	TypeLand       PropertyType = "land"
	TypeCommercial PropertyType = "commercial"
)

// IsValid checks if the property type is one of the supported values.
func (t PropertyType) IsValid() bool {
	return t == TypeApartment || t == TypeHouse || t == TypeCondo ||
		t == TypeLand || t == TypeCommercial
}

// ListingType distinguishes sale from rental listings.
type ListingType string

// Listing type constants.
const (
	ForSale ListingType = "sale"
	ForRent ListingType = "rent"
)

// IsValid checks if the listing type is one of the supported values.
func (t ListingType) IsValid() bool {
	return t == ForSale || t == ForRent
}

// Location describes where a listing is. Coordinates are optional:
// many records carry only a free-text address.
type Location struct {
	Address      string
	City         string
	Neighborhood string
	Coordinates  *geo.Point
}

// Listing is a property record as read from the document store.
// Fields are exported because listings cross the repository boundary as
// plain records; Validate gates them at that boundary.
type Listing struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	Area         float64
	Bedrooms     int
	Bathrooms    int
	PropertyType PropertyType
	ListingType  ListingType
	Status       Status
	Location     Location
	AgentName    string
	Featured     bool
	CreatedAt    time.Time
}

// Validate rejects malformed listing records instead of letting bad values
// flow into scoring arithmetic.
func (l *Listing) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("listing ID is required")
	}
	if l.Title == "" {
		return fmt.Errorf("listing %s: title is required", l.ID)
	}
	if l.Price < 0 {
		return fmt.Errorf("listing %s: negative price %g", l.ID, l.Price)
	}
	if l.Area < 0 {
		return fmt.Errorf("listing %s: negative area %g", l.ID, l.Area)
	}
	if l.Bedrooms < 0 {
		return fmt.Errorf("listing %s: negative bedroom count %d", l.ID, l.Bedrooms)
	}
	if l.Bathrooms < 0 {
		return fmt.Errorf("listing %s: negative bathroom count %d", l.ID, l.Bathrooms)
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("listing %s: unknown status %q", l.ID, l.Status)
	}
	if !l.PropertyType.IsValid() {
		return fmt.Errorf("listing %s: unknown property type %q", l.ID, l.PropertyType)
	}
	if !l.ListingType.IsValid() {
		return fmt.Errorf("listing %s: unknown listing type %q", l.ID, l.ListingType)
	}
	if c := l.Location.Coordinates; c != nil && !geo.ValidateCoordinates(c.Lat, c.Lng) {
		return fmt.Errorf("listing %s: coordinates out of range (%g, %g)", l.ID, c.Lat, c.Lng)
	}
	return nil
}

// IsActive reports whether the listing is eligible for search and matching.
func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}

// CityOrAddress returns the city, falling back to the free-text address
// when no city is recorded. Location preference matching uses this field.
func (l *Listing) CityOrAddress() string {
	if l.Location.City != "" {
		return l.Location.City
	}
	return l.Location.Address
}
