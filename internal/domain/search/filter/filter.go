// Package filter models the search filter specification and its split into
// store-pushable conditions and in-process predicates. Exact-match tags and
// single-field minimums are cheap for the document store; compound numeric
// ranges, geo radius, and text relevance are always evaluated in-process.
package filter

import (
	"fmt"

	"github.com/vistacasa/casamatch/internal/domain/geo"
	"github.com/vistacasa/casamatch/internal/domain/listing"
)

// Spec is a caller-supplied, request-scoped search filter.
type Spec struct {
	Query        string
	City         string
	Neighborhood string
	PropertyType listing.PropertyType
	ListingType  listing.ListingType
	MinPrice     *float64
	MaxPrice     *float64
	MinArea      *float64
	MaxArea      *float64
	MinBedrooms  *int
	MinBathrooms *int
	Center       *geo.Point
	RadiusKm     *float64
}

// Validate rejects malformed filter input.
func (s *Spec) Validate() error {
	if s.PropertyType != "" && !s.PropertyType.IsValid() {
		return fmt.Errorf("unknown property type %q", s.PropertyType)
	}
	if s.ListingType != "" && !s.ListingType.IsValid() {
		return fmt.Errorf("unknown listing type %q", s.ListingType)
	}
	if err := validateRange("price", s.MinPrice, s.MaxPrice); err != nil {
		return err
	}
	if err := validateRange("area", s.MinArea, s.MaxArea); err != nil {
		return err
	}
	if s.MinBedrooms != nil && *s.MinBedrooms < 0 {
		return fmt.Errorf("min_bedrooms must be non-negative, got %d", *s.MinBedrooms)
	}
	if s.MinBathrooms != nil && *s.MinBathrooms < 0 {
		return fmt.Errorf("min_bathrooms must be non-negative, got %d", *s.MinBathrooms)
	}
	if s.Center != nil && !geo.ValidateCoordinates(s.Center.Lat, s.Center.Lng) {
		return fmt.Errorf("coordinates out of range (%g, %g)", s.Center.Lat, s.Center.Lng)
	}
	if s.RadiusKm != nil {
		if *s.RadiusKm <= 0 {
			return fmt.Errorf("radius_km must be positive, got %g", *s.RadiusKm)
		}
		if s.Center == nil {
			return fmt.Errorf("radius_km requires lat and lng")
		}
	}
	return nil
}

func validateRange(name string, minVal, maxVal *float64) error {
	if minVal != nil && *minVal < 0 {
		return fmt.Errorf("min_%s must be non-negative, got %g", name, *minVal)
	}
	if maxVal != nil && *maxVal < 0 {
		return fmt.Errorf("max_%s must be non-negative, got %g", name, *maxVal)
	}
	if minVal != nil && maxVal != nil && *minVal > *maxVal {
		return fmt.Errorf("min_%s %g exceeds max_%s %g", name, *minVal, name, *maxVal)
	}
	return nil
}

// HasQuery reports whether a free-text query is set.
func (s *Spec) HasQuery() bool { return s.Query != "" }

// HasGeo reports whether a geo center is set.
func (s *Spec) HasGeo() bool { return s.Center != nil }

// StoreConditions returns the filter subset the document store can apply
// itself: exact-match tags and single-field minimum thresholds.
func (s *Spec) StoreConditions() []Condition {
	var conds []Condition
	if s.City != "" {
		conds = append(conds, NewMatch("city", s.City))
	}
	if s.Neighborhood != "" {
		conds = append(conds, NewMatch("neighborhood", s.Neighborhood))
	}
	if s.PropertyType != "" {
		conds = append(conds, NewMatch("property_type", string(s.PropertyType)))
	}
	if s.ListingType != "" {
		conds = append(conds, NewMatch("listing_type", string(s.ListingType)))
	}
	if s.MinBedrooms != nil {
		conds = append(conds, NewMin("bedrooms", float64(*s.MinBedrooms)))
	}
	if s.MinBathrooms != nil {
		conds = append(conds, NewMin("bathrooms", float64(*s.MinBathrooms)))
	}
	return conds
}

// Matches is the in-process predicate covering the ranges the store cannot
// filter cheaply: price and area.
func (s *Spec) Matches(l *listing.Listing) bool {
	if s.MinPrice != nil && l.Price < *s.MinPrice {
		return false
	}
	if s.MaxPrice != nil && l.Price > *s.MaxPrice {
		return false
	}
	if s.MinArea != nil && l.Area < *s.MinArea {
		return false
	}
	if s.MaxArea != nil && l.Area > *s.MaxArea {
		return false
	}
	return true
}

// Condition is a single store-pushable filter clause: either an exact tag
// match or a minimum numeric threshold.
type Condition struct {
	key   string
	match string
	min   *float64
}

// NewMatch creates an exact tag match condition.
func NewMatch(key, match string) Condition {
	return Condition{key: key, match: match}
}

// NewMin creates a minimum-threshold condition.
func NewMin(key string, minVal float64) Condition {
	return Condition{key: key, min: &minVal}
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Min returns the minimum threshold.
func (c Condition) Min() *float64 { return c.min }

// IsMatch reports whether this is a match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsMin reports whether this is a minimum-threshold condition.
func (c Condition) IsMin() bool { return c.min != nil }
