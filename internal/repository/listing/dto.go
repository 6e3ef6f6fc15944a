package listing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vistacasa/casamatch/internal/domain/geo"
	domlisting "github.com/vistacasa/casamatch/internal/domain/listing"
)

// Hash field names. Tag and numeric fields double as FT index schema fields.
const (
	fieldTitle        = "title"
	fieldDescription  = "description"
	fieldPrice        = "price"
	fieldArea         = "area"
	fieldBedrooms     = "bedrooms"
	fieldBathrooms    = "bathrooms"
	fieldPropertyType = "property_type"
	fieldListingType  = "listing_type"
	fieldStatus       = "status"
	fieldAddress      = "address"
	fieldCity         = "city"
	fieldNeighborhood = "neighborhood"
	fieldLat          = "lat"
	fieldLng          = "lng"
	fieldAgentName    = "agent_name"
	fieldFeatured     = "featured"
	fieldCreatedAt    = "created_at"
)

// buildHashFields converts a domain Listing into a flat map[string]string for HSET.
func buildHashFields(l *domlisting.Listing) map[string]string {
	m := map[string]string{
		fieldTitle:        l.Title,
		fieldDescription:  l.Description,
		fieldPrice:        formatFloat(l.Price),
		fieldArea:         formatFloat(l.Area),
		fieldBedrooms:     strconv.Itoa(l.Bedrooms),
		fieldBathrooms:    strconv.Itoa(l.Bathrooms),
		fieldPropertyType: string(l.PropertyType),
		fieldListingType:  string(l.ListingType),
		fieldStatus:       string(l.Status),
		fieldAddress:      l.Location.Address,
		fieldCity:         l.Location.City,
		fieldNeighborhood: l.Location.Neighborhood,
		fieldAgentName:    l.AgentName,
		fieldFeatured:     "0",
		fieldCreatedAt:    strconv.FormatInt(l.CreatedAt.Unix(), 10),
	}
	if l.Featured {
		m[fieldFeatured] = "1"
	}
	if c := l.Location.Coordinates; c != nil {
		m[fieldLat] = formatFloat(c.Lat)
		m[fieldLng] = formatFloat(c.Lng)
	}
	return m
}

// parseHashFields converts a flat hash map back into a validated Listing.
func parseHashFields(id string, m map[string]string) (domlisting.Listing, error) {
	l := domlisting.Listing{
		ID:           id,
		Title:        m[fieldTitle],
		Description:  m[fieldDescription],
		PropertyType: domlisting.PropertyType(m[fieldPropertyType]),
		ListingType:  domlisting.ListingType(m[fieldListingType]),
		Status:       domlisting.Status(m[fieldStatus]),
		AgentName:    m[fieldAgentName],
		Featured:     m[fieldFeatured] == "1",
		Location: domlisting.Location{
			Address:      m[fieldAddress],
			City:         m[fieldCity],
			Neighborhood: m[fieldNeighborhood],
		},
	}

	var err error
	if l.Price, err = parseFloat(m, fieldPrice); err != nil {
		return domlisting.Listing{}, err
	}
	if l.Area, err = parseFloat(m, fieldArea); err != nil {
		return domlisting.Listing{}, err
	}
	if l.Bedrooms, err = parseInt(m, fieldBedrooms); err != nil {
		return domlisting.Listing{}, err
	}
	if l.Bathrooms, err = parseInt(m, fieldBathrooms); err != nil {
		return domlisting.Listing{}, err
	}

	if ts := m[fieldCreatedAt]; ts != "" {
		sec, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			return domlisting.Listing{}, fmt.Errorf("field %s: %w", fieldCreatedAt, err)
		}
		l.CreatedAt = time.Unix(sec, 0).UTC()
	}

	// A record must carry both coordinates or neither.
	latStr, lngStr := m[fieldLat], m[fieldLng]
	if (latStr == "") != (lngStr == "") {
		return domlisting.Listing{}, fmt.Errorf("listing %s: half-specified coordinates", id)
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return domlisting.Listing{}, fmt.Errorf("field %s: %w", fieldLat, err)
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return domlisting.Listing{}, fmt.Errorf("field %s: %w", fieldLng, err)
		}
		l.Location.Coordinates = &geo.Point{Lat: lat, Lng: lng}
	}

	if err := l.Validate(); err != nil {
		return domlisting.Listing{}, err
	}
	return l, nil
}

func parseFloat(m map[string]string, field string) (float64, error) {
	s, ok := m[field]
	if !ok || s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return f, nil
}

func parseInt(m map[string]string, field string) (int, error) {
	s, ok := m[field]
	if !ok || s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return n, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
