package chi

import (
	"time"

	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/search/result"
	"github.com/vistacasa/casamatch/internal/usecase/assistant"
	"github.com/vistacasa/casamatch/internal/usecase/scoring"
	"github.com/vistacasa/casamatch/internal/usecase/search"
)

// Error codes returned in JSON error responses.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeUnauthorized     = "unauthorized"
	codeStoreUnavailable = "store_unavailable"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type searchRequest struct {
	Query        string   `json:"query,omitempty"`
	City         string   `json:"city,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	ListingType  string   `json:"listing_type,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	MinArea      *float64 `json:"min_area,omitempty"`
	MaxArea      *float64 `json:"max_area,omitempty"`
	MinBedrooms  *int     `json:"min_bedrooms,omitempty"`
	MinBathrooms *int     `json:"min_bathrooms,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	RadiusKm     *float64 `json:"radius_km,omitempty"`
	Page         int      `json:"page,omitempty"`
	PageSize     int      `json:"page_size,omitempty"`
}

type preferencesDTO struct {
	BudgetMin    *float64 `json:"budget_min,omitempty"`
	BudgetMax    *float64 `json:"budget_max,omitempty"`
	Location     string   `json:"location,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
}

type assistantRequest struct {
	Preferences preferencesDTO `json:"preferences"`
}

type listingDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Area         float64  `json:"area,omitempty"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	PropertyType string   `json:"property_type"`
	ListingType  string   `json:"listing_type"`
	Status       string   `json:"status"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	AgentName    string   `json:"agent_name,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type searchResultDTO struct {
	Listing    listingDTO `json:"listing"`
	Relevance  *float64   `json:"relevance,omitempty"`
	DistanceKm *float64   `json:"distance_km,omitempty"`
}

type searchResponse struct {
	Results    []searchResultDTO `json:"results"`
	TotalHits  int               `json:"total_hits"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type suggestionDTO struct {
	Listing listingDTO `json:"listing"`
	Score   int        `json:"score"`
}

type assistantResponse struct {
	LeadScore      int             `json:"lead_score"`
	Suggestions    []suggestionDTO `json:"suggestions"`
	OutreachTips   []string        `json:"outreach_tips"`
	MarketInsights []string        `json:"market_insights"`
}

type facetsResponse struct {
	Cities        []string `json:"cities"`
	Neighborhoods []string `json:"neighborhoods"`
	PropertyTypes []string `json:"property_types"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func listingToDTO(l *listing.Listing) listingDTO {
	dto := listingDTO{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		Area:         l.Area,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		PropertyType: string(l.PropertyType),
		ListingType:  string(l.ListingType),
		Status:       string(l.Status),
		Address:      l.Location.Address,
		City:         l.Location.City,
		Neighborhood: l.Location.Neighborhood,
		AgentName:    l.AgentName,
		Featured:     l.Featured,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c := l.Location.Coordinates; c != nil {
		lat, lng := c.Lat, c.Lng
		dto.Lat = &lat
		dto.Lng = &lng
	}
	return dto
}

func pageToResponse(p *result.Page) searchResponse {
	results := make([]searchResultDTO, len(p.Results()))
	for i, r := range p.Results() {
		l := r.Listing()
		results[i] = searchResultDTO{
			Listing:    listingToDTO(&l),
			Relevance:  r.Relevance(),
			DistanceKm: r.DistanceKm(),
		}
	}
	return searchResponse{
		Results:    results,
		TotalHits:  p.TotalHits(),
		Page:       p.Page(),
		TotalPages: p.TotalPages(),
	}
}

func reportToResponse(rep *assistant.Report) assistantResponse {
	suggestions := make([]suggestionDTO, len(rep.Suggestions))
	for i, sc := range rep.Suggestions {
		suggestions[i] = suggestionToDTO(sc)
	}
	return assistantResponse{
		LeadScore:      rep.LeadScore,
		Suggestions:    suggestions,
		OutreachTips:   rep.OutreachTips,
		MarketInsights: rep.MarketInsights,
	}
}

func suggestionToDTO(sc scoring.Scored) suggestionDTO {
	return suggestionDTO{Listing: listingToDTO(&sc.Listing), Score: sc.Score}
}

func facetsToResponse(f search.Facets) facetsResponse {
	return facetsResponse{
		Cities:        emptyIfNil(f.Cities),
		Neighborhoods: emptyIfNil(f.Neighborhoods),
		PropertyTypes: emptyIfNil(f.PropertyTypes),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
