package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vistacasa/casamatch/internal/domain"
	"github.com/vistacasa/casamatch/internal/domain/geo"
	domlisting "github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/preference"
	"github.com/vistacasa/casamatch/internal/domain/search/filter"
	"github.com/vistacasa/casamatch/internal/domain/search/request"
	assistantuc "github.com/vistacasa/casamatch/internal/usecase/assistant"
	healthuc "github.com/vistacasa/casamatch/internal/usecase/health"
	searchuc "github.com/vistacasa/casamatch/internal/usecase/search"
)

// ListingReader fetches a single listing for the detail endpoint.
type ListingReader interface {
	Get(ctx context.Context, id string) (domlisting.Listing, error)
}

// Server holds the HTTP handlers for the matching/search API.
type Server struct {
	search    *searchuc.Service
	assistant *assistantuc.Service
	listings  ListingReader
	health    *healthuc.Service
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	assistant *assistantuc.Service,
	listings ListingReader,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:    search,
		assistant: assistant,
		listings:  listings,
		health:    health,
		logger:    logger,
	}
}

// Register mounts all routes on the router. The agent-assistant endpoint is
// protected by bearer API keys; search, facets, listing detail, health, and
// metrics are open.
func (s *Server) Register(r chi.Router, apiKeys []string) {
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/search", s.handleSearch)
	r.Get("/facets", s.handleFacets)
	r.Get("/listings/{id}", s.handleGetListing)

	r.Group(func(g chi.Router) {
		g.Use(BearerAuthMiddleware(apiKeys))
		g.Post("/agent-assistant", s.handleAssistant)
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	spec, err := specFromRequest(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	req, err := request.New(spec, body.Page, body.PageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	page, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(&page))
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	facets := s.search.FacetValues(r.Context())
	writeJSON(w, http.StatusOK, facetsToResponse(facets))
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "listing id is required")
		return
	}

	l, err := s.listings.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToDTO(&l))
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var body assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	prefs := profileFromDTO(&body.Preferences)
	report, err := s.assistant.Assist(r.Context(), &prefs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToResponse(&report))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	status := http.StatusOK
	if rep.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(rep.Checks))
	for k, v := range rep.Checks {
		checks[k] = string(v)
	}
	writeJSON(w, status, healthResponse{Status: string(rep.Status), Checks: checks})
}

// handleDomainError maps domain errors to HTTP responses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrListingNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "listing not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		s.logger.Error("store failure", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "search temporarily unavailable")
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// specFromRequest converts the JSON search body into a filter spec.
func specFromRequest(body *searchRequest) (filter.Spec, error) {
	spec := filter.Spec{
		Query:        body.Query,
		City:         body.City,
		Neighborhood: body.Neighborhood,
		PropertyType: domlisting.PropertyType(body.PropertyType),
		ListingType:  domlisting.ListingType(body.ListingType),
		MinPrice:     body.MinPrice,
		MaxPrice:     body.MaxPrice,
		MinArea:      body.MinArea,
		MaxArea:      body.MaxArea,
		MinBedrooms:  body.MinBedrooms,
		MinBathrooms: body.MinBathrooms,
		RadiusKm:     body.RadiusKm,
	}

	if (body.Lat == nil) != (body.Lng == nil) {
		return filter.Spec{}, errors.New("lat and lng must be provided together")
	}
	if body.Lat != nil {
		spec.Center = &geo.Point{Lat: *body.Lat, Lng: *body.Lng}
	}

	return spec, nil
}

func profileFromDTO(dto *preferencesDTO) preference.Profile {
	prefs := preference.Profile{
		BudgetMin:   dto.BudgetMin,
		BudgetMax:   dto.BudgetMax,
		Location:    dto.Location,
		MinBedrooms: dto.Bedrooms,
	}
	if dto.PropertyType != nil {
		pt := domlisting.PropertyType(*dto.PropertyType)
		prefs.PropertyType = &pt
	}
	return prefs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
