// Package search implements the search/filter engine: a bounded candidate
// fetch followed by in-process filtering, relevance and distance scoring,
// sorting, and pagination.
package search

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/vistacasa/casamatch/internal/domain/geo"
	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/search/request"
	"github.com/vistacasa/casamatch/internal/domain/search/result"
	"github.com/vistacasa/casamatch/internal/domain/text"
	"github.com/vistacasa/casamatch/internal/logger"
	"github.com/vistacasa/casamatch/internal/metrics"
)

// DefaultCandidateLimit caps how many documents a single search fetches
// from the store. One round-trip per search; the cap bounds worst-case
// fetch size and latency.
const DefaultCandidateLimit = 500

// Service handles listing search.
type Service struct {
	repo           Repository
	candidateLimit int
	facetLimit     int
}

// New creates a search service with default limits.
func New(repo Repository) *Service {
	return &Service{
		repo:           repo,
		candidateLimit: DefaultCandidateLimit,
		facetLimit:     DefaultCandidateLimit,
	}
}

// WithCandidateLimit overrides the store fetch cap.
func (s *Service) WithCandidateLimit(n int) *Service {
	if n > 0 {
		s.candidateLimit = n
	}
	return s
}

// Search executes the full pipeline: fetch, filter, score, sort, paginate.
// Store failures propagate to the caller; an empty page is never silently
// substituted for a failed fetch.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	spec := req.Spec()

	candidates, err := s.repo.FetchCandidates(ctx, spec.StoreConditions(), s.candidateLimit)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return result.Page{}, fmt.Errorf("fetch candidates: %w", err)
	}
	metrics.SearchCandidates.Observe(float64(len(candidates)))

	results := make([]result.Result, 0, len(candidates))
	for i := range candidates {
		l := candidates[i]
		if !spec.Matches(&l) {
			continue
		}

		var relevance *float64
		if spec.HasQuery() {
			rel := text.Relevance(spec.Query, searchableText(&l))
			if rel < text.MinRelevance {
				continue
			}
			relevance = &rel
		}

		var distance *float64
		if spec.HasGeo() && l.Location.Coordinates != nil {
			d := geo.HaversineKm(*spec.Center, *l.Location.Coordinates)
			distance = &d
		}
		if spec.RadiusKm != nil {
			// Coordinate-less listings cannot satisfy a radius filter.
			if distance == nil || *distance > *spec.RadiusKm {
				continue
			}
		}

		results = append(results, result.New(l, relevance, distance))
	}

	sortResults(results)

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	return result.NewPage(results, req.Page(), req.PageSize()), nil
}

// sortResults orders the filtered set. Distance beats relevance when both
// are present: geo intent is the stronger signal. With neither, the store's
// recency order stands. The sort is stable so ties keep candidate order.
func sortResults(results []result.Result) {
	anyDistance := false
	anyRelevance := false
	for i := range results {
		if results[i].DistanceKm() != nil {
			anyDistance = true
		}
		if results[i].Relevance() != nil {
			anyRelevance = true
		}
	}

	switch {
	case anyDistance:
		sort.SliceStable(results, func(i, j int) bool {
			di, dj := results[i].DistanceKm(), results[j].DistanceKm()
			if di == nil || dj == nil {
				// Results without a distance sort after those with one.
				return di != nil && dj == nil
			}
			return *di < *dj
		})
	case anyRelevance:
		sort.SliceStable(results, func(i, j int) bool {
			ri, rj := results[i].Relevance(), results[j].Relevance()
			if ri == nil || rj == nil {
				return ri != nil && rj == nil
			}
			return *ri > *rj
		})
	}
}

// searchableText concatenates the fields a text query is matched against.
func searchableText(l *listing.Listing) string {
	return text.Searchable(
		l.Title,
		l.Description,
		l.Location.Address,
		l.Location.City,
		l.Location.Neighborhood,
		l.AgentName,
	)
}

// Facets holds the distinct filterable values of the current inventory.
type Facets struct {
	Cities        []string
	Neighborhoods []string
	PropertyTypes []string
}

// FacetValues scans a bounded sample of active listings and returns sorted
// distinct values per facet field. Best-effort: on store failure it returns
// empty facets and logs, since this only feeds filter dropdowns.
func (s *Service) FacetValues(ctx context.Context) Facets {
	candidates, err := s.repo.FetchCandidates(ctx, nil, s.facetLimit)
	if err != nil {
		logger.FromContext(ctx).Warn("facet sample fetch failed", zap.Error(err))
		return Facets{}
	}

	cities := make(map[string]struct{})
	neighborhoods := make(map[string]struct{})
	types := make(map[string]struct{})
	for i := range candidates {
		l := &candidates[i]
		if l.Location.City != "" {
			cities[l.Location.City] = struct{}{}
		}
		if l.Location.Neighborhood != "" {
			neighborhoods[l.Location.Neighborhood] = struct{}{}
		}
		types[string(l.PropertyType)] = struct{}{}
	}

	return Facets{
		Cities:        sortedKeys(cities),
		Neighborhoods: sortedKeys(neighborhoods),
		PropertyTypes: sortedKeys(types),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
