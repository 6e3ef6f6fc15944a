// Package assistant implements the agent-assistant flow: rank the current
// inventory against a buyer's preferences, qualify the lead, and derive
// market talking points for agent outreach.
package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/vistacasa/casamatch/internal/domain"
	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/preference"
	"github.com/vistacasa/casamatch/internal/logger"
	"github.com/vistacasa/casamatch/internal/metrics"
	"github.com/vistacasa/casamatch/internal/usecase/scoring"
)

// Default limits.
const (
	DefaultCandidateLimit  = 500
	DefaultSuggestionLimit = 10
	DefaultTopCities       = 3
)

// Report is the assistant's answer for one preference profile.
type Report struct {
	LeadScore      int
	Suggestions    []scoring.Scored
	OutreachTips   []string
	MarketInsights []string
}

// CityCount is a city with its active inventory count.
type CityCount struct {
	City  string
	Count int
}

// Service handles agent-assistant requests.
type Service struct {
	repo            Repository
	scorer          *scoring.Scorer
	candidateLimit  int
	suggestionLimit int
	topCities       int
	demoFallback    bool
}

// New creates an assistant service with default limits.
func New(repo Repository, scorer *scoring.Scorer) *Service {
	return &Service{
		repo:            repo,
		scorer:          scorer,
		candidateLimit:  DefaultCandidateLimit,
		suggestionLimit: DefaultSuggestionLimit,
		topCities:       DefaultTopCities,
	}
}

// WithLimits overrides the suggestion and top-cities limits.
func (s *Service) WithLimits(suggestions, topCities int) *Service {
	if suggestions > 0 {
		s.suggestionLimit = suggestions
	}
	if topCities > 0 {
		s.topCities = topCities
	}
	return s
}

// WithDemoFallback enables substituting a fixed demo inventory when the
// store fetch fails. Off by default: a store outage should normally surface
// instead of being masked by fabricated results.
func (s *Service) WithDemoFallback(enabled bool) *Service {
	s.demoFallback = enabled
	return s
}

// Assist ranks the inventory for the given preferences and produces the
// lead score, top suggestions, and derived outreach/market strings.
func (s *Service) Assist(ctx context.Context, prefs *preference.Profile) (Report, error) {
	if err := prefs.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	candidates, err := s.repo.FetchCandidates(ctx, nil, s.candidateLimit)
	if err != nil {
		if !s.demoFallback {
			return Report{}, fmt.Errorf("fetch candidates: %w", err)
		}
		logger.FromContext(ctx).Warn("store fetch failed, using demo inventory",
			zap.Error(err),
		)
		candidates = demoListings()
	}

	ranked := s.scorer.RankListings(candidates, prefs)

	suggestions := ranked
	if len(suggestions) > s.suggestionLimit {
		suggestions = suggestions[:s.suggestionLimit]
	}

	leadScore := s.scorer.ComputeLeadScore(len(ranked), prefs)
	metrics.LeadScores.Observe(float64(leadScore))

	avgPrice := AveragePrice(candidates)
	topCities := TopCities(candidates, s.topCities)

	return Report{
		LeadScore:      leadScore,
		Suggestions:    suggestions,
		OutreachTips:   outreachTips(prefs, len(ranked)),
		MarketInsights: marketInsights(candidates, avgPrice, topCities),
	}, nil
}

// AveragePrice returns the mean price of the active listings in the set.
func AveragePrice(listings []listing.Listing) float64 {
	sum := 0.0
	n := 0
	for i := range listings {
		if listings[i].IsActive() {
			sum += listings[i].Price
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// TopCities returns the n cities with the most active listings, by count
// descending. Ties break alphabetically so the output is deterministic.
func TopCities(listings []listing.Listing, n int) []CityCount {
	counts := make(map[string]int)
	for i := range listings {
		l := &listings[i]
		if l.IsActive() && l.Location.City != "" {
			counts[l.Location.City]++
		}
	}

	cities := make([]CityCount, 0, len(counts))
	for city, count := range counts {
		cities = append(cities, CityCount{City: city, Count: count})
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Count != cities[j].Count {
			return cities[i].Count > cities[j].Count
		}
		return cities[i].City < cities[j].City
	})

	if len(cities) > n {
		cities = cities[:n]
	}
	return cities
}

func outreachTips(prefs *preference.Profile, matchCount int) []string {
	tips := []string{
		"Respond within the first hour; lead conversion drops sharply after that.",
	}
	if matchCount > 0 {
		tips = append(tips, fmt.Sprintf(
			"Open with the %d matching properties already on the market.", matchCount,
		))
	} else {
		tips = append(tips,
			"No direct matches right now; suggest widening the budget or nearby neighborhoods.",
		)
	}
	if prefs.HasBudget() {
		tips = append(tips, "The buyer stated a budget; lead with options inside it, not above.")
	}
	if prefs.Location != "" {
		tips = append(tips, fmt.Sprintf(
			"Mention recent activity in %s to show local expertise.", prefs.Location,
		))
	}
	return tips
}

func marketInsights(candidates []listing.Listing, avgPrice float64, topCities []CityCount) []string {
	active := 0
	for i := range candidates {
		if candidates[i].IsActive() {
			active++
		}
	}

	insights := []string{
		fmt.Sprintf("%d active listings in the current inventory.", active),
	}
	if avgPrice > 0 {
		insights = append(insights, fmt.Sprintf(
			"Average asking price across active listings: $%.0f.", avgPrice,
		))
	}
	if len(topCities) > 0 {
		parts := make([]string, len(topCities))
		for i, c := range topCities {
			parts[i] = fmt.Sprintf("%s (%d)", c.City, c.Count)
		}
		insights = append(insights, "Top cities by inventory: "+strings.Join(parts, ", ")+".")
	}
	return insights
}
