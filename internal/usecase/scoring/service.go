// Package scoring implements the compatibility scorer: deterministic,
// pure-function ranking of listings against a buyer preference profile.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/preference"
)

// Scored pairs a listing with its compatibility score.
type Scored struct {
	Listing listing.Listing
	Score   int
}

// Scorer computes compatibility and lead-quality scores.
type Scorer struct {
	policy Policy
	lead   LeadPolicy
}

// New creates a scorer with the given weight tables.
func New(policy Policy, lead LeadPolicy) *Scorer {
	return &Scorer{policy: policy, lead: lead}
}

// NewDefault creates a scorer with the production weights.
func NewDefault() *Scorer {
	return New(DefaultPolicy(), DefaultLeadPolicy())
}

// ScoreListing computes the compatibility score of a single listing against
// a preference profile. Deterministic and pure; result is in
// [policy.MinScore, policy.MaxScore].
func (s *Scorer) ScoreListing(l *listing.Listing, prefs *preference.Profile) int {
	score := s.policy.Base

	if prefs.HasBudget() {
		score += s.budgetPoints(l.Price, prefs)
	}

	if prefs.Location != "" {
		if locationMatches(l, prefs.Location) {
			score += s.policy.LocationBonus
		} else {
			score -= s.policy.LocationPenalty
		}
	}

	if prefs.MinBedrooms != nil {
		if l.Bedrooms >= *prefs.MinBedrooms {
			surplus := l.Bedrooms - *prefs.MinBedrooms
			if surplus > s.policy.BedroomExtraCap {
				surplus = s.policy.BedroomExtraCap
			}
			score += s.policy.BedroomBase + s.policy.BedroomPerExtra*surplus
		} else {
			score -= s.policy.BedroomPenalty
		}
	}

	if prefs.PropertyType != nil {
		if l.PropertyType == *prefs.PropertyType {
			score += s.policy.TypeBonus
		} else {
			score -= s.policy.TypePenalty
		}
	}

	if l.Featured {
		score += s.policy.FeaturedBonus
	}

	return clamp(score, s.policy.MinScore, s.policy.MaxScore)
}

// budgetPoints awards up to BudgetFitMax for a price inside the budget
// range, proportional to closeness to the range midpoint, or the flat
// BudgetMissPenalty outside it. Unset bounds default to 0 / unbounded; an
// open-ended range has no midpoint, so any price inside it earns the full
// fit bonus.
func (s *Scorer) budgetPoints(price float64, prefs *preference.Profile) int {
	budgetMin := 0.0
	if prefs.BudgetMin != nil {
		budgetMin = *prefs.BudgetMin
	}

	if price < budgetMin || (prefs.BudgetMax != nil && price > *prefs.BudgetMax) {
		return -s.policy.BudgetMissPenalty
	}

	if prefs.BudgetMax == nil {
		return s.policy.BudgetFitMax
	}

	budgetMax := *prefs.BudgetMax
	mid := (budgetMin + budgetMax) / 2
	width := budgetMax - budgetMin
	if width < 1 {
		width = 1
	}
	offset := math.Abs(price-mid) / width
	if offset > 1 {
		offset = 1
	}
	closeness := 1 - offset

	return int(math.Round(closeness * float64(s.policy.BudgetFitMax)))
}

// ComputeLeadScore quantifies how qualified a buyer lead appears from the
// specificity of their preferences and how many listings matched. Pure;
// result is in [lead.MinScore, lead.MaxScore].
func (s *Scorer) ComputeLeadScore(matchCount int, prefs *preference.Profile) int {
	score := s.lead.Base

	if prefs.Location != "" {
		score += s.lead.PerCriterion
	}
	if prefs.MinBedrooms != nil {
		score += s.lead.PerCriterion
	}
	if prefs.HasBudget() {
		score += s.lead.PerCriterion
	}
	if prefs.PropertyType != nil {
		score += s.lead.TypeBonus
	}

	matchBonus := matchCount * s.lead.PerMatch
	if matchBonus > s.lead.MatchBonusCap {
		matchBonus = s.lead.MatchBonusCap
	}
	score += matchBonus

	return clamp(score, s.lead.MinScore, s.lead.MaxScore)
}

// RankListings scores all active listings and returns them sorted by score
// descending. A hard-filter pass (strict threshold exclusion on budget,
// location, bedrooms, and type) is applied first; when it would exclude
// every candidate, the full soft-scored set is returned instead, so a
// qualified buyer never sees zero results when relaxing shows something.
// The sort is stable: ties keep their input order.
func (s *Scorer) RankListings(listings []listing.Listing, prefs *preference.Profile) []Scored {
	scored := make([]Scored, 0, len(listings))
	for i := range listings {
		l := listings[i]
		if !l.IsActive() {
			continue
		}
		scored = append(scored, Scored{Listing: l, Score: s.ScoreListing(&l, prefs)})
	}

	hard := make([]Scored, 0, len(scored))
	for _, sc := range scored {
		if passesHardFilters(&sc.Listing, prefs) {
			hard = append(hard, sc)
		}
	}
	if len(hard) > 0 {
		scored = hard
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// passesHardFilters applies strict exclusion on the stated preferences.
func passesHardFilters(l *listing.Listing, prefs *preference.Profile) bool {
	if prefs.BudgetMin != nil && l.Price < *prefs.BudgetMin {
		return false
	}
	if prefs.BudgetMax != nil && l.Price > *prefs.BudgetMax {
		return false
	}
	if prefs.Location != "" && !locationMatches(l, prefs.Location) {
		return false
	}
	if prefs.MinBedrooms != nil && l.Bedrooms < *prefs.MinBedrooms {
		return false
	}
	if prefs.PropertyType != nil && l.PropertyType != *prefs.PropertyType {
		return false
	}
	return true
}

// locationMatches does a case-insensitive substring match of the target
// location against the listing's city, falling back to its address.
func locationMatches(l *listing.Listing, target string) bool {
	return strings.Contains(
		strings.ToLower(l.CityOrAddress()),
		strings.ToLower(target),
	)
}
