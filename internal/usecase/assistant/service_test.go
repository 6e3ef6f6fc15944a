package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vistacasa/casamatch/internal/domain"
	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/preference"
	"github.com/vistacasa/casamatch/internal/domain/search/filter"
	"github.com/vistacasa/casamatch/internal/usecase/scoring"
)

// --- Mocks ---

type mockRepo struct {
	listings []listing.Listing
	err      error
}

func (m *mockRepo) FetchCandidates(
	_ context.Context, _ []filter.Condition, _ int,
) ([]listing.Listing, error) {
	return m.listings, m.err
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func makeListing(t *testing.T, id, city string, price float64) listing.Listing {
	t.Helper()
	l := listing.Listing{
		ID:           id,
		Title:        "Listing " + id,
		Price:        price,
		Area:         100,
		Bedrooms:     2,
		Bathrooms:    1,
		PropertyType: listing.TypeApartment,
		ListingType:  listing.ForSale,
		Status:       listing.StatusActive,
		Location:     listing.Location{City: city},
		CreatedAt:    time.Now(),
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("makeListing: %v", err)
	}
	return l
}

func newService(repo Repository) *Service {
	return New(repo, scoring.NewDefault())
}

// --- Assist tests ---

func TestAssist_ProducesReport(t *testing.T) {
	repo := &mockRepo{listings: []listing.Listing{
		makeListing(t, "a", "Santo Domingo", 150000),
		makeListing(t, "b", "Santo Domingo", 180000),
		makeListing(t, "c", "Santiago", 90000),
	}}
	svc := newService(repo)

	prefs := preference.Profile{
		BudgetMin:   floatPtr(100000),
		BudgetMax:   floatPtr(200000),
		Location:    "Santo Domingo",
		MinBedrooms: intPtr(2),
	}
	report, err := svc.Assist(context.Background(), &prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Santiago listing fails the hard location filter.
	if len(report.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(report.Suggestions))
	}
	for i := 1; i < len(report.Suggestions); i++ {
		if report.Suggestions[i].Score > report.Suggestions[i-1].Score {
			t.Error("suggestions not sorted by score descending")
		}
	}
	// 40 base + 30 criteria + 2 matches * 4
	if report.LeadScore != 78 {
		t.Errorf("expected lead score 78, got %d", report.LeadScore)
	}
	if len(report.OutreachTips) == 0 || len(report.MarketInsights) == 0 {
		t.Error("expected outreach tips and market insights")
	}
}

func TestAssist_RejectsInvalidPreferences(t *testing.T) {
	svc := newService(&mockRepo{})

	prefs := preference.Profile{BudgetMin: floatPtr(-1)}
	_, err := svc.Assist(context.Background(), &prefs)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssist_StoreErrorPropagatesByDefault(t *testing.T) {
	svc := newService(&mockRepo{err: errors.New("store down")})

	if _, err := svc.Assist(context.Background(), &preference.Profile{}); err == nil {
		t.Error("expected store error to propagate when fallback is off")
	}
}

func TestAssist_DemoFallback(t *testing.T) {
	svc := newService(&mockRepo{err: errors.New("store down")}).WithDemoFallback(true)

	report, err := svc.Assist(context.Background(), &preference.Profile{})
	if err != nil {
		t.Fatalf("expected demo fallback to mask the store error, got %v", err)
	}
	if len(report.Suggestions) == 0 {
		t.Error("expected demo suggestions")
	}
	for _, sc := range report.Suggestions {
		if !strings.HasPrefix(sc.Listing.ID, "demo-") {
			t.Errorf("expected demo listing, got %s", sc.Listing.ID)
		}
	}
}

func TestAssist_SuggestionLimit(t *testing.T) {
	listings := make([]listing.Listing, 8)
	for i := range listings {
		listings[i] = makeListing(t, string(rune('a'+i)), "Santo Domingo", 100000)
	}
	svc := newService(&mockRepo{listings: listings}).WithLimits(3, 3)

	report, err := svc.Assist(context.Background(), &preference.Profile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Suggestions) != 3 {
		t.Errorf("expected 3 suggestions, got %d", len(report.Suggestions))
	}
	// The lead score still reflects the full match count, not the
	// truncated suggestion list: 40 + min(25, 8*4) = 65.
	if report.LeadScore != 65 {
		t.Errorf("expected lead score 65, got %d", report.LeadScore)
	}
}

// --- Aggregate tests ---

func TestAveragePrice(t *testing.T) {
	sold := makeListing(t, "sold", "Santiago", 999999)
	sold.Status = listing.StatusSold

	listings := []listing.Listing{
		makeListing(t, "a", "Santo Domingo", 100000),
		makeListing(t, "b", "Santo Domingo", 200000),
		sold, // inactive listings are excluded
	}
	if got := AveragePrice(listings); got != 150000 {
		t.Errorf("expected 150000, got %g", got)
	}
}

func TestAveragePrice_EmptySet(t *testing.T) {
	if got := AveragePrice(nil); got != 0 {
		t.Errorf("expected 0 for empty set, got %g", got)
	}
}

func TestTopCities(t *testing.T) {
	listings := []listing.Listing{
		makeListing(t, "a", "Santo Domingo", 100000),
		makeListing(t, "b", "Santo Domingo", 100000),
		makeListing(t, "c", "Santiago", 100000),
		makeListing(t, "d", "Punta Cana", 100000),
		makeListing(t, "e", "Punta Cana", 100000),
	}

	got := TopCities(listings, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(got))
	}
	if got[0].City != "Punta Cana" && got[0].City != "Santo Domingo" {
		t.Errorf("unexpected top city %s", got[0].City)
	}
	// Tie between Punta Cana and Santo Domingo breaks alphabetically.
	if got[0].City != "Punta Cana" || got[1].City != "Santo Domingo" {
		t.Errorf("expected alphabetical tie-break, got %v", got)
	}
}

func TestTopCities_SkipsInactiveAndCityless(t *testing.T) {
	noCity := makeListing(t, "no-city", "Santo Domingo", 100000)
	noCity.Location = listing.Location{Address: "Somewhere 1"}
	draft := makeListing(t, "draft", "Santiago", 100000)
	draft.Status = listing.StatusDraft

	got := TopCities([]listing.Listing{noCity, draft}, 3)
	if len(got) != 0 {
		t.Errorf("expected no cities, got %v", got)
	}
}
