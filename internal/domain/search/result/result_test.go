package result

import (
	"fmt"
	"testing"

	"github.com/vistacasa/casamatch/internal/domain/listing"
)

func makeResults(n int) []Result {
	results := make([]Result, n)
	for i := range results {
		results[i] = New(listing.Listing{ID: fmt.Sprintf("l%d", i)}, nil, nil)
	}
	return results
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page, pageSize int
		wantLen        int
		wantTotalPages int
		wantFirstID    string
	}{
		{"first page", 45, 1, 20, 20, 3, "l0"},
		{"middle page", 45, 2, 20, 20, 3, "l20"},
		{"short last page", 45, 3, 20, 5, 3, "l40"},
		{"page past the end", 45, 9, 20, 0, 3, ""},
		{"exact multiple", 40, 2, 20, 20, 2, "l20"},
		{"empty set", 0, 1, 20, 0, 0, ""},
		{"single result", 1, 1, 20, 1, 1, "l0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(makeResults(tt.total), tt.page, tt.pageSize)

			if got := len(p.Results()); got != tt.wantLen {
				t.Errorf("expected %d results, got %d", tt.wantLen, got)
			}
			if p.TotalHits() != tt.total {
				t.Errorf("expected total hits %d, got %d", tt.total, p.TotalHits())
			}
			if p.TotalPages() != tt.wantTotalPages {
				t.Errorf("expected %d total pages, got %d", tt.wantTotalPages, p.TotalPages())
			}
			if p.Page() != tt.page {
				t.Errorf("expected page %d, got %d", tt.page, p.Page())
			}
			if tt.wantFirstID != "" {
				l := p.Results()[0].Listing()
				if l.ID != tt.wantFirstID {
					t.Errorf("expected first result %s, got %s", tt.wantFirstID, l.ID)
				}
			}
		})
	}
}

func TestNewPage_ReassemblesWithoutOverlap(t *testing.T) {
	all := makeResults(45)
	seen := make(map[string]bool)

	for page := 1; page <= 3; page++ {
		p := NewPage(all, page, 20)
		for _, r := range p.Results() {
			l := r.Listing()
			if seen[l.ID] {
				t.Errorf("listing %s appears on more than one page", l.ID)
			}
			seen[l.ID] = true
		}
	}

	if len(seen) != 45 {
		t.Errorf("expected all 45 results across pages, got %d", len(seen))
	}
}

func TestResult_Signals(t *testing.T) {
	rel := 0.8
	dist := 2.5
	r := New(listing.Listing{ID: "l1"}, &rel, &dist)

	if r.Relevance() == nil || *r.Relevance() != 0.8 {
		t.Error("relevance not carried through")
	}
	if r.DistanceKm() == nil || *r.DistanceKm() != 2.5 {
		t.Error("distance not carried through")
	}

	bare := New(listing.Listing{ID: "l2"}, nil, nil)
	if bare.Relevance() != nil || bare.DistanceKm() != nil {
		t.Error("expected nil signals when none computed")
	}
}
