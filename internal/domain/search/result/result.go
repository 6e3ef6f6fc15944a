package result

import "github.com/vistacasa/casamatch/internal/domain/listing"

// Result is a single search hit: a listing plus the optional signals
// computed for it. Relevance is nil unless a text query was set; distance
// is nil unless both a geo center and listing coordinates were present.
type Result struct {
	listing    listing.Listing
	relevance  *float64
	distanceKm *float64
}

// New creates a search result.
func New(l listing.Listing, relevance, distanceKm *float64) Result {
	return Result{listing: l, relevance: relevance, distanceKm: distanceKm}
}

// Listing returns the matched listing.
func (r *Result) Listing() listing.Listing { return r.listing }

// Relevance returns the [0,1] text relevance, or nil when no query was set.
func (r *Result) Relevance() *float64 { return r.relevance }

// DistanceKm returns the distance to the query center in kilometers, or nil.
func (r *Result) DistanceKm() *float64 { return r.distanceKm }

// Page is one page of search results with post-filter totals.
type Page struct {
	results    []Result
	totalHits  int
	page       int
	totalPages int
}

// NewPage slices the full sorted result set into the requested page.
// totalHits counts results after filtering, before pagination.
func NewPage(all []Result, page, pageSize int) Page {
	total := len(all)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		results:    all[start:end],
		totalHits:  total,
		page:       page,
		totalPages: totalPages,
	}
}

// Results returns the page's results.
func (p *Page) Results() []Result { return p.results }

// TotalHits returns the post-filter, pre-pagination hit count.
func (p *Page) TotalHits() int { return p.totalHits }

// Page returns the 1-based page number.
func (p *Page) Page() int { return p.page }

// TotalPages returns ceil(totalHits/pageSize).
func (p *Page) TotalPages() int { return p.totalPages }
