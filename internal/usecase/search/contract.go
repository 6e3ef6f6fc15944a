package search

import (
	"context"

	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/search/filter"
)

// Repository defines the storage contract for candidate fetches.
type Repository interface {
	// FetchCandidates returns up to limit active listings matching the
	// store-pushable conditions, ordered by creation time descending.
	FetchCandidates(ctx context.Context, conds []filter.Condition, limit int) ([]listing.Listing, error)
}
