package assistant

import (
	"context"

	"github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/search/filter"
)

// Repository defines the storage contract for the assistant's candidate fetch.
type Repository interface {
	FetchCandidates(ctx context.Context, conds []filter.Condition, limit int) ([]listing.Listing, error)
}
