package request

import (
	"fmt"

	"github.com/vistacasa/casamatch/internal/domain/search/filter"
)

// Pagination limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxQueryLength  = 512
)

// Request is a validated search request: a filter spec plus pagination.
type Request struct {
	spec     filter.Spec
	page     int
	pageSize int
}

// New validates and normalizes search parameters.
// Defaults: page=1, pageSize=20. pageSize is clamped to MaxPageSize.
func New(spec filter.Spec, page, pageSize int) (Request, error) {
	if len(spec.Query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if err := spec.Validate(); err != nil {
		return Request{}, err
	}
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Request{spec: spec, page: page, pageSize: pageSize}, nil
}

// Spec returns the filter specification.
func (r *Request) Spec() filter.Spec { return r.spec }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }
