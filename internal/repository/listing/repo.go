// Package listing is the Redis-backed listing repository. Candidate fetches
// push the cheap filters (status, tags, minimum thresholds) into the FT
// index; everything else is the search engine's job.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vistacasa/casamatch/internal/db"
	"github.com/vistacasa/casamatch/internal/domain"
	domlisting "github.com/vistacasa/casamatch/internal/domain/listing"
	"github.com/vistacasa/casamatch/internal/domain/search/filter"
	"github.com/vistacasa/casamatch/internal/logger"
)

// store is the consumer interface for listing storage (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements the listing repository over an FT hash index.
type Repo struct {
	store  store
	prefix string
}

// New creates a listing repository. prefix namespaces all keys and the index.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

func (r *Repo) key(id string) string {
	return r.prefix + "listing:" + id
}

func (r *Repo) indexName() string {
	return r.prefix + "listings:idx"
}

// EnsureIndex creates the listing FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := db.NewIndex(r.indexName()).
		Prefix(r.prefix + "listing:").
		Tag(fieldStatus).
		Tag(fieldCity).
		Tag(fieldNeighborhood).
		Tag(fieldPropertyType).
		Tag(fieldListingType).
		Numeric(fieldPrice).
		Numeric(fieldArea).
		Numeric(fieldBedrooms).
		Numeric(fieldBathrooms).
		SortableNumeric(fieldCreatedAt).
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert creates or replaces a listing record.
func (r *Repo) Upsert(ctx context.Context, l domlisting.Listing) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}
	if err := r.store.HSet(ctx, r.key(l.ID), buildHashFields(&l)); err != nil {
		return fmt.Errorf("hset %s: %w", r.key(l.ID), err)
	}
	return nil
}

// UpsertMulti stores a batch of listings in one pipelined round-trip.
func (r *Repo) UpsertMulti(ctx context.Context, listings []domlisting.Listing) error {
	items := make([]db.HashSetItem, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
		}
		items = append(items, db.HashSetItem{Key: r.key(l.ID), Fields: buildHashFields(l)})
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi: %w", err)
	}
	return nil
}

// Get returns a listing by ID.
func (r *Repo) Get(ctx context.Context, id string) (domlisting.Listing, error) {
	m, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("hgetall %s: %w", r.key(id), err)
	}
	if len(m) == 0 {
		return domlisting.Listing{}, domain.ErrListingNotFound
	}
	l, err := parseHashFields(id, m)
	if err != nil {
		return domlisting.Listing{}, fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}
	return l, nil
}

// FetchCandidates returns up to limit active listings matching the
// store-pushable conditions, newest first. Malformed records are dropped
// and logged rather than failing the whole fetch.
func (r *Repo) FetchCandidates(
	ctx context.Context, conds []filter.Condition, limit int,
) ([]domlisting.Listing, error) {
	q := &db.Query{
		IndexName: r.indexName(),
		Query:     buildQuery(conds),
		SortBy:    fieldCreatedAt,
		SortDesc:  true,
		Limit:     limit,
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: search listings: %w", domain.ErrStoreUnavailable, err)
	}

	log := logger.FromContext(ctx)
	keyPrefix := r.prefix + "listing:"
	listings := make([]domlisting.Listing, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, keyPrefix)
		l, err := parseHashFields(id, entry.Fields)
		if err != nil {
			log.Warn("dropping malformed listing record",
				zap.String("key", entry.Key),
				zap.Error(err),
			)
			continue
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// CountActive returns the number of active listings in the index.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), statusActiveClause)
	if err != nil {
		return 0, fmt.Errorf("%w: count listings: %w", domain.ErrStoreUnavailable, err)
	}
	return n, nil
}

const statusActiveClause = "@status:{active}"

// buildQuery translates store conditions into an FT.SEARCH query string.
// Every candidate query is pinned to active listings.
func buildQuery(conds []filter.Condition) string {
	parts := []string{statusActiveClause}
	for _, c := range conds {
		switch {
		case c.IsMatch():
			parts = append(parts, fmt.Sprintf("@%s:{%s}", c.Key(), escapeTag(c.Match())))
		case c.IsMin():
			parts = append(parts, fmt.Sprintf("@%s:[%g +inf]", c.Key(), *c.Min()))
		}
	}
	return strings.Join(parts, " ")
}

func escapeTag(value string) string {
	return tagEscaper.Replace(value)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)
