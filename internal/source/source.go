// Package source supplies candidate items to a dropdown, one page at a time.
//
// A source is either a static in-memory collection (filtered locally, never
// paginated) or a remote page-fetch function owned by the embedding
// application. The controller only ever issues one fetch per logical
// operation; sequencing and stale-result handling live in the selector.
package source

import (
	"context"

	"droplist/internal/domain"
)

// Source is the data boundary of a dropdown.
type Source[T comparable] interface {
	// Fetch returns the items for the 1-based page, filtered by query.
	// An empty query means "no filter".
	Fetch(ctx context.Context, page int, query string) ([]T, error)

	// Paginated reports whether the source can serve more than one page.
	// Non-paginated sources always deliver their full result on page 1.
	Paginated() bool
}

// Static serves an ordered in-memory collection. Filtering is
// case-insensitive substring matching against item labels; pagination is
// never simulated over static data.
type Static[T comparable] struct {
	items []T
	label func(T) string
}

// NewStatic creates a static source over items. A nil label function falls
// back to the item's default string form.
func NewStatic[T comparable](items []T, label func(T) string) *Static[T] {
	if label == nil {
		label = domain.DefaultLabel[T]
	}
	return &Static[T]{items: items, label: label}
}

// Fetch implements Source. The page argument is ignored; a static source has
// exactly one page.
func (s *Static[T]) Fetch(_ context.Context, _ int, query string) ([]T, error) {
	return domain.FilterByLabel(s.items, s.label, query), nil
}

// Paginated implements Source
func (s *Static[T]) Paginated() bool {
	return false
}

// PageFunc is the remote fetch contract: called with increasing 1-based page
// numbers and the current query, it returns the next page of items.
type PageFunc[T comparable] func(ctx context.Context, page int, query string) ([]T, error)

// Remote adapts a PageFunc to the Source interface.
type Remote[T comparable] struct {
	fetch PageFunc[T]
}

// NewRemote wraps fn as a paginated source. A nil fn is a configuration
// error and is rejected up front.
func NewRemote[T comparable](fn PageFunc[T]) (*Remote[T], error) {
	if fn == nil {
		return nil, domain.ErrNoFetch
	}
	return &Remote[T]{fetch: fn}, nil
}

// Fetch implements Source
func (r *Remote[T]) Fetch(ctx context.Context, page int, query string) ([]T, error) {
	return r.fetch(ctx, page, query)
}

// Paginated implements Source
func (r *Remote[T]) Paginated() bool {
	return true
}
