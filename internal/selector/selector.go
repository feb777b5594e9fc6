// Package selector implements the selection and paging controller behind a
// dropdown panel: candidate list, loading/error/empty states, debounced
// search with generation tokens, sequential pagination, and single or
// multiple selection.
//
// The model is a synchronous state machine. It is not safe for concurrent
// use and does not need to be: the Bubble Tea update loop (or a test)
// serializes every input. Asynchrony only exists at the edges, as effects
// the driver executes and resolves back into the model.
package selector

import (
	"time"

	"droplist/internal/domain"
	"droplist/internal/source"
)

const (
	// DefaultPageSize is the page-size threshold when the config leaves it unset
	DefaultPageSize = 20
	// DefaultDebounceInterval is the search quiet interval when unset
	DefaultDebounceInterval = 250 * time.Millisecond
)

// Config configures a selection model.
type Config[T comparable] struct {
	// Source supplies items; required
	Source source.Source[T]
	// Mode selects single or multiple selection semantics
	Mode domain.Mode
	// Label renders an item for display and local matching; nil falls back
	// to the item's default string form
	Label func(T) string
	// PageSize is the expected item count per fetch; a shorter page signals
	// exhaustion. Zero means DefaultPageSize.
	PageSize int
	// DebounceInterval is the search quiet interval. Zero means
	// DefaultDebounceInterval; negative means fire immediately.
	DebounceInterval time.Duration
	// InitialSingle seeds the single-mode selection
	InitialSingle *T
	// InitialMulti seeds the multiple-mode working set
	InitialMulti []T
	// OnSingleChanged is invoked exactly once per finalized single selection
	OnSingleChanged func(T)
	// OnMultiChanged is invoked exactly once per confirmed multi selection,
	// with the members in insertion order
	OnMultiChanged func([]T)
}

// Model is the selection and paging controller for one open dropdown panel.
// Create it when the panel opens, Dispose it when the panel closes.
type Model[T comparable] struct {
	src      src[T]
	mode     domain.Mode
	label    func(T) string
	pageSize int
	debounce time.Duration

	onSingle func(T)
	onMulti  func([]T)

	single *T
	multi  *domain.OrderedSet[T]

	items   []T
	page    int
	hasMore bool
	loading bool
	failed  bool
	err     error

	query   string // query of the committed generation
	pending string // last queued, not yet debounced query
	gen     int    // committed search generation
	token   int    // current debounce token

	disposed bool
}

// src is the slice of the Source interface the model itself needs. Fetching
// happens in the driver; the model only asks whether pagination exists.
type src[T comparable] interface {
	Paginated() bool
}

// New validates cfg and creates a model. A missing source is a programming
// error and fails construction.
func New[T comparable](cfg Config[T]) (*Model[T], error) {
	if cfg.Source == nil {
		return nil, domain.ErrNoSource
	}

	label := cfg.Label
	if label == nil {
		label = domain.DefaultLabel[T]
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	debounce := cfg.DebounceInterval
	if debounce == 0 {
		debounce = DefaultDebounceInterval
	} else if debounce < 0 {
		debounce = 0
	}

	return &Model[T]{
		src:      cfg.Source,
		mode:     cfg.Mode,
		label:    label,
		pageSize: pageSize,
		debounce: debounce,
		onSingle: cfg.OnSingleChanged,
		onMulti:  cfg.OnMultiChanged,
		single:   cfg.InitialSingle,
		multi:    domain.NewOrderedSet(cfg.InitialMulti...),
	}, nil
}

// Init starts the first fetch cycle for initialQuery and returns the fetch
// effect. The loading flag is set before the effect runs.
func (m *Model[T]) Init(initialQuery string) Effect {
	if m.disposed {
		return nil
	}
	return m.beginGeneration(initialQuery)
}

// Search queues a debounced search. Rapid successive calls within the quiet
// interval collapse to a single effective invocation using the last query:
// each call supersedes the previous token, so only the final timer commits.
func (m *Model[T]) Search(query string) Effect {
	if m.disposed {
		return nil
	}
	m.pending = query
	m.token++
	return DebounceEffect{Token: m.token, Interval: m.debounce}
}

// DebounceElapsed commits the pending query once its quiet interval has
// passed. Superseded tokens and unchanged queries are no-ops.
func (m *Model[T]) DebounceElapsed(token int) Effect {
	if m.disposed || token != m.token {
		return nil
	}
	if m.pending == m.query {
		return nil
	}
	return m.beginGeneration(m.pending)
}

// LoadMore requests the next page within the current generation. It is a
// no-op while a fetch is in flight, when the source is exhausted, or for
// sources without pagination.
func (m *Model[T]) LoadMore() Effect {
	if m.disposed || m.loading || m.failed || !m.hasMore || !m.src.Paginated() {
		return nil
	}
	m.page++
	m.loading = true
	return FetchEffect{Gen: m.gen, Page: m.page, Query: m.query}
}

// Retry re-runs the fetch that failed, for the same page, query and
// generation. Only valid in the error state.
func (m *Model[T]) Retry() Effect {
	if m.disposed || !m.failed || m.loading {
		return nil
	}
	m.loading = true
	m.failed = false
	m.err = nil
	return FetchEffect{Gen: m.gen, Page: m.page, Query: m.query}
}

// Resolve applies a successful fetch result. Results from a superseded
// generation, or arriving after Dispose, are silently dropped so a slow
// response can never overwrite a newer one.
func (m *Model[T]) Resolve(gen, page int, items []T) {
	if m.disposed || gen != m.gen {
		return
	}
	if page <= 1 {
		m.items = append([]T(nil), items...)
	} else {
		m.items = append(m.items, items...)
	}
	m.loading = false
	m.failed = false
	m.err = nil
	m.hasMore = m.src.Paginated() && len(items) >= m.pageSize
}

// Reject records a failed fetch. Stale generations are dropped; otherwise
// the model enters the error state until Retry or a new search succeeds.
func (m *Model[T]) Reject(gen, page int, err error) {
	if m.disposed || gen != m.gen {
		return
	}
	m.loading = false
	m.failed = true
	m.err = err
}

// SelectItem records a tap on item. Single mode finalizes immediately and
// asks the panel to close; multiple mode toggles membership in the working
// set and keeps the panel open.
func (m *Model[T]) SelectItem(item T) Signal {
	if m.disposed {
		return SignalNone
	}
	if m.mode == domain.ModeSingle {
		v := item
		m.single = &v
		if m.onSingle != nil {
			m.onSingle(item)
		}
		return SignalClose
	}
	m.multi.Toggle(item)
	return SignalChanged
}

// Confirm finalizes the working multi-selection. Single mode has no separate
// confirmation step.
func (m *Model[T]) Confirm() Signal {
	if m.disposed || m.mode != domain.ModeMultiple {
		return SignalNone
	}
	if m.onMulti != nil {
		m.onMulti(m.multi.Values())
	}
	return SignalClose
}

// IsSelected reports whether item is part of the current selection
func (m *Model[T]) IsSelected(item T) bool {
	if m.mode == domain.ModeSingle {
		return m.single != nil && *m.single == item
	}
	return m.multi.Has(item)
}

// Dispose invalidates the model. Every later input, timer and fetch arrival
// is silently dropped rather than mutating state after teardown.
func (m *Model[T]) Dispose() {
	m.disposed = true
	m.items = nil
	m.loading = false
}

// beginGeneration resets paging for query and opens a new generation. The
// list is cleared before the first result of the new query lands.
func (m *Model[T]) beginGeneration(query string) Effect {
	m.gen++
	m.query = query
	m.pending = query
	m.page = 1
	m.items = nil
	m.loading = true
	m.failed = false
	m.err = nil
	m.hasMore = false
	return FetchEffect{Gen: m.gen, Page: 1, Query: query}
}

// Items returns the displayed items of the committed generation
func (m *Model[T]) Items() []T { return m.items }

// Page returns the current 1-based page
func (m *Model[T]) Page() int { return m.page }

// HasMore reports whether another page may exist
func (m *Model[T]) HasMore() bool { return m.hasMore }

// Loading reports whether a fetch is in flight
func (m *Model[T]) Loading() bool { return m.loading }

// Failed reports whether the last fetch ended in the error state
func (m *Model[T]) Failed() bool { return m.failed }

// Err returns the error behind the error state, or nil
func (m *Model[T]) Err() error { return m.err }

// Query returns the committed search query
func (m *Model[T]) Query() string { return m.query }

// Mode returns the selection mode
func (m *Model[T]) Mode() domain.Mode { return m.mode }

// Label renders item with the configured label function
func (m *Model[T]) Label(item T) string { return m.label(item) }

// Single returns the single-mode selection, if any
func (m *Model[T]) Single() (T, bool) {
	if m.single == nil {
		var zero T
		return zero, false
	}
	return *m.single, true
}

// Multi returns the working multi-selection in insertion order
func (m *Model[T]) Multi() []T { return m.multi.Values() }

// Disposed reports whether Dispose has been called
func (m *Model[T]) Disposed() bool { return m.disposed }
