package selector

import "time"

// Effect is a side effect requested by the model. The model never performs
// I/O or timing itself; the embedding driver executes effects (as Bubble Tea
// commands in the widget, or directly in tests) and feeds the outcome back
// through Resolve, Reject and DebounceElapsed.
type Effect interface {
	effect()
}

// FetchEffect asks the driver to fetch one page from the data source and
// report the outcome tagged with the same generation and page.
type FetchEffect struct {
	Gen   int    // Search generation the request belongs to
	Page  int    // 1-based page to fetch
	Query string // Query active for the generation
}

func (FetchEffect) effect() {}

// DebounceEffect asks the driver to call DebounceElapsed with Token once
// Interval has passed. A later Search call supersedes the token; the expired
// timer then arrives as a no-op, which is how cancellation works here.
type DebounceEffect struct {
	Token    int
	Interval time.Duration
}

func (DebounceEffect) effect() {}

// Signal is the model's answer to a selection input.
type Signal int

const (
	// SignalNone means nothing observable happened
	SignalNone Signal = iota
	// SignalChanged means the working multi-selection changed; the panel stays open
	SignalChanged
	// SignalClose means the selection was finalized and the panel should close
	SignalClose
)
