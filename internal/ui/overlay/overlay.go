package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// Disposable is implemented by overlays that hold timers or in-flight
// operations. The stack disposes them when they leave the screen so a late
// result can never mutate a torn-down component.
type Disposable interface {
	Dispose()
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// PickedMsg is sent when a single-select dropdown finalizes a selection
type PickedMsg[T comparable] struct {
	ID   string // Dropdown identifier, set by the embedding app
	Item T
}

// SelectionChangedMsg is sent on every multi-select toggle while the panel
// stays open. It carries the full working set in insertion order.
type SelectionChangedMsg[T comparable] struct {
	ID    string
	Items []T
}

// ConfirmedMsg is sent when a multi-select dropdown confirms its working set
type ConfirmedMsg[T comparable] struct {
	ID    string
	Items []T
}
