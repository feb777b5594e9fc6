package domain

// Mode controls how the dropdown reconciles taps into a selection.
type Mode int

const (
	// ModeSingle finalizes the selection on the first tap and closes the panel.
	ModeSingle Mode = iota
	// ModeMultiple toggles membership per tap and waits for an explicit confirm.
	ModeMultiple
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}
