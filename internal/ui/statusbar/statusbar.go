package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"droplist/internal/ui/styles"
)

// State is what the status bar reflects: browsing the closed fields or
// interacting with an open dropdown.
type State int

const (
	// StateBrowse means no dropdown is open
	StateBrowse State = iota
	// StateSingle means a single-select dropdown is open
	StateSingle
	// StateMulti means a multi-select dropdown is open
	StateMulti
)

// String returns the badge text for the state
func (s State) String() string {
	switch s {
	case StateSingle:
		return "SELECT"
	case StateMulti:
		return "MULTI"
	default:
		return "BROWSE"
	}
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	state  State
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given state, width, and styles
func New(state State, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		state:  state,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.state.String() + " ")

	hints := GetHints(sb.state)
	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	} else {
		content = badge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
