package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// App frame
	App   lipgloss.Style
	Title lipgloss.Style

	// Closed dropdown fields
	Field            lipgloss.Style
	FieldFocused     lipgloss.Style
	FieldLabel       lipgloss.Style
	FieldValue       lipgloss.Style
	FieldPlaceholder lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Field: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		FieldFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(Text),

		FieldPlaceholder: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),
	}
}
