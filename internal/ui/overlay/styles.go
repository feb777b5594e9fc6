package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"droplist/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Item is the default list item style
	Item lipgloss.Style
	// ItemActive is the item under the cursor
	ItemActive lipgloss.Style
	// ItemSelected marks items that are part of the selection
	ItemSelected lipgloss.Style
	// Checkbox is the multi-select membership mark
	Checkbox lipgloss.Style
	// Count is the style for selection/match counts
	Count lipgloss.Style
	// Error is the fetch failure line
	Error lipgloss.Style
	// Empty is the no-matches line
	Empty lipgloss.Style
	// Loading is the spinner line
	Loading lipgloss.Style
	// More is the more-pages indicator
	More lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		ItemSelected: lipgloss.NewStyle().
			Foreground(styles.Mauve),

		Checkbox: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Count: lipgloss.NewStyle().
			Foreground(styles.Green),

		Error: lipgloss.NewStyle().
			Foreground(styles.Red),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Italic(true),

		Loading: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		More: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}
