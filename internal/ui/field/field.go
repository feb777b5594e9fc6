package field

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"droplist/internal/ui/styles"
)

// Field is the closed header control of a select widget: a labelled box
// showing the committed selection. Opening it spawns a dropdown overlay;
// the field itself never talks to the data source.
type Field struct {
	id          string
	label       string
	placeholder string

	value   string
	count   int // multi-mode selection count, -1 in single mode
	focused bool
	open    bool

	width  int
	styles *styles.Styles
}

// New creates a closed field with the given identity and label
func New(id, label, placeholder string, s *styles.Styles) *Field {
	return &Field{
		id:          id,
		label:       label,
		placeholder: placeholder,
		count:       -1,
		width:       40,
		styles:      s,
	}
}

// ID returns the field identity used to route overlay messages
func (f *Field) ID() string { return f.id }

// Label returns the field label
func (f *Field) Label() string { return f.label }

// SetWidth sets the rendered box width
func (f *Field) SetWidth(w int) {
	if w > 0 {
		f.width = w
	}
}

// Focus marks the field as the active one
func (f *Field) Focus() { f.focused = true }

// Blur removes focus
func (f *Field) Blur() { f.focused = false }

// Focused reports whether the field is active
func (f *Field) Focused() bool { return f.focused }

// SetOpen records whether this field's dropdown is currently showing
func (f *Field) SetOpen(open bool) { f.open = open }

// Open reports whether this field's dropdown is showing
func (f *Field) Open() bool { return f.open }

// SetValue sets the single-mode display text. An empty value shows the
// placeholder.
func (f *Field) SetValue(v string) {
	f.value = v
	f.count = -1
}

// SetCount sets the multi-mode selection count. Zero shows the placeholder.
func (f *Field) SetCount(n int) {
	f.value = ""
	f.count = n
}

// Clear resets the field to its placeholder state
func (f *Field) Clear() {
	f.value = ""
	f.count = -1
}

// Summary returns the display text for the current selection
func (f *Field) Summary() string {
	if f.count > 0 {
		return fmt.Sprintf("%d selected", f.count)
	}
	return f.value
}

// Render renders the labelled field box
func (f *Field) Render() string {
	box := f.styles.Field
	if f.focused || f.open {
		box = f.styles.FieldFocused
	}

	text := f.Summary()
	style := f.styles.FieldValue
	if text == "" {
		text = f.placeholder
		style = f.styles.FieldPlaceholder
	}

	arrow := "▾"
	if f.open {
		arrow = "▴"
	}

	inner := lipgloss.JoinHorizontal(
		lipgloss.Left,
		style.Width(f.width-4).Render(text),
		f.styles.FieldLabel.Render(arrow),
	)

	label := f.styles.FieldLabel.Render(f.label)
	return label + "\n" + box.Width(f.width).Render(inner)
}
