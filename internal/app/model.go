// Package app contains the demo application model and TEA implementation.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/config"
	"droplist/internal/domain"
	"droplist/internal/selector"
	"droplist/internal/source"
	"droplist/internal/ui/field"
	"droplist/internal/ui/overlay"
	"droplist/internal/ui/statusbar"
	"droplist/internal/ui/styles"
)

const (
	fieldFruit     = "fruit"
	fieldLanguages = "languages"

	// rows above the first field (app padding plus title block)
	headerRows = 4
	// rows one closed field occupies, including its trailing blank line
	fieldRows = 5
)

var fruits = []string{
	"Apple", "Apricot", "Banana", "Blueberry", "Cherry", "Grape",
	"Mango", "Orange", "Peach", "Pear", "Plum", "Strawberry",
}

var languages = []string{
	"Ada", "C", "C#", "C++", "Clojure", "Crystal", "D", "Dart",
	"Elixir", "Elm", "Erlang", "F#", "Fortran", "Go", "Haskell",
	"Java", "JavaScript", "Julia", "Kotlin", "Lua", "Nim", "OCaml",
	"Odin", "Pascal", "Perl", "PHP", "Prolog", "Python", "R",
	"Racket", "Ruby", "Rust", "Scala", "Scheme", "Swift",
	"TypeScript", "V", "Zig",
}

// Model is the demo application state: two select fields, one single-choice
// over a static list and one multi-choice over a paged remote-style source.
type Model struct {
	fields []*field.Field
	focus  int

	// Committed selections; an open dropdown works on its own copy until
	// it is picked or confirmed
	fruit     string
	langPicks []string

	overlayStack *overlay.Stack
	direction    overlay.Direction
	anchorRow    int

	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger

	// simulated latency of the remote language source
	fetchDelay time.Duration
}

// New creates a new application model with the given config
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	st := styles.New()

	fruitField := field.New(fieldFruit, "Fruit", "choose a fruit...", st)
	langField := field.New(fieldLanguages, "Languages", "choose languages...", st)
	fruitField.SetWidth(cfg.UI.FieldWidth)
	langField.SetWidth(cfg.UI.FieldWidth)
	fruitField.Focus()

	return Model{
		fields:       []*field.Field{fruitField, langField},
		overlayStack: overlay.NewStack(),
		direction:    overlay.DirectionBelow,
		width:        80,
		height:       24,
		styles:       st,
		config:       cfg,
		logger:       slog.Default(),
	}
}

// SetFetchDelay sets the simulated latency of the language source
func (m *Model) SetFetchDelay(d time.Duration) {
	m.fetchDelay = d
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case overlay.PickedMsg[string]:
		if msg.ID == fieldFruit {
			m.fruit = msg.Item
			m.fields[0].SetValue(msg.Item)
		}
		return m, nil

	case overlay.SelectionChangedMsg[string]:
		if msg.ID == fieldLanguages {
			m.fields[1].SetCount(len(msg.Items))
		}
		return m, nil

	case overlay.ConfirmedMsg[string]:
		if msg.ID == fieldLanguages {
			m.langPicks = msg.Items
			m.fields[1].SetCount(len(msg.Items))
		}
		return m, nil

	case overlay.CloseOverlayMsg:
		m.overlayStack.Update(msg)
		for _, f := range m.fields {
			f.SetOpen(false)
		}
		// A cancelled multi dropdown must show the committed set again
		m.fields[1].SetCount(len(m.langPicks))
		return m, nil

	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, m.overlayStack.Update(msg)
		}
		return m.handleBrowseKey(msg)
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleBrowseKey handles keys while no dropdown is open
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down", "j":
		m.setFocus((m.focus + 1) % len(m.fields))
		return m, nil

	case "shift+tab", "up", "k":
		m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
		return m, nil

	case "enter", " ":
		return m.openDropdown(m.focus)
	}
	return m, nil
}

// setFocus moves focus to the field at index
func (m *Model) setFocus(index int) {
	m.fields[m.focus].Blur()
	m.focus = index
	m.fields[m.focus].Focus()
}

// openDropdown spawns the dropdown overlay for the field at index, seeded
// from the committed selection
func (m Model) openDropdown(index int) (tea.Model, tea.Cmd) {
	f := m.fields[index]

	var (
		dd  *overlay.Dropdown[string]
		err error
	)
	switch f.ID() {
	case fieldFruit:
		cfg := selector.Config[string]{
			Source:           source.NewStatic(fruits, nil),
			Mode:             domain.ModeSingle,
			DebounceInterval: time.Duration(m.config.Select.SearchDebounceMs) * time.Millisecond,
			OnSingleChanged: func(v string) {
				m.logger.Info("fruit selected", "value", v)
			},
		}
		if m.fruit != "" {
			initial := m.fruit
			cfg.InitialSingle = &initial
		}
		dd, err = overlay.NewDropdown(f.ID(), f.Label(), cfg)

	case fieldLanguages:
		src, srcErr := source.NewRemote(m.languagePage)
		if srcErr != nil {
			m.logger.Error("failed to build language source", "error", srcErr)
			return m, nil
		}
		dd, err = overlay.NewDropdown(f.ID(), f.Label(), selector.Config[string]{
			Source:           src,
			Mode:             domain.ModeMultiple,
			PageSize:         m.config.Select.ItemsPerPage,
			DebounceInterval: time.Duration(m.config.Select.SearchDebounceMs) * time.Millisecond,
			InitialMulti:     m.langPicks,
			OnMultiChanged: func(vs []string) {
				m.logger.Info("languages confirmed", "count", len(vs))
			},
		})

	default:
		return m, nil
	}
	if err != nil {
		m.logger.Error("failed to open dropdown", "field", f.ID(), "error", err)
		return m, nil
	}

	dd.SetMaxRows(m.config.UI.MaxVisibleRows)
	_, panelHeight := dd.Size()
	m.anchorRow = headerRows + index*fieldRows + 1
	m.direction = overlay.PlacePanel(m.anchorRow, panelHeight+2, m.height)

	f.SetOpen(true)
	return m, m.overlayStack.Push(dd)
}

// languagePage serves one page of the language catalog, filtered by query.
// It stands in for a remote backend, including a little latency.
func (m Model) languagePage(ctx context.Context, page int, query string) ([]string, error) {
	if m.fetchDelay > 0 {
		select {
		case <-time.After(m.fetchDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	matched := domain.FilterByLabel(languages, nil, query)
	size := m.config.Select.ItemsPerPage
	start := (page - 1) * size
	if start >= len(matched) {
		return nil, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("droplist demo"))
	b.WriteString("\n\n")

	panel := ""
	if ov := m.overlayStack.Current(); ov != nil {
		panel = m.styles.Overlay.Render(
			m.styles.OverlayTitle.Render(ov.Title()) + "\n" + ov.View(),
		)
	}

	for i, f := range m.fields {
		if panel != "" && f.Open() && m.direction == overlay.DirectionAbove {
			b.WriteString(panel)
			b.WriteString("\n")
		}
		b.WriteString(f.Render())
		b.WriteString("\n")
		if panel != "" && f.Open() && m.direction == overlay.DirectionBelow {
			b.WriteString(panel)
			b.WriteString("\n")
		}
		if i < len(m.fields)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(statusbar.New(m.statusState(), m.width-4, m.styles).Render())

	return m.styles.App.MaxHeight(m.height).Render(b.String())
}

// statusState derives the status bar state from the open overlay
func (m Model) statusState() statusbar.State {
	if m.overlayStack.IsEmpty() {
		return statusbar.StateBrowse
	}
	for _, f := range m.fields {
		if f.Open() && f.ID() == fieldLanguages {
			return statusbar.StateMulti
		}
	}
	return statusbar.StateSingle
}

// Fruit returns the committed single selection
func (m Model) Fruit() string { return m.fruit }

// Languages returns the committed multi selection in pick order
func (m Model) Languages() []string { return m.langPicks }

// Direction returns the side the open dropdown was placed on
func (m Model) Direction() overlay.Direction { return m.direction }
