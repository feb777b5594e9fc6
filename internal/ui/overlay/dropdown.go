package overlay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"droplist/internal/domain"
	"droplist/internal/selector"
	"droplist/internal/source"
	"droplist/internal/ui/styles"
)

const defaultMaxRows = 8

// debounceMsg carries a debounce token back to the dropdown once the search
// quiet interval has elapsed
type debounceMsg struct {
	token int
}

// pageLoadedMsg delivers a fetched page tagged with its generation
type pageLoadedMsg[T comparable] struct {
	gen   int
	page  int
	items []T
}

// pageFailedMsg delivers a fetch failure tagged with its generation
type pageFailedMsg struct {
	gen  int
	page int
	err  error
}

// Dropdown is the overlay panel of a select field: a search input over a
// windowed, paginated item list. All list/paging/selection decisions are
// delegated to the selector model; the dropdown translates keys into model
// inputs and model effects into Bubble Tea commands.
type Dropdown[T comparable] struct {
	id    string
	title string

	ctrl *selector.Model[T]
	src  source.Source[T]

	input  textinput.Model
	spin   spinner.Model
	cursor int

	width   int
	maxRows int
	styles  *Styles
}

// NewDropdown creates a dropdown panel for the given selector configuration.
// Construction fails fast on a misconfigured source.
func NewDropdown[T comparable](id, title string, cfg selector.Config[T]) (*Dropdown[T], error) {
	ctrl, err := selector.New(cfg)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 36

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(styles.Blue)

	return &Dropdown[T]{
		id:      id,
		title:   title,
		ctrl:    ctrl,
		src:     cfg.Source,
		input:   ti,
		spin:    sp,
		width:   44,
		maxRows: defaultMaxRows,
		styles:  New(),
	}, nil
}

// SetMaxRows caps the number of visible list rows
func (d *Dropdown[T]) SetMaxRows(n int) {
	if n > 0 {
		d.maxRows = n
	}
}

// Init implements tea.Model
func (d *Dropdown[T]) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		d.effectCmd(d.ctrl.Init(d.input.Value())),
	)
}

// Update implements tea.Model
func (d *Dropdown[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)

	case debounceMsg:
		return d, d.effectCmd(d.ctrl.DebounceElapsed(msg.token))

	case pageLoadedMsg[T]:
		d.ctrl.Resolve(msg.gen, msg.page, msg.items)
		if msg.page <= 1 {
			d.cursor = 0
		}
		d.clampCursor()
		return d, nil

	case pageFailedMsg:
		d.ctrl.Reject(msg.gen, msg.page, msg.err)
		return d, nil

	case spinner.TickMsg:
		if !d.ctrl.Loading() {
			return d, nil
		}
		var cmd tea.Cmd
		d.spin, cmd = d.spin.Update(msg)
		return d, cmd
	}

	return d, nil
}

// handleKey routes a keystroke: navigation and selection keys are consumed,
// everything else feeds the search input
func (d *Dropdown[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return d, func() tea.Msg { return CloseOverlayMsg{} }

	case "up", "ctrl+p":
		if d.cursor > 0 {
			d.cursor--
		}
		return d, nil

	case "down", "ctrl+n":
		items := d.ctrl.Items()
		if d.cursor < len(items)-1 {
			d.cursor++
			return d, nil
		}
		// At the bottom: ask for the next page if one may exist
		return d, d.effectCmd(d.ctrl.LoadMore())

	case "enter":
		if d.ctrl.Mode() == domain.ModeMultiple {
			return d.confirm()
		}
		return d.pick()

	case "tab":
		if d.ctrl.Mode() != domain.ModeMultiple {
			return d, nil
		}
		return d.toggle()

	case "ctrl+r":
		return d, d.effectCmd(d.ctrl.Retry())
	}

	// Feed the search input; a changed value queues a debounced search
	prev := d.input.Value()
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	if d.input.Value() != prev {
		return d, tea.Batch(cmd, d.effectCmd(d.ctrl.Search(d.input.Value())))
	}
	return d, cmd
}

// pick finalizes the single-mode selection under the cursor
func (d *Dropdown[T]) pick() (tea.Model, tea.Cmd) {
	item, ok := d.current()
	if !ok {
		return d, nil
	}
	if d.ctrl.SelectItem(item) != selector.SignalClose {
		return d, nil
	}
	return d, tea.Batch(
		func() tea.Msg { return PickedMsg[T]{ID: d.id, Item: item} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// toggle flips multi-mode membership of the item under the cursor
func (d *Dropdown[T]) toggle() (tea.Model, tea.Cmd) {
	item, ok := d.current()
	if !ok {
		return d, nil
	}
	if d.ctrl.SelectItem(item) != selector.SignalChanged {
		return d, nil
	}
	items := d.ctrl.Multi()
	return d, func() tea.Msg { return SelectionChangedMsg[T]{ID: d.id, Items: items} }
}

// confirm commits the multi-mode working set
func (d *Dropdown[T]) confirm() (tea.Model, tea.Cmd) {
	if d.ctrl.Confirm() != selector.SignalClose {
		return d, nil
	}
	items := d.ctrl.Multi()
	return d, tea.Batch(
		func() tea.Msg { return ConfirmedMsg[T]{ID: d.id, Items: items} },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// current returns the item under the cursor
func (d *Dropdown[T]) current() (T, bool) {
	items := d.ctrl.Items()
	if d.cursor < 0 || d.cursor >= len(items) {
		var zero T
		return zero, false
	}
	return items[d.cursor], true
}

// clampCursor keeps the cursor inside the displayed list
func (d *Dropdown[T]) clampCursor() {
	n := len(d.ctrl.Items())
	if n == 0 {
		d.cursor = 0
		return
	}
	if d.cursor >= n {
		d.cursor = n - 1
	}
}

// effectCmd translates a selector effect into a Bubble Tea command
func (d *Dropdown[T]) effectCmd(eff selector.Effect) tea.Cmd {
	switch eff := eff.(type) {
	case selector.FetchEffect:
		return tea.Batch(d.fetchCmd(eff), d.spin.Tick)

	case selector.DebounceEffect:
		token := eff.Token
		if eff.Interval <= 0 {
			return func() tea.Msg { return debounceMsg{token: token} }
		}
		return tea.Tick(eff.Interval, func(time.Time) tea.Msg {
			return debounceMsg{token: token}
		})
	}
	return nil
}

// fetchCmd runs one page fetch off the update loop. Failures are wrapped at
// this boundary; they surface as the error state, never as a crash.
func (d *Dropdown[T]) fetchCmd(eff selector.FetchEffect) tea.Cmd {
	return func() tea.Msg {
		items, err := d.src.Fetch(context.Background(), eff.Page, eff.Query)
		if err != nil {
			return pageFailedMsg{
				gen:  eff.Gen,
				page: eff.Page,
				err:  &domain.FetchError{Page: eff.Page, Query: eff.Query, Err: err},
			}
		}
		return pageLoadedMsg[T]{gen: eff.Gen, page: eff.Page, items: items}
	}
}

// View implements tea.Model
func (d *Dropdown[T]) View() string {
	var b strings.Builder

	b.WriteString(d.input.View())
	b.WriteString("\n")
	b.WriteString(d.styles.Separator.Render(strings.Repeat("─", d.width-6)))
	b.WriteString("\n")

	b.WriteString(d.viewBody())

	b.WriteString("\n")
	b.WriteString(d.viewFooter())

	return b.String()
}

// viewBody renders the list window or the current placeholder state
func (d *Dropdown[T]) viewBody() string {
	items := d.ctrl.Items()

	if d.ctrl.Failed() {
		var b strings.Builder
		b.WriteString(d.styles.Error.Render("✗ could not load items"))
		b.WriteString("\n")
		b.WriteString(d.styles.Empty.Render(d.ctrl.Err().Error()))
		return b.String()
	}

	if d.ctrl.Loading() && len(items) == 0 {
		return d.styles.Loading.Render(d.spin.View() + "loading...")
	}

	if len(items) == 0 {
		if d.ctrl.Query() != "" {
			return d.styles.Empty.Render(fmt.Sprintf("no matches for %q", d.ctrl.Query()))
		}
		return d.styles.Empty.Render("no items")
	}

	start := 0
	if d.cursor >= d.maxRows {
		start = d.cursor - d.maxRows + 1
	}
	end := start + d.maxRows
	if end > len(items) {
		end = len(items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(d.viewItem(i, items[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if d.ctrl.Loading() {
		b.WriteString("\n")
		b.WriteString(d.styles.Loading.Render(d.spin.View() + "loading more..."))
	} else if d.ctrl.HasMore() {
		b.WriteString("\n")
		b.WriteString(d.styles.More.Render("↓ more"))
	}

	return b.String()
}

// viewItem renders one list row with cursor and selection marks
func (d *Dropdown[T]) viewItem(index int, item T) string {
	cursor := "  "
	style := d.styles.Item
	if index == d.cursor {
		cursor = "▶ "
		style = d.styles.ItemActive
	}

	mark := ""
	if d.ctrl.Mode() == domain.ModeMultiple {
		if d.ctrl.IsSelected(item) {
			mark = d.styles.Checkbox.Render("[x]") + " "
		} else {
			mark = "[ ] "
		}
	} else if d.ctrl.IsSelected(item) {
		style = d.styles.ItemSelected
		if index == d.cursor {
			style = d.styles.ItemActive
		}
	}

	return cursor + mark + style.Render(d.ctrl.Label(item))
}

// viewFooter renders the key hints and, in multi mode, the selection count
func (d *Dropdown[T]) viewFooter() string {
	if d.ctrl.Failed() {
		return d.styles.Footer.Render("ctrl+r: retry • esc: cancel")
	}

	if d.ctrl.Mode() == domain.ModeMultiple {
		count := ""
		if n := len(d.ctrl.Multi()); n > 0 {
			count = d.styles.Count.Render(fmt.Sprintf("%d selected", n)) + "  "
		}
		return count + d.styles.Footer.Render("tab: toggle • enter: confirm • esc: cancel")
	}
	return d.styles.Footer.Render("↑/↓: navigate • enter: select • esc: cancel")
}

// Title implements the Overlay interface
func (d *Dropdown[T]) Title() string {
	return d.title
}

// Size implements the Overlay interface. Height follows the list window so
// the host can place the panel above or below its anchor.
func (d *Dropdown[T]) Size() (width, height int) {
	rows := len(d.ctrl.Items())
	if rows > d.maxRows {
		rows = d.maxRows
	}
	if rows == 0 {
		rows = 1 // placeholder line (loading, empty, error)
	}
	// input + separator + rows + footer
	return d.width, rows + 3
}

// Dispose implements Disposable: late timers and fetch results arriving
// after the panel closed are dropped by the selector
func (d *Dropdown[T]) Dispose() {
	d.ctrl.Dispose()
}
