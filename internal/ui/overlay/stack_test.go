package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOverlay records lifecycle calls for stack tests
type fakeOverlay struct {
	title    string
	inited   bool
	disposed bool
	lastMsg  tea.Msg
}

func (f *fakeOverlay) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeOverlay) View() string     { return f.title }
func (f *fakeOverlay) Title() string    { return f.title }
func (f *fakeOverlay) Size() (int, int) { return 10, 5 }
func (f *fakeOverlay) Dispose()         { f.disposed = true }

func TestStack_PushPop(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Pop())

	a := &fakeOverlay{title: "a"}
	b := &fakeOverlay{title: "b"}

	s.Push(a)
	assert.True(t, a.inited)
	s.Push(b)

	assert.False(t, s.IsEmpty())
	assert.Equal(t, b, s.Current())

	popped := s.Pop()
	assert.Equal(t, b, popped)
	assert.Equal(t, a, s.Current())
}

func TestStack_PopDisposes(t *testing.T) {
	s := NewStack()
	o := &fakeOverlay{title: "x"}
	s.Push(o)

	s.Pop()
	assert.True(t, o.disposed, "Pop must dispose the overlay")
}

func TestStack_ClearDisposesAll(t *testing.T) {
	s := NewStack()
	a := &fakeOverlay{title: "a"}
	b := &fakeOverlay{title: "b"}
	s.Push(a)
	s.Push(b)

	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.True(t, a.disposed)
	assert.True(t, b.disposed)
}

func TestStack_UpdateForwardsToTop(t *testing.T) {
	s := NewStack()
	a := &fakeOverlay{title: "a"}
	b := &fakeOverlay{title: "b"}
	s.Push(a)
	s.Push(b)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
	s.Update(msg)

	assert.Equal(t, msg, b.lastMsg)
	assert.Nil(t, a.lastMsg)
}

func TestStack_UpdateClosesOnCloseMsg(t *testing.T) {
	s := NewStack()
	o := &fakeOverlay{title: "x"}
	s.Push(o)

	s.Update(CloseOverlayMsg{})

	require.True(t, s.IsEmpty())
	assert.True(t, o.disposed, "closing via message must dispose")
}

func TestStack_UpdateOnEmptyStack(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Update(CloseOverlayMsg{}))
}
