package selector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droplist/internal/domain"
	"droplist/internal/source"
)

// pagedSource serves count items ("item-1" ...) in pages of pageSize,
// optionally filtered by query, like a well-behaved remote backend.
func pagedSource(t *testing.T, labels []string, pageSize int) source.Source[string] {
	t.Helper()
	r, err := source.NewRemote(func(_ context.Context, page int, query string) ([]string, error) {
		matched := domain.FilterByLabel(labels, func(s string) string { return s }, query)
		start := (page - 1) * pageSize
		if start >= len(matched) {
			return nil, nil
		}
		end := start + pageSize
		if end > len(matched) {
			end = len(matched)
		}
		return matched[start:end], nil
	})
	require.NoError(t, err)
	return r
}

func newModel(t *testing.T, cfg Config[string]) *Model[string] {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

// run executes a FetchEffect against src and feeds the outcome back,
// emulating the driver's fetch command synchronously.
func run(t *testing.T, m *Model[string], src source.Source[string], eff Effect) {
	t.Helper()
	fetch, ok := eff.(FetchEffect)
	require.True(t, ok, "expected FetchEffect, got %T", eff)
	items, err := src.Fetch(context.Background(), fetch.Page, fetch.Query)
	if err != nil {
		m.Reject(fetch.Gen, fetch.Page, err)
		return
	}
	m.Resolve(fetch.Gen, fetch.Page, items)
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(Config[string]{})
	assert.ErrorIs(t, err, domain.ErrNoSource)
}

func TestNew_Defaults(t *testing.T) {
	m := newModel(t, Config[string]{Source: source.NewStatic([]string{"a"}, nil)})
	assert.Equal(t, DefaultPageSize, m.pageSize)
	assert.Equal(t, DefaultDebounceInterval, m.debounce)
	assert.Equal(t, "a", m.Label("a"))
}

func TestInit_ReachesExactlyOneTerminalState(t *testing.T) {
	src := source.NewStatic([]string{"Apple", "Banana", "Cherry"}, nil)
	m := newModel(t, Config[string]{Source: src})

	eff := m.Init("")
	fetch, ok := eff.(FetchEffect)
	require.True(t, ok)
	assert.Equal(t, 1, fetch.Page)
	assert.True(t, m.Loading(), "loading must be set before the fetch runs")

	run(t, m, src, eff)
	assert.False(t, m.Loading())
	assert.False(t, m.Failed())
	assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, m.Items())
	assert.False(t, m.HasMore(), "static sources never have more pages")
}

func TestInit_FailureSetsErrorState(t *testing.T) {
	boom := errors.New("backend down")
	src, err := source.NewRemote(func(context.Context, int, string) ([]string, error) {
		return nil, boom
	})
	require.NoError(t, err)
	m := newModel(t, Config[string]{Source: src})

	run(t, m, src, m.Init(""))
	assert.False(t, m.Loading(), "error clears loading")
	assert.True(t, m.Failed())
	assert.ErrorIs(t, m.Err(), boom)
}

func TestSearch_DebounceLastWriterWins(t *testing.T) {
	src := source.NewStatic([]string{"Apple", "Banana", "Cherry"}, nil)
	m := newModel(t, Config[string]{Source: src, DebounceInterval: 100 * time.Millisecond})
	run(t, m, src, m.Init(""))

	// Three keystrokes within the quiet interval
	e1 := m.Search("a").(DebounceEffect)
	e2 := m.Search("an").(DebounceEffect)
	e3 := m.Search("ana").(DebounceEffect)
	assert.Equal(t, 100*time.Millisecond, e3.Interval)

	// Earlier timers fire but their tokens were superseded
	assert.Nil(t, m.DebounceElapsed(e1.Token))
	assert.Nil(t, m.DebounceElapsed(e2.Token))

	eff := m.DebounceElapsed(e3.Token)
	fetch, ok := eff.(FetchEffect)
	require.True(t, ok, "exactly one fetch cycle for the last query")
	assert.Equal(t, "ana", fetch.Query)
	assert.Equal(t, 1, fetch.Page)
	assert.Empty(t, m.Items(), "list cleared before the new query's first result")

	run(t, m, src, eff)
	assert.Equal(t, []string{"Banana"}, m.Items())
	assert.Equal(t, "ana", m.Query())
}

func TestSearch_UnchangedQueryIsNoop(t *testing.T) {
	src := source.NewStatic([]string{"Apple"}, nil)
	m := newModel(t, Config[string]{Source: src})
	run(t, m, src, m.Init("app"))

	e := m.Search("app").(DebounceEffect)
	assert.Nil(t, m.DebounceElapsed(e.Token), "same committed query must not refetch")
}

func TestSearch_StaleGenerationDiscarded(t *testing.T) {
	src := pagedSource(t, []string{"Apple", "Banana", "Cherry"}, 10)
	m := newModel(t, Config[string]{Source: src, PageSize: 10})

	// Generation 1 fetch goes out but its response is slow
	g1 := m.Init("").(FetchEffect)

	// A new search starts generation 2 before g1 resolves
	e := m.Search("an").(DebounceEffect)
	g2, ok := m.DebounceElapsed(e.Token).(FetchEffect)
	require.True(t, ok)
	require.Greater(t, g2.Gen, g1.Gen)

	// Generation 2 commits first
	m.Resolve(g2.Gen, g2.Page, []string{"Banana"})
	assert.Equal(t, []string{"Banana"}, m.Items())

	// g1's late arrival must be dropped, not merged
	m.Resolve(g1.Gen, g1.Page, []string{"Apple", "Banana", "Cherry"})
	assert.Equal(t, []string{"Banana"}, m.Items(), "stale result must not overwrite the newer one")

	// Same for a stale failure
	m.Reject(g1.Gen, g1.Page, errors.New("late failure"))
	assert.False(t, m.Failed())
}

func TestLoadMore_AppendsPagesSequentially(t *testing.T) {
	labels := make([]string, 24)
	for i := range labels {
		labels[i] = string(rune('a'+i%26)) + "-item"
	}
	src := pagedSource(t, labels, 10)
	m := newModel(t, Config[string]{Source: src, PageSize: 10})

	run(t, m, src, m.Init(""))
	require.Len(t, m.Items(), 10)
	require.True(t, m.HasMore())

	run(t, m, src, m.LoadMore())
	require.Len(t, m.Items(), 20)
	require.True(t, m.HasMore())

	run(t, m, src, m.LoadMore())
	assert.Len(t, m.Items(), 24)
	assert.False(t, m.HasMore(), "a short page signals exhaustion")
	assert.Equal(t, 3, m.Page())

	assert.Nil(t, m.LoadMore(), "no-op once exhausted")
}

func TestLoadMore_NoopConditions(t *testing.T) {
	t.Run("while loading", func(t *testing.T) {
		src := pagedSource(t, make([]string, 30), 10)
		m := newModel(t, Config[string]{Source: src, PageSize: 10})
		run(t, m, src, m.Init(""))
		require.True(t, m.HasMore())

		eff := m.LoadMore()
		require.NotNil(t, eff)
		assert.True(t, m.Loading())
		assert.Nil(t, m.LoadMore(), "no concurrent page requests within one generation")
		assert.Equal(t, 2, m.Page(), "page must not advance on the no-op")
	})

	t.Run("static source never loads more", func(t *testing.T) {
		src := source.NewStatic([]string{"a", "b", "c"}, nil)
		m := newModel(t, Config[string]{Source: src, PageSize: 2})
		run(t, m, src, m.Init(""))
		assert.False(t, m.HasMore())
		assert.Nil(t, m.LoadMore())
	})
}

func TestRetry_RerunsSameTuple(t *testing.T) {
	calls := 0
	src, err := source.NewRemote(func(_ context.Context, page int, query string) ([]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("flaky")
		}
		return []string{"recovered"}, nil
	})
	require.NoError(t, err)
	m := newModel(t, Config[string]{Source: src, PageSize: 10})

	first := m.Init("q").(FetchEffect)
	run(t, m, src, first)
	require.True(t, m.Failed())

	retry, ok := m.Retry().(FetchEffect)
	require.True(t, ok)
	assert.Equal(t, first.Gen, retry.Gen)
	assert.Equal(t, first.Page, retry.Page)
	assert.Equal(t, first.Query, retry.Query)

	run(t, m, src, retry)
	assert.False(t, m.Failed(), "error state cleared only by a successful fetch")
	assert.Equal(t, []string{"recovered"}, m.Items())

	assert.Nil(t, m.Retry(), "retry outside the error state is a no-op")
}

func TestSelectItem_SingleFinalizesOnce(t *testing.T) {
	var got []string
	src := source.NewStatic([]string{"Apple", "Banana"}, nil)
	m := newModel(t, Config[string]{
		Source:          src,
		Mode:            domain.ModeSingle,
		OnSingleChanged: func(item string) { got = append(got, item) },
	})
	run(t, m, src, m.Init(""))

	sig := m.SelectItem("Banana")
	assert.Equal(t, SignalClose, sig)
	assert.Equal(t, []string{"Banana"}, got, "callback fires exactly once")

	selected, ok := m.Single()
	require.True(t, ok)
	assert.Equal(t, "Banana", selected)
	assert.True(t, m.IsSelected("Banana"))
	assert.False(t, m.IsSelected("Apple"))
	assert.Empty(t, m.Multi(), "single mode never mutates the multi set")
}

func TestSelectItem_MultipleTogglesWithoutClosing(t *testing.T) {
	var confirmed [][]string
	src := source.NewStatic([]string{"Go", "Rust", "Zig"}, nil)
	m := newModel(t, Config[string]{
		Source:         src,
		Mode:           domain.ModeMultiple,
		OnMultiChanged: func(items []string) { confirmed = append(confirmed, items) },
	})
	run(t, m, src, m.Init(""))

	assert.Equal(t, SignalChanged, m.SelectItem("Rust"))
	assert.Equal(t, SignalChanged, m.SelectItem("Go"))
	assert.Equal(t, SignalChanged, m.SelectItem("Rust")) // toggle off
	assert.True(t, m.IsSelected("Go"))
	assert.False(t, m.IsSelected("Rust"))
	assert.Empty(t, confirmed, "no callback for intermediate toggles")

	m.SelectItem("Zig")
	sig := m.Confirm()
	assert.Equal(t, SignalClose, sig)
	require.Len(t, confirmed, 1, "callback fires exactly once per confirmation")
	assert.Equal(t, []string{"Go", "Zig"}, confirmed[0], "insertion order")
}

func TestConfirm_SingleModeNoop(t *testing.T) {
	src := source.NewStatic([]string{"a"}, nil)
	m := newModel(t, Config[string]{Source: src, Mode: domain.ModeSingle})
	assert.Equal(t, SignalNone, m.Confirm())
}

func TestInitialSelection_Seeding(t *testing.T) {
	src := source.NewStatic([]string{"Apple", "Banana"}, nil)
	apple := "Apple"

	single := newModel(t, Config[string]{Source: src, Mode: domain.ModeSingle, InitialSingle: &apple})
	assert.True(t, single.IsSelected("Apple"))

	multi := newModel(t, Config[string]{Source: src, Mode: domain.ModeMultiple, InitialMulti: []string{"Banana"}})
	assert.True(t, multi.IsSelected("Banana"))
	assert.Equal(t, []string{"Banana"}, multi.Multi())
}

func TestDispose_DropsLateArrivalsSilently(t *testing.T) {
	src := pagedSource(t, make([]string, 30), 10)
	m := newModel(t, Config[string]{Source: src, PageSize: 10})
	fetch := m.Init("").(FetchEffect)

	m.Dispose()
	require.True(t, m.Disposed())

	// In-flight result and timer arrive after teardown
	m.Resolve(fetch.Gen, fetch.Page, []string{"late"})
	assert.Empty(t, m.Items())
	m.Reject(fetch.Gen, fetch.Page, errors.New("late"))
	assert.False(t, m.Failed())

	// Every operation is a silent no-op
	assert.Nil(t, m.Init(""))
	assert.Nil(t, m.Search("x"))
	assert.Nil(t, m.DebounceElapsed(1))
	assert.Nil(t, m.LoadMore())
	assert.Nil(t, m.Retry())
	assert.Equal(t, SignalNone, m.SelectItem("x"))
	assert.Equal(t, SignalNone, m.Confirm())
}

func TestScenario_StaticSearch(t *testing.T) {
	src := source.NewStatic([]string{"Apple", "Banana", "Cherry"}, nil)
	m := newModel(t, Config[string]{Source: src, Mode: domain.ModeSingle})
	run(t, m, src, m.Init(""))

	e := m.Search("an").(DebounceEffect)
	run(t, m, src, m.DebounceElapsed(e.Token))
	assert.Equal(t, []string{"Banana"}, m.Items())
}

func TestScenario_RemoteThreePages(t *testing.T) {
	// Full pages 1 and 2, a short page 3
	pages := map[int][]string{}
	for p := 1; p <= 2; p++ {
		for i := 0; i < 10; i++ {
			pages[p] = append(pages[p], "x")
		}
	}
	pages[3] = []string{"x", "x", "x", "x"}

	src, err := source.NewRemote(func(_ context.Context, page int, _ string) ([]string, error) {
		return pages[page], nil
	})
	require.NoError(t, err)
	m := newModel(t, Config[string]{Source: src, PageSize: 10})

	run(t, m, src, m.Init(""))
	run(t, m, src, m.LoadMore())
	run(t, m, src, m.LoadMore())

	assert.Len(t, m.Items(), 24)
	assert.False(t, m.HasMore())
}
