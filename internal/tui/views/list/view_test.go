package list

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/roster/internal/core/collection"
	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/pkg/tuitest"
)

type backend struct {
	mu    sync.Mutex
	total int
	err   error
	keys  []paging.Key
	pages []int
}

func (b *backend) fetch(_ context.Context, key paging.Key, page int) (paging.Page[roster.Item], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, key)
	b.pages = append(b.pages, page)
	if b.err != nil {
		return paging.Page[roster.Item]{}, b.err
	}

	var matched []roster.Item
	for i := 0; i < b.total; i++ {
		item := roster.Item{
			ID:          fmt.Sprintf("00000000-0000-0000-0000-%012d", i),
			FirstName:   fmt.Sprintf("Person%d", i),
			LastName:    "Tester",
			Email:       fmt.Sprintf("person%d@example.com", i),
			CatchPhrase: "Synergize scalable paradigms",
			Comments:    "Met at the conference.\nFollow up soon.",
		}
		if key.Term != "" && !strings.Contains(item.FirstName, key.Term) {
			continue
		}
		matched = append(matched, item)
	}

	start := min((page-1)*key.PageSize, len(matched))
	end := min(start+key.PageSize, len(matched))
	return paging.NewPage(matched[start:end], page, key.PageSize), nil
}

func (b *backend) setErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

func (b *backend) lastKey() paging.Key {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.keys[len(b.keys)-1]
}

func (b *backend) calls() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int(nil), b.pages...)
}

func newState(b *backend) *collection.State {
	return collection.New(context.Background(), roster.Users, b.fetch, collection.Options{
		PageSize:    10,
		SearchDelay: time.Millisecond,
		ScrollDelay: time.Millisecond,
	})
}

// run executes cmd and returns the messages produced within a short
// deadline. Long running commands such as cursor blinks are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(100 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds every message produced by cmd back into v until the view
// goes quiet, ignoring spinner ticks.
func settle(v *View, cmd tea.Cmd) {
	queue := run(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case FetchResultMsg, SearchTickMsg, ScrollTickMsg:
			queue = append(queue, run(v.Update(msg))...)
		}
	}
}

func mounted(t *testing.T, b *backend) *View {
	t.Helper()
	v := New(newState(b), Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())
	return v
}

func screen(v *View) string {
	return tuitest.StripANSI(v.View())
}

func TestView_LoadingThenCards(t *testing.T) {
	b := &backend{total: 25}
	v := New(newState(b), Options{})
	v.SetSize(80, chromeHeight+24)

	msgs := run(v.Mount())
	assert.Contains(t, screen(v), "Loading users...")

	for _, msg := range msgs {
		if res, ok := msg.(FetchResultMsg); ok {
			assert.Nil(t, v.Update(res))
		}
	}

	out := screen(v)
	assert.Contains(t, out, "Person0 Tester")
	assert.Contains(t, out, "person0@example.com")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Met at the conference. Follow up soon.")
	assert.Contains(t, out, "10 users loaded")
	assert.NotContains(t, out, "Person9 Tester", "rows below the viewport are not shown")
	assert.Len(t, strings.Split(v.View(), "\n"), chromeHeight+24)
}

func TestView_MountStartsOnce(t *testing.T) {
	b := &backend{total: 25}
	state := newState(b)

	v := New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())
	v.Unmount()

	v = New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())

	assert.Equal(t, []int{1}, b.calls())
}

func TestView_ErrorAndRetry(t *testing.T) {
	b := &backend{total: 25, err: errors.New("connection refused")}
	v := mounted(t, b)

	out := screen(v)
	assert.Contains(t, out, "Failed to load users")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "press r to retry")

	b.setErr(nil)
	settle(v, v.Update(tuitest.KeyPress('r')))

	out = screen(v)
	assert.NotContains(t, out, "Failed to load users")
	assert.Contains(t, out, "Person0 Tester")
}

func TestView_NextPageErrorShowsFooter(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	b.setErr(errors.New("boom"))
	settle(v, v.Update(tuitest.KeyPress('G')))

	out := screen(v)
	assert.Contains(t, out, "Failed to load more: boom")
	assert.Contains(t, out, "Person9 Tester", "items stay visible")

	b.setErr(nil)
	settle(v, v.Update(tuitest.KeyPress('r')))
	assert.Len(t, v.state.Engine.Items(), 20)
	assert.Equal(t, []int{1, 2, 2}, b.calls())
}

func TestView_ScrollToBottomFetchesNextPage(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	settle(v, v.Update(tuitest.KeyPress('G')))
	assert.Len(t, v.state.Engine.Items(), 20)

	settle(v, v.Update(tuitest.KeyPress('G')))
	assert.Len(t, v.state.Engine.Items(), 25)
	assert.False(t, v.state.Snapshot().HasNextPage)
	assert.Contains(t, screen(v), "End of list · 25 users")

	settle(v, v.Update(tuitest.KeyPress('G')))
	assert.Equal(t, []int{1, 2, 3}, b.calls())
}

func TestView_FillsShortViewport(t *testing.T) {
	b := &backend{total: 25}
	v := New(newState(b), Options{RowHeight: 3})
	v.SetSize(80, chromeHeight+40)
	settle(v, v.Mount())

	// 10 rows of 3 lines cannot fill 40 lines, so page 2 loads by itself.
	assert.Equal(t, []int{1, 2}, b.calls())
	assert.Len(t, v.state.Engine.Items(), 20)
}

func TestView_FillStopsAfterFailedPage(t *testing.T) {
	b := &backend{total: 25}
	v := New(newState(b), Options{RowHeight: 3})
	v.SetSize(80, chromeHeight+40)

	var first tea.Msg
	for _, msg := range run(v.Mount()) {
		if _, ok := msg.(FetchResultMsg); ok {
			first = msg
		}
	}
	require.NotNil(t, first)

	b.setErr(errors.New("boom"))
	settle(v, v.Update(first))

	// The short viewport asks for page 2 once. The failure is not retried
	// until the user presses r.
	assert.Equal(t, []int{1, 2}, b.calls())
	assert.Contains(t, screen(v), "Failed to load more: boom")

	b.setErr(nil)
	settle(v, v.Update(tuitest.KeyPress('r')))
	assert.Equal(t, []int{1, 2, 2}, b.calls())
	assert.Len(t, v.state.Engine.Items(), 20)
}

func TestView_RemountFillsShortViewport(t *testing.T) {
	b := &backend{total: 25}
	state := newState(b)

	v := New(state, Options{RowHeight: 3})
	v.SetSize(80, chromeHeight+40)
	var first tea.Msg
	for _, msg := range run(v.Mount()) {
		if _, ok := msg.(FetchResultMsg); ok {
			first = msg
		}
	}
	require.NotNil(t, first)

	// Page 1 lands while the view is hidden, so nothing asks for page 2.
	v.Unmount()
	assert.Nil(t, v.Update(first))
	require.Len(t, state.Engine.Items(), 10)
	require.Equal(t, []int{1}, b.calls())

	v = New(state, Options{RowHeight: 3})
	v.SetSize(80, chromeHeight+40)
	settle(v, v.Mount())

	assert.Equal(t, []int{1, 2}, b.calls())
	assert.Len(t, state.Engine.Items(), 20)
}

func TestView_DebouncedSearch(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	run(v.Update(tuitest.KeyPress('/')))
	require.True(t, v.Focused())

	var ticks []tea.Msg
	for _, msg := range tuitest.Type("son1") {
		for _, out := range run(v.Update(msg)) {
			if _, ok := out.(SearchTickMsg); ok {
				ticks = append(ticks, out)
			}
		}
	}
	require.Len(t, ticks, 4)
	assert.True(t, v.state.Search.IsPending())
	assert.Contains(t, screen(v), "typing")

	// Only the last tick commits.
	for _, tick := range ticks[:3] {
		assert.Nil(t, v.Update(tick))
	}
	settle(v, v.Update(ticks[3]))

	assert.Equal(t, "son1", v.state.Search.Committed())
	assert.Equal(t, paging.Key{Term: "son1", Field: "firstName", PageSize: 10}, b.lastKey())
	assert.Equal(t, []int{1, 1}, b.calls())
	assert.Contains(t, screen(v), "Person1 Tester")
	assert.Contains(t, screen(v), "Person10 Tester")
	assert.NotContains(t, screen(v), "Person2 Tester")
}

func TestView_EnterCommitsImmediately(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	run(v.Update(tuitest.KeyPress('/')))
	for _, msg := range tuitest.Type("zzz") {
		v.Update(msg)
	}
	settle(v, v.Update(tuitest.KeyEnter()))

	assert.False(t, v.Focused())
	assert.Equal(t, "zzz", v.state.Search.Committed())
	assert.Contains(t, screen(v), `No users found matching "zzz"`)
}

func TestView_EmptyCollection(t *testing.T) {
	v := mounted(t, &backend{})
	assert.Contains(t, screen(v), "No users available")
}

func TestView_ToggleFieldRefetches(t *testing.T) {
	b := &backend{total: 5}
	v := mounted(t, b)

	settle(v, v.Update(tuitest.KeyCtrl('f')))

	assert.Equal(t, roster.FieldEmail, v.state.Search.Field())
	assert.Equal(t, "email", b.lastKey().Field)
	assert.Contains(t, screen(v), "Email")
}

func TestView_ClearSearchResetsScroll(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	settle(v, v.Update(tuitest.KeyPress('j')))
	settle(v, v.Update(tuitest.KeyPress('j')))
	settle(v, v.Update(tuitest.KeyPress('j')))
	settle(v, v.Update(tuitest.KeyPress('j')))
	require.Positive(t, v.Offset())

	settle(v, v.Update(tuitest.KeyCtrl('x')))
	assert.Zero(t, v.Offset())
	assert.Zero(t, v.state.Position.Offset())
	item, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Person0", item.FirstName)
}

func TestView_SearchKeepsScroll(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	settle(v, v.Update(tuitest.WheelDown()))
	settle(v, v.Update(tuitest.WheelDown()))
	saved := v.Offset()
	require.Equal(t, 2*wheelStep, saved)
	require.Equal(t, saved, v.state.Position.Offset())

	run(v.Update(tuitest.KeyPress('/')))
	for _, msg := range tuitest.Type("Person") {
		v.Update(msg)
	}
	settle(v, v.Update(tuitest.KeyEnter()))

	require.Equal(t, "Person", v.state.Search.Committed())
	assert.Equal(t, []int{1, 1}, b.calls())
	assert.Equal(t, saved, v.Offset(), "offset restored once the new page lands")
	assert.Equal(t, saved, v.state.Position.Offset())

	v.Unmount()
	assert.Equal(t, saved, v.state.Position.Offset())
}

func TestView_SearchWithoutResultsKeepsSavedScroll(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	settle(v, v.Update(tuitest.WheelDown()))
	saved := v.Offset()
	require.Positive(t, saved)

	run(v.Update(tuitest.KeyPress('/')))
	for _, msg := range tuitest.Type("zzz") {
		v.Update(msg)
	}
	settle(v, v.Update(tuitest.KeyEnter()))
	require.Contains(t, screen(v), `No users found matching "zzz"`)

	// Unmounting on the empty result must not save over the pending offset.
	v.Unmount()
	assert.Equal(t, saved, v.state.Position.Offset())
}

func TestView_RemountRestoresScroll(t *testing.T) {
	b := &backend{total: 25}
	state := newState(b)

	v := New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())
	for range 5 {
		settle(v, v.Update(tuitest.KeyPress('j')))
	}
	saved := v.Offset()
	require.Positive(t, saved)
	v.Unmount()

	v = New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())

	assert.Equal(t, saved, v.Offset())
	assert.Contains(t, screen(v), "Person5 Tester")
}

func TestView_UnmountDiscardsPendingSearch(t *testing.T) {
	b := &backend{total: 25}
	state := newState(b)
	v := New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())

	run(v.Update(tuitest.KeyPress('/')))
	var tick tea.Msg
	for _, out := range run(v.Update(tuitest.KeyPress('x'))) {
		if _, ok := out.(SearchTickMsg); ok {
			tick = out
		}
	}
	require.NotNil(t, tick)

	v.Unmount()
	assert.False(t, state.Search.IsPending())
	assert.Empty(t, state.Search.Raw())

	// A late tick for the unmounted view does nothing.
	v = New(state, Options{})
	v.SetSize(80, chromeHeight+24)
	settle(v, v.Mount())
	assert.Nil(t, v.Update(tick))
	assert.Empty(t, state.Search.Committed())
}

func TestView_MouseWheel(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	msgs := run(v.Update(tuitest.WheelDown()))
	assert.Equal(t, wheelStep, v.Offset())
	require.Len(t, msgs, 1)
	assert.IsType(t, ScrollTickMsg{}, msgs[0])

	item, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Person1", item.FirstName, "selection follows the viewport")

	v.Update(tuitest.WheelUp())
	assert.Zero(t, v.Offset())
	assert.Nil(t, v.Update(tuitest.WheelUp()))
}

func TestView_OpenDetail(t *testing.T) {
	v := mounted(t, &backend{total: 3})
	settle(v, v.Update(tuitest.KeyPress('j')))

	msgs := run(v.Update(tuitest.KeyEnter()))
	require.Len(t, msgs, 1)
	open, ok := msgs[0].(OpenDetailMsg)
	require.True(t, ok)
	assert.Equal(t, roster.Users, open.Collection)
	assert.Equal(t, "Person1", open.Item.FirstName)
}

func TestView_IgnoresOtherCollections(t *testing.T) {
	b := &backend{total: 25}
	v := mounted(t, b)

	res := FetchResultMsg{Collection: roster.Reviewers}
	assert.Nil(t, v.Update(res))
	assert.Nil(t, v.Update(SearchTickMsg{Collection: roster.Reviewers, Token: 1}))
	assert.Nil(t, v.Update(ScrollTickMsg{Collection: roster.Reviewers, Token: 1}))
	assert.Len(t, v.state.Engine.Items(), 10)
}

func TestScrollbar(t *testing.T) {
	bar := scrollbar(10, 5, 0)
	assert.Equal(t, strings.Repeat(" ", 10), strings.Join(bar, ""))

	bar = scrollbar(10, 100, 90)
	plain := tuitest.StripANSI(strings.Join(bar, ""))
	assert.Equal(t, "│││││││││┃", plain)

	assert.Empty(t, scrollbar(0, 100, 0))
}
