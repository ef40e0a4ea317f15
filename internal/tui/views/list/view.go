// Package list renders one collection as a searchable, virtualized,
// infinitely scrolling list of cards.
package list

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/colonyops/roster/internal/core/collection"
	"github.com/colonyops/roster/internal/core/debounce"
	"github.com/colonyops/roster/internal/core/logging"
	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/scroll"
	"github.com/colonyops/roster/internal/core/search"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/core/virtual"
)

const (
	// searchBarHeight is the bordered search box.
	searchBarHeight = 3
	// chromeHeight is every line that is not list viewport: search bar,
	// status line and footer.
	chromeHeight = searchBarHeight + 2

	wheelStep = 3
)

// Options configure a View.
type Options struct {
	RowHeight int
	Overscan  int
	Keys      *KeyMap
}

// View is one mounted collection. A View is created on every mount and
// discarded on unmount; anything that must survive lives in the
// collection.State.
type View struct {
	state *collection.State
	keys  KeyMap
	log   zerolog.Logger

	list    *virtual.List
	input   textinput.Model
	spinner spinner.Model

	width    int
	height   int
	selected int

	mounted     bool
	unsubscribe func()
	changes     []search.Change
	lastToken   debounce.Token
}

// New creates an unmounted view over state.
func New(state *collection.State, opts Options) *View {
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultRowHeight
	}
	if opts.Overscan <= 0 {
		opts.Overscan = virtual.DefaultOverscan
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	input := textinput.New()
	input.Prompt = ""
	input.SetStyles(textinput.DefaultStyles(true))
	input.SetValue(state.Search.Raw())

	return &View{
		state:   state,
		keys:    keys,
		log:     logging.Component("list"),
		list:    virtual.NewList(opts.RowHeight, opts.Overscan),
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.LoadingStyle)),
	}
}

// Collection returns the collection this view shows.
func (v *View) Collection() roster.Collection { return v.state.Collection() }

// Focused reports whether the search input has focus. While it does, the
// shell must not interpret printable keys.
func (v *View) Focused() bool { return v.input.Focused() }

// Selected returns the highlighted item.
func (v *View) Selected() (roster.Item, bool) {
	items := v.state.Engine.Items()
	if v.selected < 0 || v.selected >= len(items) {
		return roster.Item{}, false
	}
	return items[v.selected], true
}

// Offset returns the scroll offset in lines.
func (v *View) Offset() int { return v.list.Offset() }

// SetSize sets the area available to the view. Growing the viewport may
// require more pages to fill it.
func (v *View) SetSize(width, height int) tea.Cmd {
	v.width = width
	v.height = height
	v.list.SetViewport(max(height-chromeHeight, 0))
	v.input.SetWidth(max(width-searchChromeWidth(v.state.Search.Field()), 1))
	v.list.EnsureVisible(v.selected)
	v.tryRestore()
	return v.fill()
}

// Mount subscribes to search changes, arms scroll restoration, starts the
// initial load if the collection has never been fetched and resumes filling
// a short viewport.
func (v *View) Mount() tea.Cmd {
	if v.mounted {
		return nil
	}
	v.mounted = true
	v.unsubscribe = v.state.Search.Subscribe(func(ch search.Change) {
		v.changes = append(v.changes, ch)
	})
	v.state.Position.Mount()
	v.sync()

	cmds := []tea.Cmd{v.spinner.Tick}
	if task, ok := v.state.Start(); ok {
		cmds = append(cmds, fetchCmd(v.Collection(), task))
	}
	// Pages that landed while the view was hidden may still leave the
	// viewport short.
	cmds = append(cmds, v.fill())
	return tea.Batch(cmds...)
}

// Unmount releases subscriptions and pending quiet windows. The collection
// state, including in-flight fetches, is left intact.
func (v *View) Unmount() {
	if !v.mounted {
		return
	}
	v.mounted = false
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	v.state.Search.Discard()
	v.state.Policy.Cancel()
	v.keepPosition()
	v.input.Blur()
	v.changes = nil
}

// Update handles a message addressed to this view.
func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if v.input.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleKey(msg)
	case tea.MouseWheelMsg:
		return v.handleWheel(msg)
	case SearchTickMsg:
		if msg.Collection != v.Collection() {
			return nil
		}
		if !v.state.Search.Fire(msg.Token) {
			return nil
		}
		return v.drainChanges()
	case ScrollTickMsg:
		if msg.Collection != v.Collection() {
			return nil
		}
		return v.settleScroll(msg.Token)
	case FetchResultMsg:
		if msg.Collection != v.Collection() {
			return nil
		}
		return v.applyResult(msg.Result)
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (v *View) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Blur):
		v.input.Blur()
		return nil
	case key.Matches(msg, v.keys.Commit):
		v.input.Blur()
		return v.commitNow()
	case key.Matches(msg, v.keys.ToggleField):
		return v.toggleField()
	case key.Matches(msg, v.keys.ClearSearch):
		return v.clearSearch()
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return cmd
	}
	tok := v.state.Search.Input(v.input.Value())
	v.lastToken = tok
	return tea.Batch(cmd, searchTick(v.Collection(), v.state.Search.Delay(), tok))
}

func (v *View) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Search):
		return v.input.Focus()
	case key.Matches(msg, v.keys.Up):
		return v.moveTo(v.selected - 1)
	case key.Matches(msg, v.keys.Down):
		return v.moveTo(v.selected + 1)
	case key.Matches(msg, v.keys.PageUp):
		return v.moveTo(v.selected - v.rowsPerPage())
	case key.Matches(msg, v.keys.PageDown):
		return v.moveTo(v.selected + v.rowsPerPage())
	case key.Matches(msg, v.keys.Top):
		return v.moveTo(0)
	case key.Matches(msg, v.keys.Bottom):
		return v.moveTo(v.list.Count() - 1)
	case key.Matches(msg, v.keys.Open):
		item, ok := v.Selected()
		if !ok {
			return nil
		}
		c := v.Collection()
		return func() tea.Msg { return OpenDetailMsg{Collection: c, Item: item} }
	case key.Matches(msg, v.keys.Retry):
		task, ok := v.state.Retry()
		if !ok {
			return nil
		}
		return fetchCmd(v.Collection(), task)
	case key.Matches(msg, v.keys.Refresh):
		return fetchCmd(v.Collection(), v.state.Refetch())
	case key.Matches(msg, v.keys.ToggleField):
		return v.toggleField()
	case key.Matches(msg, v.keys.ClearSearch):
		return v.clearSearch()
	}
	return nil
}

func (v *View) handleWheel(msg tea.MouseWheelMsg) tea.Cmd {
	var delta int
	switch msg.Mouse().Button {
	case tea.MouseWheelDown:
		delta = wheelStep
	case tea.MouseWheelUp:
		delta = -wheelStep
	default:
		return nil
	}
	if !v.list.ScrollBy(delta) {
		return nil
	}
	v.keepSelectionVisible()
	return v.onScroll()
}

// commitNow settles a pending search without waiting for the quiet window.
func (v *View) commitNow() tea.Cmd {
	if !v.state.Search.IsPending() {
		return nil
	}
	if !v.state.Search.Fire(v.lastToken) {
		return nil
	}
	return v.drainChanges()
}

func (v *View) toggleField() tea.Cmd {
	v.state.Search.CycleField()
	v.input.SetWidth(max(v.width-searchChromeWidth(v.state.Search.Field()), 1))
	return v.drainChanges()
}

// clearSearch empties the search and returns to the top of the list.
func (v *View) clearSearch() tea.Cmd {
	v.input.SetValue("")
	v.state.Search.Clear()
	v.state.Position.Reset()
	v.list.SetOffset(0)
	v.selected = 0
	return v.drainChanges()
}

// drainChanges rekeys the collection for every committed search change
// delivered by the subscription. The scroll offset survives the change: it
// is saved and restored once the new results arrive. Only clearSearch
// resets it.
func (v *View) drainChanges() tea.Cmd {
	changes := v.changes
	v.changes = nil

	var cmds []tea.Cmd
	for _, ch := range changes {
		task, ok := v.state.ApplySearch(ch)
		if !ok {
			continue
		}
		v.keepPosition()
		v.state.Position.Mount()
		v.selected = 0
		cmds = append(cmds, fetchCmd(v.Collection(), task))
	}
	v.sync()
	return tea.Batch(cmds...)
}

// keepPosition saves the current offset unless a saved one is still
// waiting to be restored.
func (v *View) keepPosition() {
	if v.list.Measured() && !v.state.Position.Pending() {
		v.state.Position.Save(v.list.Offset())
	}
}

func (v *View) applyResult(res paging.Result[roster.Item]) tea.Cmd {
	v.state.Apply(res)
	v.sync()
	return v.fill()
}

// fill loads another page when the rows do not fill the viewport, since no
// scroll event can happen in that case.
func (v *View) fill() tea.Cmd {
	if !v.mounted || !v.state.Policy.Fill(v.metrics()) {
		return nil
	}
	task, ok := v.state.FetchNextPage()
	if !ok {
		return nil
	}
	return fetchCmd(v.Collection(), task)
}

func (v *View) settleScroll(tok debounce.Token) tea.Cmd {
	d := v.state.Policy.Evaluate(tok, v.metrics())
	if !d.Settled {
		return nil
	}
	v.state.Position.Save(d.Offset)
	if !d.FetchMore {
		return nil
	}
	task, ok := v.state.FetchNextPage()
	if !ok {
		return nil
	}
	return fetchCmd(v.Collection(), task)
}

func (v *View) onScroll() tea.Cmd {
	tok := v.state.Policy.OnScroll(v.list.Offset())
	return scrollTick(v.Collection(), v.state.Policy.Delay(), tok)
}

// moveTo selects row i, clamped to the list, and scrolls it into view.
func (v *View) moveTo(i int) tea.Cmd {
	count := v.list.Count()
	if count == 0 {
		return nil
	}
	v.selected = min(max(i, 0), count-1)

	before := v.list.Offset()
	v.list.EnsureVisible(v.selected)
	if v.list.Offset() == before {
		return nil
	}
	return v.onScroll()
}

func (v *View) keepSelectionVisible() {
	rh := v.list.RowHeight()
	first := (v.list.Offset() + rh - 1) / rh
	last := (v.list.Offset()+v.list.Viewport())/rh - 1
	last = min(last, v.list.Count()-1)
	if first > last {
		return
	}
	v.selected = min(max(v.selected, first), last)
}

func (v *View) rowsPerPage() int {
	return max(v.list.Viewport()/v.list.RowHeight(), 1)
}

// sync copies the engine item count into the virtual list.
func (v *View) sync() {
	v.list.SetCount(len(v.state.Engine.Items()))
	if v.selected >= v.list.Count() {
		v.selected = max(v.list.Count()-1, 0)
	}
	v.tryRestore()
}

func (v *View) tryRestore() {
	if !v.mounted || !v.list.Measured() {
		return
	}
	off, ok := v.state.Position.Restore(v.list.Count())
	if !ok {
		return
	}
	applied := v.list.SetOffset(off)
	if idx := v.list.IndexAt(0); idx >= 0 {
		v.selected = idx
		v.keepSelectionVisible()
	}
	v.log.Debug().
		Str("collection", string(v.Collection())).
		Int("offset", applied).
		Msg("scroll position restored")
}

func (v *View) metrics() scroll.Metrics {
	snap := v.state.Snapshot()
	return scroll.Metrics{
		Offset:             v.list.Offset(),
		ViewportHeight:     v.list.Viewport(),
		ContentHeight:      v.list.TotalHeight(),
		HasNextPage:        snap.HasNextPage,
		IsFetchingNextPage: snap.IsFetchingNextPage,
		IsError:            snap.IsError,
	}
}

// View renders the search bar, status line, list body and footer.
func (v *View) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	snap := v.state.Snapshot()

	parts := []string{v.renderSearchBar(), v.renderStatus(snap)}
	if v.list.Viewport() > 0 {
		parts = append(parts, v.renderBody(snap))
	}
	parts = append(parts, v.renderFooter(snap))
	return strings.Join(parts, "\n")
}

// searchChromeWidth is the horizontal space the search bar uses around the
// text input: border, padding, the field badge and the pending marker.
func searchChromeWidth(f roster.SearchField) int {
	return 4 + lipgloss.Width(fieldBadge(f)) + 1 + 2
}

func fieldBadge(f roster.SearchField) string {
	return styles.SearchFieldStyle.Render(f.Label())
}

func (v *View) renderSearchBar() string {
	s := v.state.Search.Snapshot()
	noun := v.Collection().Noun()

	v.input.Placeholder = fmt.Sprintf("search %s by %s", noun, strings.ToLower(s.Field.Label()))

	marker := "  "
	if s.Pending {
		marker = " " + styles.SearchPendingStyle.Render("…")
	}

	inner := max(v.width-4, 1)
	content := fit(fieldBadge(s.Field)+" "+v.input.View()+marker, inner)

	style := styles.SearchBarStyle
	if v.input.Focused() {
		style = styles.SearchBarFocusedStyle
	}
	return style.Render(content)
}

func (v *View) renderStatus(snap paging.Snapshot[roster.Item]) string {
	noun := v.Collection().Noun()
	s := v.state.Search.Snapshot()

	parts := []string{styles.TextForegroundBoldStyle.Render(fmt.Sprintf("%d %s loaded", len(snap.Items), noun))}
	if snap.PageCount > 0 {
		parts = append(parts, styles.TextMutedStyle.Render(fmt.Sprintf("%d pages", snap.PageCount)))
	}
	if s.Committed != "" {
		parts = append(parts, styles.TextMutedStyle.Render(fmt.Sprintf("%s contains %q", s.Field.Label(), s.Committed)))
	}
	if s.Pending {
		parts = append(parts, styles.SearchPendingStyle.Render("typing"))
	}
	sep := styles.TextMutedStyle.Render(" · ")
	return fit(strings.Join(parts, sep), v.width)
}

func (v *View) renderBody(snap paging.Snapshot[roster.Item]) string {
	vp := v.list.Viewport()
	if len(snap.Items) == 0 {
		return lipgloss.Place(v.width, vp, lipgloss.Center, lipgloss.Center, v.renderPlaceholder(snap))
	}

	cardWidth := max(v.width-1, 1)
	win := v.list.Window()
	content := make([]string, 0, win.Len()*v.list.RowHeight())
	for _, i := range win.Rows() {
		content = append(content, renderCard(snap.Items[i], i, cardWidth, v.list.RowHeight(), i == v.selected)...)
	}

	bar := scrollbar(vp, v.list.TotalHeight(), v.list.Offset())
	skip := v.list.Offset() - win.Offset(win.Start)
	lines := make([]string, vp)
	for n := range lines {
		var line string
		if idx := skip + n; idx >= 0 && idx < len(content) {
			line = content[idx]
		}
		lines[n] = fit(line, cardWidth) + bar[n]
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderPlaceholder(snap paging.Snapshot[roster.Item]) string {
	noun := v.Collection().Noun()
	switch {
	case snap.IsLoading:
		return v.spinner.View() + " " + styles.LoadingStyle.Render(fmt.Sprintf("Loading %s...", noun))
	case snap.IsError:
		return lipgloss.JoinVertical(lipgloss.Center,
			styles.ErrorTitleStyle.Render(styles.IconError+" Failed to load "+noun),
			styles.ErrorDetailStyle.Render(errorText(snap.Err, v.width-4)),
			"",
			styles.TextMutedStyle.Render("press r to retry"),
		)
	default:
		if term := v.state.Search.Committed(); term != "" {
			return styles.EmptyStateStyle.Render(fmt.Sprintf("No %s found matching %q", noun, term))
		}
		return styles.EmptyStateStyle.Render(fmt.Sprintf("No %s available", noun))
	}
}

func (v *View) renderFooter(snap paging.Snapshot[roster.Item]) string {
	var line string
	switch {
	case snap.IsFetchingNextPage:
		line = v.spinner.View() + " " + styles.LoadingStyle.Render("Loading more...")
	case snap.IsError && len(snap.Items) > 0:
		line = styles.ErrorStyle.Render("Failed to load more: "+errorText(snap.Err, v.width)) +
			styles.TextMutedStyle.Render(" · r to retry")
	case snap.IsLoading && len(snap.Items) > 0:
		line = v.spinner.View() + " " + styles.LoadingStyle.Render("Refreshing...")
	case len(snap.Items) > 0 && !snap.HasNextPage:
		line = styles.FooterStyle.Render(fmt.Sprintf("End of list · %d %s", len(snap.Items), v.Collection().Noun()))
	default:
		line = styles.FooterStyle.Render("/ search · ctrl+f field · ? help")
	}
	return fit(line, v.width)
}

func errorText(err error, width int) string {
	if err == nil {
		return "unknown error"
	}
	return ansi.Truncate(oneLine(err.Error()), max(width, 1), ellipsis)
}

// scrollbar renders one cell per viewport line.
func scrollbar(viewport, total, offset int) []string {
	bar := make([]string, viewport)
	if viewport <= 0 {
		return bar
	}
	if total <= viewport {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumb := max(viewport*viewport/total, 1)
	top := offset * (viewport - thumb) / (total - viewport)
	for i := range bar {
		if i >= top && i < top+thumb {
			bar[i] = styles.ScrollThumbStyle.Render("┃")
		} else {
			bar[i] = styles.ScrollTrackStyle.Render("│")
		}
	}
	return bar
}
