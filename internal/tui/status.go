package tui

import (
	"fmt"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/tui/components"
)

func (m Model) newStatusDialog() *components.StatusDialog {
	sections := make([]components.StatusSection, 0, len(m.tabs)+1)
	for _, c := range m.tabs {
		sections = append(sections, m.collectionStatus(c))
	}
	sections = append(sections, m.apiStatus())

	return components.NewStatusDialog("Status", sections, "j/k scroll · esc close", m.width, m.height)
}

func (m Model) collectionStatus(c roster.Collection) components.StatusSection {
	section := components.StatusSection{Title: c.Title()}

	state, ok := m.registry.Lookup(c)
	if !ok {
		section.Rows = []components.StatusRow{{Label: "State", Value: "not opened yet"}}
		return section
	}

	snap := state.Snapshot()

	loaded := components.StatusRow{
		Label: "Loaded",
		Value: fmt.Sprintf("%d %s in %s", len(snap.Items), c.Noun(), plural(snap.PageCount, "page")),
		Level: components.LevelOK,
	}
	switch {
	case snap.IsLoading:
		loaded.Level = components.LevelBusy
		loaded.Value += " (loading)"
	case snap.IsFetchingNextPage:
		loaded.Level = components.LevelBusy
		loaded.Value += fmt.Sprintf(" (fetching page %d)", snap.PageCursor)
	case snap.IsError:
		loaded.Level = components.LevelFailed
	}

	more := "end of list"
	if snap.HasNextPage {
		more = fmt.Sprintf("page %d next", snap.PageCursor)
	}

	search := "none"
	if snap.Key.Term != "" {
		search = fmt.Sprintf("%s contains %q", state.Search.Field().Label(), snap.Key.Term)
	}
	if state.Search.IsPending() {
		search += " (typing)"
	}

	section.Rows = []components.StatusRow{
		loaded,
		{Label: "Next", Value: more},
		{Label: "Search", Value: search},
		{Label: "Page size", Value: fmt.Sprintf("%d", state.PageSize())},
	}
	if snap.IsError && snap.Err != nil {
		section.Rows = append(section.Rows, components.StatusRow{
			Label: "Error",
			Value: snap.Err.Error(),
			Level: components.LevelFailed,
		})
	}
	return section
}

func (m Model) apiStatus() components.StatusSection {
	baseURL := m.opts.BaseURL
	if baseURL == "" {
		baseURL = "unknown"
	}
	return components.StatusSection{Title: "Roster", Rows: []components.StatusRow{
		{Label: "API", Value: baseURL},
		{Label: "Build", Value: m.opts.Build.String()},
	}}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
