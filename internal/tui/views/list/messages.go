package list

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/roster/internal/core/collection"
	"github.com/colonyops/roster/internal/core/debounce"
	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
)

// FetchResultMsg carries a finished page fetch back to the event loop. It is
// addressed by collection so it can be applied even after the view that
// issued it was unmounted.
type FetchResultMsg struct {
	Collection roster.Collection
	Result     paging.Result[roster.Item]
}

// SearchTickMsg ends a search quiet window.
type SearchTickMsg struct {
	Collection roster.Collection
	Token      debounce.Token
}

// ScrollTickMsg ends a scroll quiet window.
type ScrollTickMsg struct {
	Collection roster.Collection
	Token      debounce.Token
}

// OpenDetailMsg asks the shell to show the detail modal for an item.
type OpenDetailMsg struct {
	Collection roster.Collection
	Item       roster.Item
}

// fetchCmd runs task off the event loop.
func fetchCmd(c roster.Collection, task collection.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return FetchResultMsg{Collection: c, Result: task()}
	}
}

func searchTick(c roster.Collection, d time.Duration, tok debounce.Token) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SearchTickMsg{Collection: c, Token: tok}
	})
}

func scrollTick(c roster.Collection, d time.Duration, tok debounce.Token) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ScrollTickMsg{Collection: c, Token: tok}
	})
}
