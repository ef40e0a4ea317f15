package tui

import (
	"strconv"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/roster/internal/tui/components"
	"github.com/colonyops/roster/internal/tui/views/list"
)

// KeyMap holds the bindings handled by the shell itself. Everything else is
// forwarded to the active list view.
type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	Status     key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Close      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default shell bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Status:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "pagination status")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous list")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down")),
	}
}

// tabIndex maps a digit key to a zero-based tab index.
func tabIndex(keystroke string, tabs int) (int, bool) {
	n, err := strconv.Atoi(keystroke)
	if err != nil || n < 1 || n > tabs {
		return 0, false
	}
	return n - 1, true
}

func helpSections(k KeyMap, lk list.KeyMap, tabs int) []components.HelpSection {
	tabEntries := components.BindingEntries(k.NextTab, k.PrevTab)
	if tabs > 1 {
		tabEntries = append(tabEntries, components.HelpEntry{
			Key:  "1-" + strconv.Itoa(tabs),
			Desc: "jump to list",
		})
	}

	return []components.HelpSection{
		{Title: "Navigation", Entries: components.BindingEntries(lk.NavigationHelp()...)},
		{Title: "Search", Entries: components.BindingEntries(lk.SearchHelp()...)},
		{Title: "Lists", Entries: tabEntries},
		{Title: "General", Entries: components.BindingEntries(k.Status, k.Help, k.Quit)},
	}
}
