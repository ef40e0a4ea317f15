package list

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings handled by a list view.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Open        key.Binding
	Retry       key.Binding
	Refresh     key.Binding
	Search      key.Binding
	Blur        key.Binding
	Commit      key.Binding
	ToggleField key.Binding
	ClearSearch key.Binding
}

// DefaultKeyMap returns the default list bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "move up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "move down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "jump to top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "jump to bottom")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show details")),
		Retry:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry failed fetch")),
		Refresh:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload from page 1")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),
		ToggleField: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "toggle search field")),
		ClearSearch: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear search")),
	}
}

// NavigationHelp lists the bindings active while browsing.
func (k KeyMap) NavigationHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.Open, k.Retry, k.Refresh}
}

// SearchHelp lists the bindings related to searching.
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Search, k.Commit, k.ToggleField, k.ClearSearch, k.Blur}
}
