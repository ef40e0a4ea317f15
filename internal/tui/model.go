// Package tui implements the Bubble Tea shell that hosts one list view per
// collection.
package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/roster/internal/core/collection"
	"github.com/colonyops/roster/internal/core/logging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/tui/components"
	"github.com/colonyops/roster/internal/tui/views/list"
)

// headerHeight is the tab bar between its two dividers.
const headerHeight = 3

// Options configures the shell.
type Options struct {
	Collections []roster.Collection
	RowHeight   int
	Overscan    int
	BaseURL     string
	Build       BuildInfo
}

// Model is the root Bubble Tea model. Only the active collection has a
// mounted view; switching tabs unmounts it and mounts a fresh view over the
// other collection's retained state.
type Model struct {
	registry *collection.Registry
	opts     Options
	keys     KeyMap
	listKeys list.KeyMap
	log      zerolog.Logger

	tabs   []roster.Collection
	active int
	view   *list.View

	helpDialog   *components.HelpDialog
	statusDialog *components.StatusDialog
	detail       *list.Detail

	width    int
	height   int
	quitting bool
}

// New creates the shell. The first collection in opts is shown first.
func New(registry *collection.Registry, opts Options) Model {
	tabs := opts.Collections
	if len(tabs) == 0 {
		tabs = roster.Collections()
	}

	m := Model{
		registry: registry,
		opts:     opts,
		keys:     DefaultKeyMap(),
		listKeys: list.DefaultKeyMap(),
		log:      logging.Component("tui"),
		tabs:     tabs,
	}
	m.view = m.newView(tabs[0])
	return m
}

func (m Model) newView(c roster.Collection) *list.View {
	keys := m.listKeys
	return list.New(m.registry.Acquire(c), list.Options{
		RowHeight: m.opts.RowHeight,
		Overscan:  m.opts.Overscan,
		Keys:      &keys,
	})
}

// Active returns the collection currently shown.
func (m Model) Active() roster.Collection { return m.tabs[m.active] }

// Init mounts the first view.
func (m Model) Init() tea.Cmd {
	return m.view.Mount()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.detail != nil {
			m.detail.SetSize(m.width, m.height)
		}
		if m.helpDialog != nil {
			m.helpDialog = m.newHelpDialog()
		}
		if m.statusDialog != nil {
			m.statusDialog = m.newStatusDialog()
		}
		return m, m.view.SetSize(m.width, m.contentHeight())

	case list.FetchResultMsg:
		if msg.Collection == m.view.Collection() {
			return m, m.view.Update(msg)
		}
		if state, ok := m.registry.Lookup(msg.Collection); ok {
			outcome := state.Apply(msg.Result)
			m.log.Debug().
				Str("collection", string(msg.Collection)).
				Stringer("outcome", outcome).
				Msg("applied result for hidden list")
		}
		return m, nil

	case list.OpenDetailMsg:
		m.detail = list.NewDetail(msg.Collection, msg.Item, m.width, m.height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		if m.detail != nil {
			if msg.Mouse().Button == tea.MouseWheelUp {
				m.detail.ScrollUp()
			} else {
				m.detail.ScrollDown()
			}
			return m, nil
		}
		if m.helpDialog != nil || m.statusDialog != nil {
			return m, nil
		}
		return m, m.view.Update(msg)
	}

	return m, m.view.Update(msg)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch {
	case m.helpDialog != nil:
		if key.Matches(msg, m.keys.Close, m.keys.Help, m.keys.Quit) {
			m.helpDialog = nil
		}
		return m, nil
	case m.statusDialog != nil:
		switch {
		case key.Matches(msg, m.keys.Close, m.keys.Status, m.keys.Quit):
			m.statusDialog = nil
		case key.Matches(msg, m.keys.ScrollUp):
			m.statusDialog.ScrollUp()
		case key.Matches(msg, m.keys.ScrollDown):
			m.statusDialog.ScrollDown()
		}
		return m, nil
	case m.detail != nil:
		switch {
		case key.Matches(msg, m.keys.Close, m.keys.Quit, m.listKeys.Open):
			m.detail = nil
		case key.Matches(msg, m.keys.ScrollUp):
			m.detail.ScrollUp()
		case key.Matches(msg, m.keys.ScrollDown):
			m.detail.ScrollDown()
		}
		return m, nil
	}

	// The search box owns every key while focused.
	if m.view.Focused() {
		return m, m.view.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpDialog = m.newHelpDialog()
		return m, nil
	case key.Matches(msg, m.keys.Status):
		m.statusDialog = m.newStatusDialog()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTo((m.active + 1) % len(m.tabs))
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTo((m.active - 1 + len(m.tabs)) % len(m.tabs))
	}

	if i, ok := tabIndex(msg.String(), len(m.tabs)); ok {
		return m.switchTo(i)
	}

	return m, m.view.Update(msg)
}

// switchTo unmounts the current view and mounts tab i.
func (m Model) switchTo(i int) (tea.Model, tea.Cmd) {
	if i == m.active {
		return m, nil
	}
	m.view.Unmount()
	m.active = i
	m.view = m.newView(m.tabs[i])

	m.log.Debug().
		Str("collection", string(m.tabs[i])).
		Msg("switched list")

	var cmds []tea.Cmd
	if m.width > 0 {
		cmds = append(cmds, m.view.SetSize(m.width, m.contentHeight()))
	}
	cmds = append(cmds, m.view.Mount())
	return m, tea.Batch(cmds...)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.view.Unmount()
	return m, tea.Quit
}

func (m Model) contentHeight() int {
	return max(m.height-headerHeight, 0)
}

func (m Model) newHelpDialog() *components.HelpDialog {
	return components.NewHelpDialog(
		"Keyboard Shortcuts",
		helpSections(m.keys, m.listKeys, len(m.tabs)),
		m.width,
		m.height,
	)
}
