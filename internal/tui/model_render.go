package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/tui/components"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	mainView := m.renderTabView(w)

	var content string
	switch {
	case m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.statusDialog != nil:
		content = m.statusDialog.Overlay(mainView, w, h)
	case m.detail != nil:
		content = m.detail.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderTabView renders the tab bar framed by dividers above the active list.
func (m Model) renderTabView(width int) string {
	tabs := make([]string, 0, len(m.tabs))
	for i, c := range m.tabs {
		tabs = append(tabs, m.renderTab(i, c))
	}
	tabsLeft := strings.Join(tabs, " ")

	branding := styles.TitleStyle.Render(styles.IconUsers + " Roster")

	margin := 1
	spacerWidth := max(width-lipgloss.Width(tabsLeft)-lipgloss.Width(branding)-(margin*2), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		components.Pad(margin), tabsLeft, components.Pad(spacerWidth), branding, components.Pad(margin),
	)

	divider := styles.DividerStyle.Render(strings.Repeat("─", width))
	content := lipgloss.NewStyle().Height(m.contentHeight()).Render(m.view.View())

	return lipgloss.JoinVertical(lipgloss.Left, divider, header, divider, content)
}

func (m Model) renderTab(i int, c roster.Collection) string {
	label := fmt.Sprintf("%d %s %s", i+1, collectionIcon(c), c.Title())

	count := ""
	if state, ok := m.registry.Lookup(c); ok {
		snap := state.Snapshot()
		if n := len(snap.Items); n > 0 {
			suffix := ""
			if snap.HasNextPage {
				suffix = "+"
			}
			count = styles.TabCountStyle.Render(fmt.Sprintf("%d%s", n, suffix))
		}
	}

	if i == m.active {
		return styles.TabActiveStyle.Render(label) + count
	}
	return styles.TabInactiveStyle.Render(label) + count
}

func collectionIcon(c roster.Collection) string {
	if c == roster.Reviewers {
		return styles.IconReviewer
	}
	return styles.IconUsers
}
