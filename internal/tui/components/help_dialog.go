// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/roster/internal/core/styles"
)

// helpChrome is the modal's vertical overhead: border, padding, title, help.
const helpChrome = 7

// HelpEntry is one key and what it does.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpSection groups entries under a title.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// BindingEntries converts enabled key bindings into help entries.
func BindingEntries(bindings ...key.Binding) []HelpEntry {
	entries := make([]HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		entries = append(entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// HelpDialog lists keyboard shortcuts. Sections flow into a second column
// when a single column would not fit the screen height.
type HelpDialog struct {
	title    string
	sections []HelpSection
	width    int
	height   int
}

// NewHelpDialog creates a help dialog for a width x height screen.
func NewHelpDialog(title string, sections []HelpSection, width, height int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
		width:    width,
		height:   height,
	}
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	keyWidth := 0
	for _, s := range h.sections {
		for _, e := range s.Entries {
			keyWidth = max(keyWidth, lipgloss.Width(e.Key))
		}
	}
	keyWidth += 2

	blocks := make([][]string, len(h.sections))
	for i, s := range h.sections {
		blocks[i] = renderHelpSection(s, keyWidth)
	}

	var body string
	if split := splitSections(blocks, h.height-helpChrome); split > 0 {
		left := joinBlocks(blocks[:split])
		right := joinBlocks(blocks[split:])
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, Pad(4), right)
	} else {
		body = joinBlocks(blocks)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		body,
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)
	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Center(background, h.View(), width, height)
}

func renderHelpSection(s HelpSection, keyWidth int) []string {
	var lines []string
	if s.Title != "" {
		lines = append(lines,
			styles.HelpDialogSectionStyle.Render(s.Title),
			styles.TextMutedStyle.Render(strings.Repeat("─", 25)),
		)
	}
	for _, e := range s.Entries {
		k := styles.TextPrimaryBoldStyle.Render(e.Key + Pad(keyWidth-lipgloss.Width(e.Key)))
		lines = append(lines, k+styles.TextForegroundStyle.Render(e.Desc))
	}
	return lines
}

// splitSections returns the index of the first block for the second column,
// filling the first column up to limit lines. It returns 0 when everything
// fits or the first block alone is too tall.
func splitSections(blocks [][]string, limit int) int {
	used := 0
	for i, b := range blocks {
		need := len(b)
		if i > 0 {
			need++
		}
		if used+need > limit {
			return i
		}
		used += need
	}
	return 0
}

func joinBlocks(blocks [][]string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, strings.Join(b, "\n"))
	}
	return strings.Join(parts, "\n\n")
}
