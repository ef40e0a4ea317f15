package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/roster/internal/core/styles"
)

const (
	statusModalMaxHeight = 30
	statusModalMargin    = 4
	statusModalChrome    = 6 // title + divider + help + spacing
	statusModalMinWidth  = 50
)

// Level annotates a status row.
type Level int

const (
	LevelNone Level = iota
	LevelOK
	LevelBusy
	LevelFailed
)

// StatusRow is one labeled value.
type StatusRow struct {
	Label string
	Value string
	Level Level
}

// StatusSection groups rows under a title.
type StatusSection struct {
	Title string
	Rows  []StatusRow
}

// StatusDialog is a scrollable modal of labeled values.
type StatusDialog struct {
	title    string
	help     string
	viewport viewport.Model
}

// NewStatusDialog builds a dialog sized for a terminal of width x height.
func NewStatusDialog(title string, sections []StatusSection, help string, width, height int) *StatusDialog {
	w, h := statusModalSize(width, height)

	vp := viewport.New(
		viewport.WithWidth(w-4),
		viewport.WithHeight(max(h-statusModalChrome, 1)),
	)
	vp.SetContent(renderStatusSections(sections, w))

	return &StatusDialog{title: title, help: help, viewport: vp}
}

func statusModalSize(width, height int) (int, int) {
	w := min(max(width*2/3, statusModalMinWidth), width-statusModalMargin)
	h := min(height-statusModalMargin, statusModalMaxHeight)
	return max(w, 10), max(h, statusModalChrome+1)
}

func renderStatusSections(sections []StatusSection, modalWidth int) string {
	separator := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))

	labelWidth := 0
	for _, s := range sections {
		for _, r := range s.Rows {
			labelWidth = max(labelWidth, lipgloss.Width(r.Label))
		}
	}

	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), separator)
		}
		for _, row := range section.Rows {
			lines = append(lines, formatStatusRow(row, labelWidth))
		}
	}
	return strings.Join(lines, "\n")
}

func formatStatusRow(row StatusRow, labelWidth int) string {
	label := styles.TextForegroundBoldStyle.Render(row.Label + Pad(labelWidth-lipgloss.Width(row.Label)))
	value := styles.TextMutedStyle.Render(row.Value)
	return fmt.Sprintf("%s %s  %s", levelIcon(row.Level), label, value)
}

func levelIcon(l Level) string {
	switch l {
	case LevelOK:
		return styles.SuccessStyle.Render("✔")
	case LevelBusy:
		return styles.WarningStyle.Render("●")
	case LevelFailed:
		return styles.ErrorStyle.Render("✘")
	default:
		return " "
	}
}

// ScrollUp scrolls the content up one line.
func (d *StatusDialog) ScrollUp() {
	d.viewport.ScrollUp(1)
}

// ScrollDown scrolls the content down one line.
func (d *StatusDialog) ScrollDown() {
	d.viewport.ScrollDown(1)
}

// Overlay renders the dialog centered over background.
func (d *StatusDialog) Overlay(background string, width, height int) string {
	w, _ := statusModalSize(width, height)

	title := d.title
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		styles.TextSurfaceStyle.Render(strings.Repeat("─", max(w-6, 1))),
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.help),
	)
	return Center(background, styles.ModalStyle.Render(content), width, height)
}
