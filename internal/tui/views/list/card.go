package list

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/tui/components"
)

// DefaultRowHeight is the number of lines one card occupies.
const DefaultRowHeight = 6

const ellipsis = "…"

// renderCard draws item as exactly height lines, each width cells wide.
// Cards of three or more lines get a border; shorter rows drop it.
func renderCard(item roster.Item, index, width, height int, selected bool) []string {
	if height <= 0 || width <= 0 {
		return nil
	}

	bordered := height >= 3 && width > 4
	inner := width
	slots := height
	if bordered {
		inner = width - 4
		slots = height - 2
	}

	candidates := cardLines(item, index, inner)
	lines := make([]string, slots)
	for i := range lines {
		var line string
		if i < len(candidates) {
			line = candidates[i]
		}
		lines[i] = fit(line, inner)
	}

	if !bordered {
		return lines
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return strings.Split(style.Render(strings.Join(lines, "\n")), "\n")
}

func cardLines(item roster.Item, index, width int) []string {
	name := styles.CardNameStyle.Render(item.FullName())
	number := styles.CardIndexStyle.Render(fmt.Sprintf("#%d", index+1))
	if gap := width - lipgloss.Width(name) - lipgloss.Width(number); gap >= 1 {
		name += components.Pad(gap) + number
	}

	lines := []string{
		name,
		styles.CardEmailStyle.Render(styles.IconMail + " " + item.Email),
	}
	if item.CatchPhrase != "" {
		lines = append(lines, styles.CardPhraseStyle.Render("“"+item.CatchPhrase+"”"))
	}
	if item.Comments != "" {
		lines = append(lines, styles.TextForegroundStyle.Render(oneLine(item.Comments)))
	}
	return lines
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, ellipsis)
	}
	return s + components.Pad(width-lipgloss.Width(s))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
