package list

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/tui/components"
)

// Detail is a scrollable modal showing every field of one item.
type Detail struct {
	collection roster.Collection
	item       roster.Item
	lines      []string
	offset     int
	width      int
	height     int
}

// NewDetail renders item for a terminal of the given size.
func NewDetail(c roster.Collection, item roster.Item, width, height int) *Detail {
	d := &Detail{collection: c, item: item}
	d.SetSize(width, height)
	return d
}

// Item returns the item shown.
func (d *Detail) Item() roster.Item { return d.item }

// SetSize re-renders the markdown for a new terminal size.
func (d *Detail) SetSize(width, height int) {
	d.width = max(min(width-8, 80), 20)
	d.height = max(height-8, 3)
	d.lines = strings.Split(strings.TrimRight(renderMarkdown(itemMarkdown(d.collection, d.item), d.width), "\n"), "\n")
	d.offset = min(d.offset, d.maxOffset())
}

// ScrollDown moves the content one line down.
func (d *Detail) ScrollDown() {
	d.offset = min(d.offset+1, d.maxOffset())
}

// ScrollUp moves the content one line up.
func (d *Detail) ScrollUp() {
	d.offset = max(d.offset-1, 0)
}

func (d *Detail) maxOffset() int {
	return max(len(d.lines)-d.height, 0)
}

// View renders the modal box.
func (d *Detail) View() string {
	end := min(d.offset+d.height, len(d.lines))
	body := strings.Join(d.lines[d.offset:end], "\n")

	help := "esc close"
	if d.maxOffset() > 0 {
		help = fmt.Sprintf("j/k scroll · %d/%d · esc close", end, len(d.lines))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(d.collection.Title()+" "+styles.IconCheck),
		"",
		body,
		styles.ModalHelpStyle.Render(help),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the modal centered over background.
func (d *Detail) Overlay(background string, width, height int) string {
	return components.Center(background, d.View(), width, height)
}

func itemMarkdown(c roster.Collection, item roster.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.FullName())
	fmt.Fprintf(&b, "- **Email:** %s\n", item.Email)
	fmt.Fprintf(&b, "- **ID:** `%s`\n", item.ID)
	fmt.Fprintf(&b, "- **Collection:** %s\n", c.Title())
	if item.CatchPhrase != "" {
		fmt.Fprintf(&b, "\n> %s\n", item.CatchPhrase)
	}
	if item.Comments != "" {
		fmt.Fprintf(&b, "\n## Comments\n\n%s\n", item.Comments)
	}
	return b.String()
}

// renderMarkdown renders md with the active theme, falling back to the raw
// text if glamour fails.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
