package components

import (
	"strings"
	"sync"

	lipgloss "charm.land/lipgloss/v2"
)

const maxCachedPad = 256

// spaces holds one run of maxCachedPad spaces; Pad slices it.
var spaces = sync.OnceValue(func() string {
	return strings.Repeat(" ", maxCachedPad)
})

// Pad returns a string of n spaces.
func Pad(n int) string {
	switch {
	case n <= 0:
		return ""
	case n <= maxCachedPad:
		return spaces()[:n]
	default:
		return strings.Repeat(" ", n)
	}
}

// Center composites modal over background, centered in a width x height
// screen. Modals larger than the screen are pinned to the top-left corner.
func Center(background, modal string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
