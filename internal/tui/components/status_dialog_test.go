package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/roster/pkg/tuitest"
)

func TestStatusDialog_RendersRows(t *testing.T) {
	d := NewStatusDialog(
		"Status",
		[]StatusSection{
			{
				Title: "Users",
				Rows: []StatusRow{
					{Label: "Loaded", Value: "50 items, 1 page", Level: LevelOK},
					{Label: "Fetching", Value: "page 2", Level: LevelBusy},
				},
			},
			{
				Title: "Reviewers",
				Rows: []StatusRow{
					{Label: "Error", Value: "fetch failed: Internal Server Error (500)", Level: LevelFailed},
					{Label: "Search", Value: "none"},
				},
			},
		},
		"esc close",
		120,
		40,
	)

	out := tuitest.StripANSI(d.Overlay("bg", 120, 40))
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "50 items, 1 page")
	assert.Contains(t, out, "Internal Server Error (500)")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "esc close")
}

func TestStatusDialog_Scrolls(t *testing.T) {
	rows := make([]StatusRow, 0, 60)
	for range 60 {
		rows = append(rows, StatusRow{Label: "row", Value: "value"})
	}
	d := NewStatusDialog("Status", []StatusSection{{Title: "Many", Rows: rows}}, "help", 80, 30)

	before := d.Overlay("", 80, 30)
	assert.Contains(t, tuitest.StripANSI(before), "(0%)")

	d.ScrollDown()
	d.ScrollDown()
	assert.NotEqual(t, before, d.Overlay("", 80, 30))

	d.ScrollUp()
	d.ScrollUp()
	assert.Equal(t, before, d.Overlay("", 80, 30))
}

func TestFormatStatusRow_AlignsLabels(t *testing.T) {
	a := tuitest.StripANSI(formatStatusRow(StatusRow{Label: "a", Value: "x"}, 6))
	b := tuitest.StripANSI(formatStatusRow(StatusRow{Label: "abcdef", Value: "x"}, 6))
	assert.Equal(t, strings.Index(a, "x"), strings.Index(b, "x"))
}
