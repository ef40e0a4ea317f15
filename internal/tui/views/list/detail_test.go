package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/pkg/tuitest"
)

func TestItemMarkdown(t *testing.T) {
	md := itemMarkdown(roster.Reviewers, ada)

	assert.True(t, strings.HasPrefix(md, "# Ada Lovelace\n"))
	assert.Contains(t, md, "**Email:** ada@example.com")
	assert.Contains(t, md, "`"+ada.ID+"`")
	assert.Contains(t, md, "> Analytical engines")
	assert.Contains(t, md, "## Comments")

	bare := ada
	bare.CatchPhrase = ""
	bare.Comments = ""
	md = itemMarkdown(roster.Users, bare)
	assert.NotContains(t, md, ">")
	assert.NotContains(t, md, "## Comments")
}

func TestDetail_View(t *testing.T) {
	d := NewDetail(roster.Reviewers, ada, 100, 40)
	out := tuitest.StripANSI(d.View())

	assert.Equal(t, ada, d.Item())
	assert.Contains(t, out, "Reviewers")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "esc close")
}

func TestDetail_Scroll(t *testing.T) {
	d := NewDetail(roster.Users, ada, 60, 12)
	require.Positive(t, d.maxOffset())

	d.ScrollUp()
	assert.Zero(t, d.offset)

	for range 100 {
		d.ScrollDown()
	}
	assert.Equal(t, d.maxOffset(), d.offset)
	assert.Contains(t, tuitest.StripANSI(d.View()), "j/k scroll")
}

func TestDetail_Overlay(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 100)+"\n", 39) + strings.Repeat(".", 100)
	d := NewDetail(roster.Users, ada, 100, 40)

	out := tuitest.StripANSI(d.Overlay(bg, 100, 40))
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "....")
}
