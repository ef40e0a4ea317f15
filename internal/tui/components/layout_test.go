package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/roster/pkg/tuitest"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(0))
	assert.Empty(t, Pad(-3))
	assert.Equal(t, "   ", Pad(3))
	assert.Len(t, Pad(maxCachedPad), maxCachedPad)
	assert.Len(t, Pad(maxCachedPad+10), maxCachedPad+10)
}

func TestCenter(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)

	out := tuitest.StripANSI(Center(bg, "XX", 20, 10))
	lines := strings.Split(out, "\n")
	assert.Equal(t, 9, strings.Index(lines[4], "XX"))
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
}

func TestCenter_LargerThanScreen(t *testing.T) {
	modal := strings.Repeat("M", 30)
	out := tuitest.StripANSI(Center("bg", modal, 10, 5))
	assert.True(t, strings.HasPrefix(out, "MMM"))
}
