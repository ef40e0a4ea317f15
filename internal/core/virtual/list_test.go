package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_NotMeasured(t *testing.T) {
	l := NewList(6, 2)
	l.SetCount(50)

	assert.False(t, l.Measured())
	assert.False(t, l.Window().Ready)
}

func TestList_ClampsOffset(t *testing.T) {
	l := NewList(6, 2)
	l.SetViewport(24)
	l.SetCount(10)

	assert.Equal(t, 60, l.TotalHeight())
	assert.Equal(t, 36, l.MaxOffset())

	assert.Equal(t, 36, l.SetOffset(500))
	assert.Equal(t, 0, l.SetOffset(-3))

	assert.True(t, l.ScrollBy(10))
	assert.Equal(t, 10, l.Offset())
	assert.True(t, l.ScrollBy(-20))
	assert.Equal(t, 0, l.Offset())
	assert.False(t, l.ScrollBy(-1), "already at the top")
}

func TestList_ShrinkingCountClampsOffset(t *testing.T) {
	l := NewList(6, 0)
	l.SetViewport(24)
	l.SetCount(100)
	l.SetOffset(400)

	l.SetCount(5)
	assert.Equal(t, 6, l.Offset())

	l.SetCount(0)
	assert.Equal(t, 0, l.Offset())
}

func TestList_GrowingCountKeepsOffset(t *testing.T) {
	l := NewList(6, 0)
	l.SetViewport(24)
	l.SetCount(50)
	l.SetOffset(200)

	l.SetCount(100)
	assert.Equal(t, 200, l.Offset())
}

func TestList_EnsureVisible(t *testing.T) {
	l := NewList(6, 0)
	l.SetViewport(24)
	l.SetCount(100)

	l.EnsureVisible(2)
	assert.Equal(t, 0, l.Offset(), "already visible")

	l.EnsureVisible(4)
	assert.Equal(t, 6, l.Offset(), "bottom edge of row 4 aligns with viewport bottom")

	l.EnsureVisible(1)
	assert.Equal(t, 6, l.Offset(), "top of row 1 aligns with viewport top")

	l.EnsureVisible(0)
	assert.Equal(t, 0, l.Offset())

	l.EnsureVisible(1000)
	assert.Equal(t, 0, l.Offset(), "out of range is ignored")
}

func TestList_IndexAt(t *testing.T) {
	l := NewList(6, 0)
	l.SetViewport(24)
	l.SetCount(3)

	assert.Equal(t, 0, l.IndexAt(0))
	assert.Equal(t, 1, l.IndexAt(6))
	assert.Equal(t, 2, l.IndexAt(17))
	assert.Equal(t, -1, l.IndexAt(18))
	assert.Equal(t, -1, l.IndexAt(24))
}

func TestList_WindowTracksState(t *testing.T) {
	l := NewList(180, 5)
	l.SetViewport(600)
	l.SetCount(1000)

	w := l.Window()
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 9, w.End)

	l.SetOffset(18000)
	w = l.Window()
	assert.Equal(t, 95, w.Start)
	assert.Equal(t, 109, w.End)
}
