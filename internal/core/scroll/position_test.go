package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_RestoresOncePerMount(t *testing.T) {
	var p Position
	p.Save(120)

	p.Mount()
	off, ok := p.Restore(50)
	assert.True(t, ok)
	assert.Equal(t, 120, off)

	_, ok = p.Restore(50)
	assert.False(t, ok, "second call in the same mount")

	p.Mount()
	off, ok = p.Restore(50)
	assert.True(t, ok)
	assert.Equal(t, 120, off)
}

func TestPosition_WaitsForItems(t *testing.T) {
	var p Position
	p.Save(30)
	p.Mount()

	_, ok := p.Restore(0)
	assert.False(t, ok)

	off, ok := p.Restore(10)
	assert.True(t, ok)
	assert.Equal(t, 30, off)
}

func TestPosition_NothingToRestore(t *testing.T) {
	var p Position
	p.Mount()

	_, ok := p.Restore(10)
	assert.False(t, ok)

	// A save later in the same mount is not restored until the next mount.
	p.Save(12)
	_, ok = p.Restore(10)
	assert.False(t, ok)
}

func TestPosition_WithoutMount(t *testing.T) {
	var p Position
	p.Save(12)
	_, ok := p.Restore(10)
	assert.False(t, ok)
}

func TestPosition_Reset(t *testing.T) {
	var p Position
	p.Save(-5)
	assert.Zero(t, p.Offset())

	p.Save(40)
	p.Mount()
	p.Reset()
	assert.Zero(t, p.Offset())
	_, ok := p.Restore(10)
	assert.False(t, ok)
}

func TestPosition_Pending(t *testing.T) {
	var p Position
	assert.False(t, p.Pending())

	p.Save(24)
	assert.False(t, p.Pending(), "not armed")

	p.Mount()
	assert.True(t, p.Pending())

	_, ok := p.Restore(0)
	require.False(t, ok)
	assert.True(t, p.Pending(), "still waiting for items")

	_, ok = p.Restore(10)
	require.True(t, ok)
	assert.False(t, p.Pending())

	p.Mount()
	p.Reset()
	assert.False(t, p.Pending())
}
