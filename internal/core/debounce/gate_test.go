package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_ZeroValueIsIdle(t *testing.T) {
	var g Gate
	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Settle(0))
}

func TestGate_SettlesLatestTokenOnce(t *testing.T) {
	var g Gate

	tok := g.Arm()
	assert.True(t, g.Pending())

	assert.True(t, g.Settle(tok))
	assert.False(t, g.Pending())
	assert.False(t, g.Settle(tok), "a window settles at most once")
}

func TestGate_BurstCollapses(t *testing.T) {
	var g Gate

	first := g.Arm()
	second := g.Arm()
	last := g.Arm()

	settled := 0
	for _, tok := range []Token{first, second, last} {
		if g.Settle(tok) {
			settled++
		}
	}

	assert.Equal(t, 1, settled)
	assert.Equal(t, Idle, g.State())
}

func TestGate_StaleTokenArrivingFirstIsIgnored(t *testing.T) {
	var g Gate

	old := g.Arm()
	latest := g.Arm()

	assert.False(t, g.Settle(old))
	assert.True(t, g.Pending(), "stale tick must not end the window")
	assert.True(t, g.Settle(latest))
}

func TestGate_Cancel(t *testing.T) {
	var g Gate

	tok := g.Arm()
	g.Cancel()

	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Settle(tok))

	next := g.Arm()
	assert.NotEqual(t, tok, next)
	assert.True(t, g.Settle(next))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "pending", Pending.String())
}
