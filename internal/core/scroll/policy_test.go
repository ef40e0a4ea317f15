package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/roster/internal/core/debounce"
)

func metrics(offset int) Metrics {
	return Metrics{
		Offset:         offset,
		ViewportHeight: 20,
		ContentHeight:  300,
		HasNextPage:    true,
	}
}

func TestNewPolicy_Defaults(t *testing.T) {
	p := NewPolicy(0, 0)
	assert.InDelta(t, DefaultThreshold, p.Threshold(), 1e-9)
	assert.Equal(t, DefaultDelay, p.Delay())

	p = NewPolicy(1.5, time.Second)
	assert.InDelta(t, DefaultThreshold, p.Threshold(), 1e-9)
	assert.Equal(t, time.Second, p.Delay())
}

func TestMetrics_Fraction(t *testing.T) {
	assert.InDelta(t, 0.5, Metrics{Offset: 130, ViewportHeight: 20, ContentHeight: 300}.Fraction(), 1e-9)
	assert.Zero(t, Metrics{ViewportHeight: 20}.Fraction())
}

func TestPolicy_BurstEvaluatesOnce(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)

	var tokens []debounce.Token
	for off := 200; off <= 280; off += 10 {
		tokens = append(tokens, p.OnScroll(off))
	}

	settled, fetches := 0, 0
	for _, tok := range tokens {
		d := p.Evaluate(tok, metrics(280))
		if d.Settled {
			settled++
			assert.Equal(t, 280, d.Offset)
		}
		if d.FetchMore {
			fetches++
		}
	}

	assert.Equal(t, 1, settled)
	assert.Equal(t, 1, fetches)
}

func TestPolicy_BelowThreshold(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)

	// (235+20)/300 = 0.85 exactly: not past the threshold.
	d := p.Evaluate(p.OnScroll(235), metrics(235))
	require.True(t, d.Settled)
	assert.False(t, d.FetchMore)
	assert.Equal(t, 235, d.Offset)
}

func TestPolicy_Gates(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
	}{
		{name: "no next page", m: Metrics{Offset: 280, ViewportHeight: 20, ContentHeight: 300}},
		{name: "already fetching", m: Metrics{Offset: 280, ViewportHeight: 20, ContentHeight: 300, HasNextPage: true, IsFetchingNextPage: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(DefaultThreshold, DefaultDelay)
			d := p.Evaluate(p.OnScroll(tt.m.Offset), tt.m)
			assert.True(t, d.Settled)
			assert.False(t, d.FetchMore)
		})
	}
}

func TestPolicy_FiresOncePerCrossing(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)

	assert.True(t, p.Evaluate(p.OnScroll(270), metrics(270)).FetchMore)

	// The fetch failed or is still settling: more scrolling past the
	// threshold with the same content does not fire again.
	assert.False(t, p.Evaluate(p.OnScroll(275), metrics(275)).FetchMore)
	assert.False(t, p.Evaluate(p.OnScroll(280), metrics(280)).FetchMore)

	// Scrolling back above the threshold re-arms.
	assert.False(t, p.Evaluate(p.OnScroll(100), metrics(100)).FetchMore)
	assert.True(t, p.Evaluate(p.OnScroll(280), metrics(280)).FetchMore)
}

func TestPolicy_NewContentRearms(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)
	assert.True(t, p.Evaluate(p.OnScroll(280), metrics(280)).FetchMore)

	grown := metrics(580)
	grown.ContentHeight = 600
	assert.True(t, p.Evaluate(p.OnScroll(580), grown).FetchMore)
}

func TestPolicy_CancelAndReset(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)

	tok := p.OnScroll(280)
	assert.True(t, p.Pending())
	p.Cancel()
	assert.False(t, p.Evaluate(tok, metrics(280)).Settled)

	assert.True(t, p.Evaluate(p.OnScroll(280), metrics(280)).FetchMore)
	p.Reset()
	assert.True(t, p.Evaluate(p.OnScroll(280), metrics(280)).FetchMore, "reset clears the latch")
}

func TestPolicy_Fill(t *testing.T) {
	p := NewPolicy(DefaultThreshold, DefaultDelay)

	short := Metrics{ViewportHeight: 40, ContentHeight: 30, HasNextPage: true}
	assert.True(t, p.Fill(short))

	short.IsFetchingNextPage = true
	assert.False(t, p.Fill(short))

	short.IsFetchingNextPage = false
	short.IsError = true
	assert.False(t, p.Fill(short), "a failed page waits for a retry")

	assert.False(t, p.Fill(Metrics{ViewportHeight: 40, ContentHeight: 30}))
	assert.False(t, p.Fill(metrics(0)), "content taller than the viewport")
	assert.False(t, p.Fill(Metrics{ContentHeight: 30, HasNextPage: true}), "viewport unknown")
}
