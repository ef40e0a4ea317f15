// Package scroll decides when scrolling near the end of a list should load
// the next page, and keeps the per-collection scroll position that is
// restored when a list is shown again.
package scroll

import (
	"time"

	"github.com/colonyops/roster/internal/core/debounce"
)

const (
	// DefaultThreshold is the fraction of the content that must be scrolled
	// past before the next page is requested.
	DefaultThreshold = 0.85
	// DefaultDelay is the quiet period that coalesces bursts of scroll
	// events into one evaluation.
	DefaultDelay = 150 * time.Millisecond
)

// Metrics describe the scroll container and the list state at evaluation
// time.
type Metrics struct {
	Offset             int
	ViewportHeight     int
	ContentHeight      int
	HasNextPage        bool
	IsFetchingNextPage bool
	// IsError is set while the last fetch failed. Fill then waits for a
	// manual retry.
	IsError bool
}

// Fraction is (offset+viewport)/content, or 0 when there is no content.
func (m Metrics) Fraction() float64 {
	if m.ContentHeight <= 0 {
		return 0
	}
	return float64(m.Offset+m.ViewportHeight) / float64(m.ContentHeight)
}

// Decision is the result of evaluating a settled scroll window.
type Decision struct {
	// Settled is false when the token was superseded; the rest of the
	// decision is then meaningless.
	Settled bool
	// Offset is the scroll offset to persist.
	Offset int
	// FetchMore asks the caller to request the next page.
	FetchMore bool
}

// Policy rate-limits scroll events and decides when to fetch more. Like the
// search controller it never owns a timer: OnScroll returns a token, the
// caller schedules a wake-up after Delay, and Evaluate settles it.
type Policy struct {
	threshold float64
	delay     time.Duration
	gate      debounce.Gate
	offset    int

	// latched is set after a fetch-more fired and cleared once the fraction
	// drops back to the threshold or the content height changes, so a single
	// crossing fires once.
	latched     bool
	latchHeight int
}

// NewPolicy creates a policy. Out of range arguments fall back to the
// defaults.
func NewPolicy(threshold float64, delay time.Duration) *Policy {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Policy{threshold: threshold, delay: delay}
}

func (p *Policy) Threshold() float64 { return p.threshold }
func (p *Policy) Delay() time.Duration { return p.delay }
func (p *Policy) Pending() bool { return p.gate.Pending() }

// OnScroll records offset and restarts the quiet window.
func (p *Policy) OnScroll(offset int) debounce.Token {
	p.offset = max(offset, 0)
	return p.gate.Arm()
}

// Evaluate settles the window identified by tok against m.
func (p *Policy) Evaluate(tok debounce.Token, m Metrics) Decision {
	if !p.gate.Settle(tok) {
		return Decision{}
	}
	return Decision{
		Settled:   true,
		Offset:    p.offset,
		FetchMore: p.crossed(m),
	}
}

// Fill reports whether more pages should be loaded because the content does
// not fill the viewport, in which case no scroll event can ever trigger a
// fetch. A failed fetch is never repeated here.
func (p *Policy) Fill(m Metrics) bool {
	if !m.HasNextPage || m.IsFetchingNextPage || m.IsError || m.ViewportHeight <= 0 {
		return false
	}
	return m.ContentHeight < m.ViewportHeight
}

// Cancel drops any pending scroll window.
func (p *Policy) Cancel() {
	p.gate.Cancel()
}

// Reset cancels the window and clears the crossing latch. Call it when the
// list is replaced.
func (p *Policy) Reset() {
	p.gate.Cancel()
	p.latched = false
	p.latchHeight = 0
}

func (p *Policy) crossed(m Metrics) bool {
	f := m.Fraction()
	if p.latched && (f <= p.threshold || m.ContentHeight != p.latchHeight) {
		p.latched = false
	}
	if p.latched {
		return false
	}
	if f > p.threshold && m.HasNextPage && !m.IsFetchingNextPage {
		p.latched = true
		p.latchHeight = m.ContentHeight
		return true
	}
	return false
}
