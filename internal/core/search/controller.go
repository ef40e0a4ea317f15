// Package search implements the debounced search box state for one
// collection: the raw text the user typed, the term committed after a quiet
// period, and the field being searched.
package search

import (
	"time"

	"github.com/colonyops/roster/internal/core/debounce"
	"github.com/colonyops/roster/internal/core/roster"
)

// DefaultDelay is the quiet period before typed input is committed.
const DefaultDelay = 300 * time.Millisecond

// Change is delivered to listeners whenever the committed search criteria
// change.
type Change struct {
	Term  string
	Field roster.SearchField
}

// Listener receives committed search changes.
type Listener func(Change)

// Snapshot is a copy of the controller state.
type Snapshot struct {
	Raw       string
	Committed string
	Field     roster.SearchField
	Pending   bool
}

// Controller buffers keystrokes and commits the last value once input
// pauses for the configured delay. Drive it from a single event loop: call
// Input on every keystroke, schedule a wake-up after Delay carrying the
// returned token, and pass that token to Fire.
type Controller struct {
	gate      debounce.Gate
	delay     time.Duration
	raw       string
	committed string
	field     roster.SearchField

	nextID    int
	listeners map[int]Listener
	order     []int
}

// New creates a controller with the given delay and initial field. A
// non-positive delay falls back to DefaultDelay.
func New(delay time.Duration, field roster.SearchField) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if field == "" {
		field = roster.FieldFirstName
	}
	return &Controller{
		delay:     delay,
		field:     field,
		listeners: make(map[int]Listener),
	}
}

// Delay returns the quiet period.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Input records value as the raw text and (re)starts the quiet window.
func (c *Controller) Input(value string) debounce.Token {
	c.raw = value
	return c.gate.Arm()
}

// Fire commits the raw text if tok belongs to the latest quiet window. It
// returns false for superseded or cancelled windows.
func (c *Controller) Fire(tok debounce.Token) bool {
	if !c.gate.Settle(tok) {
		return false
	}
	c.committed = c.raw
	c.notify()
	return true
}

// Clear empties the raw and committed text immediately, skipping the quiet
// period, and notifies listeners synchronously.
func (c *Controller) Clear() {
	c.gate.Cancel()
	c.raw = ""
	c.committed = ""
	c.notify()
}

// Discard cancels a running quiet window and reverts the raw text to the
// committed term. Listeners are not notified.
func (c *Controller) Discard() {
	if !c.gate.Pending() {
		return
	}
	c.gate.Cancel()
	c.raw = c.committed
}

// SetField switches the searched field. Field changes apply immediately and
// notify listeners; it reports whether the field actually changed.
func (c *Controller) SetField(f roster.SearchField) bool {
	if f == "" || f == c.field {
		return false
	}
	c.field = f
	c.notify()
	return true
}

// CycleField advances to the next searchable field.
func (c *Controller) CycleField() roster.SearchField {
	c.SetField(c.field.Next())
	return c.field
}

// Subscribe registers fn for committed changes. The returned function
// removes the registration and is safe to call more than once.
func (c *Controller) Subscribe(fn Listener) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.order = append(c.order, id)

	return func() {
		if _, ok := c.listeners[id]; !ok {
			return
		}
		delete(c.listeners, id)
		for i, v := range c.order {
			if v == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Close cancels any running quiet window and drops every listener.
func (c *Controller) Close() {
	c.gate.Cancel()
	c.listeners = make(map[int]Listener)
	c.order = nil
}

// Raw returns the text as typed, updated on every keystroke.
func (c *Controller) Raw() string { return c.raw }

// Committed returns the term downstream fetching is keyed on.
func (c *Controller) Committed() string { return c.committed }

// Field returns the searched field.
func (c *Controller) Field() roster.SearchField { return c.field }

// IsPending reports whether typed input is waiting to be committed.
func (c *Controller) IsPending() bool { return c.gate.Pending() }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Raw:       c.raw,
		Committed: c.committed,
		Field:     c.field,
		Pending:   c.gate.Pending(),
	}
}

func (c *Controller) notify() {
	change := Change{Term: c.committed, Field: c.field}
	ids := append([]int(nil), c.order...)
	for _, id := range ids {
		if fn, ok := c.listeners[id]; ok {
			fn(change)
		}
	}
}
