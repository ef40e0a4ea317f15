// Package debounce provides a token based quiet-window state machine.
//
// A Gate does not own a timer. Callers schedule their own wake-up (a
// tea.Tick in the TUI) carrying the Token returned by Arm and hand it back
// to Settle when it fires. Only the most recent token settles, so a burst of
// Arm calls collapses into a single settle regardless of how many timers
// were scheduled.
package debounce

// Token identifies one arming of a Gate.
type Token uint64

// State is the gate's current phase.
type State int

const (
	// Idle means no quiet window is running.
	Idle State = iota
	// Pending means a quiet window is running and has not settled.
	Pending
)

func (s State) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

// Gate is the zero-value-ready quiet window. It is not safe for concurrent
// use; drive it from a single event loop.
type Gate struct {
	seq   Token
	state State
}

// Arm starts or restarts the quiet window. Any token handed out earlier is
// invalidated.
func (g *Gate) Arm() Token {
	g.seq++
	g.state = Pending
	return g.seq
}

// Settle reports whether t is the latest token of a pending window. A
// successful settle moves the gate back to Idle, so each window settles at
// most once.
func (g *Gate) Settle(t Token) bool {
	if g.state != Pending || t != g.seq {
		return false
	}
	g.state = Idle
	return true
}

// Cancel drops the running window, if any. Outstanding tokens never settle.
func (g *Gate) Cancel() {
	if g.state == Pending {
		g.seq++
	}
	g.state = Idle
}

// State returns the gate's current phase.
func (g *Gate) State() State {
	return g.state
}

// Pending reports whether a window is running.
func (g *Gate) Pending() bool {
	return g.state == Pending
}
