package virtual

// List is the stateful side of the virtualizer: it tracks the item count,
// viewport height and scroll offset for one scroll container and recomputes
// the window on demand.
type List struct {
	count     int
	rowHeight int
	viewport  int
	offset    int
	overscan  int
}

// NewList creates a list with a fixed row height. A negative overscan is
// treated as zero.
func NewList(rowHeight, overscan int) *List {
	if rowHeight < 1 {
		rowHeight = 1
	}
	return &List{rowHeight: rowHeight, overscan: max(overscan, 0)}
}

// SetCount updates the number of items, clamping the offset if the content
// shrank.
func (l *List) SetCount(n int) {
	l.count = max(n, 0)
	l.offset = l.clamp(l.offset)
}

// SetViewport records the measured viewport height.
func (l *List) SetViewport(height int) {
	l.viewport = max(height, 0)
	l.offset = l.clamp(l.offset)
}

// SetOffset scrolls to offset, clamped to the scrollable range. It returns
// the applied offset.
func (l *List) SetOffset(offset int) int {
	l.offset = l.clamp(offset)
	return l.offset
}

// ScrollBy moves the offset by delta lines and reports whether it changed.
func (l *List) ScrollBy(delta int) bool {
	prev := l.offset
	l.offset = l.clamp(l.offset + delta)
	return l.offset != prev
}

// EnsureVisible scrolls the minimum amount needed to show all of row index.
func (l *List) EnsureVisible(index int) {
	if index < 0 || index >= l.count || l.viewport <= 0 {
		return
	}
	top := index * l.rowHeight
	bottom := top + l.rowHeight
	switch {
	case top < l.offset:
		l.offset = l.clamp(top)
	case bottom > l.offset+l.viewport:
		l.offset = l.clamp(bottom - l.viewport)
	}
}

// MaxOffset is the largest valid offset.
func (l *List) MaxOffset() int {
	return max(0, l.TotalHeight()-l.viewport)
}

// Measured reports whether a viewport height has been recorded.
func (l *List) Measured() bool { return l.viewport > 0 }

func (l *List) Count() int { return l.count }
func (l *List) RowHeight() int { return l.rowHeight }
func (l *List) Viewport() int { return l.viewport }
func (l *List) Offset() int { return l.offset }

// TotalHeight is the height of all rows.
func (l *List) TotalHeight() int {
	return TotalHeight(l.count, l.rowHeight)
}

// Window computes the current visible window.
func (l *List) Window() Window {
	return Compute(Params{
		Count:          l.count,
		RowHeight:      l.rowHeight,
		ViewportHeight: l.viewport,
		Offset:         l.offset,
		Overscan:       l.overscan,
	})
}

// IndexAt returns the row under the given line of the viewport, or -1.
func (l *List) IndexAt(line int) int {
	if line < 0 || line >= l.viewport {
		return -1
	}
	idx := (l.offset + line) / l.rowHeight
	if idx >= l.count {
		return -1
	}
	return idx
}

func (l *List) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if m := l.MaxOffset(); offset > m {
		return m
	}
	return offset
}
