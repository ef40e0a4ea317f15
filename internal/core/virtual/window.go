// Package virtual computes which rows of a long, uniform-height list fall
// inside a viewport so only those rows are rendered. All measurements are in
// terminal lines.
package virtual

// DefaultOverscan is the number of extra rows rendered on each side of the
// visible range.
const DefaultOverscan = 5

// Params are the inputs to Compute.
type Params struct {
	Count          int
	RowHeight      int
	ViewportHeight int
	Offset         int
	Overscan       int
}

// Window is the range of rows to render. Start and End are inclusive.
type Window struct {
	Start     int
	End       int
	RowHeight int
	// Ready is false until the viewport height is known. Nothing should be
	// rendered for a window that is not ready.
	Ready bool
}

// Compute returns the visible window for p in constant time.
func Compute(p Params) Window {
	w := Window{Start: 0, End: -1, RowHeight: p.RowHeight}
	if p.ViewportHeight <= 0 || p.RowHeight <= 0 {
		return w
	}
	w.Ready = true
	if p.Count <= 0 {
		return w
	}

	overscan := max(p.Overscan, 0)
	offset := max(p.Offset, 0)

	w.Start = max(0, offset/p.RowHeight-overscan)
	w.End = min(p.Count-1, ceilDiv(offset+p.ViewportHeight, p.RowHeight)+overscan)
	if w.Start > w.End {
		// Offset is past the content (e.g. the list shrank); show nothing
		// until the caller clamps the offset.
		w.Start, w.End = 0, -1
	}
	return w
}

// TotalHeight is the height of the full content block.
func TotalHeight(count, rowHeight int) int {
	if count <= 0 || rowHeight <= 0 {
		return 0
	}
	return count * rowHeight
}

// Len returns the number of rows in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Empty reports whether the window holds no rows.
func (w Window) Empty() bool { return w.Len() == 0 }

// Offset returns the absolute top of row index within the content block.
func (w Window) Offset(index int) int {
	return index * w.RowHeight
}

// Rows returns the indexes in the window in ascending order.
func (w Window) Rows() []int {
	rows := make([]int, 0, w.Len())
	for i := w.Start; i <= w.End; i++ {
		rows = append(rows, i)
	}
	return rows
}

// Contains reports whether index is inside the window.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index <= w.End
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
