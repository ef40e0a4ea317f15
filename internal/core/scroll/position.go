package scroll

// Position is the saved scroll offset of one collection. It outlives the
// view that shows it, so switching away and back restores where the user
// was.
type Position struct {
	offset  int
	restore bool
}

// Save records offset.
func (p *Position) Save(offset int) {
	p.offset = max(offset, 0)
}

// Offset returns the saved offset.
func (p *Position) Offset() int { return p.offset }

// Reset forgets the saved offset.
func (p *Position) Reset() {
	p.offset = 0
	p.restore = false
}

// Mount marks the start of a new showing of the list. The saved offset can
// then be restored once.
func (p *Position) Mount() {
	p.restore = true
}

// Pending reports whether a saved offset is waiting to be restored. While it
// is, the list shows fewer rows than the offset refers to and its current
// offset must not be saved over it.
func (p *Position) Pending() bool {
	return p.restore && p.offset > 0
}

// Restore returns the saved offset the first time it is called after Mount
// with items present. It keeps waiting while itemCount is zero and gives up
// when there is nothing to restore.
func (p *Position) Restore(itemCount int) (int, bool) {
	if !p.restore {
		return 0, false
	}
	if p.offset <= 0 {
		p.restore = false
		return 0, false
	}
	if itemCount <= 0 {
		return 0, false
	}
	p.restore = false
	return p.offset, true
}
