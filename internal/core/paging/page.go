// Package paging holds the infinite pagination engine: an ordered list of
// fetched pages for one search key, the fetch-more and refetch operations,
// and the stale-response guard that keeps late results for an old key out
// of the current list.
package paging

// Page is one server response for one page number. Pages are immutable
// once created.
type Page[T any] struct {
	Data []T
	// TotalCount is the number of items in this page only. The backend does
	// not report a grand total while searching, so this must never be shown
	// as "total items available".
	TotalCount int
	// HasNextPage is a heuristic: a full page implies more may follow.
	HasNextPage bool
	// NextPage is the page number to request next, or 0 when HasNextPage is
	// false.
	NextPage int
}

// NewPage builds a page for pageNumber from the items returned for a
// request of pageSize items. A page holding exactly pageSize items is
// assumed to have a successor.
func NewPage[T any](data []T, pageNumber, pageSize int) Page[T] {
	items := make([]T, len(data))
	copy(items, data)

	p := Page[T]{
		Data:        items,
		TotalCount:  len(items),
		HasNextPage: pageSize > 0 && len(items) == pageSize,
	}
	if p.HasNextPage {
		p.NextPage = pageNumber + 1
	}
	return p
}

// Len returns the number of items on the page.
func (p Page[T]) Len() int {
	return len(p.Data)
}
