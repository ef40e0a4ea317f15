package paging

import "context"

// Key identifies the query a set of pages belongs to. Changing any field
// starts a new list from page 1.
type Key struct {
	Term     string
	Field    string
	PageSize int
}

// Kind describes why a request was issued.
type Kind int

const (
	KindInitial Kind = iota
	KindNextPage
	KindRefetch
)

func (k Kind) String() string {
	switch k {
	case KindNextPage:
		return "next-page"
	case KindRefetch:
		return "refetch"
	default:
		return "initial"
	}
}

// Request is a ticket for one page fetch. It captures the key and
// generation current when it was issued so the result can be checked for
// staleness when it comes back.
type Request struct {
	Key        Key
	Page       int
	Kind       Kind
	Generation uint64
}

// FetchFunc loads one page for key.
type FetchFunc[T any] func(ctx context.Context, key Key, page int) (Page[T], error)

// Result pairs a completed fetch with the request that started it.
type Result[T any] struct {
	Request Request
	Page    Page[T]
	Err     error
}

// Run performs the fetch described by req. It does not touch any engine,
// so it can run on a worker goroutine while the engine stays on the event
// loop; hand the Result back to Engine.Apply.
func Run[T any](ctx context.Context, fetch FetchFunc[T], req Request) Result[T] {
	page, err := fetch(ctx, req.Key, req.Page)
	return Result[T]{Request: req, Page: page, Err: err}
}

// Outcome reports what Apply did with a result.
type Outcome int

const (
	// OutcomeApplied means the page was merged into the list.
	OutcomeApplied Outcome = iota
	// OutcomeFailed means the fetch failed and the error state was set.
	OutcomeFailed
	// OutcomeStale means the result belonged to a superseded request and
	// was dropped without touching state.
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	default:
		return "stale"
	}
}

// Snapshot is the consumer view of the engine. Page boundaries are not
// exposed; Items is the flattened list in fetch order.
type Snapshot[T any] struct {
	Key                Key
	Items              []T
	IsLoading          bool
	IsFetchingNextPage bool
	IsError            bool
	Err                error
	HasNextPage        bool
	PageCursor         int
	PageCount          int
}

// Engine owns the pagination state for one collection. It never performs
// I/O itself: operations return a Request to execute with Run, and the
// Result is folded back in with Apply. Engine is not safe for concurrent
// use.
type Engine[T any] struct {
	key     Key
	gen     uint64
	started bool

	pages []Page[T]
	items []T

	loading      bool
	fetchingNext bool
	nextPage     int
	hasNext      bool
	isErr        bool
	lastErr      error
}

// NewEngine creates an engine for key. Nothing is fetched until Start or
// SetKey is called.
func NewEngine[T any](key Key) *Engine[T] {
	return &Engine[T]{key: key}
}

// Key returns the current key.
func (e *Engine[T]) Key() Key { return e.key }

// Generation increments whenever the list is reset or refetched. Requests
// from older generations resolve stale.
func (e *Engine[T]) Generation() uint64 { return e.gen }

// Start issues the initial page-1 load for the current key. It returns
// false when the key has already been loaded or is loading.
func (e *Engine[T]) Start() (Request, bool) {
	if e.started {
		return Request{}, false
	}
	return e.reset(), true
}

// SetKey switches to key. When the key differs from the current one (or
// nothing has been loaded yet) the pages are dropped, the cursor returns to
// page 1, and the page-1 request is returned. In-flight requests for the old
// key will resolve stale.
func (e *Engine[T]) SetKey(key Key) (Request, bool) {
	if e.started && key == e.key {
		return Request{}, false
	}
	e.key = key
	return e.reset(), true
}

// FetchNextPage requests the page after the last fetched one. It is a no-op
// while another fetch-more or a page-1 load is in flight, or when no further
// page is believed to exist.
func (e *Engine[T]) FetchNextPage() (Request, bool) {
	if e.fetchingNext || e.loading || !e.hasNext {
		return Request{}, false
	}
	e.fetchingNext = true
	e.nextPage = len(e.pages) + 1
	e.isErr = false
	e.lastErr = nil
	return Request{Key: e.key, Page: e.nextPage, Kind: KindNextPage, Generation: e.gen}, true
}

// Refetch re-requests page 1 for the current key. Already fetched items stay
// visible until the new page arrives and then are replaced by it. Any
// request still in flight is superseded.
func (e *Engine[T]) Refetch() Request {
	e.started = true
	e.gen++
	e.loading = true
	e.fetchingNext = false
	e.nextPage = 0
	e.isErr = false
	e.lastErr = nil
	return Request{Key: e.key, Page: 1, Kind: KindRefetch, Generation: e.gen}
}

// Apply folds a completed fetch into the state. Results whose key or
// generation no longer match, or that answer a request which is no longer
// outstanding, are dropped and reported as OutcomeStale. A failure leaves
// the fetched pages untouched.
func (e *Engine[T]) Apply(res Result[T]) Outcome {
	req := res.Request
	if !e.outstanding(req) {
		return OutcomeStale
	}

	if req.Kind == KindNextPage {
		e.fetchingNext = false
		e.nextPage = 0
	} else {
		e.loading = false
	}

	if res.Err != nil {
		e.isErr = true
		e.lastErr = res.Err
		return OutcomeFailed
	}

	if req.Kind == KindNextPage {
		e.pages = append(e.pages, res.Page)
		e.items = append(e.items, res.Page.Data...)
	} else {
		e.pages = []Page[T]{res.Page}
		e.items = append([]T(nil), res.Page.Data...)
	}

	e.hasNext = res.Page.HasNextPage
	e.isErr = false
	e.lastErr = nil
	return OutcomeApplied
}

// PageCursor is the page number the next fetch-more will request.
func (e *Engine[T]) PageCursor() int {
	return len(e.pages) + 1
}

// Items returns the flattened item list. The slice must not be modified.
func (e *Engine[T]) Items() []T {
	return e.items[:len(e.items):len(e.items)]
}

// Snapshot returns the current consumer view.
func (e *Engine[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Key:                e.key,
		Items:              e.Items(),
		IsLoading:          e.loading,
		IsFetchingNextPage: e.fetchingNext,
		IsError:            e.isErr,
		Err:                e.lastErr,
		HasNextPage:        e.hasNext,
		PageCursor:         e.PageCursor(),
		PageCount:          len(e.pages),
	}
}

func (e *Engine[T]) reset() Request {
	e.started = true
	e.gen++
	e.pages = nil
	e.items = nil
	e.loading = true
	e.fetchingNext = false
	e.nextPage = 0
	e.hasNext = false
	e.isErr = false
	e.lastErr = nil
	return Request{Key: e.key, Page: 1, Kind: KindInitial, Generation: e.gen}
}

func (e *Engine[T]) outstanding(req Request) bool {
	if req.Generation != e.gen || req.Key != e.key {
		return false
	}
	if req.Kind == KindNextPage {
		return e.fetchingNext && req.Page == e.nextPage
	}
	return e.loading && req.Page == 1
}
