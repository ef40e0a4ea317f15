// Package collection bundles everything one list needs (search box state,
// pagination, scroll trigger and saved scroll position) so that Users and
// Reviewers never share mutable state.
package collection

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/roster/internal/core/logging"
	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/scroll"
	"github.com/colonyops/roster/internal/core/search"
)

// DefaultPageSize is the number of items requested per page.
const DefaultPageSize = 50

// Options tune a State. Zero values fall back to package defaults.
type Options struct {
	PageSize       int
	SearchDelay    time.Duration
	ScrollDelay    time.Duration
	FetchThreshold float64
	Field          roster.SearchField
}

// Task performs one page fetch. It is safe to run on any goroutine and does
// not touch the State; feed its result to State.Apply on the event loop.
type Task func() paging.Result[roster.Item]

// State is the per-collection state object. It must only be used from one
// goroutine (the UI event loop); only Tasks run elsewhere.
type State struct {
	collection roster.Collection
	pageSize   int
	fetch      paging.FetchFunc[roster.Item]
	log        zerolog.Logger

	Search   *search.Controller
	Engine   *paging.Engine[roster.Item]
	Policy   *scroll.Policy
	Position *scroll.Position

	base   context.Context
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the state for c. fetch is called with a context that is
// cancelled once its request has been superseded.
func New(ctx context.Context, c roster.Collection, fetch paging.FetchFunc[roster.Item], opts Options) *State {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	s := &State{
		collection: c,
		pageSize:   opts.PageSize,
		fetch:      fetch,
		log:        logging.Component("collection"),
		Search:     search.New(opts.SearchDelay, opts.Field),
		Policy:     scroll.NewPolicy(opts.FetchThreshold, opts.ScrollDelay),
		Position:   &scroll.Position{},
		base:       logging.WithCollection(ctx, string(c)),
	}
	s.Engine = paging.NewEngine[roster.Item](s.keyFor(s.Search.Committed()))
	return s
}

// Collection returns the collection this state belongs to.
func (s *State) Collection() roster.Collection { return s.collection }

// PageSize returns the configured page size.
func (s *State) PageSize() int { return s.pageSize }

// Snapshot returns the pagination snapshot.
func (s *State) Snapshot() paging.Snapshot[roster.Item] { return s.Engine.Snapshot() }

// Start issues the initial load if nothing has been loaded yet.
func (s *State) Start() (Task, bool) {
	req, ok := s.Engine.Start()
	if !ok {
		return nil, false
	}
	return s.task(req), true
}

// ApplySearch rekeys the engine for a committed search change. A new key
// drops the pages and the crossing latch and returns the page-1 fetch.
func (s *State) ApplySearch(ch search.Change) (Task, bool) {
	req, ok := s.Engine.SetKey(paging.Key{Term: ch.Term, Field: string(ch.Field), PageSize: s.pageSize})
	if !ok {
		return nil, false
	}
	s.Policy.Reset()
	s.log.Debug().Ctx(s.base).
		Str("term", ch.Term).
		Str("field", string(ch.Field)).
		Uint64("generation", req.Generation).
		Msg("search changed, reloading")
	return s.task(req), true
}

// FetchNextPage returns the fetch for the next page, or false when the
// engine declines (in flight, loading, or no more pages).
func (s *State) FetchNextPage() (Task, bool) {
	req, ok := s.Engine.FetchNextPage()
	if !ok {
		return nil, false
	}
	s.log.Debug().Ctx(s.base).Int("page", req.Page).Msg("fetching next page")
	return s.task(req), true
}

// Refetch reloads page 1 for the current key.
func (s *State) Refetch() Task {
	req := s.Engine.Refetch()
	s.Policy.Reset()
	s.log.Debug().Ctx(s.base).Uint64("generation", req.Generation).Msg("refetching")
	return s.task(req)
}

// Retry re-runs whatever failed: the next page when items are present,
// otherwise page 1.
func (s *State) Retry() (Task, bool) {
	snap := s.Engine.Snapshot()
	if !snap.IsError {
		return nil, false
	}
	if len(snap.Items) > 0 && snap.HasNextPage {
		return s.FetchNextPage()
	}
	return s.Refetch(), true
}

// Apply folds a task result into the engine and logs the outcome.
func (s *State) Apply(res paging.Result[roster.Item]) paging.Outcome {
	out := s.Engine.Apply(res)

	var ev *zerolog.Event
	switch out {
	case paging.OutcomeFailed:
		ev = s.log.Warn().Err(res.Err)
	case paging.OutcomeStale:
		ev = s.log.Debug().AnErr("err", res.Err)
	default:
		ev = s.log.Debug()
	}
	ev.Ctx(logging.WithGeneration(s.base, res.Request.Generation)).
		Str("kind", res.Request.Kind.String()).
		Int("page", res.Request.Page).
		Int("items", res.Page.Len()).
		Str("outcome", out.String()).
		Msg("fetch completed")

	return out
}

// Close cancels in-flight fetches and pending quiet windows and drops search
// listeners.
func (s *State) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.ctx = nil
	}
	s.Search.Close()
	s.Policy.Cancel()
}

func (s *State) keyFor(term string) paging.Key {
	return paging.Key{Term: term, Field: string(s.Search.Field()), PageSize: s.pageSize}
}

func (s *State) task(req paging.Request) Task {
	ctx := s.contextFor(req.Generation)
	fetch := s.fetch
	return func() paging.Result[roster.Item] {
		return paging.Run(ctx, fetch, req)
	}
}

// contextFor returns the context shared by all requests of gen. Starting a
// new generation cancels the previous one so superseded HTTP requests are
// aborted rather than merely ignored.
func (s *State) contextFor(gen uint64) context.Context {
	if s.ctx != nil && gen == s.gen {
		return s.ctx
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen = gen
	s.ctx, s.cancel = context.WithCancel(logging.WithGeneration(s.base, gen))
	return s.ctx
}
