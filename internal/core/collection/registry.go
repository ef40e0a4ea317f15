package collection

import (
	"context"

	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/pkg/kv"
)

// FetcherFunc returns the page fetcher for a collection.
type FetcherFunc func(c roster.Collection) paging.FetchFunc[roster.Item]

// Registry hands out one State per collection, created on first use and
// kept until Close so that search text, pages and scroll position survive a
// view being hidden and shown again.
type Registry struct {
	ctx     context.Context
	fetcher FetcherFunc
	opts    Options
	states  *kv.Store[roster.Collection, *State]
}

// NewRegistry creates a registry whose states fetch through fetcher.
func NewRegistry(ctx context.Context, fetcher FetcherFunc, opts Options) *Registry {
	return &Registry{
		ctx:     ctx,
		fetcher: fetcher,
		opts:    opts,
		states:  kv.New[roster.Collection, *State](),
	}
}

// Acquire returns the state for c, creating it on first use.
func (r *Registry) Acquire(c roster.Collection) *State {
	s, _ := r.states.GetOrCreate(c, func() *State {
		return New(r.ctx, c, r.fetcher(c), r.opts)
	})
	return s
}

// Lookup returns the state for c if it has been acquired.
func (r *Registry) Lookup(c roster.Collection) (*State, bool) {
	return r.states.Get(c)
}

// Release closes and forgets the state for c. The next Acquire starts fresh.
func (r *Registry) Release(c roster.Collection) {
	if s, ok := r.states.Take(c); ok {
		s.Close()
	}
}

// Len returns the number of live states.
func (r *Registry) Len() int { return r.states.Len() }

// Close releases every state.
func (r *Registry) Close() {
	for _, c := range r.states.Keys() {
		r.Release(c)
	}
}
