package apiclient

import (
	"context"
	"iter"

	"github.com/colonyops/roster/internal/core/roster"
)

// Iter walks every page of collection matching r, starting at r.Page (or 1),
// until a page comes back short. The first error is yielded and ends the
// iteration.
func (c *Client) Iter(ctx context.Context, collection roster.Collection, r PageRequest) iter.Seq2[roster.Item, error] {
	return func(yield func(roster.Item, error) bool) {
		if r.Page < 1 {
			r.Page = 1
		}

		for {
			page, err := c.FetchPage(ctx, collection, r)
			if err != nil {
				yield(roster.Item{}, err)
				return
			}

			for _, item := range page.Data {
				if !yield(item, nil) {
					return
				}
			}

			if !page.HasNextPage {
				return
			}
			r.Page = page.NextPage
		}
	}
}
