package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/roster/internal/core/logging"
	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
)

// PageRequest selects one page of a collection. Term is matched against
// Field only; the backend cannot search several fields at once.
type PageRequest struct {
	Page     int
	PageSize int
	Term     string
	Field    roster.SearchField
}

// Validate checks the request before it is sent.
func (r PageRequest) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("page", r.Page, atLeastOne),
		criterio.Run("page_size", r.PageSize, atLeastOne),
		criterio.Run("field", r.Field, knownField),
	)
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be >= 1, got %d", n)
	}
	return nil
}

func knownField(f roster.SearchField) error {
	if f == "" {
		return nil
	}
	_, err := roster.ParseSearchField(string(f))
	return err
}

// listParams is the json-server query string.
type listParams struct {
	Page      int    `url:"_page"`
	Limit     int    `url:"_limit"`
	FirstName string `url:"firstName,omitempty"`
	Email     string `url:"email,omitempty"`
}

func (r PageRequest) params() listParams {
	p := listParams{Page: r.Page, Limit: r.PageSize}
	if r.Term == "" {
		return p
	}
	switch r.Field {
	case roster.FieldEmail:
		p.Email = r.Term
	default:
		p.FirstName = r.Term
	}
	return p
}

// FetchPage fetches one page of collection. Transport failures and non-2xx
// responses return a *FetchError; a body that breaks the item contract
// returns a *ValidationError and no items.
func (c *Client) FetchPage(ctx context.Context, collection roster.Collection, r PageRequest) (paging.Page[roster.Item], error) {
	if err := r.Validate(); err != nil {
		return paging.Page[roster.Item]{}, fmt.Errorf("invalid page request: %w", err)
	}

	v, err := query.Values(r.params())
	if err != nil {
		return paging.Page[roster.Item]{}, fmt.Errorf("encode query: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodGet, string(collection), v)
	if err != nil {
		return paging.Page[roster.Item]{}, err
	}

	if logging.GetCollection(ctx) == "" {
		ctx = logging.WithCollection(ctx, string(collection))
	}

	start := time.Now()
	items, err := c.doItems(req)
	if err != nil {
		c.logFailure(ctx, r, err, start)
		return paging.Page[roster.Item]{}, err
	}

	logging.Elapsed(c.log.Debug(), start).Ctx(ctx).
		Int("page", r.Page).
		Int("items", len(items)).
		Msg("page fetched")

	return paging.NewPage(items, r.Page, r.PageSize), nil
}

// Fetcher adapts the client to the pagination engine for one collection.
func (c *Client) Fetcher(collection roster.Collection) paging.FetchFunc[roster.Item] {
	return func(ctx context.Context, key paging.Key, page int) (paging.Page[roster.Item], error) {
		field, err := roster.ParseSearchField(key.Field)
		if err != nil {
			return paging.Page[roster.Item]{}, err
		}
		return c.FetchPage(ctx, collection, PageRequest{
			Page:     page,
			PageSize: key.PageSize,
			Term:     key.Term,
			Field:    field,
		})
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	rel := &url.URL{Path: path}
	u := c.baseURL.ResolveReference(rel)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

// doItems executes req and decodes the item array.
func (c *Client) doItems(req *http.Request) ([]roster.Item, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ValidationError{Index: -1, Err: fmt.Errorf("expected a JSON array: %w", err)}
	}
	if raw == nil {
		return nil, &ValidationError{Index: -1, Err: errors.New("expected a JSON array, got null")}
	}

	return decodeItems(raw)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, transportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, statusError(resp.StatusCode)
	}

	return resp, nil
}

func (c *Client) logFailure(ctx context.Context, r PageRequest, err error, start time.Time) {
	switch {
	case errors.Is(err, context.Canceled):
		c.log.Debug().Ctx(ctx).
			Int("page", r.Page).
			Msg("request cancelled")
	case IsContractError(err):
		logging.Elapsed(c.log.Error(), start).Ctx(ctx).Err(err).
			Bool("contract", true).
			Int("page", r.Page).
			Msg("response failed validation")
	default:
		logging.Elapsed(c.log.Warn(), start).Ctx(ctx).Err(err).
			Int("page", r.Page).
			Msg("fetch failed")
	}
}
