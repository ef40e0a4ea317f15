package apiclient

import (
	"encoding/json"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/roster/internal/core/roster"
)

// wireItem mirrors roster.Item with pointer fields so a missing or null key
// can be told apart from an empty string.
type wireItem struct {
	ID          *string `json:"id"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	CatchPhrase *string `json:"catchPhrase"`
	Comments    *string `json:"comments"`
}

func (w wireItem) item() (roster.Item, error) {
	var b criterio.FieldErrorsBuilder
	get := func(field string, v *string) string {
		if v == nil {
			b = b.Append(field, fmt.Errorf("%s is required", field))
			return ""
		}
		return *v
	}

	it := roster.Item{
		ID:          get("id", w.ID),
		FirstName:   get("firstName", w.FirstName),
		LastName:    get("lastName", w.LastName),
		Email:       get("email", w.Email),
		CatchPhrase: get("catchPhrase", w.CatchPhrase),
		Comments:    get("comments", w.Comments),
	}
	if err := b.ToError(); err != nil {
		return roster.Item{}, err
	}
	if err := it.Validate(); err != nil {
		return roster.Item{}, err
	}
	return it, nil
}

// decodeItems decodes and validates every element, failing on the first
// bad one. A response is either fully valid or rejected.
func decodeItems(raw []json.RawMessage) ([]roster.Item, error) {
	items := make([]roster.Item, 0, len(raw))
	for i, msg := range raw {
		var w wireItem
		if err := json.Unmarshal(msg, &w); err != nil {
			return nil, &ValidationError{Index: i, Err: err}
		}
		it, err := w.item()
		if err != nil {
			return nil, &ValidationError{Index: i, Err: err}
		}
		items = append(items, it)
	}
	return items, nil
}

// ValidateItems checks every element of raw instead of stopping at the
// first bad one. It returns the elements that passed and one error per
// element that did not. A repeated id is reported on its second occurrence.
func ValidateItems(raw []json.RawMessage) ([]roster.Item, []*ValidationError) {
	var (
		items []roster.Item
		errs  []*ValidationError
		seen  = make(map[string]int, len(raw))
	)
	for i, msg := range raw {
		var w wireItem
		if err := json.Unmarshal(msg, &w); err != nil {
			errs = append(errs, &ValidationError{Index: i, Err: err})
			continue
		}
		it, err := w.item()
		if err != nil {
			errs = append(errs, &ValidationError{Index: i, Err: err})
			continue
		}
		if first, ok := seen[it.ID]; ok {
			errs = append(errs, &ValidationError{Index: i, Err: fmt.Errorf("duplicate id %s (first at index %d)", it.ID, first)})
			continue
		}
		seen[it.ID] = i
		items = append(items, it)
	}
	return items, errs
}
