package roster

import (
	"fmt"
	"strings"
)

// Collection names one independently searchable list. The value doubles as
// the endpoint path segment.
type Collection string

const (
	Users     Collection = "users"
	Reviewers Collection = "reviewers"
)

// Collections returns every known collection in display order.
func Collections() []Collection {
	return []Collection{Users, Reviewers}
}

// ParseCollection resolves a case-insensitive collection name.
func ParseCollection(s string) (Collection, error) {
	c := Collection(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Users, Reviewers:
		return c, nil
	}
	return "", fmt.Errorf("unknown collection %q (expected users or reviewers)", s)
}

// Title is the heading shown for the collection.
func (c Collection) Title() string {
	switch c {
	case Users:
		return "Users"
	case Reviewers:
		return "Reviewers"
	}
	return string(c)
}

// Noun is the lowercase plural used in status messages.
func (c Collection) Noun() string {
	return strings.ToLower(c.Title())
}

// SearchField is the single item field the backend filters on. The API
// supports one field at a time.
type SearchField string

const (
	FieldFirstName SearchField = "firstName"
	FieldEmail     SearchField = "email"
)

// SearchFields returns the searchable fields in selector order.
func SearchFields() []SearchField {
	return []SearchField{FieldFirstName, FieldEmail}
}

// ParseSearchField resolves a field from its wire name. Empty input yields
// FieldFirstName.
func ParseSearchField(s string) (SearchField, error) {
	switch strings.TrimSpace(s) {
	case "", string(FieldFirstName), "first-name", "first_name":
		return FieldFirstName, nil
	case string(FieldEmail):
		return FieldEmail, nil
	}
	return "", fmt.Errorf("unknown search field %q (expected firstName or email)", s)
}

// Label is the human readable field name.
func (f SearchField) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldEmail:
		return "Email"
	}
	return string(f)
}

// Next cycles to the following search field.
func (f SearchField) Next() SearchField {
	fields := SearchFields()
	for i, candidate := range fields {
		if candidate == f {
			return fields[(i+1)%len(fields)]
		}
	}
	return FieldFirstName
}
