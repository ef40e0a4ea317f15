// Package roster defines the records shown by the dashboard and the
// collections and search fields used to query them.
package roster

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
)

// Item is a single person record returned by the users and reviewers
// endpoints. Both collections share the same shape.
type Item struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CatchPhrase string `json:"catchPhrase"`
	Comments    string `json:"comments"`
}

// FullName returns the first and last name joined by a space.
func (i Item) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// Validate checks the field formats the backend contract guarantees.
func (i Item) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("id", i.ID, isUUID),
		criterio.Run("email", i.Email, isEmail),
	)
}

func isUUID(s string) error {
	if s == "" {
		return errors.New("id is required")
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid uuid %q", s)
	}
	return nil
}

func isEmail(s string) error {
	if s == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("invalid email %q", s)
	}
	return nil
}
