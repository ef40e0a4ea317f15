// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
)

// BaseURL validates an API base URL: http or https with a host.
func BaseURL(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// BaseURLField returns a criterio validator for API base URLs.
func BaseURLField(field, s string) error {
	return criterio.Run(field, s, BaseURL)
}

// PageSize validates a page size typed as text.
func PageSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected a number, got %q", s)
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}
