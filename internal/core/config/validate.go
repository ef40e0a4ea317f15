package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep runs Validate and then checks values that need parsing or
// file system access. An empty configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		validate.BaseURLField("api.base_url", c.API.BaseURL),
		criterio.Run("tui.theme", c.TUI.Theme, isKnownTheme),
		c.validateList(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.List.SearchDelay < 100*time.Millisecond {
		warnings = append(warnings, ValidationWarning{
			Category: "List",
			Item:     "search_delay",
			Message:  fmt.Sprintf("%s sends a request for nearly every keystroke", c.List.SearchDelay),
		})
	}
	if c.List.PageSize > 500 {
		warnings = append(warnings, ValidationWarning{
			Category: "List",
			Item:     "page_size",
			Message:  fmt.Sprintf("%d items per page makes each fetch slow", c.List.PageSize),
		})
	}
	if c.List.RowHeight < 3 {
		warnings = append(warnings, ValidationWarning{
			Category: "List",
			Item:     "row_height",
			Message:  "cards shorter than 3 lines cannot show the email line",
		})
	}

	return warnings
}

func (c *Config) validateList() error {
	var errs criterio.FieldErrorsBuilder
	if c.List.SearchDelay < 0 {
		errs = errs.Append("list.search_delay", fmt.Errorf("must not be negative, got %s", c.List.SearchDelay))
	}
	if c.List.ScrollDelay < 0 {
		errs = errs.Append("list.scroll_delay", fmt.Errorf("must not be negative, got %s", c.List.ScrollDelay))
	}
	if c.List.RowHeight > 40 {
		errs = errs.Append("list.row_height", fmt.Errorf("must be <= 40, got %d", c.List.RowHeight))
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); ok {
		return nil
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
}
