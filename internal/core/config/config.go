// Package config loads the roster configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
)

// Config is the top-level roster configuration.
type Config struct {
	API         APIConfig  `yaml:"api"`
	List        ListConfig `yaml:"list"`
	TUI         TUIConfig  `yaml:"tui"`
	Collections []string   `yaml:"collections"`

	DataDir string `yaml:"-"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ListConfig tunes paging, virtualization and the debounce windows.
type ListConfig struct {
	PageSize       int           `yaml:"page_size"`
	RowHeight      int           `yaml:"row_height"`
	Overscan       int           `yaml:"overscan"`
	SearchDelay    time.Duration `yaml:"search_delay"`
	ScrollDelay    time.Duration `yaml:"scroll_delay"`
	FetchThreshold float64       `yaml:"fetch_threshold"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3001",
			Timeout: 30 * time.Second,
		},
		List: ListConfig{
			PageSize:       50,
			RowHeight:      6,
			Overscan:       5,
			SearchDelay:    300 * time.Millisecond,
			ScrollDelay:    150 * time.Millisecond,
			FetchThreshold: 0.85,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Collections: []string{string(roster.Users), string(roster.Reviewers)},
	}
}

// Load reads configPath, applies defaults for unset values and validates the
// result. A missing file is not an error.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.List.PageSize == 0 {
		c.List.PageSize = defaults.List.PageSize
	}
	if c.List.RowHeight == 0 {
		c.List.RowHeight = defaults.List.RowHeight
	}
	if c.List.Overscan == 0 {
		c.List.Overscan = defaults.List.Overscan
	}
	if c.List.SearchDelay == 0 {
		c.List.SearchDelay = defaults.List.SearchDelay
	}
	if c.List.ScrollDelay == 0 {
		c.List.ScrollDelay = defaults.List.ScrollDelay
	}
	if c.List.FetchThreshold == 0 {
		c.List.FetchThreshold = defaults.List.FetchThreshold
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if len(c.Collections) == 0 {
		c.Collections = defaults.Collections
	}
}

// Validate checks structural constraints that make the config unusable.
func (c *Config) Validate() error {
	if c.List.PageSize < 1 {
		return fmt.Errorf("list.page_size must be >= 1, got %d", c.List.PageSize)
	}
	if c.List.RowHeight < 1 {
		return fmt.Errorf("list.row_height must be >= 1, got %d", c.List.RowHeight)
	}
	if c.List.Overscan < 0 {
		return fmt.Errorf("list.overscan must be >= 0, got %d", c.List.Overscan)
	}
	if c.List.FetchThreshold <= 0 || c.List.FetchThreshold > 1 {
		return fmt.Errorf("list.fetch_threshold must be in (0, 1], got %v", c.List.FetchThreshold)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	if _, err := c.ParsedCollections(); err != nil {
		return err
	}
	return nil
}

// ParsedCollections returns the configured collections in tab order.
func (c *Config) ParsedCollections() ([]roster.Collection, error) {
	out := make([]roster.Collection, 0, len(c.Collections))
	seen := make(map[roster.Collection]bool, len(c.Collections))
	for _, name := range c.Collections {
		col, err := roster.ParseCollection(name)
		if err != nil {
			return nil, fmt.Errorf("collections: %w", err)
		}
		if seen[col] {
			return nil, fmt.Errorf("collections: %q listed twice", col)
		}
		seen[col] = true
		out = append(out, col)
	}
	return out, nil
}

// Palette returns the configured theme, falling back to the default theme
// when the name is unknown.
func (c *Config) Palette() styles.Palette {
	if p, ok := styles.GetPalette(c.TUI.Theme); ok {
		return p
	}
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return p
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, "roster.log")
}
