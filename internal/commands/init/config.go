package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/roster/internal/core/config"
	"github.com/colonyops/roster/internal/core/roster"
)

// ConfigOptions are the answers collected by the wizard.
type ConfigOptions struct {
	BaseURL     string
	PageSize    int
	Theme       string
	Collections []roster.Collection
}

// DefaultConfigOptions mirrors config.DefaultConfig.
func DefaultConfigOptions() ConfigOptions {
	def := config.DefaultConfig()
	return ConfigOptions{
		BaseURL:     def.API.BaseURL,
		PageSize:    def.List.PageSize,
		Theme:       def.TUI.Theme,
		Collections: roster.Collections(),
	}
}

// GenerateConfig builds a full config from the defaults and opts.
func GenerateConfig(opts ConfigOptions) config.Config {
	cfg := config.DefaultConfig()
	if opts.BaseURL != "" {
		cfg.API.BaseURL = opts.BaseURL
	}
	if opts.PageSize > 0 {
		cfg.List.PageSize = opts.PageSize
	}
	if opts.Theme != "" {
		cfg.TUI.Theme = opts.Theme
	}
	if len(opts.Collections) > 0 {
		cfg.Collections = make([]string, 0, len(opts.Collections))
		for _, c := range opts.Collections {
			cfg.Collections = append(cfg.Collections, string(c))
		}
	}
	return cfg
}

const configHeader = "# roster configuration\n# Run 'roster config validate' after editing.\n\n"

// WriteConfig writes cfg as YAML, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
