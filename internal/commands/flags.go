package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/roster/internal/core/config"
	"github.com/colonyops/roster/internal/data/apiclient"
)

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	DataDir      string
	BaseURL      string
	EnvFile      string
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "roster", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "roster")
}

// NewClient builds an API client from the loaded config.
func (f *Flags) NewClient() (*apiclient.Client, error) {
	client, err := apiclient.New(f.Config.API.BaseURL, apiclient.WithTimeout(f.Config.API.Timeout))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return client, nil
}
