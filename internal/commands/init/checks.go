package initcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/roster/internal/core/config"
	"github.com/colonyops/roster/internal/data/apiclient"
)

// Status is the outcome of one check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// CheckItem is one line of the post-install report.
type CheckItem struct {
	Label  string
	Status Status
	Detail string
}

// InitCheck verifies a freshly written config and the API it points at.
type InitCheck struct {
	configPath string
	timeout    time.Duration
}

// NewInitCheck creates a check for the config at configPath.
func NewInitCheck(configPath string) *InitCheck {
	return &InitCheck{configPath: configPath, timeout: 5 * time.Second}
}

// Name is the report heading.
func (c *InitCheck) Name() string {
	return "Setup"
}

// Run loads the config and probes each configured collection with a one
// item request. Probe failures are warnings: the backend may simply not be
// running yet.
func (c *InitCheck) Run(ctx context.Context) []CheckItem {
	cfg, err := config.Load(c.configPath, "")
	if err != nil {
		return []CheckItem{{Label: "Config file", Status: StatusFail, Detail: err.Error()}}
	}
	items := []CheckItem{{Label: "Config file", Status: StatusPass, Detail: c.configPath}}

	return append(items, c.probe(ctx, cfg)...)
}

func (c *InitCheck) probe(ctx context.Context, cfg *config.Config) []CheckItem {
	client, err := apiclient.New(cfg.API.BaseURL, apiclient.WithTimeout(min(cfg.API.Timeout, c.timeout)))
	if err != nil {
		return []CheckItem{{Label: "API", Status: StatusFail, Detail: err.Error()}}
	}

	collections, err := cfg.ParsedCollections()
	if err != nil {
		return []CheckItem{{Label: "Collections", Status: StatusFail, Detail: err.Error()}}
	}

	items := make([]CheckItem, 0, len(collections))
	for _, col := range collections {
		label := fmt.Sprintf("GET /%s", col)
		_, err := client.FetchPage(ctx, col, apiclient.PageRequest{Page: 1, PageSize: 1})
		switch {
		case err == nil:
			items = append(items, CheckItem{Label: label, Status: StatusPass, Detail: client.BaseURL()})
		case apiclient.IsContractError(err):
			items = append(items, CheckItem{Label: label, Status: StatusFail, Detail: err.Error()})
		default:
			items = append(items, CheckItem{Label: label, Status: StatusWarn, Detail: err.Error()})
		}
	}
	return items
}
