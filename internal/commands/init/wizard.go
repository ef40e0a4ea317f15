// Package initcmd implements the interactive 'roster init' wizard.
package initcmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/core/validate"
	"github.com/colonyops/roster/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	BaseURL    string // pre-specified API URL (empty = prompt)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := DefaultConfigOptions()
	if w.opts.BaseURL != "" {
		opts.BaseURL = w.opts.BaseURL
	}

	if !w.opts.Yes {
		var err error
		opts, err = w.promptUser(ctx, opts)
		if err != nil {
			return err
		}
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(GenerateConfig(opts), w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	check := NewInitCheck(w.opts.ConfigPath)
	p.Section(check.Name())
	for _, item := range check.Run(ctx) {
		switch item.Status {
		case StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Start the API at %s if it is not running", opts.BaseURL)
	p.Printf("  2. Run 'roster' to open the dashboard")

	return nil
}

func (w *Wizard) promptUser(ctx context.Context, opts ConfigOptions) (ConfigOptions, error) {
	pageSize := strconv.Itoa(opts.PageSize)

	themes := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	collections := make([]huh.Option[roster.Collection], 0, 2)
	for _, c := range roster.Collections() {
		collections = append(collections, huh.NewOption(c.Title(), c).Selected(true))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("API base URL").
			Description("json-server style backend serving /users and /reviewers").
			Value(&opts.BaseURL).
			Validate(validate.BaseURL),
		huh.NewInput().
			Title("Page size").
			Description("Items requested per page").
			Value(&pageSize).
			Validate(validate.PageSize),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themes...).
			Value(&opts.Theme),
		huh.NewMultiSelect[roster.Collection]().
			Title("Lists").
			Description("Tabs shown in the dashboard, in order").
			Options(collections...).
			Value(&opts.Collections).
			Validate(func(cs []roster.Collection) error {
				if len(cs) == 0 {
					return fmt.Errorf("select at least one list")
				}
				return nil
			}),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return opts, err
	}

	opts.PageSize, _ = strconv.Atoi(strings.TrimSpace(pageSize))
	return opts, nil
}

