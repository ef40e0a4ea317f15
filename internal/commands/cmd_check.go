package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/roster/internal/data/apiclient"
	"github.com/colonyops/roster/internal/printer"
	"github.com/colonyops/roster/pkg/iojson"
)

type CheckCmd struct {
	flags  *Flags
	input  iojson.FileReader[[]json.RawMessage]
	format string
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate a JSON array of items against the API contract",
		UsageText: "roster check [-f items.json] [--format json]",
		Description: `Reads a JSON array of users or reviewers, for example a json-server
fixture or the output of 'roster fetch --json', and reports every element that
the TUI would reject: missing keys, non-string values, malformed ids and
emails, and repeated ids.

Reads from stdin when -f is not given.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

type checkIssue struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type checkReport struct {
	Valid  bool         `json:"valid"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Issues []checkIssue `json:"issues,omitempty"`
}

func checkItems(raw []json.RawMessage) checkReport {
	items, errs := apiclient.ValidateItems(raw)

	report := checkReport{
		Valid:  len(errs) == 0,
		Total:  len(raw),
		Passed: len(items),
	}
	for _, e := range errs {
		report.Issues = append(report.Issues, checkIssue{Index: e.Index, Message: e.Err.Error()})
	}
	return report
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := cmd.input.Read()
	if err != nil {
		return err
	}

	report := checkItems(raw)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		printCheckReport(printer.Ctx(ctx), report)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func printCheckReport(p *printer.Printer, report checkReport) {
	p.Section("Items")
	for _, issue := range report.Issues {
		p.FailItem(fmt.Sprintf("[%d]", issue.Index), issue.Message)
	}
	if report.Passed > 0 {
		p.CheckItem(fmt.Sprintf("%d of %d items valid", report.Passed, report.Total), "")
	}

	p.Printf("")
	if report.Valid {
		p.Successf("All %d items match the contract", report.Total)
		return
	}
	p.Errorf("%d item(s) rejected", len(report.Issues))
}
