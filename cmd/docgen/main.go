// Command docgen generates CLI reference documentation from the roster command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/roster/internal/commands"
	"github.com/colonyops/roster/internal/tui"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "roster",
		Usage:     "Browse users and reviewers from a paginated API",
		UsageText: "roster [global options] command [command options]",
		Description: `Roster is a terminal dashboard with two infinitely scrolling, searchable
lists backed by a json-server style API.

Run 'roster' with no arguments to open the dashboard.
Run 'roster fetch users' to print a page without the TUI.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("ROSTER_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file (defaults to <data-dir>/roster.log)",
				Sources: cli.EnvVars("ROSTER_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("ROSTER_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("ROSTER_DATA_DIR"),
				Value:   commands.DefaultDataDir(),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "API base URL (overrides api.base_url)",
				Sources: cli.EnvVars("ROSTER_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "dotenv file loaded before flags are read (defaults to ./.env when present)",
				Sources: cli.EnvVars("ROSTER_ENV_FILE"),
			},
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, tui.BuildInfo{})
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	root = commands.NewFetchCmd(flags).Register(root)
	root = commands.NewCheckCmd(flags).Register(root)
	root = commands.NewInitCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
