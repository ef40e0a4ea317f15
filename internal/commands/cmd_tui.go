package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/roster/internal/core/collection"
	"github.com/colonyops/roster/internal/tui"
	"github.com/colonyops/roster/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{flags: flags, build: build}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("ROSTER_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, log.Logger)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	collections, err := cfg.ParsedCollections()
	if err != nil {
		return err
	}

	client, err := cmd.flags.NewClient()
	if err != nil {
		return err
	}

	// Cancelling ctx aborts every in-flight fetch when the TUI exits.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry := collection.NewRegistry(ctx, client.Fetcher, collection.Options{
		PageSize:       cfg.List.PageSize,
		SearchDelay:    cfg.List.SearchDelay,
		ScrollDelay:    cfg.List.ScrollDelay,
		FetchThreshold: cfg.List.FetchThreshold,
	})
	defer registry.Close()

	m := tui.New(registry, tui.Options{
		Collections: collections,
		RowHeight:   cfg.List.RowHeight,
		Overscan:    cfg.List.Overscan,
		BaseURL:     client.BaseURL(),
		Build:       cmd.build,
	})

	log.Info().
		Str("base_url", client.BaseURL()).
		Int("page_size", cfg.List.PageSize).
		Msg("starting tui")

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
