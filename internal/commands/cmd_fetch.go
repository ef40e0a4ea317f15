package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	lipgloss "charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/roster/internal/core/paging"
	"github.com/colonyops/roster/internal/core/roster"
	"github.com/colonyops/roster/internal/core/styles"
	"github.com/colonyops/roster/internal/data/apiclient"
	"github.com/colonyops/roster/internal/tui/jsoncolor"
	"github.com/colonyops/roster/pkg/iojson"
)

type FetchCmd struct {
	flags *Flags

	// flags
	page       int
	limit      int
	search     string
	field      string
	jsonOutput bool
	all        bool
}

// NewFetchCmd creates a new fetch command
func NewFetchCmd(flags *Flags) *FetchCmd {
	return &FetchCmd{flags: flags}
}

// Register adds the fetch command to the application
func (cmd *FetchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a page of users or reviewers",
		UsageText: "roster fetch <users|reviewers> [options]",
		Description: `Fetches one page from the API and prints it as a table.

Output is JSON when stdout is not a terminal or --json is set.
Use --all to walk every page; items are then written as JSON lines.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page number (1-based)",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Usage:       "items per page (defaults to list.page_size)",
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "substring to match",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "field",
				Usage:       "field to search (firstName, email)",
				Value:       string(roster.FieldFirstName),
				Destination: &cmd.field,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "fetch every page and stream items as JSON lines",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FetchCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one collection argument (users or reviewers)")
	}
	collection, err := roster.ParseCollection(c.Args().First())
	if err != nil {
		return err
	}
	field, err := roster.ParseSearchField(cmd.field)
	if err != nil {
		return err
	}

	client, err := cmd.flags.NewClient()
	if err != nil {
		return err
	}

	req := apiclient.PageRequest{
		Page:     cmd.page,
		PageSize: cmd.limit,
		Term:     cmd.search,
		Field:    field,
	}
	if req.PageSize <= 0 {
		req.PageSize = cmd.flags.Config.List.PageSize
	}

	out := c.Root().Writer
	tty := isTerminal(out)

	if cmd.all {
		n, err := streamAll(ctx, client, collection, req, out)
		log.Debug().Str("collection", string(collection)).Int("items", n).Msg("fetched all pages")
		if err != nil {
			return cmd.fail(err, tty)
		}
		return nil
	}

	page, err := client.FetchPage(ctx, collection, req)
	if err != nil {
		return cmd.fail(err, tty)
	}

	result := newPageOutput(collection, req, page)
	switch {
	case cmd.jsonOutput && tty:
		bits, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode page: %w", err)
		}
		_, err = fmt.Fprintln(out, jsoncolor.Colorize(bits))
		return err
	case cmd.jsonOutput || !tty:
		return iojson.WriteWith(out, c.Root().ErrWriter, result)
	default:
		_, err := fmt.Fprintln(out, renderPage(result))
		return err
	}
}

// fail reports err as JSON when output is machine read, so scripts always
// get a parsable error.
func (cmd *FetchCmd) fail(err error, tty bool) error {
	if !cmd.jsonErrors(tty) {
		return err
	}
	_ = iojson.WriteError("fetch failed", errorData(err))
	return cli.Exit("", 1)
}

// pageOutput is the JSON output format for roster fetch.
type pageOutput struct {
	Collection  roster.Collection `json:"collection"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	Search      string            `json:"search,omitempty"`
	Field       string            `json:"field,omitempty"`
	Items       []roster.Item     `json:"items"`
	HasNextPage bool              `json:"hasNextPage"`
	NextPage    int               `json:"nextPage,omitempty"`
}

func newPageOutput(c roster.Collection, req apiclient.PageRequest, page paging.Page[roster.Item]) pageOutput {
	out := pageOutput{
		Collection:  c,
		Page:        req.Page,
		Limit:       req.PageSize,
		Search:      req.Term,
		Items:       page.Data,
		HasNextPage: page.HasNextPage,
		NextPage:    page.NextPage,
	}
	if req.Term != "" {
		out.Field = string(req.Field)
	}
	if out.Items == nil {
		out.Items = []roster.Item{}
	}
	return out
}

// streamAll writes every matching item as a JSON line and returns how many
// were written.
func streamAll(ctx context.Context, client *apiclient.Client, c roster.Collection, req apiclient.PageRequest, w io.Writer) (int, error) {
	lw := iojson.NewLineWriter(w)
	for item, err := range client.Iter(ctx, c, req) {
		if err != nil {
			return lw.Count(), err
		}
		if err := lw.Write(item); err != nil {
			return lw.Count(), err
		}
	}
	return lw.Count(), nil
}

func renderPage(p pageOutput) string {
	if len(p.Items) == 0 {
		if p.Search != "" {
			return styles.TextMutedStyle.Render(fmt.Sprintf("No %s found matching %q", p.Collection.Noun(), p.Search))
		}
		return styles.TextMutedStyle.Render(fmt.Sprintf("No %s on page %d", p.Collection.Noun(), p.Page))
	}

	first := (p.Page-1)*p.Limit + 1
	rows := make([][]string, 0, len(p.Items))
	for i, it := range p.Items {
		rows = append(rows, []string{strconv.Itoa(first + i), it.FullName(), it.Email, it.ID})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.DividerStyle).
		Headers("#", "NAME", "EMAIL", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.CommandHeaderStyle.Padding(0, 1)
			case col == 0 || col == 3:
				return styles.TextMutedStyle.Padding(0, 1)
			default:
				return styles.CommandStyle.Padding(0, 1)
			}
		})

	more := "end of list"
	if p.HasNextPage {
		more = fmt.Sprintf("next: --page %d", p.NextPage)
	}
	footer := styles.TextMutedStyle.Render(fmt.Sprintf("%s page %d · %d items · %s", p.Collection.Title(), p.Page, len(p.Items), more))

	return t.String() + "\n" + footer
}

// jsonErrors reports whether failures are written as JSON: whenever the
// successful output would have been JSON.
func (cmd *FetchCmd) jsonErrors(tty bool) bool {
	return cmd.jsonOutput || cmd.all || !tty
}

func errorData(err error) map[string]any {
	data := map[string]any{"error": err.Error()}
	var ferr *apiclient.FetchError
	if errors.As(err, &ferr) && ferr.StatusCode != 0 {
		data["status"] = ferr.StatusCode
	}
	var verr *apiclient.ValidationError
	if errors.As(err, &verr) {
		data["index"] = verr.Index
	}
	return data
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
