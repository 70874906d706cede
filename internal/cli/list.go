package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cli/go-gh/v2/pkg/jq"
	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/spf13/cobra"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/location"
	"github.com/altinukshini/gh-forks/internal/model"
	"github.com/altinukshini/gh-forks/internal/search"
)

type listOptions struct {
	json   bool
	jq     string
	search string
	filter forks.Filter
}

func (c *CLI) listCommand() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list <location>",
		Short: "Print the forks table",
		Long: `Print the forks of a repository, sorted the same way as the interactive table.

On a terminal the output is aligned columns; otherwise it is tab separated
with raw timestamps. --json prints the fork records from the API and --jq
filters them. The attribute flags and --search narrow the rows first.`,
		Example: `  gh-forks list cli/cli
  gh-forks list "octocat/Hello-World?sort=7"
  gh-forks list cli/cli --min-stars 5 --pushed-within 2160h
  gh-forks list cli/cli --search "branch:trunk stars:>=10"
  gh-forks list cli/cli --jq '.[] | select(.stargazers_count > 10) | .full_name'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print fork records as JSON")
	cmd.Flags().StringVarP(&opts.jq, "jq", "q", "", "filter JSON output with a jq expression")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "only rows matching a search query, e.g. \"stars:>10 /^main$\"")
	cmd.Flags().StringVar(&opts.filter.Owner, "owner", "", "only forks owned by this account")
	cmd.Flags().StringVar(&opts.filter.Branch, "branch", "", "only forks with this default branch")
	cmd.Flags().IntVar(&opts.filter.MinStars, "min-stars", 0, "only forks with at least this many stars")
	cmd.Flags().DurationVar(&opts.filter.PushedWithin, "pushed-within", 0, "only forks pushed within this duration, e.g. 720h")
	cmd.Flags().BoolVar(&opts.filter.HideArchived, "hide-archived", false, "skip archived forks")
	return cmd
}

func (c *CLI) runList(ctx context.Context, raw string, opts listOptions) error {
	logger := loggerFromContext(ctx)

	client, err := c.newClient(logger, nil)
	if err != nil {
		return err
	}
	service := forks.NewService(client, logger, nil)

	loc := location.Parse(raw)
	res, err := service.Lookup(ctx, loc.Repo)
	if err != nil {
		return err
	}

	cols := service.Columns()
	rows := forks.FilterRows(res.Rows, opts.filter, time.Now())
	if opts.search != "" {
		rows, err = search.New(cols).FilterString(rows, opts.search)
		if err != nil {
			return fmt.Errorf("search %q: %w", opts.search, err)
		}
	}

	if opts.json || opts.jq != "" {
		records := make([]model.Fork, len(rows))
		for i, r := range rows {
			records[i] = r.Record.Fork
		}
		return c.printJSON(records, opts.jq)
	}

	sort := forks.DefaultSort(cols.ResolveSort(loc.Sort(cols.StarsIndex())))
	return c.printTable(cols, forks.SortRows(rows, sort))
}

func (c *CLI) printJSON(records []model.Fork, expr string) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode forks: %w", err)
	}
	if expr != "" {
		if err := jq.Evaluate(bytes.NewReader(data), c.stdout, expr); err != nil {
			return fmt.Errorf("jq: %w", err)
		}
		return nil
	}
	return jsonpretty.Format(c.stdout, bytes.NewReader(data), "  ", c.isTTY())
}

func (c *CLI) printTable(cols forks.Columns, rows []forks.Row) error {
	isTTY := c.isTTY()
	width := 0
	if isTTY {
		if w, _, err := c.term.Size(); err == nil {
			width = w
		}
	}

	tp := tableprinter.New(c.stdout, isTTY, width)
	tp.AddHeader(cols.Titles())

	now := time.Now()
	for _, row := range rows {
		for _, cell := range row.Cells {
			if isTTY {
				tp.AddField(cell.Display(now))
			} else {
				tp.AddField(cell.Raw)
			}
		}
		tp.EndRow()
	}
	return tp.Render()
}

func (c *CLI) isTTY() bool {
	return c.term != nil && c.term.IsTerminalOutput()
}
