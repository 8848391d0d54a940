package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"budget/internal/services"
)

type showCmd struct {
	plain bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the items and budget status of the active month" }
func (*showCmd) Usage() string {
	return `budget [-month YYYY-MM] show [-plain]

  Displays the month's items in order. Items marked as over are the ones
  that took spending past the budget.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print aligned text instead of rendered markdown")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		r, err := activeReport(svc)
		if err != nil {
			return err
		}
		if c.plain {
			return r.WritePlain(stdout)
		}
		return printMarkdown(r.Markdown())
	})
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}
