package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a spending item to the active month" }
func (*addCmd) Usage() string {
	return `budget [-month YYYY-MM] add <name> <price>

  Appends an item. The price must be a positive number; "12.50" and "12,50"
  are both accepted. A name with spaces must be quoted or is joined.
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (*addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: add requires a name and a price")
		return subcommands.ExitUsageError
	}
	args := f.Args()
	name := strings.Join(args[:len(args)-1], " ")
	price := args[len(args)-1]

	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		item, err := svc.AddItem(ctx, name, price)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added %q (%s) to %s as %s\n", item.Name, item.Price.StringFixed(2), svc.ActiveMonth(), item.ID)
		return warnIfOver(svc)
	})
}

// warnIfOver prints the month status when the month is over budget.
func warnIfOver(svc *services.BudgetService) error {
	sum, err := svc.Summary()
	if err != nil {
		return err
	}
	if sum.Exceeding {
		r, err := activeReport(svc)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, r.Status())
	}
	return nil
}
