package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the active month" }
func (*rmCmd) Usage() string {
	return `budget [-month YYYY-MM] rm [-y] <id>

  Removes the item with the given id after confirmation.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: rm requires exactly one item id")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	return withSession(ctx, confirmer(c.yes), func(svc *services.BudgetService) error {
		removed, err := svc.RemoveItem(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(stdout, "No item %s in %s\n", id, svc.ActiveMonth())
			return nil
		}
		fmt.Fprintf(stdout, "Removed %s\n", id)
		return nil
	})
}
