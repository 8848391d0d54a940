package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every item and the budget of the active month" }
func (*resetCmd) Usage() string {
	return `budget [-month YYYY-MM] reset [-y]

  Empties the month after confirmation. This cannot be undone.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, confirmer(c.yes), func(svc *services.BudgetService) error {
		if err := svc.ResetMonth(ctx); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Reset %s\n", svc.ActiveMonth())
		return nil
	})
}
