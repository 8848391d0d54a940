package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type budgetCmd struct{}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "set the spending limit of the active month" }
func (*budgetCmd) Usage() string {
	return `budget [-month YYYY-MM] budget <value>

  Sets the month's maximum budget. 0, or anything that is not a number,
  removes the limit.
`
}

func (*budgetCmd) SetFlags(*flag.FlagSet) {}

func (*budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: budget requires exactly one value")
		return subcommands.ExitUsageError
	}
	raw := f.Arg(0)
	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		b, err := svc.SetBudget(ctx, raw)
		if err != nil {
			return err
		}
		if b.IsZero() {
			fmt.Fprintf(stdout, "Budget for %s cleared\n", svc.ActiveMonth())
		} else {
			fmt.Fprintf(stdout, "Budget for %s set to %s\n", svc.ActiveMonth(), b.StringFixed(2))
		}
		return warnIfOver(svc)
	})
}
