package main

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"budget/internal/ledger"
	"budget/internal/report"
	"budget/internal/services"
)

type monthsCmd struct{}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list every month with its total and budget" }
func (*monthsCmd) Usage() string {
	return `budget months

  Lists the stored months in order with their totals.
`
}

func (*monthsCmd) SetFlags(*flag.FlagSet) {}

func (*monthsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		store := svc.Store()
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MONTH\tITEMS\tSTATUS\t")
		for _, k := range ledger.MonthKeys(store) {
			m, _ := store.Month(k)
			marker := ""
			if k == svc.ActiveMonth() {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s%s\t%d\t%s\t\n", k, marker, len(m.Items), report.NewMonth(k, m).Status())
		}
		return tw.Flush()
	})
}

// activeReport builds the report of the session's active month.
func activeReport(svc *services.BudgetService) (report.Month, error) {
	m, err := svc.Month()
	if err != nil {
		return report.Month{}, err
	}
	return report.NewMonth(svc.ActiveMonth(), m), nil
}
