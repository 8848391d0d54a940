package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type editCmd struct {
	name  string
	price string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the name or price of an item" }
func (*editCmd) Usage() string {
	return `budget [-month YYYY-MM] edit [-name <name>] [-price <price>] <id>

  Changes only the given fields. The item keeps its id and creation time.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New item name")
	f.StringVar(&c.price, "price", "", "New item price")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: edit requires exactly one item id")
		return subcommands.ExitUsageError
	}
	var name, price *string
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			name = &c.name
		case "price":
			price = &c.price
		}
	})
	if name == nil && price == nil {
		fmt.Fprintln(stderr, "Error: nothing to edit, use -name or -price")
		return subcommands.ExitUsageError
	}

	id := f.Arg(0)
	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		found, err := svc.EditItem(ctx, id, name, price)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(stdout, "No item %s in %s\n", id, svc.ActiveMonth())
			return nil
		}
		fmt.Fprintf(stdout, "Updated %s\n", id)
		return warnIfOver(svc)
	})
}
