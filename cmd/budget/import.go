package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"budget/internal/services"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace every month with a JSON document" }
func (*importCmd) Usage() string {
	return `budget import <file>

  Replaces the whole store with the document in <file>. A malformed
  document is rejected and the current data is kept.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: import requires exactly one file")
		return subcommands.ExitUsageError
	}
	abs, err := filepath.Abs(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		if err := svc.ImportFile(ctx, os.DirFS(filepath.Dir(abs)), filepath.Base(abs), nil); err != nil {
			return fmt.Errorf("import %s: %w", f.Arg(0), err)
		}
		fmt.Fprintf(stdout, "Imported %d months from %s\n", len(svc.Store().Months), f.Arg(0))
		return nil
	})
}
