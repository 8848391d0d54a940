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

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write every month to a JSON document" }
func (*exportCmd) Usage() string {
	return `budget [-month YYYY-MM] export [-o <file>]

  Writes the whole store as an indented JSON document. Without -o the file
  is named after the active month; "-o -" writes to standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file, or - for standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, nil, func(svc *services.BudgetService) error {
		if c.out == "-" {
			return svc.Export(ctx, stdout)
		}
		name := c.out
		if name == "" {
			name = svc.ExportFilename()
		}
		if err := writeExport(ctx, svc, name); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Exported %d months to %s\n", len(svc.Store().Months), name)
		return nil
	})
}

func writeExport(ctx context.Context, svc *services.BudgetService, name string) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	fh, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := svc.Export(ctx, fh); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
