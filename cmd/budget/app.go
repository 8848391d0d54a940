package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"budget/internal/backend"
	"budget/internal/cli"
	"budget/internal/core"
	"budget/internal/ledger"
	"budget/internal/repository"
	"budget/internal/services"
)

// Register adds the budget subcommands to c.
func Register(c *subcommands.Commander) {
	c.Register(&monthsCmd{}, "months")
	c.Register(&showCmd{}, "months")
	c.Register(&budgetCmd{}, "months")
	c.Register(&resetCmd{}, "months")

	c.Register(&addCmd{}, "items")
	c.Register(&rmCmd{}, "items")
	c.Register(&editCmd{}, "items")

	c.Register(&exportCmd{}, "documents")
	c.Register(&importCmd{}, "documents")
}

// Tests swap these.

var monthFlag = flag.String("month", "", "Active month as YYYY-MM (defaults to the current month)")

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

type session struct {
	svc     *services.BudgetService
	backend *backend.BackendResult
}

// openSession loads configuration and the store, then selects the active month.
func openSession(ctx context.Context, confirm services.Confirmer) (*session, error) {
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return nil, err
	}
	logger := cli.SetupLogger(cfg)

	res, err := cli.OpenBackend(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}

	l := ledger.New()
	svc := services.NewBudgetService(repository.New(res.Backend, cfg.StorageKey, logger), l, confirm, logger)
	svc.Open(ctx)

	month := *monthFlag
	if month == "" {
		month = core.MonthOf(l.Now()).String()
	}
	if err := svc.SelectMonth(ctx, month); err != nil {
		res.Close()
		return nil, err
	}
	return &session{svc: svc, backend: res}, nil
}

func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		fmt.Fprintf(stderr, "Error closing storage: %v\n", err)
	}
}

// confirmer returns the terminal prompt, or AlwaysConfirm when yes is set.
func confirmer(yes bool) services.Confirmer {
	if yes {
		return services.AlwaysConfirm{}
	}
	return cli.NewPrompt(stdin, stderr)
}

// fail reports err and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, services.ErrNotConfirmed):
		fmt.Fprintln(stderr, "Cancelled.")
		return subcommands.ExitFailure
	case errors.Is(err, core.ErrInvalidMonthKey),
		errors.Is(err, core.ErrInvalidName),
		errors.Is(err, core.ErrInvalidPrice):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// withSession opens a session, runs fn and closes the session.
func withSession(ctx context.Context, confirm services.Confirmer, fn func(*services.BudgetService) error) subcommands.ExitStatus {
	s, err := openSession(ctx, confirm)
	if err != nil {
		return fail(err)
	}
	defer s.Close()
	if err := fn(s.svc); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
