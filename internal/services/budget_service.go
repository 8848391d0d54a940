package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"budget/internal/core"
	"budget/internal/impexp"
	"budget/internal/ledger"
	applog "budget/internal/log"
)

var (
	ErrNotConfirmed  = errors.New("operation not confirmed")
	ErrNoActiveMonth = errors.New("no active month selected")
)

type (
	// StoreRepository persists the whole store.
	StoreRepository interface {
		Load(ctx context.Context) core.Store
		Save(ctx context.Context, s core.Store) error
	}

	// Confirmer asks the user a yes/no question before destructive work.
	Confirmer interface {
		Confirm(ctx context.Context, question string) (bool, error)
	}

	// AlwaysConfirm answers yes without asking.
	AlwaysConfirm struct{}
)

func (AlwaysConfirm) Confirm(context.Context, string) (bool, error) { return true, nil }

// BudgetService owns the in-memory store of one session and writes it back
// after every change. It is not safe for concurrent use; all mutation is
// expected to come from one sequential caller.
type BudgetService struct {
	repo    StoreRepository
	ledger  *ledger.Ledger
	confirm Confirmer
	logger  *applog.Logger
	ioLog   *applog.Logger

	store core.Store
	month core.MonthKey
}

func NewBudgetService(repo StoreRepository, l *ledger.Ledger, confirm Confirmer, logger *applog.Logger) *BudgetService {
	if l == nil {
		l = ledger.New()
	}
	if confirm == nil {
		confirm = AlwaysConfirm{}
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &BudgetService{
		repo:    repo,
		ledger:  l,
		confirm: confirm,
		logger:  logger.WithComponent(applog.ComponentLedger),
		ioLog:   logger.WithComponent(applog.ComponentImport),
		store:   core.NewStore(),
	}
}

// Open loads the persisted store, replacing whatever the session held.
func (s *BudgetService) Open(ctx context.Context) {
	s.store = s.repo.Load(ctx)
	s.logger.DebugContext(ctx, "Session opened", applog.FieldMonths, len(s.store.Months))
}

// Store returns the current snapshot. Later mutations never alter it.
func (s *BudgetService) Store() core.Store { return s.store }

// ActiveMonth returns the selected month, empty before SelectMonth.
func (s *BudgetService) ActiveMonth() core.MonthKey { return s.month }

// SelectMonth makes raw the active month, creating and saving an
// empty entry the first time that month is seen.
func (s *BudgetService) SelectMonth(ctx context.Context, raw string) error {
	k, err := core.ParseMonthKey(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", err, raw)
	}
	s.month = k
	if _, ok := s.store.Month(k); ok {
		return nil
	}
	return s.commit(ctx, applog.OpEnsure, s.ledger.EnsureMonth(s.store, k))
}

// Month returns the active month's data.
func (s *BudgetService) Month() (core.MonthData, error) {
	if s.month == "" {
		return core.MonthData{}, ErrNoActiveMonth
	}
	m, ok := s.store.Month(s.month)
	if !ok {
		return core.EmptyMonth(), nil
	}
	return m, nil
}

// Summary computes totals and overage flags for the active month.
func (s *BudgetService) Summary() (ledger.Summary, error) {
	m, err := s.Month()
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(m), nil
}

// AddItem validates and appends an item to the active month.
func (s *BudgetService) AddItem(ctx context.Context, name, rawPrice string) (core.Item, error) {
	if s.month == "" {
		return core.Item{}, ErrNoActiveMonth
	}
	next, item, err := s.ledger.AddItem(s.store, s.month, name, rawPrice)
	if err != nil {
		s.logger.DebugContext(ctx, "Item rejected",
			applog.NewFields().WithOperation(applog.OpAdd).WithMonth(s.month.String()).WithError(err).ToSlice()...)
		return core.Item{}, err
	}
	if err := s.commit(ctx, applog.OpAdd, next); err != nil {
		return item, err
	}
	s.logger.InfoContext(ctx, "Item added",
		applog.NewFields().WithMonth(s.month.String()).WithItem(item.ID, item.Name, item.Price.String()).ToSlice()...)
	return item, nil
}

// RemoveItem deletes an item after confirmation. It reports false, without
// asking, when the id is not in the active month.
func (s *BudgetService) RemoveItem(ctx context.Context, id string) (bool, error) {
	m, err := s.Month()
	if err != nil {
		return false, err
	}
	item, ok := find(m.Items, id)
	if !ok {
		return false, nil
	}
	if err := s.ask(ctx, fmt.Sprintf("Remove %q (%s)?", item.Name, item.Price)); err != nil {
		return false, err
	}
	if err := s.commit(ctx, applog.OpRemove, s.ledger.RemoveItem(s.store, s.month, id)); err != nil {
		return true, err
	}
	s.logger.InfoContext(ctx, "Item removed", applog.FieldMonth, s.month, applog.FieldItemID, id)
	return true, nil
}

// EditItem validates the edited fields and applies them. Nil leaves a field
// as is. It reports false when the id is not in the active month.
func (s *BudgetService) EditItem(ctx context.Context, id string, name, rawPrice *string) (bool, error) {
	m, err := s.Month()
	if err != nil {
		return false, err
	}
	u, err := ledger.ParseItemFields(name, rawPrice)
	if err != nil {
		return false, err
	}
	if _, ok := find(m.Items, id); !ok {
		return false, nil
	}
	if err := s.commit(ctx, applog.OpUpdate, s.ledger.UpdateItem(s.store, s.month, id, u)); err != nil {
		return true, err
	}
	s.logger.InfoContext(ctx, "Item updated", applog.FieldMonth, s.month, applog.FieldItemID, id)
	return true, nil
}

// SetBudget stores the active month's ceiling and returns the value kept.
// Non-numeric input clears the ceiling.
func (s *BudgetService) SetBudget(ctx context.Context, raw string) (core.Amount, error) {
	if s.month == "" {
		return core.Zero, ErrNoActiveMonth
	}
	next := s.ledger.SetBudget(s.store, s.month, raw)
	budget := next.Months[s.month].MaxBudget
	if err := s.commit(ctx, applog.OpBudget, next); err != nil {
		return budget, err
	}
	s.logger.InfoContext(ctx, "Budget set", applog.FieldMonth, s.month, applog.FieldBudget, budget.String())
	return budget, nil
}

// ResetMonth empties the active month after confirmation.
func (s *BudgetService) ResetMonth(ctx context.Context) error {
	if s.month == "" {
		return ErrNoActiveMonth
	}
	if err := s.ask(ctx, fmt.Sprintf("Reset %s? All items will be deleted.", s.month)); err != nil {
		return err
	}
	if err := s.commit(ctx, applog.OpReset, s.ledger.ResetMonth(s.store, s.month)); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Month reset", applog.FieldMonth, s.month)
	return nil
}

// Export writes the whole store as a document to w.
func (s *BudgetService) Export(ctx context.Context, w io.Writer) error {
	doc, err := impexp.Export(s.store)
	if err != nil {
		return err
	}
	if _, err := w.Write(doc); err != nil {
		s.ioLog.ErrorContext(ctx, "Failed to write export", applog.FieldOperation, applog.OpExport, applog.FieldError, err)
		return fmt.Errorf("write export: %w", err)
	}
	s.ioLog.DebugContext(ctx, "Store exported",
		applog.FieldOperation, applog.OpExport, applog.FieldMonths, len(s.store.Months), "bytes", len(doc))
	return nil
}

// ExportFilename is the suggested name for an export of this session.
func (s *BudgetService) ExportFilename() string {
	return impexp.Filename(s.month)
}

// Import replaces the whole store with the document in text. On failure
// the current store is left as it was.
func (s *BudgetService) Import(ctx context.Context, text []byte) error {
	next, err := impexp.Import(text)
	if err != nil {
		s.ioLog.WarnContext(ctx, "Import rejected", applog.FieldOperation, applog.OpImport, applog.FieldError, err)
		return err
	}
	return s.replace(ctx, next)
}

// ImportFile reads name from fsys and imports it; reset, if any, runs
// either way.
func (s *BudgetService) ImportFile(ctx context.Context, fsys fs.FS, name string, reset func()) error {
	release := func() {
		s.ioLog.DebugContext(ctx, "Import source released", applog.FieldPath, name)
		if reset != nil {
			reset()
		}
	}
	next, err := impexp.ImportFile(fsys, name, release)
	if err != nil {
		s.ioLog.WarnContext(ctx, "Import rejected",
			applog.FieldOperation, applog.OpImport, applog.FieldPath, name, applog.FieldError, err)
		return err
	}
	return s.replace(ctx, next)
}

func (s *BudgetService) replace(ctx context.Context, next core.Store) error {
	if s.month != "" {
		next = s.ledger.EnsureMonth(next, s.month)
	}
	if err := s.commit(ctx, applog.OpImport, next); err != nil {
		return err
	}
	s.ioLog.InfoContext(ctx, "Store imported", applog.FieldOperation, applog.OpImport, applog.FieldMonths, len(next.Months))
	return nil
}

func (s *BudgetService) ask(ctx context.Context, question string) error {
	ok, err := s.confirm.Confirm(ctx, question)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

// commit adopts next and saves it. The session keeps next even when the
// save fails; the following successful save writes it out.
func (s *BudgetService) commit(ctx context.Context, op string, next core.Store) error {
	s.store = next
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save store", applog.FieldOperation, op, applog.FieldError, err)
		return err
	}
	return nil
}

func find(items []core.Item, id string) (core.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return core.Item{}, false
}
