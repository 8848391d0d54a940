package storage

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	applog "budget/internal/log"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "db", "budget.db"), nil)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryGetSet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, ok, err := repo.Get(ctx, "finance-store"); ok || err != nil {
		t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
	}
	for _, v := range []string{`{"months":{}}`, `{"months":{"2025-01":{"maxBudget":0,"items":[]}}}`} {
		if err := repo.Set(ctx, "finance-store", v); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, ok, err := repo.Get(ctx, "finance-store")
		if err != nil || !ok || got != v {
			t.Fatalf("unexpected get: %q ok=%v err=%v", got, ok, err)
		}
	}
}

func TestMigrationsAreRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")
	for i := 0; i < 2; i++ {
		repo, err := NewSQLiteRepository(path, nil)
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		if err := repo.Set(context.Background(), "k", "v"); err != nil {
			t.Fatalf("set #%d: %v", i, err)
		}
		repo.Close()
	}
}

func TestSetLogsUnderStorageComponent(t *testing.T) {
	var logs bytes.Buffer
	logger := applog.New(applog.Config{Level: slog.LevelDebug, Component: applog.ComponentBackend, Output: &logs})
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "budget.db"), logger)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()

	if err := repo.Set(context.Background(), "finance-store", `{"months":{}}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	out := logs.String()
	if !strings.Contains(out, "component=storage key=finance-store") || strings.Contains(out, "component=backend") {
		t.Fatalf("unexpected log output %q", out)
	}
}
