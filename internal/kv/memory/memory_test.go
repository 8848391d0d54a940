package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("unexpected get: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestNewFromFilesSeeds(t *testing.T) {
	dir := t.TempDir()
	s := NewFromFiles(dir, "store")
	if _, ok, _ := s.Get(context.Background(), "store"); ok {
		t.Fatalf("expected nothing seeded when files missing")
	}

	if err := os.WriteFile(filepath.Join(dir, "store.json"), []byte(`{"months":{}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s = NewFromFiles(dir, "store", "other")
	v, ok, _ := s.Get(context.Background(), "store")
	if !ok || v != `{"months":{}}` {
		t.Fatalf("unexpected seed: %q ok=%v", v, ok)
	}
	if _, ok, _ := s.Get(context.Background(), "other"); ok {
		t.Fatalf("unexpected value for other")
	}
}
