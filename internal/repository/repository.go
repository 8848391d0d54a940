// Package repository loads and saves the budget store through a key-value
// capability. The whole store lives under one key as one JSON document.
package repository

import (
	"context"
	"fmt"

	"budget/internal/core"
	"budget/internal/kv"
	applog "budget/internal/log"
)

// DefaultKey is the storage key of the serialized store.
const DefaultKey = "finance-store"

type Repository struct {
	kv     kv.KeyValue
	key    string
	logger *applog.Logger
}

func New(store kv.KeyValue, key string, logger *applog.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Repository{kv: store, key: key, logger: logger.WithComponent(applog.ComponentRepository)}
}

// Key returns the storage key in use.
func (r *Repository) Key() string { return r.key }

// Load reads the store. A missing, unreadable or malformed value yields an
// empty store; the problem is only logged.
func (r *Repository) Load(ctx context.Context) core.Store {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to read store, starting empty",
			applog.FieldOperation, applog.OpLoad, applog.FieldKey, r.key, applog.FieldError, err)
		return core.NewStore()
	}
	if !ok {
		r.logger.DebugContext(ctx, "No stored data, starting empty", applog.FieldKey, r.key)
		return core.NewStore()
	}
	s, err := core.DecodeStore([]byte(raw))
	if err != nil {
		r.logger.WarnContext(ctx, "Stored data is malformed, starting empty",
			applog.FieldOperation, applog.OpLoad, applog.FieldKey, r.key, applog.FieldError, err)
		return core.NewStore()
	}
	r.logger.DebugContext(ctx, "Store loaded", applog.FieldKey, r.key, applog.FieldMonths, len(s.Months))
	return s
}

// Save writes s under the repository key.
func (r *Repository) Save(ctx context.Context, s core.Store) error {
	b, err := core.EncodeStore(s, false)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, r.key, string(b)); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}
