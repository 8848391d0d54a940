// Package ledger applies budget mutations to a core.Store.
//
// Every mutation returns a new Store and never writes into the Store it was
// given, so earlier snapshots stay valid. Validation failures come back as
// errors together with the unchanged input.
package ledger

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"budget/internal/core"
)

type (
	// Clock returns the current time.
	Clock func() time.Time

	// IDGenerator returns a fresh unique item id.
	IDGenerator func() string

	// ItemUpdate carries the fields to replace on an item. Nil means keep.
	ItemUpdate struct {
		Name  *string
		Price *core.Amount
	}

	Ledger struct {
		now   Clock
		newID IDGenerator
	}

	Option func(*Ledger)
)

// WithClock overrides the creation timestamp source.
func WithClock(c Clock) Option {
	return func(l *Ledger) { l.now = c }
}

// WithIDGenerator overrides the item id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(l *Ledger) { l.newID = g }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now, newID: uuid.NewString}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Now reports the ledger clock.
func (l *Ledger) Now() time.Time { return l.now() }

// EnsureMonth adds an empty month under k when it is missing.
func (l *Ledger) EnsureMonth(s core.Store, k core.MonthKey) core.Store {
	if _, ok := s.Month(k); ok {
		return s
	}
	return s.With(k, core.EmptyMonth())
}

// AddItem appends a new item to month k, creating the month if needed.
func (l *Ledger) AddItem(s core.Store, k core.MonthKey, name, rawPrice string) (core.Store, core.Item, error) {
	name, err := core.ValidateName(name)
	if err != nil {
		return s, core.Item{}, err
	}
	price, err := core.ParsePrice(rawPrice)
	if err != nil {
		return s, core.Item{}, err
	}

	item := core.Item{
		ID:        l.newID(),
		Name:      name,
		Price:     price,
		CreatedAt: l.now(),
	}
	m, _ := l.EnsureMonth(s, k).Month(k)
	items := make([]core.Item, 0, len(m.Items)+1)
	items = append(items, m.Items...)
	m.Items = append(items, item)
	return s.With(k, m), item, nil
}

// RemoveItem drops the item with the given id. Unknown ids and months are
// not an error; the store comes back unchanged.
func (l *Ledger) RemoveItem(s core.Store, k core.MonthKey, id string) core.Store {
	m, ok := s.Month(k)
	if !ok || indexOf(m.Items, id) < 0 {
		return s
	}
	m.Items = slices.DeleteFunc(slices.Clone(m.Items), func(it core.Item) bool { return it.ID == id })
	return s.With(k, m)
}

// UpdateItem replaces the provided fields on the matching item. The id and
// creation time never change. Fields are applied as given; validate them
// with ParseItemFields first.
func (l *Ledger) UpdateItem(s core.Store, k core.MonthKey, id string, u ItemUpdate) core.Store {
	m, ok := s.Month(k)
	if !ok {
		return s
	}
	i := indexOf(m.Items, id)
	if i < 0 {
		return s
	}
	m.Items = slices.Clone(m.Items)
	if u.Name != nil {
		m.Items[i].Name = *u.Name
	}
	if u.Price != nil {
		m.Items[i].Price = *u.Price
	}
	return s.With(k, m)
}

// SetBudget stores the ceiling for month k. Input that is not a number
// clears the ceiling, and so does a negative number.
func (l *Ledger) SetBudget(s core.Store, k core.MonthKey, raw string) core.Store {
	v, err := core.ParseAmount(raw)
	if err != nil || v.IsNegative() {
		v = core.Zero
	}
	m, _ := l.EnsureMonth(s, k).Month(k)
	m.MaxBudget = v
	return s.With(k, m)
}

// ResetMonth discards every item and the ceiling of month k.
func (l *Ledger) ResetMonth(s core.Store, k core.MonthKey) core.Store {
	return s.With(k, core.EmptyMonth())
}

// ParseItemFields validates edited fields with the same rules as AddItem.
// A nil argument means the field was not edited.
func ParseItemFields(name, rawPrice *string) (ItemUpdate, error) {
	var u ItemUpdate
	if name != nil {
		n, err := core.ValidateName(*name)
		if err != nil {
			return ItemUpdate{}, err
		}
		u.Name = &n
	}
	if rawPrice != nil {
		p, err := core.ParsePrice(*rawPrice)
		if err != nil {
			return ItemUpdate{}, err
		}
		u.Price = &p
	}
	return u, nil
}

// MonthKeys lists the months of s in ascending order.
func MonthKeys(s core.Store) []core.MonthKey {
	keys := make([]core.MonthKey, 0, len(s.Months))
	for k := range s.Months {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func indexOf(items []core.Item, id string) int {
	return slices.IndexFunc(items, func(it core.Item) bool { return it.ID == id })
}
