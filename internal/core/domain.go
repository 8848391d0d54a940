package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type (
	// MonthKey identifies one budget period, formatted YYYY-MM.
	MonthKey string

	Item struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Price     Amount    `json:"price"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// MonthData holds the ceiling and the ordered items of one month.
	// A zero MaxBudget means no ceiling is enforced.
	MonthData struct {
		MaxBudget Amount `json:"maxBudget"`
		Items     []Item `json:"items"`
	}

	// Store is the whole multi-month document.
	Store struct {
		Months map[MonthKey]MonthData `json:"months"`
	}
)

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidMonthKey = errors.New("invalid month key")
	ErrInvalidBudget   = errors.New("invalid budget")
	ErrDuplicateID     = errors.New("duplicate item id")
	ErrEmptyID         = errors.New("empty item id")
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseMonthKey trims s and checks it against the YYYY-MM pattern.
func ParseMonthKey(s string) (MonthKey, error) {
	s = strings.TrimSpace(s)
	if !monthKeyPattern.MatchString(s) {
		return "", ErrInvalidMonthKey
	}
	return MonthKey(s), nil
}

// MonthOf returns the month key containing t.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

func (k MonthKey) Validate() error {
	if !monthKeyPattern.MatchString(string(k)) {
		return ErrInvalidMonthKey
	}
	return nil
}

func (k MonthKey) String() string { return string(k) }

// NewStore returns an empty store.
func NewStore() Store {
	return Store{Months: map[MonthKey]MonthData{}}
}

// EmptyMonth returns a month with no ceiling and no items.
func EmptyMonth() MonthData {
	return MonthData{MaxBudget: Zero, Items: []Item{}}
}

// Month returns the data stored under k and whether it exists.
func (s Store) Month(k MonthKey) (MonthData, bool) {
	m, ok := s.Months[k]
	return m, ok
}

// With returns a copy of s where k maps to m. s is left untouched.
func (s Store) With(k MonthKey, m MonthData) Store {
	months := make(map[MonthKey]MonthData, len(s.Months)+1)
	for key, v := range s.Months {
		months[key] = v
	}
	months[k] = m
	return Store{Months: months}
}

// ValidateName trims name and rejects it when nothing is left.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}

func (m MonthData) Validate() error {
	if m.MaxBudget.IsNegative() {
		return ErrInvalidBudget
	}
	seen := make(map[string]struct{}, len(m.Items))
	for _, it := range m.Items {
		if it.ID == "" {
			return ErrEmptyID
		}
		if _, ok := seen[it.ID]; ok {
			return ErrDuplicateID
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

// Validate checks every month key and month value of the store.
func (s Store) Validate() error {
	for k, m := range s.Months {
		if err := k.Validate(); err != nil {
			return fmt.Errorf("month %s: %w", k, err)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("month %s: %w", k, err)
		}
	}
	return nil
}
