package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseMonthKey(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-01", true},
		{" 2025-12 ", true},
		{"2025-1", false},
		{"25-01", false},
		{"2025/01", false},
		{"2025-01-01", false},
		{"", false},
	}
	for _, tc := range cases {
		k, err := ParseMonthKey(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q expected ok, got %v", tc.in, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidMonthKey) {
			t.Fatalf("%q expected ErrInvalidMonthKey, got key=%q err=%v", tc.in, k, err)
		}
	}
}

func TestMonthOf(t *testing.T) {
	got := MonthOf(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC))
	if got != "2025-03" {
		t.Fatalf("expected 2025-03, got %s", got)
	}
}

func TestValidateName(t *testing.T) {
	if n, err := ValidateName("  coffee "); err != nil || n != "coffee" {
		t.Fatalf("expected trimmed name, got %q err=%v", n, err)
	}
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := ValidateName(in); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q expected ErrInvalidName, got %v", in, err)
		}
	}
}

func TestStoreWithLeavesOriginalUntouched(t *testing.T) {
	s := NewStore()
	s2 := s.With("2025-01", EmptyMonth())
	if _, ok := s.Month("2025-01"); ok {
		t.Fatalf("original store mutated")
	}
	if _, ok := s2.Month("2025-01"); !ok {
		t.Fatalf("new store missing month")
	}
}

func TestStoreValidate(t *testing.T) {
	item := func(id string) Item { return Item{ID: id, Name: "x", Price: A(1)} }
	cases := []struct {
		name string
		s    Store
		want error
	}{
		{"empty", NewStore(), nil},
		{"good", Store{Months: map[MonthKey]MonthData{"2025-01": {MaxBudget: A(10), Items: []Item{item("a"), item("b")}}}}, nil},
		{"bad key", Store{Months: map[MonthKey]MonthData{"January": EmptyMonth()}}, ErrInvalidMonthKey},
		{"negative budget", Store{Months: map[MonthKey]MonthData{"2025-01": {MaxBudget: A(-1)}}}, ErrInvalidBudget},
		{"duplicate id", Store{Months: map[MonthKey]MonthData{"2025-01": {Items: []Item{item("a"), item("a")}}}}, ErrDuplicateID},
		{"empty id", Store{Months: map[MonthKey]MonthData{"2025-01": {Items: []Item{item("")}}}}, ErrEmptyID},
	}
	for _, tc := range cases {
		err := tc.s.Validate()
		if tc.want == nil && err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}
