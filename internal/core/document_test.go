package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleStore() Store {
	created := time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)
	return Store{Months: map[MonthKey]MonthData{
		"2025-01": {
			MaxBudget: A(100),
			Items: []Item{
				{ID: "a", Name: "groceries", Price: A(50), CreatedAt: created},
				{ID: "b", Name: "cinema", Price: A(12.75), CreatedAt: created.Add(time.Hour)},
			},
		},
		"2025-02": EmptyMonth(),
	}}
}

func TestDecodeStoreRejectsWrongShapes(t *testing.T) {
	cases := []string{
		``,
		`not json`,
		`null`,
		`[]`,
		`"months"`,
		`42`,
		`{}`,
		`{"other": {}}`,
		`{"months": "not-an-object"}`,
		`{"months": null}`,
		`{"months": []}`,
		`{"months": {"2025-01": 5}}`,
		`{"months": {"2025-01": {"maxBudget": "abc", "items": []}}}`,
		`{"months": {"2025-01": {"maxBudget": 1e400, "items": []}}}`,
		`{"months": {"2025-01": {"maxBudget": 1e10000000, "items": []}}}`,
		`{"months": {"2025-01": {"maxBudget": 0, "items": [5]}}}`,
		`{"months": {"2025-01": {"maxBudget": 0, "items": {}}}}`,
		`{"months": {"January": {"maxBudget": 0, "items": []}}}`,
		`{"months": {"2025-01": {"maxBudget": -3, "items": []}}}`,
		`{"months": {"2025-01": {"maxBudget": 0, "items": [{"id":"x","name":"a","price":1},{"id":"x","name":"b","price":2}]}}}`,
	}
	for _, in := range cases {
		s, err := DecodeStore([]byte(in))
		if !errors.Is(err, ErrMalformedDocument) {
			t.Fatalf("%q expected ErrMalformedDocument, got store=%v err=%v", in, s, err)
		}
		var de *DocumentError
		if !errors.As(err, &de) || de.Reason == "" {
			t.Fatalf("%q expected DocumentError with a reason, got %v", in, err)
		}
	}
}

func TestDecodeStoreAcceptsMinimalDocuments(t *testing.T) {
	s, err := DecodeStore([]byte(`{"months": {}}`))
	if err != nil || s.Months == nil || len(s.Months) != 0 {
		t.Fatalf("expected empty store, got %v err=%v", s, err)
	}

	s, err = DecodeStore([]byte(`{"months": {"2025-03": {"maxBudget": 20}}, "version": 2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := s.Months["2025-03"]
	if m.Items == nil || len(m.Items) != 0 || !m.MaxBudget.Equal(A(20)) {
		t.Fatalf("unexpected month: %+v", m)
	}
}

func TestDecodeStoreMissingPriceIsZero(t *testing.T) {
	s, err := DecodeStore([]byte(`{"months": {"2025-03": {"maxBudget": 0, "items": [{"id":"x","name":"a"}]}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := s.Months["2025-03"].Items[0].Price; !p.IsZero() {
		t.Fatalf("expected zero price, got %s", p)
	}
}

func TestDecodeStoreUnreadablePriceIsZero(t *testing.T) {
	doc := `{"months": {
		"2025-01": {"maxBudget": 100, "items": [
			{"id":"a","name":"ok","price":12.5},
			{"id":"b","name":"text","price":"abc"},
			{"id":"c","name":"null","price":null},
			{"id":"d","name":"huge","price":1e10000000},
			{"id":"e","name":"big","price":1e400}
		]},
		"2025-02": {"maxBudget": 0, "items": [{"id":"f","name":"rent","price":"700"}]}
	}}`
	s, err := DecodeStore([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Months) != 2 {
		t.Fatalf("expected both months kept, got %d", len(s.Months))
	}
	items := s.Months["2025-01"].Items
	if len(items) != 5 || !items[0].Price.Equal(A(12.5)) {
		t.Fatalf("unexpected items: %+v", items)
	}
	for _, it := range items[1:] {
		if !it.Price.IsZero() {
			t.Fatalf("item %s: expected zero price, got %s", it.ID, it.Price)
		}
		if it.Name == "" || it.ID == "" {
			t.Fatalf("item fields lost: %+v", it)
		}
	}
	if p := s.Months["2025-02"].Items[0].Price; !p.Equal(A(700)) {
		t.Fatalf("expected 700, got %s", p)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleStore()
	for _, pretty := range []bool{false, true} {
		b, err := EncodeStore(want, pretty)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := DecodeStore(b)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeStoreShape(t *testing.T) {
	s := Store{Months: map[MonthKey]MonthData{"2025-02": {MaxBudget: Zero}}}
	b, err := EncodeStore(s, true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"months": {`, `"2025-02": {`, `"maxBudget": 0`, `"items": []`, "\n  "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if s.Months["2025-02"].Items != nil {
		t.Fatalf("encode mutated its input")
	}
}
