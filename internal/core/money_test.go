package core

import (
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.0", "1", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{" 2.50 ", "2.5", true},
		{"-5", "-5", true},
		{"0", "0", true},
		{"1e2", "100", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"NaN", "", false},
		{"Inf", "", false},
		{"1e308", "1" + strings.Repeat("0", 308), true},
		{"1e-308", "0." + strings.Repeat("0", 307) + "1", true},
		{"1e309", "", false},
		{"1e400", "", false},
		{"1e10000000", "", false},
		{"1e-400", "", false},
		{"1" + strings.Repeat("0", 400), "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.String() != tc.out {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error, got %s", tc.in, got)
		}
	}
}

func TestParsePrice(t *testing.T) {
	for _, in := range []string{"-5", "0", "0.00", "abc", "", "1e400", "1e10000000"} {
		if _, err := ParsePrice(in); err != ErrInvalidPrice {
			t.Fatalf("%q expected ErrInvalidPrice, got %v", in, err)
		}
	}
	if p, err := ParsePrice("0.01"); err != nil || !p.Equal(A(0.01)) {
		t.Fatalf("expected 0.01, got %s err=%v", p, err)
	}
}

func TestAmountArithmetic(t *testing.T) {
	sum := A(0.1).Add(A(0.2))
	if !sum.Equal(A(0.3)) {
		t.Fatalf("expected exact 0.3, got %s", sum)
	}
	if !Max(A(150).Sub(A(100)), Zero).Equal(A(50)) {
		t.Fatalf("expected 50")
	}
	if !Max(A(80).Sub(A(100)), Zero).IsZero() {
		t.Fatalf("expected 0")
	}
	if !Zero.IsZero() || Zero.IsPositive() || Zero.IsNegative() {
		t.Fatalf("zero value misbehaves: %s", Zero)
	}
}

func TestAmountJSON(t *testing.T) {
	b, err := A(12.5).MarshalJSON()
	if err != nil || string(b) != "12.5" {
		t.Fatalf("expected bare number 12.5, got %s err=%v", b, err)
	}
	var a Amount
	if err := a.UnmarshalJSON([]byte(`"7.25"`)); err != nil || !a.Equal(A(7.25)) {
		t.Fatalf("quoted decode: got %s err=%v", a, err)
	}
	if err := a.UnmarshalJSON([]byte(`true`)); err == nil {
		t.Fatalf("expected error for boolean")
	}
	for _, in := range []string{`1e400`, `1e10000000`, `"1e10000000"`} {
		var big Amount
		if err := big.UnmarshalJSON([]byte(in)); err == nil {
			t.Fatalf("%s expected out of range error, got %s", in, big)
		}
	}
	var null Amount
	if err := null.UnmarshalJSON([]byte(`null`)); err != nil || !null.IsZero() {
		t.Fatalf("null decode: got %s err=%v", null, err)
	}
}
