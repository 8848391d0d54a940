// Package core holds the budget data model and its document format.
//
// This file contains the decimal amount type used for item prices and
// month ceilings, and the permissive parsing of user-entered amounts.
package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency-agnostic decimal value.
// The zero value is 0.
type Amount struct {
	value decimal.Decimal
}

var Zero = Amount{}

// maxScale bounds amounts to the float64 range, about 1e-308 to 1e308.
const maxScale = 308

var errOutOfRange = errors.New("amount out of range")

// inRange reports whether d has a magnitude and precision a float64 could
// carry. Larger exponents make every later sum rescale to millions of digits.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	c := d.Coefficient()
	digits := int64(len(c.Abs(c).String()))
	return exp >= -maxScale && digits+exp <= maxScale+1
}

// A builds an Amount from an integer or float literal, mostly for tests.
func A[T int | int64 | float64](v T) Amount {
	switch x := any(v).(type) {
	case int:
		return Amount{value: decimal.NewFromInt(int64(x))}
	case int64:
		return Amount{value: decimal.NewFromInt(x)}
	case float64:
		return Amount{value: decimal.NewFromFloat(x)}
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a user-entered number.
//
// Surrounding spaces are ignored and a comma is accepted as the decimal
// separator, so "12,50" and " 12.5 " are the same value. Anything that is
// not a decimal number within float64 range is rejected.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-5")    -> -5, nil
//	ParseAmount("abc")   -> 0, error
//	ParseAmount("1e400") -> 0, error
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalidPrice
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || !inRange(d) {
		return Zero, ErrInvalidPrice
	}
	return Amount{value: d}, nil
}

// ParsePrice parses s and requires a strictly positive value.
func ParsePrice(s string) (Amount, error) {
	a, err := ParseAmount(s)
	if err != nil {
		return Zero, err
	}
	if !a.IsPositive() {
		return Zero, ErrInvalidPrice
	}
	return a, nil
}

func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) String() string                   { return a.value.String() }

// StringFixed formats the amount with exactly places decimals, for display.
func (a Amount) StringFixed(places int32) string { return a.value.StringFixed(places) }

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string within
// float64 range. null leaves the amount at zero.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	if !inRange(d) {
		return errOutOfRange
	}
	a.value = d
	return nil
}
