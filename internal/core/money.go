// Package core holds the domain types of the expense ledger: records,
// monetary amounts, calendar dates and the validation rules that guard them.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount in cents. Amounts only enter the system
// through ParseAmount, so a stored Money is always positive.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to Money with exact semantics.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// performs half-up rounding on the third decimal place. Signs, non-numeric
// input and values <= 0 fail with ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("250.50") -> 25050 cents
//	ParseAmount("12,34")  -> 1234 cents
//	ParseAmount("1.005")  -> 101 cents (rounds up)
//	ParseAmount("-5")     -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	// Normalize decimal comma to dot.
	s = strings.ReplaceAll(s, ",", ".")
	// Only unsigned positive values are allowed.
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Round(2).Shift(2)
	if !cents.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	m := Money{Cents: cents.IntPart()}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Add returns the exact sum of two amounts.
func (m Money) Add(n Money) Money {
	return Money{Cents: m.Cents + n.Cents}
}

// String renders the amount with exactly two decimals, e.g. "250.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
