package core

import (
	"errors"
	"strings"
)

// CategoryUncategorized labels records that were added without a category.
const CategoryUncategorized = "uncategorized"

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD or DD-MM-YYYY")
	ErrInvalidAmount = errors.New("invalid amount, expected a positive decimal")
	ErrInvalidMonth  = errors.New("invalid month, expected YYYY-MM or MM-YYYY")
	ErrNotFound      = errors.New("expense not found")
	ErrNoFields      = errors.New("no update fields provided")
)

// Expense is one ledger entry. ID is assigned by the store on creation and
// never changes or gets reused afterwards.
type Expense struct {
	ID       int64
	Date     Date
	Category string
	Amount   Money
	Note     string
}

// NormalizeCategory canonicalizes a raw category label for storage: trims
// surrounding whitespace and lower-cases it. An empty label maps to
// CategoryUncategorized, so the store never sees an empty category.
func NormalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryUncategorized
	}
	return s
}

func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.New("empty category")
	}
	return nil
}
