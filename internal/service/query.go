package service

import (
	"context"
	"fmt"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/storage"
)

// Filter is the conjunctive set of optional list constraints, as raw CLI
// input. Zero values mean "no constraint".
type Filter struct {
	Category string // exact match after normalization
	Start    string // inclusive lower date bound, either accepted form
	End      string // inclusive upper date bound
	Limit    int    // maximum records returned, applied after ordering
}

// List returns the records matching every supplied constraint, ordered by
// id ascending. A start bound after the end bound yields an empty result,
// not an error.
func (s *ExpenseService) List(ctx context.Context, f Filter) ([]core.Expense, error) {
	params := storage.ListExpensesParams{Limit: int64(f.Limit)}

	if f.Category != "" {
		params.Category = core.NormalizeCategory(f.Category)
	}
	if f.Start != "" {
		d, err := core.ParseDate(f.Start)
		if err != nil {
			return nil, fmt.Errorf("start date %q: %w", f.Start, err)
		}
		params.DateStart = d.String()
	}
	if f.End != "" {
		d, err := core.ParseDate(f.End)
		if err != nil {
			return nil, fmt.Errorf("end date %q: %w", f.End, err)
		}
		params.DateEnd = d.String()
	}

	return s.repo.ListExpenses(ctx, params)
}
