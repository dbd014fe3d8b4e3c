// Package service validates raw user input and drives the record store. It
// is the only path the CLI uses to reach stored records.
package service

import (
	"context"
	"fmt"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/storage"
)

// ExpenseService owns the repository for the lifetime of one command.
type ExpenseService struct {
	repo *storage.SQLiteRepository
}

func NewExpenseService(repo *storage.SQLiteRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// AddParams carry the raw field strings for a new record.
type AddParams struct {
	Amount   string
	Date     string
	Category string
	Note     string
}

// Add validates and persists a new expense. Validation failures are
// reported before the store is touched, so a rejected add never writes.
func (s *ExpenseService) Add(ctx context.Context, p AddParams) (core.Expense, error) {
	amount, err := core.ParseAmount(p.Amount)
	if err != nil {
		return core.Expense{}, fmt.Errorf("amount %q: %w", p.Amount, err)
	}
	date, err := core.ParseDate(p.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("date %q: %w", p.Date, err)
	}

	return s.repo.CreateExpense(ctx, core.Expense{
		Date:     date,
		Category: core.NormalizeCategory(p.Category),
		Amount:   amount,
		Note:     p.Note,
	})
}

// Get retrieves a single record by id.
func (s *ExpenseService) Get(ctx context.Context, id int64) (core.Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

// UpdateParams carry the optional raw fields of an update. A nil field means
// "leave unchanged".
type UpdateParams struct {
	Amount   *string
	Date     *string
	Category *string
	Note     *string
}

func (p UpdateParams) empty() bool {
	return p.Amount == nil && p.Date == nil && p.Category == nil && p.Note == nil
}

// Update applies the supplied fields to an existing record and returns the
// updated record. Every supplied field is validated before the record is
// read, merged and written back; supplying no fields at all is an error.
func (s *ExpenseService) Update(ctx context.Context, id int64, p UpdateParams) (core.Expense, error) {
	if p.empty() {
		return core.Expense{}, core.ErrNoFields
	}

	var (
		amount core.Money
		date   core.Date
		err    error
	)
	if p.Amount != nil {
		if amount, err = core.ParseAmount(*p.Amount); err != nil {
			return core.Expense{}, fmt.Errorf("amount %q: %w", *p.Amount, err)
		}
	}
	if p.Date != nil {
		if date, err = core.ParseDate(*p.Date); err != nil {
			return core.Expense{}, fmt.Errorf("date %q: %w", *p.Date, err)
		}
	}

	current, err := s.repo.GetExpense(ctx, id)
	if err != nil {
		return core.Expense{}, err
	}

	if p.Amount != nil {
		current.Amount = amount
	}
	if p.Date != nil {
		current.Date = date
	}
	if p.Category != nil {
		current.Category = core.NormalizeCategory(*p.Category)
	}
	if p.Note != nil {
		current.Note = *p.Note
	}

	return s.repo.UpdateExpense(ctx, current)
}

// Delete removes a record permanently.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}

// Close releases the underlying store.
func (s *ExpenseService) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
