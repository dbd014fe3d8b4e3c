// Package storage owns the on-disk schema and the durable CRUD operations
// over expense records, backed by a single SQLite database file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the sole owner of record identity and durability.
// Every mutating operation commits before returning.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath and
// brings its schema up to date.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense persists a new record and returns it with the id the store
// assigned. Ids are monotonic and never reused after a delete (AUTOINCREMENT).
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	row, err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		Date:        e.Date.String(),
		Category:    e.Category,
		AmountCents: e.Amount.Cents,
		Note:        e.Note,
	})
	if err != nil {
		return core.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", row.ID,
		"amount_cents", row.AmountCents,
		"date", row.Date,
		"category", row.Category)

	return toCore(row)
}

// GetExpense retrieves a single record by id.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id int64) (core.Expense, error) {
	row, err := r.queries.GetExpense(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("expense id=%d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("get expense: %w", err)
	}
	return toCore(row)
}

// UpdateExpense writes the full merged record back under its id.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	row, err := r.queries.UpdateExpense(ctx, UpdateExpenseParams{
		ID:          e.ID,
		Date:        e.Date.String(),
		Category:    e.Category,
		AmountCents: e.Amount.Cents,
		Note:        e.Note,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, fmt.Errorf("expense id=%d: %w", e.ID, core.ErrNotFound)
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("update expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense updated",
		"id", row.ID,
		"amount_cents", row.AmountCents,
		"date", row.Date,
		"category", row.Category)

	return toCore(row)
}

// DeleteExpense removes a record permanently. Deleting a missing id always
// fails the same way, with core.ErrNotFound.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense id=%d: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// ListExpenses returns records matching every supplied constraint, ordered
// by id ascending.
func (r *SQLiteRepository) ListExpenses(ctx context.Context, params ListExpensesParams) ([]core.Expense, error) {
	rows, err := r.queries.ListExpenses(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	expenses := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		e, err := toCore(row)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// SumAmount totals all records, or only those in month when it is non-zero.
func (r *SQLiteRepository) SumAmount(ctx context.Context, month core.Month) (core.Money, error) {
	total, err := r.queries.SumAmount(ctx, monthPrefix(month))
	if err != nil {
		return core.Money{}, fmt.Errorf("sum amount: %w", err)
	}
	return core.Money{Cents: total}, nil
}

// SumByCategory totals per category, largest first, with the same optional
// month restriction as SumAmount.
func (r *SQLiteRepository) SumByCategory(ctx context.Context, month core.Month) ([]core.CategoryTotal, error) {
	rows, err := r.queries.SumByCategory(ctx, monthPrefix(month))
	if err != nil {
		return nil, fmt.Errorf("sum by category: %w", err)
	}

	totals := make([]core.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, core.CategoryTotal{
			Category: row.Category,
			Total:    core.Money{Cents: row.AmountCents},
		})
	}
	return totals, nil
}

func monthPrefix(m core.Month) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

// toCore maps a table row to the domain type. Dates are stored canonically,
// so a parse failure here means the file was tampered with.
func toCore(row Expense) (core.Expense, error) {
	d, err := core.ParseDate(row.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("stored date %q: %w", row.Date, err)
	}
	return core.Expense{
		ID:       row.ID,
		Date:     d,
		Category: row.Category,
		Amount:   core.Money{Cents: row.AmountCents},
		Note:     row.Note,
	}, nil
}
