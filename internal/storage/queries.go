package storage

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Queries holds the SQL statements for the expenses table, one method per
// statement with a typed params/row struct, so the repository above it never
// touches raw SQL.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Expense is the raw table row. The repository maps it to core.Expense.
type Expense struct {
	ID          int64
	Date        string
	Category    string
	AmountCents int64
	Note        string
}

const createExpense = `
INSERT INTO expenses (date, category, amount_cents, note)
VALUES (?, ?, ?, ?)
RETURNING id, date, category, amount_cents, note
`

type CreateExpenseParams struct {
	Date        string
	Category    string
	AmountCents int64
	Note        string
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, createExpense, arg.Date, arg.Category, arg.AmountCents, arg.Note)
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.AmountCents, &e.Note)
	return e, err
}

const getExpense = `
SELECT id, date, category, amount_cents, note
FROM expenses
WHERE id = ?
`

func (q *Queries) GetExpense(ctx context.Context, id int64) (Expense, error) {
	row := q.db.QueryRowContext(ctx, getExpense, id)
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.AmountCents, &e.Note)
	return e, err
}

const updateExpense = `
UPDATE expenses
SET date = ?, category = ?, amount_cents = ?, note = ?
WHERE id = ?
RETURNING id, date, category, amount_cents, note
`

type UpdateExpenseParams struct {
	ID          int64
	Date        string
	Category    string
	AmountCents int64
	Note        string
}

func (q *Queries) UpdateExpense(ctx context.Context, arg UpdateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, updateExpense, arg.Date, arg.Category, arg.AmountCents, arg.Note, arg.ID)
	var e Expense
	err := row.Scan(&e.ID, &e.Date, &e.Category, &e.AmountCents, &e.Note)
	return e, err
}

const deleteExpense = `
DELETE FROM expenses
WHERE id = ?
`

// DeleteExpense removes a row and reports how many rows matched.
func (q *Queries) DeleteExpense(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteExpense, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListExpensesParams are the optional list constraints. Zero values mean
// "no constraint"; the WHERE clause is composed conjunctively from the rest.
type ListExpensesParams struct {
	Category  string
	DateStart string
	DateEnd   string
	Limit     int64
}

func (q *Queries) ListExpenses(ctx context.Context, arg ListExpensesParams) ([]Expense, error) {
	var (
		where []string
		args  []any
	)
	if arg.Category != "" {
		where = append(where, "category = ?")
		args = append(args, arg.Category)
	}
	if arg.DateStart != "" {
		where = append(where, "date >= ?")
		args = append(args, arg.DateStart)
	}
	if arg.DateEnd != "" {
		where = append(where, "date <= ?")
		args = append(args, arg.DateEnd)
	}

	var sb strings.Builder
	sb.WriteString("SELECT id, date, category, amount_cents, note FROM expenses")
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY id ASC")
	if arg.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.FormatInt(arg.Limit, 10))
	}

	rows, err := q.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.AmountCents, &e.Note); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

const sumAmount = `
SELECT COALESCE(SUM(amount_cents), 0)
FROM expenses
`

// SumAmount totals amount_cents, optionally restricted to dates with the
// given "YYYY-MM" prefix.
func (q *Queries) SumAmount(ctx context.Context, monthPrefix string) (int64, error) {
	query := sumAmount
	var args []any
	if monthPrefix != "" {
		query += "WHERE date LIKE ?\n"
		args = append(args, monthPrefix+"-%")
	}
	var total int64
	err := q.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

type CategorySumRow struct {
	Category    string
	AmountCents int64
}

// SumByCategory totals amount_cents per category, largest first, optionally
// restricted to dates with the given "YYYY-MM" prefix. Categories with no
// matching rows do not appear.
func (q *Queries) SumByCategory(ctx context.Context, monthPrefix string) ([]CategorySumRow, error) {
	query := "SELECT category, SUM(amount_cents) FROM expenses"
	var args []any
	if monthPrefix != "" {
		query += " WHERE date LIKE ?"
		args = append(args, monthPrefix+"-%")
	}
	query += " GROUP BY category ORDER BY SUM(amount_cents) DESC, category ASC"

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []CategorySumRow
	for rows.Next() {
		var r CategorySumRow
		if err := rows.Scan(&r.Category, &r.AmountCents); err != nil {
			return nil, err
		}
		sums = append(sums, r)
	}
	return sums, rows.Err()
}
