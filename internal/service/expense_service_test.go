package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/storage"
)

func newTestService(t *testing.T) *ExpenseService {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	svc := NewExpenseService(repo)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func strptr(s string) *string { return &s }

func TestAdd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, AddParams{
		Amount:   "250.50",
		Date:     "2025-10-01",
		Category: "food",
		Note:     "lunch",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID != 1 {
		t.Errorf("id = %d, want 1", e.ID)
	}
	if e.Amount.String() != "250.50" || e.Date.String() != "2025-10-01" ||
		e.Category != "food" || e.Note != "lunch" {
		t.Errorf("unexpected record: %+v", e)
	}
}

func TestAddNormalizesInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	e, err := svc.Add(ctx, AddParams{
		Amount:   "12,34",
		Date:     "01-10-2025", // day-first input form
		Category: "  FOOD ",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Date.String() != "2025-10-01" {
		t.Errorf("date %q not canonicalized", e.Date)
	}
	if e.Category != "food" {
		t.Errorf("category %q not normalized", e.Category)
	}
	if e.Amount.Cents != 1234 {
		t.Errorf("amount = %d cents, want 1234", e.Amount.Cents)
	}

	empty, err := svc.Add(ctx, AddParams{Amount: "5", Date: "2025-10-02"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if empty.Category != core.CategoryUncategorized {
		t.Errorf("empty category mapped to %q", empty.Category)
	}
}

func TestAddFailFast(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		p    AddParams
		want error
	}{
		{"negative amount", AddParams{Amount: "-5", Date: "2025-10-01"}, core.ErrInvalidAmount},
		{"zero amount", AddParams{Amount: "0", Date: "2025-10-01"}, core.ErrInvalidAmount},
		{"garbage amount", AddParams{Amount: "lots", Date: "2025-10-01"}, core.ErrInvalidAmount},
		{"bad date", AddParams{Amount: "5", Date: "2025-02-30"}, core.ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tc.p); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// No partial writes: the store must still be empty.
	records, err := svc.List(ctx, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("rejected adds left %d records behind", len(records))
	}
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, AddParams{
		Amount: "250.50", Date: "2025-10-01", Category: "food", Note: "lunch",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, created.ID, UpdateParams{
		Amount: strptr("300"),
		Note:   strptr("dinner"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount.String() != "300.00" || updated.Note != "dinner" {
		t.Errorf("supplied fields not applied: %+v", updated)
	}
	if updated.Date.String() != "2025-10-01" || updated.Category != "food" {
		t.Errorf("unsupplied fields changed: %+v", updated)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, AddParams{Amount: "10", Date: "2025-10-01"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(ctx, created.ID, UpdateParams{}); !errors.Is(err, core.ErrNoFields) {
		t.Errorf("empty update: expected ErrNoFields, got %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, UpdateParams{Amount: strptr("-1")}); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Update(ctx, 99, UpdateParams{Note: strptr("x")}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Failed updates must not have mutated the record.
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount.Cents != 1000 {
		t.Fatalf("record mutated by failed update: %+v", got)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, AddParams{Amount: "10", Date: "2025-10-01"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []AddParams{
		{Amount: "10", Date: "2025-10-05", Category: "food"},
		{Amount: "20", Date: "2025-10-01", Category: "transport"},
		{Amount: "30", Date: "2025-11-01", Category: "Food"}, // normalized on write
	}
	for _, p := range seed {
		if _, err := svc.Add(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.List(ctx, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Fatalf("unfiltered list not in id order: %+v", all)
	}

	// Category matching is case-normalized on both sides.
	food, err := svc.List(ctx, Filter{Category: "FOOD"})
	if err != nil {
		t.Fatal(err)
	}
	if len(food) != 2 {
		t.Fatalf("got %d food records, want 2", len(food))
	}

	// Date bounds accept the day-first input form too.
	ranged, err := svc.List(ctx, Filter{Start: "01-10-2025", End: "2025-10-31"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 2 {
		t.Fatalf("got %d records in range, want 2", len(ranged))
	}

	if _, err := svc.List(ctx, Filter{Start: "not-a-date"}); !errors.Is(err, core.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	inverted, err := svc.List(ctx, Filter{Start: "2025-12-01", End: "2025-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	if len(inverted) != 0 {
		t.Fatalf("inverted range returned %d records", len(inverted))
	}
}

func TestSummarize(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []AddParams{
		{Amount: "250.50", Date: "2025-10-01", Category: "food"},
		{Amount: "100", Date: "2025-10-15", Category: "food"},
		{Amount: "75.25", Date: "2025-10-20", Category: "transport"},
		{Amount: "999", Date: "2025-11-02", Category: "rent"},
	}
	for _, p := range seed {
		if _, err := svc.Add(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("plain total", func(t *testing.T) {
		sum, err := svc.Summarize(ctx, SummarizeParams{})
		if err != nil {
			t.Fatal(err)
		}
		if sum.Total.String() != "1424.75" {
			t.Fatalf("total = %s, want 1424.75", sum.Total)
		}
		if sum.ByCategory != nil {
			t.Fatalf("ungrouped summary has groups: %+v", sum.ByCategory)
		}
	})

	t.Run("month restriction", func(t *testing.T) {
		sum, err := svc.Summarize(ctx, SummarizeParams{Month: "2025-10"})
		if err != nil {
			t.Fatal(err)
		}
		if sum.Total.String() != "425.75" {
			t.Fatalf("october total = %s, want 425.75", sum.Total)
		}

		// Month accepts the MM-YYYY form too.
		alt, err := svc.Summarize(ctx, SummarizeParams{Month: "10-2025"})
		if err != nil {
			t.Fatal(err)
		}
		if alt.Total != sum.Total {
			t.Fatalf("month forms disagree: %s vs %s", alt.Total, sum.Total)
		}
	})

	t.Run("grouped totals match ungrouped total", func(t *testing.T) {
		sum, err := svc.Summarize(ctx, SummarizeParams{ByCategory: true, Month: "2025-10"})
		if err != nil {
			t.Fatal(err)
		}
		if len(sum.ByCategory) != 2 {
			t.Fatalf("got %d groups, want 2 (rent has no october records)", len(sum.ByCategory))
		}
		var grouped core.Money
		for _, g := range sum.ByCategory {
			grouped = grouped.Add(g.Total)
		}
		if grouped != sum.Total {
			t.Fatalf("grouped sum %s != total %s", grouped, sum.Total)
		}
		// Largest group first.
		if sum.ByCategory[0].Category != "food" {
			t.Fatalf("groups not ordered by total: %+v", sum.ByCategory)
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		if _, err := svc.Summarize(ctx, SummarizeParams{Month: "october"}); !errors.Is(err, core.ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})
}
