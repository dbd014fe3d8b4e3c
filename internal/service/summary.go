package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"
)

// SummarizeParams select the summary shape.
type SummarizeParams struct {
	ByCategory bool
	Month      string // "YYYY-MM" or "MM-YYYY"; empty means all records
}

// Summarize totals the matching records, optionally grouped by category.
// The total and the per-category aggregates are independent queries, so they
// run under one errgroup. Grouped totals always add up to the ungrouped
// total for the same month filter.
func (s *ExpenseService) Summarize(ctx context.Context, p SummarizeParams) (core.Summary, error) {
	var month core.Month
	if p.Month != "" {
		m, err := core.ParseMonth(p.Month)
		if err != nil {
			return core.Summary{}, fmt.Errorf("month %q: %w", p.Month, err)
		}
		month = m
	}

	var summary core.Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.repo.SumAmount(gctx, month)
		if err != nil {
			return err
		}
		summary.Total = total
		return nil
	})

	if p.ByCategory {
		g.Go(func() error {
			groups, err := s.repo.SumByCategory(gctx, month)
			if err != nil {
				return err
			}
			summary.ByCategory = groups
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return core.Summary{}, err
	}
	return summary, nil
}
