package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/service"
)

type summaryCmd struct {
	groupBy string
	month   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print spending totals" }
func (*summaryCmd) Usage() string {
	return `expenses summary [-group-by category] [-month <YYYY-MM|MM-YYYY>]

  Prints the total spent, optionally restricted to one month and broken
  down by category (largest first).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.groupBy, "group-by", "", "Break the total down; 'category' is the only grouping.")
	f.StringVar(&c.month, "month", "", "Restrict to one month, YYYY-MM or MM-YYYY.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.groupBy != "" && c.groupBy != "category" {
		return usageError(fmt.Sprintf("unknown -group-by value %q, only 'category' is supported", c.groupBy))
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	sum, err := a.service.Summarize(ctx, service.SummarizeParams{
		ByCategory: c.groupBy == "category",
		Month:      c.month,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Total spent: %s\n", sum.Total)
	if c.groupBy == "category" {
		fmt.Println()
		fmt.Println("By category:")
		for _, g := range sum.ByCategory {
			fmt.Printf("  %-12s : %s\n", g.Category, g.Total)
		}
	}

	return subcommands.ExitSuccess
}
