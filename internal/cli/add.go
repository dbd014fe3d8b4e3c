package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/service"
)

type addCmd struct {
	amount   string
	date     string
	category string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `expenses add -amount <value> -date <YYYY-MM-DD|DD-MM-YYYY> [-category <name>] [-note <text>]

  Records a new expense and prints the assigned id.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Expense amount, a positive decimal. Required.")
	f.StringVar(&c.date, "date", "", "Expense date, YYYY-MM-DD or DD-MM-YYYY. Required.")
	f.StringVar(&c.category, "category", "", "Category label. Defaults to the configured default category.")
	f.StringVar(&c.note, "note", "", "Free-text note.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.date == "" {
		return usageError("-amount and -date are required")
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	category := c.category
	if category == "" {
		category = a.cfg.DefaultCategory
	}

	e, err := a.service.Add(ctx, service.AddParams{
		Amount:   c.amount,
		Date:     c.date,
		Category: category,
		Note:     c.note,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Added expense id=%d amount=%s date=%s category=%s\n",
		e.ID, e.Amount, e.Date, e.Category)
	return subcommands.ExitSuccess
}
