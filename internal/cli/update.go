package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/core"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/service"
)

type updateCmd struct {
	amount   string
	date     string
	category string
	note     string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "modify an expense by id" }
func (*updateCmd) Usage() string {
	return `expenses update <id> [-amount <value>] [-date <date>] [-category <name>] [-note <text>]

  Changes only the supplied fields of the expense; the rest stay as stored.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "New amount, a positive decimal.")
	f.StringVar(&c.date, "date", "", "New date, YYYY-MM-DD or DD-MM-YYYY.")
	f.StringVar(&c.category, "category", "", "New category label.")
	f.StringVar(&c.note, "note", "", "New note. An empty value clears it.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("exactly one expense id is required")
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return usageError(fmt.Sprintf("invalid expense id %q", f.Arg(0)))
	}

	// Only flags the user actually set become update fields, so an empty
	// -note clears the note while an omitted -note leaves it alone.
	var params service.UpdateParams
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "amount":
			params.Amount = &c.amount
		case "date":
			params.Date = &c.date
		case "category":
			params.Category = &c.category
		case "note":
			params.Note = &c.note
		}
	})

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	e, err := a.service.Update(ctx, id, params)
	if errors.Is(err, core.ErrNoFields) {
		return usageError(core.ErrNoFields.Error())
	}
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Updated expense id=%d amount=%s date=%s category=%s note=%q\n",
		e.ID, e.Amount, e.Date, e.Category, e.Note)
	return subcommands.ExitSuccess
}
