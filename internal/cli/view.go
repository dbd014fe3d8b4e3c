package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/service"
)

type viewCmd struct {
	limit    int
	category string
	start    string
	end      string
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "list recorded expenses" }
func (*viewCmd) Usage() string {
	return `expenses view [-limit <n>] [-category <name>] [-start <date>] [-end <date>]

  Prints matching expenses as a table, oldest id first. Filters combine;
  date bounds are inclusive and accept YYYY-MM-DD or DD-MM-YYYY.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 0, "Maximum number of records to print. 0 means all.")
	f.StringVar(&c.category, "category", "", "Only expenses with this category.")
	f.StringVar(&c.start, "start", "", "Only expenses on or after this date.")
	f.StringVar(&c.end, "end", "", "Only expenses on or before this date.")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.limit < 0 {
		return usageError("-limit must not be negative")
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	expenses, err := a.service.List(ctx, service.Filter{
		Category: c.category,
		Start:    c.start,
		End:      c.end,
		Limit:    c.limit,
	})
	if err != nil {
		return fail(err)
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAMOUNT\tCATEGORY\tDATE\tNOTE")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Amount, e.Category, e.Date, e.Note)
	}
	w.Flush()

	return subcommands.ExitSuccess
}
