package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an expense by id" }
func (*deleteCmd) Usage() string {
	return `expenses delete <id>

  Removes the expense permanently. The id is never reassigned.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("exactly one expense id is required")
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		return usageError(fmt.Sprintf("invalid expense id %q", f.Arg(0)))
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.service.Delete(ctx, id); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted expense id=%d\n", id)
	return subcommands.ExitSuccess
}
