// Package cli implements the expense ledger subcommands. Each command runs
// exactly one operation against the store and exits; results go to stdout,
// logs and errors to stderr.
package cli

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&viewCmd{}, "ledger")
	c.Register(&updateCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
}

// fail prints the error to stderr and maps it to a failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints the message to stderr and maps it to a usage-error exit.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
