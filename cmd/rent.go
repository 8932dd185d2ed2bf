package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// rentCmd holds the flags for the 'rent' subcommand.
type rentCmd struct {
	eventFlags
	allocFlag
}

func (*rentCmd) Name() string     { return "rent" }
func (*rentCmd) Synopsis() string { return "record rental income" }
func (*rentCmd) Usage() string {
	return `rent -a <amount> [-d <date>] [-m <memo>] [-loan <amount>]

  Records rent received. It is investor income by default and reduces
  the loan only through an explicit -loan allocation.
`
}

func (c *rentCmd) SetFlags(f *flag.FlagSet) {
	c.eventFlags.setFlags(f)
	c.allocFlag.setFlags(f)
}

func (c *rentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, amount, err := c.eventFlags.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := brique.NewRentalIncome(day, c.memo, amount)
	if e.LoanAllocation, err = c.allocFlag.parse(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return recordEvents(c.ledger, e)
}
