package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// paymentCmd holds the flags for the 'payment' subcommand.
type paymentCmd struct {
	eventFlags
	allocFlag
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record an investor expense" }
func (*paymentCmd) Usage() string {
	return `payment -a <amount> [-d <date>] [-m <memo>] [-loan <amount>]

  Records an investor cash outflow: purchase price, notary fees, works.
  By default it does not touch the loan; -loan marks the part of it
  that pays down the debt.
`
}

func (c *paymentCmd) SetFlags(f *flag.FlagSet) {
	c.eventFlags.setFlags(f)
	c.allocFlag.setFlags(f)
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, amount, err := c.eventFlags.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := brique.NewPayment(day, c.memo, amount)
	if e.LoanAllocation, err = c.allocFlag.parse(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return recordEvents(c.ledger, e)
}
