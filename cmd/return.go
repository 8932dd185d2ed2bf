package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// returnCmd holds the flags for the 'return' subcommand.
type returnCmd struct {
	eventFlags
	allocFlag
	net string
}

func (*returnCmd) Name() string     { return "return" }
func (*returnCmd) Synopsis() string { return "record an investor cash inflow" }
func (*returnCmd) Usage() string {
	return `return -a <amount> [-d <date>] [-m <memo>] [-loan <amount> | -net <amount>]

  Records money coming back to the investor, typically sale proceeds.
  Without a manual split the inflow first pays down the outstanding
  loan and the remainder is net investor return. -loan or -net fixes
  one side of the split, the other follows by conservation.
`
}

func (c *returnCmd) SetFlags(f *flag.FlagSet) {
	c.eventFlags.setFlags(f)
	c.allocFlag.setFlags(f)
	f.StringVar(&c.net, "net", "", "Part of the amount kept by the investor.")
}

func (c *returnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, amount, err := c.eventFlags.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := brique.NewReturn(day, c.memo, amount)
	if e.LoanAllocation, err = c.allocFlag.parse(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.net != "" {
		value, err := decimal.NewFromString(c.net)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid net return %q: %v\n", c.net, err)
			return subcommands.ExitUsageError
		}
		m := brique.M(value, c.currency)
		e.NetReturn = &m
	}
	return recordEvents(c.ledger, e)
}
