package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// drawdownCmd holds the flags for the 'drawdown' subcommand.
type drawdownCmd struct {
	eventFlags
}

func (*drawdownCmd) Name() string     { return "drawdown" }
func (*drawdownCmd) Synopsis() string { return "record a loan disbursement" }
func (*drawdownCmd) Usage() string {
	return `drawdown -a <amount> [-d <date>] [-m <memo>]

  Records money drawn from the lender. It increases the outstanding
  debt and is not an investor cash flow.
`
}

func (c *drawdownCmd) SetFlags(f *flag.FlagSet) { c.eventFlags.setFlags(f) }

func (c *drawdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, amount, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return recordEvents(c.ledger, brique.NewDrawdown(day, c.memo, amount))
}
