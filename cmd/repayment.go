package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// repaymentCmd holds the flags for the 'repayment' subcommand.
type repaymentCmd struct {
	eventFlags
	allocFlag
}

func (*repaymentCmd) Name() string     { return "repayment" }
func (*repaymentCmd) Synopsis() string { return "record a loan repayment" }
func (*repaymentCmd) Usage() string {
	return `repayment -a <amount> [-d <date>] [-m <memo>] [-loan <amount>]

  Records a payment explicitly intended to reduce the loan. The whole
  amount is applied to the debt unless -loan caps the applied part.
  Anything beyond the outstanding balance is absorbed, never a credit.
`
}

func (c *repaymentCmd) SetFlags(f *flag.FlagSet) {
	c.eventFlags.setFlags(f)
	c.allocFlag.setFlags(f)
}

func (c *repaymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, amount, err := c.eventFlags.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	e := brique.NewRepayment(day, c.memo, amount)
	if e.LoanAllocation, err = c.allocFlag.parse(c.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return recordEvents(c.ledger, e)
}
