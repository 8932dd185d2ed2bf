package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/ghilain/brique/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	ledger string
	rate   float64
	until  string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the investment summary" }
func (*summaryCmd) Usage() string {
	return `summary [-r <rate>] [-l <ledger>] [-until <date>]

  Displays the aggregated totals of the investment: invested, returned,
  interest, loan state and the annualized return (XIRR). With -r the
  interest is freshly accrued at that rate up to -until.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
	f.Float64Var(&c.rate, "r", 0, "Annual nominal rate in percent. Without it, interest already in the ledger is kept as is.")
	f.StringVar(&c.until, "until", "", "Accrue up to this date. Defaults to the later of the last event and today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var horizon brique.Date
	if c.until != "" {
		var err error
		if horizon, err = brique.ParseDate(c.until); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	l, err := decodeLedger(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.ledger, err)
		return subcommands.ExitFailure
	}

	s := brique.NewSummary(l, brique.Percent(c.rate), horizon)
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
