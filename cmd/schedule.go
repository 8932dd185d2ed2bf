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

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	ledger string
	rate   float64
	until  string
	apply  bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "compute the monthly interest schedule" }
func (*scheduleCmd) Usage() string {
	return `schedule -r <rate> [-l <ledger>] [-until <date>] [-apply]

  Accrues monthly interest on the outstanding balance at an annual
  nominal rate, pro rata temporis on the actual day count. With -apply
  the interest events are written back to the ledger, replacing any
  previously accrued ones.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
	f.Float64Var(&c.rate, "r", 0, "Annual nominal rate in percent, e.g. 3.5.")
	f.StringVar(&c.until, "until", "", "Accrue up to this date. Defaults to the later of the last event and today.")
	f.BoolVar(&c.apply, "apply", false, "Write the accrued interest events back to the ledger.")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rate <= 0 {
		fmt.Fprintln(os.Stderr, "Error: missing required flag -r (annual rate in percent)")
		return subcommands.ExitUsageError
	}
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

	rate := brique.Percent(c.rate)
	applied, accrued := brique.ApplyInterest(l, rate, horizon)
	printMarkdown(renderer.ScheduleMarkdown(l.Name(), rate, accrued))

	if c.apply {
		if err := saveLedger(applied); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", l.Name(), err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Applied %d interest events to %s\n", len(accrued), l.Name())
	}
	return subcommands.ExitSuccess
}
