package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the latest reference rate" }
func (*rateCmd) Usage() string {
	return `rate

  Fetches the latest 3-month Euribor monthly average from the ECB data
  portal, to sanity check a loan's nominal rate against the market.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := brique.Euribor3M()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching reference rate: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("3-month Euribor (monthly average): %s\n", rate)
	return subcommands.ExitSuccess
}
