package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique/renderer"
	"github.com/google/subcommands"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	ledger string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the ledger event by event" }
func (*logCmd) Usage() string {
	return `log [-l <ledger>]

  Displays every event in chronological order with the running
  outstanding balance.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.ledger, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogMarkdown(l))
	return subcommands.ExitSuccess
}
