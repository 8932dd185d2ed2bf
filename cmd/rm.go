package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	ledger string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an event by id" }
func (*rmCmd) Usage() string {
	return `rm <id>...

  Deletes the events with the given ids from the ledger. All derived
  state is recomputed on the next report, nothing else to clean up.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to edit. Defaults to the only ledger if one exists.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing event id")
		return subcommands.ExitUsageError
	}
	l, err := decodeLedger(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.ledger, err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		if !l.Remove(id) {
			fmt.Fprintf(os.Stderr, "Error: no event with id %q\n", id)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted event %s\n", id)
	}
	if err := saveLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
