package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	ledger string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import events from a csv file" }
func (*importCmd) Usage() string {
	return `import [-l <ledger>] <file.csv>

  Imports events from a csv file with a header row:

    date,kind,amount,currency,memo,loanAllocation

  Valid records are appended to the ledger; invalid ones are reported
  with their line number.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to import into. Defaults to the only ledger if one exists.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one csv file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	events, err := brique.ImportCSV(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import issues in %q:\n%v\n", f.Arg(0), err)
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to import.")
		return subcommands.ExitFailure
	}
	return recordEvents(c.ledger, events...)
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	ledger string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as csv" }
func (*exportCmd) Usage() string {
	return `export [-l <ledger>]

  Writes the ledger to stdout in the csv import/export format.
  Interest events are skipped: they are derived, not source data.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to export. Defaults to the only ledger if one exists.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedger(c.ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.ledger, err)
		return subcommands.ExitFailure
	}
	if err := brique.ExportCSV(os.Stdout, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
