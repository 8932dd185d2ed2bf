// Package cmd implements the CLI application to manage an investment ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/ghilain/brique"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application, in display order.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&drawdownCmd{},
	&paymentCmd{},
	&repaymentCmd{},
	&returnCmd{},
	&rentCmd{},
	&rmCmd{},
	&logCmd{},
	&scheduleCmd{},
	&summaryCmd{},
	&fmtCmd{},
	&importCmd{},
	&exportCmd{},
	&assistCmd{},
	&rateCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var workspacePath = flag.String("path", ".", "Path to the workspace folder holding the ledger files")

// decodeLedger loads the named ledger from the workspace, or the only
// one when the name is empty.
func decodeLedger(name string) (*brique.Ledger, error) {
	return brique.FindLedger(*workspacePath, name)
}

// saveLedger writes the ledger back to the workspace.
func saveLedger(l *brique.Ledger) error {
	return brique.SaveLedger(*workspacePath, l)
}

// recordEvents validates events, appends them to the named ledger and
// saves it. It is the shared tail of every event-recording command.
func recordEvents(name string, evts ...brique.Event) subcommands.ExitStatus {
	l, err := decodeLedger(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	for _, e := range evts {
		fixed, err := brique.Validate(l, e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error validating event: %v\n", err)
			return subcommands.ExitUsageError
		}
		l.Append(fixed)
		fmt.Printf("Recorded %s of %s on %s (id %s)\n", fixed.What(), fixed.Sum(), fixed.When(), fixed.Ref())
	}
	if err := saveLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", l.Name(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
