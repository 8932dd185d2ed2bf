package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ghilain/brique/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	ledger string
	yes    bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "extract events from free text" }
func (*assistCmd) Usage() string {
	return `assist [-l <ledger>] [-yes] <text>...

  Asks a Gemini model to read ledger events out of free text, e.g.

    assist "paid 2300 notary fees on 2025-07-03"

  Extracted events are displayed for review; with -yes they are
  recorded into the ledger. Requires the GEMINI_API_KEY environment
  variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledger, "l", "", "Ledger to record into. Defaults to the only ledger if one exists.")
	f.BoolVar(&c.yes, "yes", false, "Record the extracted events without asking.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing text to extract events from")
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	extractor := agent.NewExtractor()
	if err := extractor.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting extractor:", err)
		return subcommands.ExitFailure
	}

	events, err := extractor.Extract(ctx, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error extracting events:", err)
		return subcommands.ExitFailure
	}
	if len(events) == 0 {
		fmt.Println("No events found in the text.")
		return subcommands.ExitSuccess
	}

	for _, e := range events {
		fmt.Printf("  %s %s %s %s\n", e.When(), e.What(), e.Sum(), e.Note())
	}
	if !c.yes {
		fmt.Println("Run again with -yes to record these events.")
		return subcommands.ExitSuccess
	}
	return recordEvents(c.ledger, events...)
}
