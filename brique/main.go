package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/ghilain/brique/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion, active only when invoked by the completion hooks
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{
			"l": predict.Files("*.jsonl"),
			"d": predict.Nothing,
		}}
	}
	complete.Complete("brique", &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"path": predict.Dirs("*")},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
