package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradelog/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion runs first: in completion mode it prints the
	// candidates and exits before any flag parsing.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"sync":      {Flags: map[string]complete.Predictor{"symbol": nil, "since": nil, "limit": nil, "url": nil, "currency": nil}},
			"import":    {Flags: map[string]complete.Predictor{"f": nil, "symbol": nil, "w": nil}},
			"positions": {Flags: map[string]complete.Predictor{"symbol": nil, "open": nil}},
			"review":    {Flags: map[string]complete.Predictor{"symbol": nil}},
			"setup":     {Flags: map[string]complete.Predictor{"n": nil, "s": nil}},
			"topic":     {},
			"assist":    {},
		},
		Flags: map[string]complete.Predictor{"journal-file": nil},
	}
	completion.Complete("tl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
