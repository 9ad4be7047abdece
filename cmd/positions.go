package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelog/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	symbol string
	open   bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "list the positions recorded in the journal" }
func (*positionsCmd) Usage() string {
	return `tl positions [-symbol <symbol>] [-open]

  Prints the positions recorded in the journal, oldest first.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only list positions for this symbol.")
	f.BoolVar(&c.open, "open", false, "Only list positions still open.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	positions := book.Positions(c.symbol)
	if c.open {
		open := positions[:0]
		for _, p := range positions {
			if p.IsOpen {
				open = append(open, p)
			}
		}
		positions = open
	}

	title := "Positions"
	if c.symbol != "" {
		title = "Positions " + c.symbol
	}
	printMarkdown(renderer.PositionsMarkdown(title, positions))
	return subcommands.ExitSuccess
}
