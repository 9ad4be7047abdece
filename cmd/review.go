package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradelog"
	"github.com/etnz/tradelog/renderer"
	"github.com/google/subcommands"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	symbol string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "summarize the performance of the recorded positions" }
func (*reviewCmd) Usage() string {
	return `tl review [-symbol <symbol>]

  Aggregates the journal into a performance review: win rate, net realized
  PnL, best and worst positions.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only review positions for this symbol.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	review := tradelog.NewReview(book.Positions(""), c.symbol)
	printMarkdown(renderer.ReviewMarkdown(review))
	return subcommands.ExitSuccess
}
