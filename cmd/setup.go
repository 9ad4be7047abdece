package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// setupCmd holds the flags for the 'setup' subcommand.
type setupCmd struct {
	n     int
	setup string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "tag a recorded position with the setup that produced it" }
func (*setupCmd) Usage() string {
	return `tl setup -n <position> -s <setup>

  Tags the n-th position of the journal (as numbered by 'tl positions')
  with a setup name, e.g. "breakout" or "mean-reversion".
`
}

func (c *setupCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Position number to tag, as listed by 'tl positions'. Required.")
	f.StringVar(&c.setup, "s", "", "Setup name to record. An empty value clears the tag.")
}

func (c *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.n <= 0 {
		fmt.Fprintln(os.Stderr, "-n is required")
		return subcommands.ExitUsageError
	}
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := book.Tag(c.n, c.setup); err != nil {
		fmt.Fprintf(os.Stderr, "Error tagging position: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Position %d tagged %q.\n", c.n, c.setup)
	return subcommands.ExitSuccess
}
