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

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file   string
	symbol string
	write  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "reconstruct positions from a file of fills" }
func (*importCmd) Usage() string {
	return `tl import -f <fills.jsonl> [-symbol <symbol>] [-w]

  Reads executed fills from a JSONL file, reconstructs the positions they
  form, and prints them. With -w, closed positions not recorded yet are
  appended to the journal instead.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File of fills to import (JSONL format). Required.")
	f.StringVar(&c.symbol, "symbol", "", "Only import fills for this symbol.")
	f.BoolVar(&c.write, "w", false, "Append the reconstructed closed positions to the journal.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-f is required")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	fills, err := tradelog.DecodeFills(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading fills: %v\n", err)
		return subcommands.ExitFailure
	}

	kept := fills[:0]
	for _, fill := range fills {
		if !fill.Quantity.IsPositive() {
			continue
		}
		if c.symbol != "" && fill.Symbol != c.symbol {
			continue
		}
		kept = append(kept, fill)
	}
	positions := tradelog.Reconstruct(kept)

	if !c.write {
		printMarkdown(renderer.PositionsMarkdown("Imported Positions", positions))
		return subcommands.ExitSuccess
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}
	var fresh []tradelog.Position
	for _, p := range positions {
		if p.IsOpen {
			continue
		}
		if last, ok := book.LastClose(p.Symbol); ok && !p.Close.After(last) {
			continue
		}
		fresh = append(fresh, p)
	}
	if len(fresh) == 0 {
		fmt.Println("Journal already up to date.")
		return subcommands.ExitSuccess
	}
	return AppendPositions(fresh)
}
