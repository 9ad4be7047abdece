// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&syncCmd{}, "journal")
	c.Register(&importCmd{}, "journal")
	c.Register(&setupCmd{}, "journal")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&reviewCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "positions.jsonl", "Path to the journal file containing recorded positions (JSONL format)")

// DecodeBook loads the journal from the app default journal file.
func DecodeBook() (*tradelog.Book, error) {
	f, err := os.Open(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, journal does not exist, starting an empty one instead")
		return tradelog.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", *journalFile, err)
	}
	defer f.Close()
	return tradelog.DecodePositions(f)
}

// EncodeBook rewrites the whole journal file in canonical form.
func EncodeBook(book *tradelog.Book) error {
	f, err := os.Create(*journalFile)
	if err != nil {
		return fmt.Errorf("could not create journal file %q: %w", *journalFile, err)
	}
	defer f.Close()
	return tradelog.EncodePositions(f, book.Positions(""))
}

// AppendPositions appends positions to the app default journal file.
func AppendPositions(positions []tradelog.Position) subcommands.ExitStatus {
	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tradelog.EncodePositions(f, positions); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %d position(s) to %s\n", len(positions), *journalFile)
	return subcommands.ExitSuccess
}
