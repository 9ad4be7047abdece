package tradelog

import (
	"fmt"
	"slices"
	"time"
)

// Book is the journal of recorded positions for one account. It is the
// persistence-facing collaborator of the engine: reconstructed positions are
// appended here, and the book remembers how far each symbol's history has
// already been recorded so a sync can drop positions it has seen before.
type Book struct {
	positions []Position
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{}
}

// Append records positions, keeping the book sorted by close time.
func (b *Book) Append(positions ...Position) {
	b.positions = append(b.positions, positions...)
	slices.SortStableFunc(b.positions, func(x, y Position) int { return x.Close.Compare(y.Close) })
}

// Len returns the number of recorded positions.
func (b *Book) Len() int { return len(b.positions) }

// Positions returns the recorded positions, optionally filtered by symbol.
// An empty symbol selects everything.
func (b *Book) Positions(symbol string) []Position {
	if symbol == "" {
		return slices.Clone(b.positions)
	}
	var out []Position
	for _, p := range b.positions {
		if p.Symbol == symbol {
			out = append(out, p)
		}
	}
	return out
}

// LastClose returns the close time of the most recent recorded position for
// the symbol, and whether any was found. Syncs use it to discard positions
// that close at or before this instant.
func (b *Book) LastClose(symbol string) (time.Time, bool) {
	for i := len(b.positions) - 1; i >= 0; i-- {
		if b.positions[i].Symbol == symbol {
			return b.positions[i].Close, true
		}
	}
	return time.Time{}, false
}

// Tag assigns a setup tag to the n-th recorded position (1-based, in book
// order).
func (b *Book) Tag(n int, setup string) error {
	if n < 1 || n > len(b.positions) {
		return fmt.Errorf("no position #%d in a journal of %d", n, len(b.positions))
	}
	b.positions[n-1].Setup = setup
	return nil
}
