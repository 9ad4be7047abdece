package tradelog

import (
	"testing"
	"time"
)

func TestBook(t *testing.T) {
	closedAt := func(min int, symbol string) Position {
		return Position{Symbol: symbol, Side: Buy, Open: at(min - 1), Close: at(min)}
	}

	book := NewBook()
	if _, ok := book.LastClose("RADUSDT"); ok {
		t.Error("empty book reported a last close")
	}

	// appended out of order, the book keeps itself chronological.
	book.Append(closedAt(9, "RADUSDT"))
	book.Append(closedAt(3, "RADUSDT"), closedAt(5, "BTCUSDT"))

	positions := book.Positions("")
	if len(positions) != 3 {
		t.Fatalf("got %d positions, want 3", len(positions))
	}
	for i := 1; i < len(positions); i++ {
		if positions[i].Close.Before(positions[i-1].Close) {
			t.Fatal("book is not chronological")
		}
	}

	if got := book.Positions("BTCUSDT"); len(got) != 1 {
		t.Errorf("got %d BTCUSDT positions, want 1", len(got))
	}

	last, ok := book.LastClose("RADUSDT")
	if !ok || !last.Equal(at(9)) {
		t.Errorf("LastClose = %s %v, want %s", last, ok, at(9))
	}
	if _, ok := book.LastClose("ETHUSDT"); ok {
		t.Error("LastClose found a symbol that was never recorded")
	}
}

func TestBook_Tag(t *testing.T) {
	book := NewBook()
	book.Append(Position{Symbol: "RADUSDT", Close: time.Now()})

	if err := book.Tag(1, "breakout"); err != nil {
		t.Fatal(err)
	}
	if got := book.Positions("")[0].Setup; got != "breakout" {
		t.Errorf("Setup = %q, want breakout", got)
	}
	if err := book.Tag(2, "x"); err == nil {
		t.Error("tagging a missing position must fail")
	}
	if err := book.Tag(0, "x"); err == nil {
		t.Error("positions are numbered from 1")
	}
}
