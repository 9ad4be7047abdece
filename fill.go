package tradelog

import (
	"slices"
	"time"
)

// Side is the direction of an order fill.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Opposite returns the reducing direction for s.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Fill is a single executed (partial or full) exchange order. Fills are
// immutable: splitting an overshooting fill produces new values.
type Fill struct {
	Time     time.Time // execution time
	Side     Side
	Symbol   string
	Quantity Quantity // base units filled, always positive
	Cost     Money    // quote notional (quantity times price)
	Price    Money    // average execution price, zero when the exchange omitted it
	Fee      Money    // fee cost in quote currency, zero when absent
}

// SortFillsAscending returns the fills sorted chronologically, oldest first.
// The sort is stable: fills sharing a timestamp keep their input order, so
// the rest of the pipeline is reproducible.
func SortFillsAscending(fills []Fill) []Fill {
	sorted := slices.Clone(fills)
	slices.SortStableFunc(sorted, func(a, b Fill) int { return a.Time.Compare(b.Time) })
	return sorted
}

// SortFillsDescending returns the fills sorted chronologically, newest first.
func SortFillsDescending(fills []Fill) []Fill {
	sorted := slices.Clone(fills)
	slices.SortStableFunc(sorted, func(a, b Fill) int { return b.Time.Compare(a.Time) })
	return sorted
}
