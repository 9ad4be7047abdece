package tradelog

import "time"

// Position is a reconstructed position: one group's life cycle summarized.
// It carries no storage identity; that is the journal's concern.
type Position struct {
	Symbol        string
	Side          Side      // anchor side of the originating group
	Open          time.Time // first fill's execution time
	Close         time.Time // last fill's execution time, not a true close when IsOpen
	Quantity      Quantity  // peak exposure in base units
	QuoteQuantity Money     // peak exposure in quote terms
	AverageEntry  Money     // weighted-average entry price
	AverageExit   Money     // weighted-average exit price, zero when never reduced
	PnL           Money     // realized, fee-inclusive
	IsOpen        bool      // true when the group never returned to flat
	Setup         string    // optional trade setup tag, assigned in the journal
}

// Position computes the group's summary: anchor side, peak exposure in both
// base and quote terms, weighted-average entry and exit prices, and the
// open/close timestamps. Realized PnL is computed separately by
// [Group.RealizedPnL].
//
// Base and quote exposure are tracked independently: the running sum of
// quantities yields the base peak, the running sum of notional costs the
// quote peak. The base peak is the denominator of the entry price weights.
func (g Group) Position() Position {
	sorted := Group(SortFillsAscending(g))
	anchor := sorted[0]

	// Peak exposure: maximum absolute value of the signed running sums,
	// anchor direction counting positive.
	var runningBase, peakBase Quantity
	var runningQuote, peakQuote Money
	for _, f := range sorted {
		if f.Side == anchor.Side {
			runningBase = runningBase.Add(f.Quantity)
			runningQuote = runningQuote.Add(f.Cost)
		} else {
			runningBase = runningBase.Sub(f.Quantity)
			runningQuote = runningQuote.Sub(f.Cost)
		}
		if runningBase.Abs().GreaterThan(peakBase) {
			peakBase = runningBase.Abs()
		}
		if runningQuote.Abs().GreaterThan(peakQuote) {
			peakQuote = runningQuote.Abs()
		}
	}

	// A never-reduced position has no exit fills: the weighted sum stays
	// empty and the exit price reported is zero, never a division by zero.
	entry := M(0, anchor.Price.Currency())
	exit := M(0, anchor.Price.Currency())
	var totalExit Quantity
	for _, f := range sorted {
		if f.Side != anchor.Side {
			totalExit = totalExit.Add(f.Quantity)
		}
	}
	for _, f := range sorted {
		if f.Side == anchor.Side {
			entry = entry.Add(f.Price.Mul(f.Quantity.Div(peakBase)))
		} else {
			exit = exit.Add(f.Price.Mul(f.Quantity.Div(totalExit)))
		}
	}

	return Position{
		Symbol:        anchor.Symbol,
		Side:          anchor.Side,
		Open:          anchor.Time,
		Close:         sorted[len(sorted)-1].Time,
		Quantity:      peakBase,
		QuoteQuantity: peakQuote,
		AverageEntry:  entry,
		AverageExit:   exit,
		IsOpen:        !runningBase.IsZero(),
	}
}
