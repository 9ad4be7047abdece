package tradelog

// Review contains the aggregate results of a set of recorded positions. It
// is the journal's at-a-glance report: how many trades, how they went, and
// what was realized overall.
type Review struct {
	Symbol string // empty when reviewing all symbols
	Closed int    // positions that returned to flat
	Open   int    // still-open positions
	Wins   int
	Losses int
	Flat   int // closed positions with exactly zero realized PnL

	NetPnL    Money // sum of realized PnL over closed positions
	GrossWin  Money // sum of winning PnL
	GrossLoss Money // sum of losing PnL, as a negative amount
	Best      Money
	Worst     Money
}

// NewReview aggregates positions into a review. Positions of other symbols
// are skipped when symbol is non-empty. Open positions are counted but
// contribute nothing to the realized figures: their PnL only covers whatever
// part of them was already reduced.
func NewReview(positions []Position, symbol string) *Review {
	r := &Review{Symbol: symbol}
	for _, p := range positions {
		if symbol != "" && p.Symbol != symbol {
			continue
		}
		if p.IsOpen {
			r.Open++
			continue
		}
		r.Closed++
		r.NetPnL = r.NetPnL.Add(p.PnL)
		switch {
		case p.PnL.IsPositive():
			r.Wins++
			r.GrossWin = r.GrossWin.Add(p.PnL)
		case p.PnL.IsNegative():
			r.Losses++
			r.GrossLoss = r.GrossLoss.Add(p.PnL)
		default:
			r.Flat++
		}
		if r.Closed == 1 || p.PnL.GreaterThan(r.Best) {
			r.Best = p.PnL
		}
		if r.Closed == 1 || r.Worst.GreaterThan(p.PnL) {
			r.Worst = p.PnL
		}
	}
	return r
}

// WinRate returns the share of closed positions that realized a profit.
func (r *Review) WinRate() Percent {
	if r.Closed == 0 {
		return 0
	}
	return Percent(100 * float64(r.Wins) / float64(r.Closed))
}
