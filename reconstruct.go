package tradelog

// Reconstruct rebuilds discrete positions from the order fills of one
// account and symbol. Fills may arrive in any order; they are sorted
// chronologically, partitioned into zero-sum groups, and each group is
// summarized into one Position with its realized PnL. Output order follows
// the chronological order of the groups.
//
// Callers must filter out zero-quantity fills before invoking; the engine
// performs no defensive re-validation beyond its internal sorting. Empty
// input yields empty output. The last position may be still open
// (IsOpen set) when the stream never returned to flat.
func Reconstruct(fills []Fill) []Position {
	groups := GroupFills(SortFillsAscending(fills))

	positions := make([]Position, 0, len(groups))
	for _, g := range groups {
		p := g.Position()
		p.PnL = g.RealizedPnL()
		positions = append(positions, p)
	}
	return positions
}
