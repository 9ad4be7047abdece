package tradelog

// lot is an internal FIFO record of anchor-side quantity awaiting matching
// against future exit fills. It lives only in the queue of one
// [Group.RealizedPnL] call.
type lot struct {
	price     Money    // entry price
	remaining Quantity // decremented as exits consume it
}

// RealizedPnL matches the group's exit fills against its entry fills in
// arrival order and returns the realized profit-and-loss, net of every
// fill's fee (entry and exit sides alike), rounded to 4 decimal places at
// the end only.
//
// An exit whose quantity exceeds all queued entry quantity stops matching
// once the queue is empty, under-counting PnL. The grouper's invariants
// make this unreachable; it only surfaces when a caller bypasses
// [GroupFills].
func (g Group) RealizedPnL() Money {
	sorted := Group(SortFillsAscending(g))
	anchor := sorted[0]

	gross := M(0, anchor.Price.Currency())
	fees := M(0, anchor.Fee.Currency())
	var queue []lot

	for _, f := range sorted {
		fees = fees.Add(f.Fee)

		if f.Side == anchor.Side {
			queue = append(queue, lot{price: f.Price, remaining: f.Quantity})
			continue
		}

		remainingExit := f.Quantity
		for remainingExit.IsPositive() && len(queue) > 0 {
			head := &queue[0]
			matched := remainingExit.Min(head.remaining)

			diff := f.Price.Sub(head.price)
			if anchor.Side == Sell {
				diff = head.price.Sub(f.Price)
			}
			gross = gross.Add(diff.Mul(matched))

			remainingExit = remainingExit.Sub(matched)
			head.remaining = head.remaining.Sub(matched)
			if head.remaining.IsZero() {
				queue = queue[1:]
			}
		}
	}

	return gross.Sub(fees).Round(4)
}
