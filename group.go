package tradelog

// Group is a contiguous run of fills representing one reconstructed
// position's life cycle: it opens from flat, accumulates or reduces
// exposure, and, except possibly for the last group of a stream, returns
// to flat. The anchor side of a group is the side of its first fill.
type Group []Fill

// Anchor returns the group's anchor side.
func (g Group) Anchor() Side { return g[0].Side }

// grouping is the accumulator threaded through the zero-sum fold. The
// current group's remaining open exposure is tracked in base units of the
// anchor direction.
type grouping struct {
	closed  []Group
	current Group
	sum     Quantity
}

// consume applies the transition table for one fill. The predicates are
// mutually exclusive and ordered: first match wins.
func (acc grouping) consume(f Fill) grouping {
	switch {
	case len(acc.current) == 0:
		// starting a new position from flat
		acc.current = Group{f}
		acc.sum = f.Quantity

	case f.Side == acc.current.Anchor():
		// exposure-increasing fill
		acc.current = append(acc.current, f)
		acc.sum = acc.sum.Add(f.Quantity)

	case acc.sum.Equal(f.Quantity):
		// fill exactly flattens the position
		acc.closed = append(acc.closed, append(acc.current, f))
		acc.current = nil
		acc.sum = Q(0)

	case acc.sum.LessThan(f.Quantity):
		// fill overshoots: it both closes this position and opens the next
		closing, opening := splitFill(f, acc.sum)
		acc.closed = append(acc.closed, append(acc.current, closing))
		acc.current = nil
		acc.sum = Q(0)
		if opening.Quantity.IsPositive() {
			acc.current = Group{opening}
			acc.sum = opening.Quantity
		}

	default:
		// opposite direction, partial, no overshoot
		acc.current = append(acc.current, f)
		acc.sum = acc.sum.Sub(f.Quantity)
	}
	return acc
}

// finish returns all groups, keeping a trailing non-empty group even when
// it never returned to flat: it represents a still-open position.
func (acc grouping) finish() []Group {
	if len(acc.current) > 0 {
		return append(acc.closed, acc.current)
	}
	return acc.closed
}

// GroupFills partitions fills, given in execution order, into position
// groups. A fill whose quantity would overshoot the current group's
// remaining open exposure is split, its closing fragment ending the current
// group and its opening fragment seeding the next one.
//
// This stage never errors: pathological input (negative quantities,
// unsorted timestamps) is a precondition violation callers must prevent
// upstream.
func GroupFills(fills []Fill) []Group {
	var acc grouping
	for _, f := range fills {
		acc = acc.consume(f)
	}
	return acc.finish()
}

// splitFill splits an overshooting fill into the fragment that closes the
// current position (remainderToClose base units) and the fragment that
// opens the next one. Cost scales exactly with the quantity ratio; the fee
// is split proportionally as well but each share is rounded to 2 decimal
// places independently, a deliberately lossy simplification.
func splitFill(f Fill, remainderToClose Quantity) (closing, opening Fill) {
	openingQuantity := f.Quantity.Sub(remainderToClose)

	closing = f
	closing.Quantity = remainderToClose
	closing.Cost = f.Cost.Mul(remainderToClose.Div(f.Quantity))
	closing.Fee = splitFee(f.Fee, remainderToClose, f.Quantity)

	opening = f
	opening.Quantity = openingQuantity
	opening.Cost = f.Cost.Mul(openingQuantity.Div(f.Quantity))
	opening.Fee = splitFee(f.Fee, openingQuantity, f.Quantity)
	return closing, opening
}

// splitFee returns the share of fee owed by part out of total units,
// rounded to 2 decimal places.
func splitFee(fee Money, part, total Quantity) Money {
	return fee.Mul(part.Div(total)).Round(2)
}
