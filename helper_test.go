package tradelog

import "time"

// USDT is a helper for test to create quote money from const
func USDT(v float64) Money { return M(v, "USDT") }

// at is a helper for test to create a fill time from an offset in minutes.
func at(min int) time.Time {
	return time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC).Add(time.Duration(min) * time.Minute)
}

// fill is a helper for test to create a fill at price*qty notional with no fee.
func fill(min int, side Side, qty, price float64) Fill {
	return Fill{
		Time:     at(min),
		Side:     side,
		Symbol:   "RADUSDT",
		Quantity: Q(qty),
		Price:    USDT(price),
		Cost:     USDT(price * qty),
	}
}

// feeFill is like fill with a fee cost in quote currency.
func feeFill(min int, side Side, qty, price, fee float64) Fill {
	f := fill(min, side, qty, price)
	f.Fee = USDT(fee)
	return f
}
