package tradelog

import (
	"testing"
)

func TestGroupFills(t *testing.T) {
	testCases := []struct {
		name string
		in   []Fill
		want [][]float64 // per group, the fill quantities
	}{
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
		{
			name: "single open position",
			in:   []Fill{fill(1, Buy, 10, 100)},
			want: [][]float64{{10}},
		},
		{
			name: "exact flatten closes the group",
			in:   []Fill{fill(1, Buy, 10, 100), fill(2, Sell, 10, 110)},
			want: [][]float64{{10, 10}},
		},
		{
			name: "partial reduce stays in the group",
			in:   []Fill{fill(1, Buy, 10, 100), fill(2, Sell, 4, 110), fill(3, Sell, 6, 120)},
			want: [][]float64{{10, 4, 6}},
		},
		{
			name: "accumulating same-direction fills",
			in:   []Fill{fill(1, Buy, 4, 100), fill(2, Buy, 6, 110), fill(3, Sell, 10, 120)},
			want: [][]float64{{4, 6, 10}},
		},
		{
			name: "overshoot splits into two groups",
			in:   []Fill{fill(1, Buy, 10, 100), fill(2, Sell, 15, 110)},
			want: [][]float64{{10, 10}, {5}},
		},
		{
			name: "two back-to-back flat positions",
			in: []Fill{
				fill(1, Buy, 10, 100), fill(2, Sell, 10, 110),
				fill(3, Sell, 5, 120), fill(4, Buy, 5, 115),
			},
			want: [][]float64{{10, 10}, {5, 5}},
		},
		{
			name: "short anchor with overshoot",
			in:   []Fill{fill(1, Sell, 8, 100), fill(2, Buy, 20, 90)},
			want: [][]float64{{8, 8}, {12}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			groups := GroupFills(tc.in)
			if len(groups) != len(tc.want) {
				t.Fatalf("got %d groups, want %d", len(groups), len(tc.want))
			}
			for i, wantQtys := range tc.want {
				if len(groups[i]) != len(wantQtys) {
					t.Fatalf("group %d has %d fills, want %d", i, len(groups[i]), len(wantQtys))
				}
				for j, q := range wantQtys {
					if !groups[i][j].Quantity.Equal(Q(q)) {
						t.Errorf("group %d fill %d quantity = %s, want %v", i, j, groups[i][j].Quantity, q)
					}
				}
			}
		})
	}
}

// Every group but possibly the last must have a signed running sum, anchor
// direction counting positive, that returns to exactly zero.
func TestGroupFills_zeroSumClosure(t *testing.T) {
	in := []Fill{
		fill(1, Buy, 10, 100),
		fill(2, Buy, 2.5, 102),
		fill(3, Sell, 7, 105),
		fill(4, Sell, 9, 107), // overshoots by 3.5
		fill(5, Buy, 1, 106),
		fill(6, Buy, 4, 104), // overshoots by 1.5
	}
	groups := GroupFills(in)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	for i, g := range groups[:len(groups)-1] {
		sum := Q(0)
		for _, f := range g {
			if f.Side == g.Anchor() {
				sum = sum.Add(f.Quantity)
			} else {
				sum = sum.Sub(f.Quantity)
			}
		}
		if !sum.IsZero() {
			t.Errorf("group %d running sum ends at %s, want 0", i, sum)
		}
	}
}

func TestSplitFill(t *testing.T) {
	f := feeFill(1, Sell, 10, 110, 1.00)
	closing, opening := splitFill(f, Q(6))

	if !closing.Quantity.Equal(Q(6)) || !opening.Quantity.Equal(Q(4)) {
		t.Errorf("split quantities = %s/%s, want 6/4", closing.Quantity, opening.Quantity)
	}
	// quantity splitting is exact: the fragments always recompose the fill.
	if !closing.Quantity.Add(opening.Quantity).Equal(f.Quantity) {
		t.Errorf("fragments sum to %s, want %s", closing.Quantity.Add(opening.Quantity), f.Quantity)
	}
	// fees split proportionally, each rounded to 2 decimals.
	if !closing.Fee.Equal(USDT(0.60)) {
		t.Errorf("closing fee = %s, want 0.60", closing.Fee)
	}
	if !opening.Fee.Equal(USDT(0.40)) {
		t.Errorf("opening fee = %s, want 0.40", opening.Fee)
	}
	// fragments keep the original time, side, symbol and price.
	if closing.Time != f.Time || opening.Side != f.Side || !opening.Price.Equal(f.Price) {
		t.Error("fragments must retain the original fill's time, side and price")
	}
}

func TestSplitFill_feeRounding(t *testing.T) {
	// 1/3 - 2/3 of 0.10: shares round independently to 0.03 and 0.07.
	f := feeFill(1, Sell, 3, 100, 0.10)
	closing, opening := splitFill(f, Q(1))
	if !closing.Fee.Equal(USDT(0.03)) {
		t.Errorf("closing fee = %s, want 0.03", closing.Fee)
	}
	if !opening.Fee.Equal(USDT(0.07)) {
		t.Errorf("opening fee = %s, want 0.07", opening.Fee)
	}
}
