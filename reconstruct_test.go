package tradelog

import (
	"testing"
)

func TestReconstruct(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := Reconstruct(nil); len(got) != 0 {
			t.Errorf("Reconstruct(nil) = %d positions, want none", len(got))
		}
	})

	t.Run("single round trip", func(t *testing.T) {
		fills := []Fill{
			fill(1, Buy, 10, 100),
			fill(2, Sell, 10, 110),
		}
		positions := Reconstruct(fills)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		p := positions[0]
		if p.Side != Buy {
			t.Errorf("Side = %s, want buy", p.Side)
		}
		if !p.Quantity.Equal(Q(10)) {
			t.Errorf("Quantity = %s, want 10", p.Quantity)
		}
		if !p.AverageEntry.Equal(USDT(100)) {
			t.Errorf("AverageEntry = %s, want 100", p.AverageEntry)
		}
		if !p.AverageExit.Equal(USDT(110)) {
			t.Errorf("AverageExit = %s, want 110", p.AverageExit)
		}
		if !p.PnL.Equal(USDT(100)) {
			t.Errorf("PnL = %s, want 100", p.PnL)
		}
		if p.Open != at(1) || p.Close != at(2) {
			t.Errorf("Open/Close = %s/%s, want %s/%s", p.Open, p.Close, at(1), at(2))
		}
		if p.IsOpen {
			t.Error("round trip reported as open")
		}
	})

	t.Run("overshooting sell leaves a second open position", func(t *testing.T) {
		fills := []Fill{
			fill(1, Buy, 10, 100),
			fill(2, Sell, 15, 110),
		}
		positions := Reconstruct(fills)
		if len(positions) != 2 {
			t.Fatalf("got %d positions, want 2", len(positions))
		}
		first, second := positions[0], positions[1]
		if first.IsOpen || first.Side != Buy || !first.Quantity.Equal(Q(10)) {
			t.Errorf("first position = %+v, want a flat long of 10", first)
		}
		if !second.IsOpen {
			t.Error("second position lacks a true close and must be open")
		}
		if second.Side != Sell || !second.Quantity.Equal(Q(5)) {
			t.Errorf("second position = side %s qty %s, want a short of 5", second.Side, second.Quantity)
		}
	})

	t.Run("fills arriving newest first", func(t *testing.T) {
		fills := []Fill{
			fill(2, Sell, 10, 110),
			fill(1, Buy, 10, 100),
		}
		positions := Reconstruct(fills)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		if positions[0].Side != Buy {
			t.Errorf("Side = %s, want buy: the engine must re-sort its input", positions[0].Side)
		}
	})
}
