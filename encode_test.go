package tradelog

import (
	"strings"
	"testing"
)

func TestEncodeFill(t *testing.T) {
	var b strings.Builder
	if err := EncodeFill(&b, feeFill(0, Buy, 10, 100, 1.25)); err != nil {
		t.Fatal(err)
	}
	want := `{"time":"2025-03-07T10:00:00Z","side":"buy","symbol":"RADUSDT","quantity":10,"price":100,"cost":1000,"fee":1.25,"currency":"USDT"}` + "\n"
	if b.String() != want {
		t.Errorf("EncodeFill() = %q, want %q", b.String(), want)
	}
}

func TestDecodeFills(t *testing.T) {
	in := `{"time":"2025-03-07T10:00:00Z","side":"buy","symbol":"RADUSDT","quantity":10,"price":100,"cost":1000,"fee":1.25,"currency":"USDT"}

{"time":"2025-03-07T10:05:00Z","side":"sell","symbol":"RADUSDT","quantity":10,"price":110,"cost":1100,"currency":"USDT"}
`
	fills, err := DecodeFills(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2 (empty lines skipped)", len(fills))
	}
	if fills[0].Side != Buy || !fills[0].Fee.Equal(USDT(1.25)) {
		t.Errorf("first fill = %+v", fills[0])
	}
	if !fills[1].Fee.IsZero() {
		t.Errorf("missing fee must decode to zero, got %s", fills[1].Fee)
	}
	if fills[1].Cost.Currency() != "USDT" {
		t.Errorf("currency = %q, want USDT", fills[1].Cost.Currency())
	}
}

func TestDecodeFills_badLine(t *testing.T) {
	_, err := DecodeFills(strings.NewReader(`{"time":12`))
	if err == nil {
		t.Fatal("expected an error on a malformed line")
	}
}

func TestPositionRoundTrip(t *testing.T) {
	g := Group{
		feeFill(1, Buy, 10, 100, 0.50),
		feeFill(2, Sell, 10, 110, 0.50),
	}
	p := g.Position()
	p.PnL = g.RealizedPnL()
	p.Setup = "breakout"

	var b strings.Builder
	if err := EncodePosition(&b, p); err != nil {
		t.Fatal(err)
	}
	book, err := DecodePositions(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 1 {
		t.Fatalf("got %d positions, want 1", book.Len())
	}
	got := book.Positions("")[0]
	if !got.PnL.Equal(p.PnL) || got.Setup != p.Setup || got.Side != p.Side {
		t.Errorf("round trip changed the position: got %+v, want %+v", got, p)
	}
	if !got.Open.Equal(p.Open) || !got.Close.Equal(p.Close) {
		t.Errorf("round trip changed the timestamps: got %s/%s", got.Open, got.Close)
	}
}
