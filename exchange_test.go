package tradelog

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const tradesBody = `[
  {"symbol":"RADUSDT","id":1,"price":"1.50000000","qty":"10.00000000","quoteQty":"15.00000000","commission":"0.01500000","commissionAsset":"USDT","time":1741341600000,"isBuyer":true,"isMaker":false},
  {"symbol":"RADUSDT","id":2,"price":"1.60000000","qty":"10.00000000","quoteQty":"16.00000000","commission":"0.01600000","commissionAsset":"USDT","time":1741345200000,"isBuyer":false,"isMaker":true}
]`

func TestFetchFills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/myTrades" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-MBX-APIKEY") != "k" {
			t.Errorf("missing api key header")
		}
		q := r.URL.Query()
		if q.Get("signature") == "" || q.Get("timestamp") == "" {
			t.Error("request is not signed")
		}
		if q.Get("symbol") != "RADUSDT" || q.Get("limit") != "1000" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprint(w, tradesBody)
	}))
	defer srv.Close()

	fills, err := FetchFills(srv.Client(), srv.URL, "k", "s", "RADUSDT", "USDT", time.UnixMilli(0), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	if fills[0].Side != Buy || fills[1].Side != Sell {
		t.Errorf("sides = %s/%s, want buy/sell", fills[0].Side, fills[1].Side)
	}
	if !fills[0].Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", fills[0].Quantity)
	}
	if !fills[0].Price.Equal(USDT(1.5)) {
		t.Errorf("price = %s, want 1.5", fills[0].Price)
	}
	if !fills[0].Cost.Equal(USDT(15)) {
		t.Errorf("cost = %s, want 15", fills[0].Cost)
	}
	if fills[0].Fee.Currency() != "USDT" {
		t.Errorf("fee currency = %q, want USDT", fills[0].Fee.Currency())
	}
	if !fills[0].Time.Equal(time.UnixMilli(1741341600000)) {
		t.Errorf("time = %s", fills[0].Time)
	}
}

func TestFetchFills_envelope(t *testing.T) {
	// some exchanges wrap the trade list in a response envelope.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"retCode":0,"result":{"list":%s}}`, tradesBody)
	}))
	defer srv.Close()

	fills, err := FetchFills(srv.Client(), srv.URL, "k", "s", "RADUSDT", "USDT", time.UnixMilli(0), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
}

func TestQuoteAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"symbols":[{"symbol":"RADUSDT","baseAsset":"RAD","quoteAsset":"USDT"}]}`)
	}))
	defer srv.Close()

	quote, err := QuoteAsset(srv.Client(), srv.URL, "RADUSDT")
	if err != nil {
		t.Fatal(err)
	}
	if quote != "USDT" {
		t.Errorf("QuoteAsset() = %q, want USDT", quote)
	}
}
