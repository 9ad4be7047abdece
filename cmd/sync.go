package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/etnz/tradelog"
	"github.com/google/subcommands"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct {
	symbol   string
	since    time.Duration
	limit    int
	url      string
	currency string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "fetch trades from the exchange and record new positions" }
func (*syncCmd) Usage() string {
	return `tl sync -symbol <symbol> [-since <duration>] [-limit <n>]

  Fetches the account's executed trades for one symbol, reconstructs the
  positions they form, and appends to the journal the ones not recorded yet.
  Still-open positions are not recorded; they will be once they close.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Symbol to sync (e.g. RADUSDT). Required.")
	f.DurationVar(&c.since, "since", 7*24*time.Hour, "Lookback window for the trade history fetch.")
	f.IntVar(&c.limit, "limit", 1000, "Maximum number of trades to fetch.")
	f.StringVar(&c.url, "url", "https://api.binance.com", "Base URL of the exchange REST API.")
	f.StringVar(&c.currency, "currency", "", "Quote currency of the symbol. Resolved from the exchange when empty.")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "-symbol is required")
		return subcommands.ExitUsageError
	}
	apiKey, apiSecret := tradelog.ExchangeApiKey(), tradelog.ExchangeApiSecret()
	if apiKey == "" || apiSecret == "" {
		fmt.Fprintln(os.Stderr, "missing exchange credentials, see -exchange-api-key and -exchange-api-secret")
		return subcommands.ExitUsageError
	}

	quote := c.currency
	if quote == "" {
		var err error
		// exchangeInfo is public and stable, so it goes through the daily cache.
		quote, err = tradelog.QuoteAsset(tradelog.Daily(), c.url, c.symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving quote currency for %q: %v\n", c.symbol, err)
			return subcommands.ExitFailure
		}
	}

	fills, err := tradelog.FetchFills(http.DefaultClient, c.url, apiKey, apiSecret, c.symbol, quote, time.Now().Add(-c.since), c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching trades: %v\n", err)
		return subcommands.ExitFailure
	}

	// the engine's contract: only positive fills go in.
	kept := fills[:0]
	for _, fill := range fills {
		if fill.Quantity.IsPositive() {
			kept = append(kept, fill)
		}
	}
	positions := tradelog.Reconstruct(kept)

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fresh := selectNew(positions, book, c.symbol)
	if len(fresh) == 0 {
		fmt.Println("Journal already up to date.")
		return subcommands.ExitSuccess
	}
	return AppendPositions(fresh)
}

// selectNew drops positions already covered by the journal: anything closing
// at or before the symbol's latest recorded close, and anything still open.
func selectNew(positions []tradelog.Position, book *tradelog.Book, symbol string) []tradelog.Position {
	last, recorded := book.LastClose(symbol)
	var fresh []tradelog.Position
	for _, p := range positions {
		if p.IsOpen {
			continue
		}
		if recorded && !p.Close.After(last) {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}
