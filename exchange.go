package tradelog

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const (
	exchangeApiKeyEnv    = "TRADELOG_API_KEY"
	exchangeApiSecretEnv = "TRADELOG_API_SECRET"
)

var exchangeApiKeyFlag = flag.String("exchange-api-key", "", "Exchange API key used to fetch the account's trade history.\n If missing it will read the environment variable \""+exchangeApiKeyEnv+"\".")
var exchangeApiSecretFlag = flag.String("exchange-api-secret", "", "Exchange API secret used to sign trade history requests.\n If missing it will read the environment variable \""+exchangeApiSecretEnv+"\".")

func ExchangeApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *exchangeApiKeyFlag == "" {
		*exchangeApiKeyFlag = os.Getenv(exchangeApiKeyEnv)
	}
	return *exchangeApiKeyFlag
}

func ExchangeApiSecret() string {
	if *exchangeApiSecretFlag == "" {
		*exchangeApiSecretFlag = os.Getenv(exchangeApiSecretEnv)
	}
	return *exchangeApiSecretFlag
}

// tradeRecord is one executed trade as reported by a Binance-compatible
// /api/v3/myTrades endpoint. Numeric fields come quoted on the wire.
type tradeRecord struct {
	Symbol          string          `json:"symbol"`
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	QuoteQty        decimal.Decimal `json:"quoteQty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	Time            int64           `json:"time"` // milliseconds
	IsBuyer         bool            `json:"isBuyer"`
}

// QuoteAsset resolves the quote currency of a symbol from the public
// /api/v3/exchangeInfo endpoint. Being public and stable, it is a good
// candidate for the [Daily] cached client.
func QuoteAsset(client *http.Client, baseURL, symbol string) (string, error) {
	addr := fmt.Sprintf("%s/api/v3/exchangeInfo?symbol=%s", baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := jwget(client, req, &jobj); err != nil {
		return "", fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	path := "$.symbols[0].quoteAsset"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	quote, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: %q not a string %v", symbol, path, jval)
	}
	return quote, nil
}

// envelopePaths are the known ways exchanges wrap a trade list in their
// response body. A bare JSON array needs no path at all.
var envelopePaths = []string{"$.data", "$.result.list"}

// FetchFills retrieves the account's executed trades for one symbol since
// the given instant, converted to engine fills. The request is signed the
// Binance way: an HMAC-SHA256 of the query string appended as `signature`,
// with the API key in the X-MBX-APIKEY header.
//
// Zero-quantity trades are NOT filtered here; that is the caller's contract
// with the engine.
func FetchFills(client *http.Client, baseURL, apiKey, apiSecret, symbol, quote string, since time.Time, limit int) ([]Fill, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("startTime", strconv.FormatInt(since.UnixMilli(), 10))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(q.Encode()))
	signed := q.Encode() + "&signature=" + hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v3/myTrades?"+signed, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-MBX-APIKEY", apiKey)

	var jobj any
	if err := jwget(client, req, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching trades for %q: %w", symbol, err)
	}

	records, err := pluckTrades(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing trades for %q: %w", symbol, err)
	}

	fills := make([]Fill, 0, len(records))
	for _, r := range records {
		side := Sell
		if r.IsBuyer {
			side = Buy
		}
		sym := r.Symbol
		if sym == "" {
			sym = symbol
		}
		fills = append(fills, Fill{
			Time:     time.UnixMilli(r.Time).UTC(),
			Side:     side,
			Symbol:   sym,
			Quantity: Q(r.Qty),
			Price:    M(r.Price, quote),
			Cost:     M(r.QuoteQty, quote),
			Fee:      M(r.Commission, r.CommissionAsset),
		})
	}
	return fills, nil
}

// pluckTrades locates the trade list in the response body: either a bare
// array, or nested under one of the known envelopes.
func pluckTrades(jobj any) ([]tradeRecord, error) {
	jlist, ok := jobj.([]any)
	if !ok {
		for _, path := range envelopePaths {
			jval, err := jsonpath.Get(path, jobj)
			if err != nil {
				continue
			}
			if l, ok := jval.([]any); ok {
				jlist = l
				break
			}
		}
	}
	if jlist == nil {
		return nil, fmt.Errorf("no trade list found in response")
	}

	// round-trip through json to decode the generic values strictly.
	raw, err := json.Marshal(jlist)
	if err != nil {
		return nil, err
	}
	var records []tradeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
