package tradelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Fills and positions are persisted as JSONL: one object per line, fields in
// a fixed order so files diff cleanly under version control. Decimal fields
// are written unquoted; monetary fields share a single "currency" field per
// line, the quote currency of the symbol.

// MarshalJSON implements the json.Marshaler interface for Fill.
func (f Fill) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", f.Time.Format(time.RFC3339Nano))
	w.Append("side", f.Side)
	w.Append("symbol", f.Symbol)
	w.Append("quantity", f.Quantity)
	w.Append("price", f.Price.value)
	w.Append("cost", f.Cost.value)
	w.Optional("fee", f.Fee.value)
	w.Optional("currency", f.Cost.Currency())
	return w.MarshalJSON()
}

// fillRecord is a specialized struct for decoding a fill line.
type fillRecord struct {
	Time     time.Time       `json:"time"`
	Side     Side            `json:"side"`
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Fee      decimal.Decimal `json:"fee"`
	Currency string          `json:"currency"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Fill.
func (f *Fill) UnmarshalJSON(data []byte) error {
	var rec fillRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*f = Fill{
		Time:     rec.Time,
		Side:     rec.Side,
		Symbol:   rec.Symbol,
		Quantity: Q(rec.Quantity),
		Price:    M(rec.Price, rec.Currency),
		Cost:     M(rec.Cost, rec.Currency),
		Fee:      M(rec.Fee, rec.Currency),
	}
	return nil
}

// EncodeFill appends one fill as a single JSONL line.
func EncodeFill(w io.Writer, f Fill) error {
	line, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("could not encode fill: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// DecodeFills decodes a stream of JSONL fill lines. Empty lines are skipped.
func DecodeFills(r io.Reader) ([]Fill, error) {
	var fills []Fill
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var f Fill
		if err := json.Unmarshal(line, &f); err != nil {
			return nil, fmt.Errorf("could not decode fill line %q: %w", string(line), err)
		}
		fills = append(fills, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read fills: %w", err)
	}
	return fills, nil
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", p.Symbol)
	w.Append("side", p.Side)
	w.Append("open", p.Open.Format(time.RFC3339Nano))
	w.Append("close", p.Close.Format(time.RFC3339Nano))
	w.Append("quantity", p.Quantity)
	w.Append("quoteQuantity", p.QuoteQuantity.value)
	w.Append("averageEntry", p.AverageEntry.value)
	w.Append("averageExit", p.AverageExit.value)
	w.Append("pnl", p.PnL.value)
	w.Optional("currency", p.PnL.Currency())
	w.Optional("isOpen", p.IsOpen)
	w.Optional("setup", p.Setup)
	return w.MarshalJSON()
}

// positionRecord is a specialized struct for decoding a position line.
type positionRecord struct {
	Symbol        string          `json:"symbol"`
	Side          Side            `json:"side"`
	Open          time.Time       `json:"open"`
	Close         time.Time       `json:"close"`
	Quantity      decimal.Decimal `json:"quantity"`
	QuoteQuantity decimal.Decimal `json:"quoteQuantity"`
	AverageEntry  decimal.Decimal `json:"averageEntry"`
	AverageExit   decimal.Decimal `json:"averageExit"`
	PnL           decimal.Decimal `json:"pnl"`
	Currency      string          `json:"currency"`
	IsOpen        bool            `json:"isOpen"`
	Setup         string          `json:"setup"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position.
func (p *Position) UnmarshalJSON(data []byte) error {
	var rec positionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*p = Position{
		Symbol:        rec.Symbol,
		Side:          rec.Side,
		Open:          rec.Open,
		Close:         rec.Close,
		Quantity:      Q(rec.Quantity),
		QuoteQuantity: M(rec.QuoteQuantity, rec.Currency),
		AverageEntry:  M(rec.AverageEntry, rec.Currency),
		AverageExit:   M(rec.AverageExit, rec.Currency),
		PnL:           M(rec.PnL, rec.Currency),
		IsOpen:        rec.IsOpen,
		Setup:         rec.Setup,
	}
	return nil
}

// EncodePosition appends one position as a single JSONL line.
func EncodePosition(w io.Writer, p Position) error {
	line, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not encode position: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

// EncodePositions writes all positions, one JSONL line each.
func EncodePositions(w io.Writer, positions []Position) error {
	for _, p := range positions {
		if err := EncodePosition(w, p); err != nil {
			return err
		}
	}
	return nil
}

// DecodePositions decodes a stream of JSONL position lines into a Book.
func DecodePositions(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p Position
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("could not decode position line %q: %w", string(line), err)
		}
		book.Append(p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read positions: %w", err)
	}
	return book, nil
}
