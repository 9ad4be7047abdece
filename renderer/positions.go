// Package renderer turns tradelog reports into markdown, ready to be
// printed raw or rendered for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradelog"
	md "github.com/nao1215/markdown"
)

const timestampFormat = "2006-01-02 15:04:05"

// PositionsMarkdown renders the positions as a markdown table, in journal
// order. Still-open positions are marked: their close column is the last
// fill seen, not a true close.
func PositionsMarkdown(title string, positions []tradelog.Position) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(positions) == 0 {
		doc.PlainText("No positions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{
			"#", "Symbol", "Side", "Closed", "Quantity", "Entry", "Exit", "PnL", "Setup",
		},
	}
	for i, p := range positions {
		closed := p.Close.Format(timestampFormat)
		if p.IsOpen {
			closed = "open"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Symbol,
			string(p.Side),
			closed,
			p.Quantity.String(),
			p.AverageEntry.String(),
			p.AverageExit.String(),
			p.PnL.SignedString(),
			p.Setup,
		})
	}
	doc.Table(table)

	return doc.String()
}
