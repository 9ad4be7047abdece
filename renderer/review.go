package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradelog"
	md "github.com/nao1215/markdown"
)

// ReviewMarkdown renders the aggregate review of a journal.
func ReviewMarkdown(r *tradelog.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Trade Review"
	if r.Symbol != "" {
		title = fmt.Sprintf("Trade Review for %s", r.Symbol)
	}
	doc.H1(title)

	if r.Closed == 0 && r.Open == 0 {
		doc.PlainText("Nothing to review yet.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net Realized PnL"), md.Bold(r.NetPnL.SignedString())},
		Rows: [][]string{
			{"Closed trades", fmt.Sprintf("%d", r.Closed)},
			{"Open trades", fmt.Sprintf("%d", r.Open)},
			{"Win rate", r.WinRate().String()},
			{"Wins / Losses / Flat", fmt.Sprintf("%d / %d / %d", r.Wins, r.Losses, r.Flat)},
			{"Gross win", r.GrossWin.SignedString()},
			{"Gross loss", r.GrossLoss.SignedString()},
			{"Best trade", r.Best.SignedString()},
			{"Worst trade", r.Worst.SignedString()},
		},
	})

	return doc.String()
}
