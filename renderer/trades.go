package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/ngarg/tradebook"
)

// TradesMarkdown renders the normalized trade sequences of a ledger.
func TradesMarkdown(ledger *tradebook.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Normalized Trades")

	for instrument := range ledger.Instruments() {
		doc.H2(instrument)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Side", "Quantity", "Price"},
		}
		for trade := range ledger.Trades(instrument) {
			table.Rows = append(table.Rows, []string{
				trade.Time.String(),
				trade.Side.String(),
				trade.Quantity.String(),
				trade.Price.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
