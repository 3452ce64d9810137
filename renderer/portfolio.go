package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/ngarg/tradebook"
)

// PortfolioMarkdown renders a portfolio report to a markdown string.
func PortfolioMarkdown(r *tradebook.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Active Portfolio")

	if len(r.Positions) == 0 {
		doc.PlainText("No trades recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Instrument", "Quantity", "Avg Buy Price"},
	}
	for _, position := range r.Positions {
		avg := "none"
		if position.Held {
			avg = position.AverageCost.Round().String()
		}
		table.Rows = append(table.Rows, []string{
			position.Instrument,
			position.Quantity.String(),
			avg,
		})
	}
	doc.Table(table)

	return doc.String()
}
