package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/ngarg/tradebook"
)

// LotsMarkdown renders the open lots of a single instrument, oldest first.
func LotsMarkdown(book *tradebook.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Open Lots: " + book.Instrument())

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Bought", "Remaining", "Unit Cost"},
	}
	for lot := range book.ActiveLots() {
		table.Rows = append(table.Rows, []string{
			lot.On.String(),
			lot.Quantity.String(),
			lot.UnitCost.String(),
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No open lots.")
		return doc.String()
	}
	doc.Table(table)

	return doc.String()
}
