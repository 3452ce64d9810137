package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ngarg/tradebook"
)

// PriceMarkdown renders a selling price calculation result.
func PriceMarkdown(instrument string, quantity tradebook.Quantity, profit tradebook.Percent, price tradebook.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Selling Price")
	doc.PlainTextf("Sell %s shares of %s at %s per share for %s profit.",
		quantity, instrument, md.Bold(price.String()), profit)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Target Proceeds", price.Mul(quantity).Round().String()},
		Rows: [][]string{
			{"Quantity", quantity.String()},
			{"Desired Profit", fmt.Sprint(profit)},
		},
	})

	return doc.String()
}
