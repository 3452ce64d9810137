package tradebook

import (
	"fmt"
	"iter"
)

// RequiredSellingPrice computes the minimum per-share price at which selling
// quantityToSell shares realizes the desired profit percentage over their
// FIFO cost basis.
//
// The lots sequence must be ordered oldest-first, as Book.ActiveLots yields
// it. The cost of the sale is accumulated lot by lot until the quantity is
// covered; if the lots run out first the call fails with an
// *InsufficientSharesError carrying the quantity actually available. The
// target proceeds are cost × (1 + profit/100) and the resulting per-share
// price is rounded to the currency's minor unit.
//
// A negative profit percentage prices the sale at a loss; clamping, if
// wanted, belongs to the presentation layer. The computation is a pure
// query: it never mutates the lots it walks.
func RequiredSellingPrice(instrument string, lotSeq iter.Seq[Lot], quantityToSell Quantity, profit Percent) (Money, error) {
	if !quantityToSell.IsPositive() || !quantityToSell.IsInteger() {
		return Money{}, fmt.Errorf("quantity to sell must be a positive whole number, got %s", quantityToSell)
	}

	var costCovered Money
	stillNeeded := quantityToSell
	for l := range lotSeq {
		if stillNeeded.IsZero() {
			break
		}
		take := l.Quantity.Min(stillNeeded)
		costCovered = costCovered.Add(l.UnitCost.Mul(take))
		stillNeeded = stillNeeded.Sub(take)
	}
	if stillNeeded.IsPositive() {
		return Money{}, &InsufficientSharesError{
			Instrument: instrument,
			Requested:  quantityToSell,
			Available:  quantityToSell.Sub(stillNeeded),
		}
	}

	targetProceeds := costCovered.Scale(profit.factor())
	return targetProceeds.Div(quantityToSell).Round(), nil
}

// RequiredSellingPrice prices a hypothetical sale against the book's current
// lots. The book itself is left untouched; the sale becomes real only when a
// sell trade is later ingested through normalization.
func (b *Book) RequiredSellingPrice(quantityToSell Quantity, profit Percent) (Money, error) {
	return RequiredSellingPrice(b.instrument, b.ActiveLots(), quantityToSell, profit)
}
