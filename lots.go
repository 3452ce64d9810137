package tradebook

// lot is a single purchase of an instrument, owned exclusively by its Book.
// Its unit cost is fixed at creation; only the remaining quantity changes,
// and only downward.
type lot struct {
	on        Timestamp
	remaining Quantity
	unitCost  Money
}

type lots []lot

// consume removes quantityToSell shares from the queue oldest-first,
// retiring emptied lots. It returns the remaining queue and the shortfall,
// which is non-zero when the queue empties before the quantity is covered.
func (l lots) consume(quantityToSell Quantity) (remainingLots lots, shortfall Quantity) {
	for i, currentLot := range l {
		if quantityToSell.IsZero() {
			remainingLots = append(remainingLots, l[i:]...)
			return remainingLots, Q(0)
		}

		if currentLot.remaining.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			currentLot.remaining = currentLot.remaining.Sub(quantityToSell)
			remainingLots = append(remainingLots, currentLot)
			quantityToSell = Q(0)
		} else {
			// Full sale of this lot, retire it
			quantityToSell = quantityToSell.Sub(currentLot.remaining)
		}
	}
	return remainingLots, quantityToSell
}

// quantity sums the remaining shares over all open lots.
func (l lots) quantity() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.remaining)
	}
	return total
}

// cost sums remaining quantity times unit cost over all open lots.
func (l lots) cost() Money {
	var total Money
	for _, currentLot := range l {
		total = total.Add(currentLot.unitCost.Mul(currentLot.remaining))
	}
	return total
}
