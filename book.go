package tradebook

import "iter"

// Lot is a read-only view of an open purchase lot, exposed by value so that
// callers can never mutate the book through it.
type Lot struct {
	On       Timestamp
	Quantity Quantity // remaining, unconsumed shares
	UnitCost Money    // purchase price per share, fixed at creation
}

// Book is the FIFO lot book of a single instrument.
//
// A Book is built once from the instrument's chronological trade sequence
// and then only read. Sells consume the oldest open lots first; a lot's
// remaining quantity only ever decreases, and an emptied lot is retired
// from the queue.
type Book struct {
	instrument string
	lots       lots // active lots, oldest first
}

// NewBook replays an instrument's trades, in ascending timestamp order with
// stable ties, into a lot book. A sell exceeding all recorded prior buys
// fails with an *OversellError: the book must not silently go negative.
func NewBook(instrument string, trades []Trade) (*Book, error) {
	b := &Book{instrument: instrument}
	for _, trade := range trades {
		switch trade.Side {
		case Buy:
			b.lots = append(b.lots, lot{on: trade.Time, remaining: trade.Quantity, unitCost: trade.Price})
		case Sell:
			remaining, shortfall := b.lots.consume(trade.Quantity)
			if shortfall.IsPositive() {
				return nil, &OversellError{Instrument: instrument, Shortfall: shortfall, On: trade.Time}
			}
			b.lots = remaining
		}
	}
	return b, nil
}

// Instrument returns the instrument this book belongs to.
func (b *Book) Instrument() string { return b.instrument }

// CurrentQuantity returns the net holding: the sum of all open lots'
// remaining shares.
func (b *Book) CurrentQuantity() Quantity {
	return b.lots.quantity()
}

// AverageCost returns the weighted average purchase price of the shares
// currently held. It fails with a *NoHoldingError when the position is flat,
// since the average is undefined then.
func (b *Book) AverageCost() (Money, error) {
	quantity := b.lots.quantity()
	if quantity.IsZero() {
		return Money{}, &NoHoldingError{Instrument: b.instrument}
	}
	return b.lots.cost().Div(quantity), nil
}

// ActiveLots returns a restartable iterator over the open lots, oldest
// first. Lots are yielded by value: the sequence is a snapshot, independent
// of anything the caller does with it.
func (b *Book) ActiveLots() iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for _, l := range b.lots {
			if !yield(Lot{On: l.on, Quantity: l.remaining, UnitCost: l.unitCost}) {
				return
			}
		}
	}
}
