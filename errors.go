package tradebook

import "fmt"

// InvalidRecordError reports a raw trade row that could not be parsed.
// The whole batch it belongs to is rejected: a partially loaded tradebook
// would silently corrupt the FIFO consumption order.
type InvalidRecordError struct {
	Batch  int            // index of the input batch
	Row    int            // index of the record within the batch
	Field  string         // the offending field name
	Record RawTradeRecord // the raw row, for the caller's error message
	Err    error          // the underlying parse failure, may be nil
}

func (e *InvalidRecordError) Error() string {
	msg := fmt.Sprintf("invalid record at batch %d row %d: bad %s in %s", e.Batch, e.Row, e.Field, e.Record)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }

// OversellError reports a sell trade that consumes more shares than all
// recorded prior buys. It signals missing history (or a short sale, which
// the lot book does not model) and halts the book's construction.
type OversellError struct {
	Instrument string
	Shortfall  Quantity // shares the sell could not match against open lots
	On         Timestamp
}

func (e *OversellError) Error() string {
	return fmt.Sprintf("oversell of %s on %s: %s more shares sold than recorded prior buys", e.Instrument, e.On, e.Shortfall)
}

// NoHoldingError reports a query against an instrument with zero net quantity.
type NoHoldingError struct {
	Instrument string
}

func (e *NoHoldingError) Error() string {
	return fmt.Sprintf("no holding in %s", e.Instrument)
}

// InsufficientSharesError reports a price query for more shares than are
// currently held. The caller can retry with at most Available shares.
type InsufficientSharesError struct {
	Instrument string
	Requested  Quantity
	Available  Quantity
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares of %s: requested %s, available %s", e.Instrument, e.Requested, e.Available)
}
