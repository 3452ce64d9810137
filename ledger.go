package tradebook

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed for prices when the caller does
// not name one. The reference tradebooks are Indian equity exports.
const DefaultCurrency = "INR"

// NormalizeOptions configures the normalization of raw trade records.
// The zero value is valid: no aliasing, no suppression, DefaultCurrency.
type NormalizeOptions struct {
	// Aliases remaps instrument identifiers to a canonical one, so that two
	// tickers representing the same underlying security are coalesced.
	Aliases map[string]string
	// Hide lists instruments to leave out of the ledger, but only while
	// their net historical quantity is zero or negative. An instrument
	// bought again after a full exit reappears.
	Hide []string
	// Currency is the trading currency of all prices.
	Currency string
}

// Ledger holds the canonical per-instrument chronological trade sequences.
//
// A Ledger is read-only after construction; it is rebuilt from scratch on
// every normalization pass rather than updated incrementally, which keeps
// derived state trivially fresh.
type Ledger struct {
	currency    string
	instruments []string           // sorted
	trades      map[string][]Trade // per instrument, chronological, ties in input order
}

// Normalize validates and orders raw trade-record batches into a Ledger.
//
// Each row's instrument is trimmed and remapped through the alias table, the
// side matched case-insensitively against buy/sell, quantity and price parsed
// as positive numbers (quantity a whole number), and the timestamp parsed as
// a date or date-time. Any unparseable row aborts the whole call with an
// *InvalidRecordError: partial ingestion is never accepted.
//
// Records are ordered by (instrument, timestamp), ties broken by their
// position in the concatenated input. This determinism matters: FIFO
// consumption depends on it.
func Normalize(batches [][]RawTradeRecord, opts NormalizeOptions) (*Ledger, error) {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	var all []Trade
	for b, batch := range batches {
		for i, record := range batch {
			trade, err := parseRecord(record, opts.Aliases, currency)
			if err != nil {
				ire := err.(*InvalidRecordError)
				ire.Batch, ire.Row = b, i
				return nil, ire
			}
			all = append(all, trade)
		}
	}

	// Stable sort keeps the concatenated input order for same-instrument,
	// same-timestamp trades.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Instrument != all[j].Instrument {
			return all[i].Instrument < all[j].Instrument
		}
		return all[i].Time.Before(all[j].Time)
	})

	ledger := &Ledger{currency: currency, trades: make(map[string][]Trade)}
	for _, trade := range all {
		if _, seen := ledger.trades[trade.Instrument]; !seen {
			ledger.instruments = append(ledger.instruments, trade.Instrument)
		}
		ledger.trades[trade.Instrument] = append(ledger.trades[trade.Instrument], trade)
	}

	// Suppression is not a blacklist: it only hides instruments that are
	// currently fully exited, evaluated fresh on each normalization.
	for _, hidden := range opts.Hide {
		name := canonical(hidden, opts.Aliases)
		if _, held := ledger.trades[name]; !held {
			continue
		}
		if ledger.NetQuantity(name).IsPositive() {
			continue
		}
		delete(ledger.trades, name)
		for i, instrument := range ledger.instruments {
			if instrument == name {
				ledger.instruments = append(ledger.instruments[:i], ledger.instruments[i+1:]...)
				break
			}
		}
	}

	return ledger, nil
}

// canonical trims an instrument identifier and resolves it through the alias table.
func canonical(instrument string, aliases map[string]string) string {
	name := strings.TrimSpace(instrument)
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

func parseRecord(record RawTradeRecord, aliases map[string]string, currency string) (Trade, error) {
	instrument := canonical(record.Instrument, aliases)
	if instrument == "" {
		return Trade{}, &InvalidRecordError{Field: "instrument", Record: record}
	}

	side, err := ParseSide(record.Side)
	if err != nil {
		return Trade{}, &InvalidRecordError{Field: "side", Record: record, Err: err}
	}

	quantity, err := parsePositiveDecimal(record.Quantity)
	if err != nil {
		return Trade{}, &InvalidRecordError{Field: "quantity", Record: record, Err: err}
	}
	q := Q(quantity)
	if !q.IsInteger() {
		return Trade{}, &InvalidRecordError{Field: "quantity", Record: record, Err: fmt.Errorf("quantity %s is not a whole number", q)}
	}

	price, err := parsePositiveDecimal(record.Price)
	if err != nil {
		return Trade{}, &InvalidRecordError{Field: "price", Record: record, Err: err}
	}

	when, err := ParseTimestamp(record.Timestamp)
	if err != nil {
		return Trade{}, &InvalidRecordError{Field: "timestamp", Record: record, Err: err}
	}

	return Trade{
		Instrument: instrument,
		Time:       when,
		Side:       side,
		Quantity:   q,
		Price:      M(price, currency),
	}, nil
}

// parsePositiveDecimal parses a strictly positive number, stringified
// integers and decimals both accepted.
func parsePositiveDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%s is not positive", d)
	}
	return d, nil
}

// Currency returns the trading currency of all prices in the ledger.
func (l *Ledger) Currency() string { return l.currency }

// Instruments returns an iterator over instrument identifiers in sorted order.
func (l *Ledger) Instruments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, instrument := range l.instruments {
			if !yield(instrument) {
				return
			}
		}
	}
}

// Trades returns an iterator over an instrument's trades in chronological order.
func (l *Ledger) Trades(instrument string) iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, trade := range l.trades[instrument] {
			if !yield(trade) {
				return
			}
		}
	}
}

// NetQuantity computes shares bought minus shares sold for an instrument,
// over the whole recorded history. It is independent of lot matching and
// may be negative when the history is incomplete.
func (l *Ledger) NetQuantity(instrument string) Quantity {
	var net Quantity
	for _, trade := range l.trades[instrument] {
		switch trade.Side {
		case Buy:
			net = net.Add(trade.Quantity)
		case Sell:
			net = net.Sub(trade.Quantity)
		}
	}
	return net
}

// Book replays an instrument's trades into a fresh FIFO lot book.
func (l *Ledger) Book(instrument string) (*Book, error) {
	return NewBook(instrument, l.trades[instrument])
}
