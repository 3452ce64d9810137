package tradebook

import "fmt"

// PortfolioReport is a snapshot of all positions derived from a ledger.
type PortfolioReport struct {
	Currency  string
	Positions []Position
}

// Position is the holding of a single instrument.
type Position struct {
	Instrument  string
	Quantity    Quantity
	AverageCost Money // meaningful only when Held
	Held        bool  // false when the position is flat: no average cost exists
}

// NewPortfolioReport builds every instrument's lot book and reports the
// resulting positions, ordered by instrument. Fully exited instruments
// appear with a zero quantity unless they were suppressed at normalization.
// Any lot book construction failure aborts the whole report: a partially
// built snapshot is never exposed.
func NewPortfolioReport(ledger *Ledger) (*PortfolioReport, error) {
	report := &PortfolioReport{Currency: ledger.Currency()}
	for instrument := range ledger.Instruments() {
		book, err := ledger.Book(instrument)
		if err != nil {
			return nil, fmt.Errorf("cannot build lot book for %s: %w", instrument, err)
		}
		position := Position{Instrument: instrument, Quantity: book.CurrentQuantity()}
		if cost, err := book.AverageCost(); err == nil {
			position.AverageCost = cost
			position.Held = true
		}
		report.Positions = append(report.Positions, position)
	}
	return report, nil
}
