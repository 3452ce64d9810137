package tradebook

import (
	"errors"
	"testing"
)

func TestNewPortfolioReport(t *testing.T) {
	batches := [][]RawTradeRecord{{
		record("INFY", "2024-04-01", "buy", "10", "1400"),
		record("INFY", "2024-05-01", "buy", "10", "1600"),
		record("TCS", "2024-04-01", "buy", "5", "3500"),
		record("TCS", "2024-06-01", "sell", "5", "3900"),
	}}
	ledger, err := Normalize(batches, NormalizeOptions{})
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}

	report, err := NewPortfolioReport(ledger)
	if err != nil {
		t.Fatalf("NewPortfolioReport() failed: %v", err)
	}

	if report.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", report.Currency, DefaultCurrency)
	}
	if len(report.Positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(report.Positions))
	}

	infy := report.Positions[0]
	if infy.Instrument != "INFY" || !infy.Held {
		t.Fatalf("first position = %+v, want a held INFY", infy)
	}
	if !infy.Quantity.Equal(Q(20)) {
		t.Errorf("INFY quantity = %s, want 20", infy.Quantity)
	}
	if !infy.AverageCost.Equal(M(1500, "INR")) {
		t.Errorf("INFY average cost = %s, want ₹1,500.00", infy.AverageCost)
	}

	tcs := report.Positions[1]
	if tcs.Instrument != "TCS" || tcs.Held {
		t.Fatalf("second position = %+v, want a flat TCS", tcs)
	}
	if !tcs.Quantity.IsZero() {
		t.Errorf("TCS quantity = %s, want 0", tcs.Quantity)
	}
}

func TestNewPortfolioReport_SuppressedInstrumentReappears(t *testing.T) {
	history := []RawTradeRecord{
		record("WIPRO", "2024-04-01", "buy", "10", "500"),
		record("WIPRO", "2024-05-01", "sell", "10", "520"),
	}
	opts := NormalizeOptions{Hide: []string{"WIPRO"}}

	// Fully exited and suppressed: absent from the report.
	ledger, err := Normalize([][]RawTradeRecord{history}, opts)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	report, err := NewPortfolioReport(ledger)
	if err != nil {
		t.Fatalf("NewPortfolioReport() failed: %v", err)
	}
	if len(report.Positions) != 0 {
		t.Fatalf("suppressed instrument still reported: %+v", report.Positions)
	}

	// Bought again: suppression no longer applies, same options.
	rebuy := append(history, record("WIPRO", "2024-06-01", "buy", "4", "480"))
	ledger, err = Normalize([][]RawTradeRecord{rebuy}, opts)
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}
	report, err = NewPortfolioReport(ledger)
	if err != nil {
		t.Fatalf("NewPortfolioReport() failed: %v", err)
	}
	if len(report.Positions) != 1 || report.Positions[0].Instrument != "WIPRO" {
		t.Fatalf("rebought instrument missing from report: %+v", report.Positions)
	}
	if !report.Positions[0].Quantity.Equal(Q(4)) {
		t.Errorf("WIPRO quantity = %s, want 4", report.Positions[0].Quantity)
	}
	if !report.Positions[0].AverageCost.Equal(M(480, "INR")) {
		t.Errorf("WIPRO average cost = %s, want ₹480.00", report.Positions[0].AverageCost)
	}
}

func TestNewPortfolioReport_OversellAborts(t *testing.T) {
	batches := [][]RawTradeRecord{{
		record("TCS", "2024-04-01", "buy", "5", "3500"),
		record("TCS", "2024-05-01", "sell", "8", "3900"),
	}}
	ledger, err := Normalize(batches, NormalizeOptions{})
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}

	_, err = NewPortfolioReport(ledger)
	if err == nil {
		t.Fatal("NewPortfolioReport() accepted an overselling history")
	}
	var oversell *OversellError
	if !errors.As(err, &oversell) {
		t.Fatalf("error = %v, want a wrapped *OversellError", err)
	}
}
