package tradebook

import (
	"errors"
	"slices"
	"testing"
)

func TestRequiredSellingPrice(t *testing.T) {
	book, err := NewBook("TCS", []Trade{
		buy("2024-04-01", 10, 100),
		buy("2024-05-01", 5, 120),
	})
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	testCases := []struct {
		name     string
		quantity int64
		profit   Percent
		want     Money
	}{
		{
			// cost covered = 10×100 + 2×120 = 1240; proceeds = 1364; 1364/12 = 113.67
			name:     "across two lots at 10 percent",
			quantity: 12,
			profit:   10,
			want:     M(113.67, "INR"),
		},
		{
			name:     "break even on the oldest lot",
			quantity: 10,
			profit:   0,
			want:     M(100, "INR"),
		},
		{
			// pricing at a loss is allowed: 1000 × 0.95 / 10 = 95
			name:     "negative profit prices a loss",
			quantity: 10,
			profit:   -5,
			want:     M(95, "INR"),
		},
		{
			name:     "single share from the head lot",
			quantity: 1,
			profit:   25,
			want:     M(125, "INR"),
		},
		{
			// whole position: 1600 × 1.1 / 15 = 117.33...
			name:     "whole position",
			quantity: 15,
			profit:   10,
			want:     M(117.33, "INR"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := book.RequiredSellingPrice(Q(tc.quantity), tc.profit)
			if err != nil {
				t.Fatalf("RequiredSellingPrice(%d, %s) failed: %v", tc.quantity, tc.profit, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("RequiredSellingPrice(%d, %s) = %s, want %s", tc.quantity, tc.profit, got, tc.want)
			}
		})
	}
}

func TestRequiredSellingPrice_InsufficientShares(t *testing.T) {
	book, err := NewBook("TCS", []Trade{
		buy("2024-04-01", 10, 100),
		sell("2024-05-01", 4),
	})
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	// one more share than held
	_, err = book.RequiredSellingPrice(Q(7), 10)
	if err == nil {
		t.Fatal("RequiredSellingPrice() priced more shares than held")
	}
	var insufficient *InsufficientSharesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error = %v, want *InsufficientSharesError", err)
	}
	if !insufficient.Requested.Equal(Q(7)) {
		t.Errorf("Requested = %s, want 7", insufficient.Requested)
	}
	if !insufficient.Available.Equal(Q(6)) {
		t.Errorf("Available = %s, want 6", insufficient.Available)
	}

	// exactly the held quantity still succeeds
	if _, err := book.RequiredSellingPrice(Q(6), 10); err != nil {
		t.Errorf("RequiredSellingPrice(6, 10%%) failed: %v", err)
	}
}

func TestRequiredSellingPrice_InvalidQuantity(t *testing.T) {
	book, err := NewBook("TCS", []Trade{buy("2024-04-01", 10, 100)})
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	for _, quantity := range []Quantity{Q(0), Q(-3), Q(1.5)} {
		if _, err := book.RequiredSellingPrice(quantity, 10); err == nil {
			t.Errorf("RequiredSellingPrice(%s, 10%%) accepted an invalid quantity", quantity)
		}
	}
}

func TestRequiredSellingPrice_IsPure(t *testing.T) {
	book, err := NewBook("TCS", []Trade{
		buy("2024-04-01", 10, 100),
		buy("2024-05-01", 5, 120),
	})
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	snapshot := func() []Lot {
		return slices.Collect(book.ActiveLots())
	}
	before := snapshot()

	first, err := book.RequiredSellingPrice(Q(12), 10)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := book.RequiredSellingPrice(Q(12), 10)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("identical queries returned %s then %s", first, second)
	}

	after := snapshot()
	if len(before) != len(after) {
		t.Fatalf("lot count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if !before[i].Quantity.Equal(after[i].Quantity) || !before[i].UnitCost.Equal(after[i].UnitCost) {
			t.Errorf("lot %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestRequiredSellingPrice_BreakEvenMatchesAverageCost(t *testing.T) {
	// Selling the entire position at 0% profit reproduces the weighted
	// average cost, up to minor-unit rounding.
	books := [][]Trade{
		{buy("2024-04-01", 10, 100), buy("2024-05-01", 5, 120)},
		{buy("2024-04-01", 3, 333.33), buy("2024-05-01", 7, 150.10)},
		{buy("2024-04-01", 10, 100), sell("2024-04-15", 7), buy("2024-05-01", 5, 80)},
	}

	for i, trades := range books {
		book, err := NewBook("TCS", trades)
		if err != nil {
			t.Fatalf("NewBook() failed for case %d: %v", i, err)
		}
		avg, err := book.AverageCost()
		if err != nil {
			t.Fatalf("AverageCost() failed for case %d: %v", i, err)
		}
		price, err := book.RequiredSellingPrice(book.CurrentQuantity(), 0)
		if err != nil {
			t.Fatalf("RequiredSellingPrice() failed for case %d: %v", i, err)
		}
		if !price.Equal(avg.Round()) {
			t.Errorf("case %d: break-even price %s != rounded average cost %s", i, price, avg.Round())
		}
	}
}
