package tradebook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent represents a percentage value, e.g. Percent(10) is 10%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// factor returns the multiplier (1 + p/100) as an exact decimal.
func (p Percent) factor() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return decimal.NewFromFloat(float64(p)).Div(hundred).Add(decimal.NewFromInt(1))
}
