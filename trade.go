package tradebook

import (
	"fmt"
	"strings"
)

// Side identifies the direction of a trade.
type Side int

const (
	// Buy acquires shares, opening a new lot.
	Buy Side = iota
	// Sell disposes shares, consuming the oldest open lots first.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side. The match is case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// Trade is a single validated buy or sell, immutable once created.
type Trade struct {
	Instrument string
	Time       Timestamp
	Side       Side
	Quantity   Quantity // whole number of shares, always positive
	Price      Money    // price per share
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Time, t.Side, t.Quantity, t.Instrument, t.Price)
}

// RawTradeRecord is a loosely-typed trade row as delivered by a host
// application (CSV import, JSON import, or hand-built). All fields are
// strings; Normalize parses and validates them.
type RawTradeRecord struct {
	Instrument string
	Side       string
	Quantity   string
	Price      string
	Timestamp  string
}

func (r RawTradeRecord) String() string {
	return fmt.Sprintf("{%s %s %s %s %s}", r.Instrument, r.Timestamp, r.Side, r.Quantity, r.Price)
}
