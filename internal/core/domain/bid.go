package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bid is a campaign's monetary bid. It keeps full decimal precision so
// auction ordering never depends on binary floating point. On the wire it
// is a JSON number, but numeric strings are accepted on input the way the
// store's decimal type accepts them.
type Bid struct {
	dec decimal.Decimal
}

// ParseBid parses a decimal string into a Bid.
func ParseBid(s string) (Bid, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Bid{}, fmt.Errorf("parse bid %q: %w", s, err)
	}
	return Bid{dec: d}, nil
}

// Positive reports whether the bid is strictly greater than zero.
func (b Bid) Positive() bool {
	return b.dec.IsPositive()
}

// Cmp compares two bids exactly: -1 if b < o, 0 if equal, +1 if b > o.
func (b Bid) Cmp(o Bid) int {
	return b.dec.Cmp(o.dec)
}

// String renders the bid in fixed decimal notation.
func (b Bid) String() string {
	return b.dec.String()
}

// MarshalJSON renders the bid as a bare JSON number.
func (b Bid) MarshalJSON() ([]byte, error) {
	return []byte(b.dec.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted numeric string.
func (b *Bid) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("unmarshal bid %s: %w", data, err)
	}
	b.dec = d
	return nil
}

var _ json.Marshaler = Bid{}
var _ json.Unmarshaler = (*Bid)(nil)
