package txledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits an Amount is exact to.
const Places = 4

// Amount is an exact fixed-point monetary value.
//
// The zero value is a valid zero amount.
type Amount struct {
	value decimal.Decimal
}

// maxAmount bounds the integer part of parsed amounts to the int64 range.
var maxAmount = decimal.NewFromInt(math.MaxInt64)

// A is a convenient factory for Amount, mostly used in tests.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Amount{value: v}
	case float64:
		return Amount{value: decimal.NewFromFloat(v)}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Amount{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a decimal token like "1.5" or "-0.0001".
//
// Tokens carrying significant digits beyond the fourth fractional digit are
// rejected rather than rounded, so are exponents and values beyond the int64
// range.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		return Amount{}, fmt.Errorf("invalid amount %q: exponent notation", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.Equal(d.Truncate(Places)) {
		return Amount{}, fmt.Errorf("invalid amount %q: more than %d fractional digits", s, Places)
	}
	if d.Truncate(0).Abs().GreaterThan(maxAmount) {
		return Amount{}, fmt.Errorf("invalid amount %q: out of range", s)
	}
	return Amount{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.value.LessThanOrEqual(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Cmp(b Amount) int                 { return a.value.Cmp(b.value) }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) Decimal() decimal.Decimal         { return a.value }
func (a Amount) String() string                   { return a.value.StringFixed(Places) }

// MarshalJSON writes the amount as a JSON number with four fractional digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both quoted and unquoted decimals.
func (a *Amount) UnmarshalJSON(data []byte) error {
	v, err := ParseAmount(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
