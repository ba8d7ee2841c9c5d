package kasir

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the currency assumed for every price. The tool targets
// Indonesian rupiah; amounts are stored as plain numbers and the currency is
// display-only.
const DefaultCurrency = "IDR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value), cur: DefaultCurrency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	}
	panic("unreachable")
}

// ParsePrice parses user input into a Money value. The input must be a
// plain finite number; negative prices are rejected at this boundary so the
// stores never see them.
func ParsePrice(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, &ValidationError{Field: "price", Reason: "must not be empty"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if d.IsNegative() {
		return Money{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return M(d), nil
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the display representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Amount returns the bare numeric value, as persisted and exported.
func (m Money) Amount() decimal.Decimal { return m.value }

// Simple wrappers around decimal.Decimal.

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money          { return Money{value: m.value.Add(n.value), cur: mcur(m, n)} }
func (m Money) MulInt(quantity int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(quantity))), cur: m.cur}
}

// makes the "" currency totally weak.
func mcur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// MarshalJSON encodes the value as a bare number, the form the persisted
// blobs and the original data files use.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON decodes a bare number; the currency is the tool default.
func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.value.UnmarshalJSON(data); err != nil {
		return err
	}
	m.cur = DefaultCurrency
	return nil
}
