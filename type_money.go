package ashare

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a CNY amount. Everything traded on the Shanghai and
// Shenzhen exchanges settles in CNY, so unlike a multi-currency ledger there
// is no currency attribute to carry around. Amounts stay unrounded decimals
// internally; rounding to the currency fraction happens in String only.
type Money struct {
	value decimal.Decimal
}

// NewMoney wraps an exact decimal amount.
func NewMoney(value decimal.Decimal) Money { return Money{value: value} }

// M is a convenient Money factory for literals and tests.
func M(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// currency returns the CNY currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.CNY).Currency()
}

// String returns the amount formatted as CNY, rounded to two decimals.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign. Zero is rendered "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Sign() int            { return m.value.Sign() }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money           { return Money{value: m.value.Neg()} }
func (m Money) Decimal() decimal.Decimal { return m.value }

// PercentOf returns m as a percentage of base. A zero base yields NaN or
// ±Inf, following float semantics; Percent renders those as "-".
func (m Money) PercentOf(base Money) Percent {
	return Percent(m.value.InexactFloat64() / base.value.InexactFloat64() * 100)
}
