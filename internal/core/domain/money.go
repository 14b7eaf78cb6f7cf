package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits a stored amount keeps. VND has
// no sub-unit in circulation, so every persisted amount is a whole number.
const MoneyPlaces int32 = 0

// Money is a fixed-point monetary amount.
//
// Decoding is lenient on purpose: numbers, numeric strings, null, missing and
// non-numeric values are all accepted and anything unparseable becomes zero.
// Totals shown to operators depend on this, so it is the single place where the
// "malformed contributes 0" policy lives.
type Money struct {
	d decimal.Decimal
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{}

// NewMoney wraps a decimal.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d}
}

// MoneyFromInt builds an amount from a whole number of units.
func MoneyFromInt(v int64) Money {
	return Money{d: decimal.NewFromInt(v)}
}

// MoneyFrom coerces an arbitrary decoded value into Money.
func MoneyFrom(v any) Money {
	return Money{d: coerceDecimal(v)}
}

// ParseMoney coerces a string into Money.
func ParseMoney(s string) Money {
	return Money{d: coerceString(s)}
}

func (m Money) Decimal() decimal.Decimal { return m.d }
func (m Money) Add(o Money) Money        { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money        { return Money{d: m.d.Sub(o.d)} }
func (m Money) Neg() Money               { return Money{d: m.d.Neg()} }
func (m Money) IsZero() bool             { return m.d.IsZero() }
func (m Money) IsNegative() bool         { return m.d.IsNegative() }
func (m Money) IsPositive() bool         { return m.d.IsPositive() }
func (m Money) Cmp(o Money) int          { return m.d.Cmp(o.d) }
func (m Money) Equal(o Money) bool       { return m.d.Equal(o.d) }
func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }
func (m Money) LessThan(o Money) bool    { return m.d.LessThan(o.d) }
func (m Money) String() string           { return m.d.String() }

// MulRate multiplies by a rate without rounding.
func (m Money) MulRate(r Rate) Money {
	return Money{d: m.d.Mul(r.d)}
}

// Round rounds half away from zero to the smallest currency unit.
func (m Money) Round() Money {
	return Money{d: m.d.Round(MoneyPlaces)}
}

// Max returns the larger of m and o.
func (m Money) Max(o Money) Money {
	if m.d.GreaterThanOrEqual(o.d) {
		return m
	}
	return o
}

// Float64 is for spreadsheet cells only; never do arithmetic with it.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// SumMoney adds all amounts.
func SumMoney(amounts ...Money) Money {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.d)
	}
	return Money{d: total}
}

// MarshalJSON emits a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	m.d = decodeLenient(data)
	return nil
}

// Scan lets pgx read numeric columns straight into Money.
func (m *Money) Scan(src any) error {
	m.d = coerceDecimal(src)
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.d.String(), nil
}

// Rate is a fraction, nominally in [0,1], applied to a money amount.
// It decodes with the same leniency as Money.
type Rate struct {
	d decimal.Decimal
}

// NewRate wraps a decimal.
func NewRate(d decimal.Decimal) Rate {
	return Rate{d: d}
}

// RateFrom coerces an arbitrary decoded value into a Rate.
func RateFrom(v any) Rate {
	return Rate{d: coerceDecimal(v)}
}

// MustRate parses a literal rate such as "0.15". Unparseable input yields zero.
func MustRate(s string) Rate {
	return Rate{d: coerceString(s)}
}

func (r Rate) Decimal() decimal.Decimal { return r.d }
func (r Rate) IsZero() bool             { return r.d.IsZero() }
func (r Rate) IsNegative() bool         { return r.d.IsNegative() }
func (r Rate) String() string           { return r.d.String() }
func (r Rate) Equal(o Rate) bool        { return r.d.Equal(o.d) }

// InRange reports whether the rate lies within [0,1].
func (r Rate) InRange() bool {
	return !r.d.IsNegative() && r.d.LessThanOrEqual(decimal.NewFromInt(1))
}

// Or returns r unless it is zero, in which case fallback is returned.
func (r Rate) Or(fallback Rate) Rate {
	if r.d.IsZero() {
		return fallback
	}
	return r
}

func (r Rate) Float64() float64 {
	f, _ := r.d.Float64()
	return f
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.d.String()), nil
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	r.d = decodeLenient(data)
	return nil
}

func (r *Rate) Scan(src any) error {
	r.d = coerceDecimal(src)
	return nil
}

func (r Rate) Value() (driver.Value, error) {
	return r.d.String(), nil
}

func decodeLenient(data []byte) decimal.Decimal {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return decimal.Zero
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return decimal.Zero
		}
		return coerceString(s)
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func coerceDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case Money:
		return x.d
	case Rate:
		return x.d
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case json.Number:
		return coerceString(x.String())
	case string:
		return coerceString(x)
	case []byte:
		return coerceString(string(x))
	default:
		return decimal.Zero
	}
}

var separatorReplacer = strings.NewReplacer(",", "", "_", "", " ", "")

func coerceString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	if d, err := decimal.NewFromString(separatorReplacer.Replace(s)); err == nil {
		return d
	}
	return decimal.Zero
}
