package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// Money represents a monetary value as a signed 64-bit count of cents
// (hundredths of a currency unit), the same representation as the
// PostgreSQL money column type.
// The zero value corresponds to "$0.00" and is ready to use.
//
// Money is immutable and comparable: values can be tested with == and
// used as map keys. Equality and ordering are defined by the underlying
// cent count; see also method [Money.Cmp].
// Money is safe for concurrent use by multiple goroutines.
type Money struct {
	cents int64
}

const (
	minCents = math.MinInt64
	maxCents = math.MaxInt64
)

// New returns a monetary value equal to cents / 100 currency units.
// Any int64 is a valid cent count, so New cannot fail.
// See also constructor [Parse].
func New(cents int64) Money {
	return Money{cents: cents}
}

// Zero returns a monetary value equal to "$0.00".
// It is equivalent to the zero value Money{}.
func Zero() Money {
	return Money{}
}

// Min returns the minimum representable monetary value,
// "-$92233720368547758.08".
func Min() Money {
	return Money{cents: minCents}
}

// Max returns the maximum representable monetary value,
// "$92233720368547758.07".
func Max() Money {
	return Money{cents: maxCents}
}

// NewFromFloat64 converts a float, representing whole currency units,
// to a (possibly rounded) monetary value.
// The fractional part is rounded to cents using [rounding half away from zero].
// See also method [Money.Float64].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the result is outside the range [Min] through [Max].
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func NewFromFloat64(units float64) (Money, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", units)
	}
	f := math.Round(units * 100)
	if f >= -float64(minCents) || f < float64(minCents) {
		return Money{}, fmt.Errorf("converting float %v: %w", units, ErrOutOfRange)
	}
	return Money{cents: int64(f)}, nil
}

// NewFromDecimal converts a decimal, representing whole currency units,
// to a (possibly rounded) monetary value.
// The fractional part is rounded to cents using [rounding half to even]
// (banker's rounding), the convention of the decimal package.
// See also method [Money.Decimal].
//
// NewFromDecimal returns an error if the result is outside the range
// [Min] through [Max].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromDecimal(units decimal.Decimal) (Money, error) {
	whole, frac, ok := units.Int64(2)
	if !ok {
		return Money{}, fmt.Errorf("converting decimal %v: %w", units, ErrOutOfRange)
	}
	n, ok := mulInt64(whole, 100)
	if ok {
		n, ok = addInt64(n, frac)
	}
	if !ok {
		return Money{}, fmt.Errorf("converting decimal %v: %w", units, ErrOutOfRange)
	}
	return Money{cents: n}, nil
}

// Int64 returns the underlying cent count.
// See also constructor [New].
func (m Money) Int64() int64 {
	return m.cents
}

// Float64 returns the value in whole currency units as the nearest
// binary floating-point number.
// This conversion may lose precision for large values, as float64
// carries fewer significant digits than int64.
// See also constructor [NewFromFloat64].
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Decimal returns the value in whole currency units as a decimal with
// a scale of 2.
// See also constructor [NewFromDecimal].
func (m Money) Decimal() (decimal.Decimal, error) {
	d, err := decimal.New(m.cents, 2)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.cents < 0:
		return -1
	case m.cents > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Cmp compares monetary values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
func (m Money) Cmp(b Money) int {
	switch {
	case m.cents < b.cents:
		return -1
	case m.cents > b.cents:
		return 1
	}
	return 0
}

// Add returns the sum of values m and b.
// Add panics if the result is outside the range [Min] through [Max];
// use [Money.CheckedAdd] to handle overflow as an ordinary error.
func (m Money) Add(b Money) Money {
	c, err := m.CheckedAdd(b)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// CheckedAdd returns the sum of values m and b.
// It returns an error if the result is outside the range [Min] through [Max].
func (m Money) CheckedAdd(b Money) (Money, error) {
	n, ok := addInt64(m.cents, b.cents)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrOverflow)
	}
	return Money{cents: n}, nil
}

// Sub returns the difference between values m and b.
// Sub panics if the result is outside the range [Min] through [Max];
// use [Money.CheckedSub] to handle overflow as an ordinary error.
func (m Money) Sub(b Money) Money {
	c, err := m.CheckedSub(b)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// CheckedSub returns the difference between values m and b.
// It returns an error if the result is outside the range [Min] through [Max].
func (m Money) CheckedSub(b Money) (Money, error) {
	n, ok := subInt64(m.cents, b.cents)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrOverflow)
	}
	return Money{cents: n}, nil
}

// Integer is the set of integer scalar types accepted by [Mul] and [Div].
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32
}

// Float is the set of floating-point scalar types accepted by [Mul] and [Div].
type Float interface {
	float32 | float64
}

// Numeric is the set of all scalar types accepted by [Mul] and [Div].
type Numeric interface {
	Integer | Float
}

// Mul returns the product of value m and scalar k.
// Multiplication by a scalar is commutative, so there is no mirrored
// form: Mul(m, k) computes both m * k and k * m.
//
// Integer multiplication is overflow-checked: Mul panics if the result
// is outside the range [Min] through [Max]; use [CheckedMul] to handle
// overflow as an ordinary error.
//
// Floating-point multiplication computes the product on the cent count
// in the scalar's own precision and rounds it to the nearest cent using
// [rounding half away from zero]. It is not overflow-checked, as the
// float range exceeds the int64 range near the edges.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func Mul[T Numeric](m Money, k T) Money {
	switch f := any(k).(type) {
	case float64:
		return Money{cents: int64(math.Round(float64(m.cents) * f))}
	case float32:
		p := float32(m.cents) * f
		return Money{cents: int64(math.Round(float64(p)))}
	}
	c, err := CheckedMul(m, int64(k))
	if err != nil {
		panic(err.Error())
	}
	return c
}

// CheckedMul returns the product of value m and integer scalar k.
// It returns an error if the result is outside the range [Min] through [Max].
// See also function [Mul].
func CheckedMul[T Integer](m Money, k T) (Money, error) {
	n, ok := mulInt64(m.cents, int64(k))
	if !ok {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, k, ErrOverflow)
	}
	return Money{cents: n}, nil
}

// Div returns the quotient of value m and scalar k.
//
// Integer division truncates toward zero, discarding the remainder:
// Div(New(87808), 11) is New(7982).
// Floating-point division computes the quotient on the cent count in
// the scalar's own precision and rounds it to the nearest cent using
// [rounding half away from zero]: Div(New(87808), 11.0) is New(7983).
// The asymmetry mirrors the distinct conventions of integer and
// floating-point hardware division.
//
// Div panics if the divisor is zero, or if integer division overflows
// (only Div(Min(), -1)); use [CheckedDiv] to handle both as ordinary
// errors.
//
// [rounding half away from zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_away_from_zero
func Div[T Numeric](m Money, k T) Money {
	switch f := any(k).(type) {
	case float64:
		if f == 0 {
			panic(fmt.Sprintf("computing [%v / %v]: %v", m, k, ErrDivideByZero))
		}
		return Money{cents: int64(math.Round(float64(m.cents) / f))}
	case float32:
		if f == 0 {
			panic(fmt.Sprintf("computing [%v / %v]: %v", m, k, ErrDivideByZero))
		}
		q := float32(m.cents) / f
		return Money{cents: int64(math.Round(float64(q)))}
	}
	c, err := CheckedDiv(m, int64(k))
	if err != nil {
		panic(err.Error())
	}
	return c
}

// CheckedDiv returns the quotient of value m and integer scalar k,
// truncated toward zero.
// It returns an error if the divisor is zero or if the result is
// outside the range [Min] through [Max].
// See also function [Div].
func CheckedDiv[T Integer](m Money, k T) (Money, error) {
	d := int64(k)
	if d == 0 {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, k, ErrDivideByZero)
	}
	if m.cents == minCents && d == -1 {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, k, ErrOverflow)
	}
	return Money{cents: m.cents / d}, nil
}

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of a monetary value: a minus sign for
// negative values, a dollar sign, the whole units, and exactly two
// cent digits, such as "-$123.45".
// The output contains no grouping separators and is accepted by [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	units := m.cents / 100
	cents := m.cents % 100
	if units < 0 {
		units = -units
	}
	if cents < 0 {
		cents = -cents
	}
	var sign string
	if m.cents < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s$%d.%02d", sign, units, cents)
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is represented as its underlying cent count, a bare JSON
// integer.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, m.cents, 10), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The value must be a JSON integer within the int64 range; a JSON null
// leaves the value unchanged.
// See also method [Money.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("converting from JSON: %w", convErr(err))
	}
	m.cents = n
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Integer sources are read as cent counts; string and byte sources are
// parsed with [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		m.cents = value
	case string:
		*m, err = Parse(value)
	case []byte:
		*m, err = Parse(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Money{}, NullMoney{}, Money{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// It returns the canonical string form, which PostgreSQL accepts as
// money input.
// See also method [Money.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// NullMoney represents a monetary value that can be null.
// It is a drop-in replacement for [Money] in columns that permit NULL.
//
// Unlike Money, NullMoney is mutable through [NullMoney.Scan] and
// therefore not safe for concurrent modification.
type NullMoney struct {
	Money Money
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Money.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullMoney) Scan(value any) error {
	if value == nil {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	err := n.Money.Scan(value)
	if err != nil {
		n.Money = Money{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Money.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Money.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Money.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullMoney) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	err := n.Money.UnmarshalJSON(data)
	if err != nil {
		n.Money = Money{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// addInt64 returns a + b and reports whether the sum fits in int64.
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > maxCents-b) || (b < 0 && a < minCents-b) {
		return 0, false
	}
	return a + b, true
}

// subInt64 returns a - b and reports whether the difference fits in int64.
func subInt64(a, b int64) (int64, bool) {
	if (b < 0 && a > maxCents+b) || (b > 0 && a < minCents+b) {
		return 0, false
	}
	return a - b, true
}

// mulInt64 returns a * b and reports whether the product fits in int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == minCents && b == -1) || (b == minCents && a == -1) {
		return 0, false
	}
	n := a * b
	if n/b != a {
		return 0, false
	}
	return n, true
}

// convErr maps a strconv failure to the package's error kinds.
func convErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOutOfRange
	}
	return ErrMalformedNumber
}
