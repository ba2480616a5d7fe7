package simplex

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shopspring/decimal"
)

// tracer traces with key 'simplex'.
func tracer() tracing.Trace {
	return tracing.Select("simplex")
}

// Precision is the number of significant digits arithmetic on values will keep.
const Precision = 100

// ValueType represents the kind of a value.
type ValueType int8

// Kinds of values. Everything but Finite is a sentinel produced by
// arithmetic, e.g. division by zero.
const (
	Finite ValueType = iota
	PosInfinity
	NegInfinity
	NaN
)

func (vt ValueType) String() string {
	switch vt {
	case Finite:
		return "finite"
	case PosInfinity:
		return "+infinity"
	case NegInfinity:
		return "-infinity"
	case NaN:
		return "NaN"
	}
	return fmt.Sprintf("<illegal type: %d>", vt)
}

// --- Value -----------------------------------------------------------------

// Value is the content of a slate cell: an arbitrary precision decimal or
// one of the non-finite sentinels ±Infinity and NaN.
//
// The zero value is the decimal 0.
type Value struct {
	d decimal.Decimal
	t ValueType
}

// Zero is the decimal 0, the content of every fresh cell.
var Zero = Value{}

// One is the decimal 1.
var One = FromInt(1)

// FromInt creates a finite value from an integer.
func FromInt(i int64) Value {
	return Value{d: decimal.NewFromInt(i)}
}

// FromDecimal wraps a decimal, rounded to Precision significant digits.
func FromDecimal(d decimal.Decimal) Value {
	return rounded(d)
}

// ParseValue creates a finite value from its decimal text representation.
func ParseValue(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("malformed number %q: %w", s, err)
	}
	return rounded(d), nil
}

// MustParse is like ParseValue, but panics on malformed input.
func MustParse(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Infinity returns +Infinity for sign >= 0 and -Infinity otherwise.
func Infinity(sign int) Value {
	if sign < 0 {
		return Value{t: NegInfinity}
	}
	return Value{t: PosInfinity}
}

// NotANumber returns the NaN sentinel.
func NotANumber() Value {
	return Value{t: NaN}
}

// Type returns the kind of a value.
func (v Value) Type() ValueType {
	return v.t
}

// IsFinite is a predicate: is v neither infinite nor NaN?
func (v Value) IsFinite() bool {
	return v.t == Finite
}

// IsNaN is a predicate.
func (v Value) IsNaN() bool {
	return v.t == NaN
}

// IsInf reports whether v is an infinity with the sign of sign, or any
// infinity if sign is 0.
func (v Value) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return v.t == PosInfinity
	case sign < 0:
		return v.t == NegInfinity
	}
	return v.t == PosInfinity || v.t == NegInfinity
}

// Decimal returns the decimal of a finite value and 0 otherwise.
func (v Value) Decimal() decimal.Decimal {
	if v.t != Finite {
		return decimal.Zero
	}
	return v.d
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (v Value) Sign() int {
	switch v.t {
	case PosInfinity:
		return 1
	case NegInfinity:
		return -1
	case NaN:
		return 0
	}
	return v.d.Sign()
}

// IsZero is a predicate: is v exactly 0?
func (v Value) IsZero() bool {
	return v.t == Finite && v.d.IsZero()
}

// IsPositive is a predicate: is v > 0? Holds for +Infinity.
func (v Value) IsPositive() bool {
	return v.Sign() > 0
}

// Truthy returns false for exactly 0 and true for everything else,
// including NaN.
func (v Value) Truthy() bool {
	return !v.IsZero()
}

// Equal compares two values numerically. NaN is not equal to anything.
func (v Value) Equal(w Value) bool {
	if v.t != w.t || v.t == NaN {
		return false
	}
	if v.t != Finite {
		return true
	}
	return v.d.Equal(w.d)
}

// Int truncates a finite value to an int.
func (v Value) Int() (int, error) {
	if v.t != Finite {
		return 0, fmt.Errorf("cannot convert %s to an integer", v)
	}
	i := v.d.Truncate(0)
	if i.Cmp(decimal.NewFromInt(math.MaxInt32)) > 0 || i.Cmp(decimal.NewFromInt(math.MinInt32)) < 0 {
		tracer().P("value", v).Errorf("integer out of range")
		return 0, fmt.Errorf("integer %s out of range", v)
	}
	return int(i.IntPart()), nil
}

// Rune interprets a value as a character code. Values which are no valid
// code points yield the NUL character and false.
func (v Value) Rune() (rune, bool) {
	i, err := v.Int()
	if err != nil || i < 0 || i > 0x10FFFF {
		return 0, false
	}
	return rune(i), true
}

// --- Arithmetic ------------------------------------------------------------

// Plus is v + w.
func (v Value) Plus(w Value) Value {
	if v.t == NaN || w.t == NaN {
		return NotANumber()
	}
	if v.t != Finite || w.t != Finite {
		if v.t != Finite && w.t != Finite && v.t != w.t {
			return NotANumber() // Inf - Inf
		}
		if v.t != Finite {
			return v
		}
		return w
	}
	return rounded(v.d.Add(w.d))
}

// Minus is v - w.
func (v Value) Minus(w Value) Value {
	return v.Plus(w.Neg())
}

// Neg is -v.
func (v Value) Neg() Value {
	switch v.t {
	case PosInfinity:
		return Infinity(-1)
	case NegInfinity:
		return Infinity(1)
	case NaN:
		return v
	}
	return Value{d: v.d.Neg()}
}

// Times is v * w.
func (v Value) Times(w Value) Value {
	if v.t == NaN || w.t == NaN {
		return NotANumber()
	}
	if v.t != Finite || w.t != Finite {
		s := v.Sign() * w.Sign()
		if s == 0 {
			return NotANumber() // Inf * 0
		}
		return Infinity(s)
	}
	return rounded(v.d.Mul(w.d))
}

// Over is v / w. Division by zero does not fail, but yields ±Infinity, or NaN
// for 0/0.
func (v Value) Over(w Value) Value {
	if v.t == NaN || w.t == NaN {
		return NotANumber()
	}
	switch {
	case v.t != Finite && w.t != Finite:
		return NotANumber()
	case v.t != Finite:
		s := w.Sign()
		if s == 0 {
			s = 1
		}
		return Infinity(v.Sign() * s)
	case w.t != Finite:
		return Zero
	case w.d.IsZero():
		if v.d.IsZero() {
			return NotANumber()
		}
		return Infinity(v.d.Sign())
	}
	intDigits := magnitude(v.d) - magnitude(w.d) + 1
	places := int32(Precision - intDigits + 1)
	if places < 0 {
		places = 0
	}
	return rounded(v.d.DivRound(w.d, places))
}

// Mod is v modulo w, with the sign of v. v % 0 is NaN.
func (v Value) Mod(w Value) Value {
	if v.t != Finite || w.t == NaN || w.IsZero() {
		return NotANumber()
	}
	if w.t != Finite {
		return v
	}
	_, r := v.d.QuoRem(w.d, 0)
	return rounded(r)
}

// Round rounds a finite value to places decimal places.
func (v Value) Round(places int32) Value {
	if v.t != Finite {
		return v
	}
	return Value{d: v.d.Round(places)}
}

// --- Helpers ---------------------------------------------------------------

// String formats a value the way Simplex prints numbers: plain notation for
// moderate exponents, exponential notation otherwise.
func (v Value) String() string {
	switch v.t {
	case PosInfinity:
		return "Infinity"
	case NegInfinity:
		return "-Infinity"
	case NaN:
		return "NaN"
	}
	if v.d.IsZero() {
		return "0"
	}
	digits, exp := coefficient(v.d)
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		exp++
	}
	e := len(digits) - 1 + exp
	if e < 21 && e > -7 {
		return v.d.String()
	}
	var b strings.Builder
	if v.d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:1])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(e))
	return b.String()
}

// coefficient returns the unsigned decimal digits of d and its exponent.
func coefficient(d decimal.Decimal) (string, int) {
	c := new(big.Int).Abs(d.Coefficient())
	return c.String(), int(d.Exponent())
}

// magnitude is the decimal exponent of the most significant digit of d, plus one.
func magnitude(d decimal.Decimal) int {
	digits, exp := coefficient(d)
	return len(digits) + exp
}

// rounded cuts d down to Precision significant digits.
func rounded(d decimal.Decimal) Value {
	digits, exp := coefficient(d)
	if n := len(digits); n > Precision {
		places := int32(-exp - (n - Precision))
		d = d.Round(places)
	}
	return Value{d: d}
}
