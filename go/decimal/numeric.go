/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package decimal implements NUMERIC, a fixed precision, fixed scale
// decimal value. Every operation that can exceed the range of a NUMERIC
// reports it through a Condition error; values never wrap and are never
// widened to floating point.
package decimal

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Precision and scale limits.
const (
	MaxPrecision     = 38                   // total number of digits
	Scale            = 9                    // digits after the decimal point
	MaxIntegerDigits = MaxPrecision - Scale // digits before the decimal point
)

// Numeric is an immutable NUMERIC value. The zero value is 0.
//
// The wrapped apd.Decimal is always finite, has exponent -Scale and at most
// MaxPrecision digits in its coefficient. It is never mutated after
// construction, so Numeric values can be copied and shared freely.
type Numeric struct {
	d *apd.Decimal
}

var (
	zeroDec = apd.New(0, -Scale)

	maxValue = MustParse(strings.Repeat("9", MaxIntegerDigits) + "." + strings.Repeat("9", Scale))
	minValue = maxValue.Neg()
	oneValue = FromInt64(1)
)

// MaxValue returns the largest NUMERIC, 99999999999999999999999999999.999999999.
func MaxValue() Numeric { return maxValue }

// MinValue returns the smallest NUMERIC, -99999999999999999999999999999.999999999.
func MinValue() Numeric { return minValue }

// FromInt64 returns the NUMERIC value of v. Every int64 fits.
func FromInt64(v int64) Numeric {
	n, err := fit(apd.New(v, 0), ToNearestAway)
	if err != nil {
		panic("decimal: int64 out of NUMERIC range: " + strconv.FormatInt(v, 10))
	}
	return n
}

// FromUint64 returns the NUMERIC value of v. Every uint64 fits.
func FromUint64(v uint64) Numeric {
	return MustParse(strconv.FormatUint(v, 10))
}

// Parse parses the plain or scientific decimal notation in s. Fractional
// digits beyond Scale are rounded half away from zero; values outside the
// NUMERIC range fail with Overflow.
func Parse(s string) (Numeric, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Form != apd.Finite {
		return Numeric{}, ConversionSyntax
	}
	return fit(d, ToNearestAway)
}

// MustParse is like Parse but panics on error. Use it for constants.
func MustParse(s string) Numeric {
	n, err := Parse(s)
	if err != nil {
		panic("decimal: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return n
}

// fit rounds d to Scale with mode m and checks the NUMERIC range.
func fit(d *apd.Decimal, m RoundingMode) (Numeric, error) {
	if d.Form != apd.Finite {
		return Numeric{}, InvalidOperation
	}
	if d.IsZero() {
		return Numeric{}, nil
	}
	if d.NumDigits()+int64(d.Exponent) > MaxIntegerDigits {
		return Numeric{}, Overflow
	}
	out, err := quantize(d, -Scale, m)
	if err != nil {
		return Numeric{}, err
	}
	// rounding may carry into a new integer digit
	if out.NumDigits() > MaxPrecision {
		return Numeric{}, Overflow
	}
	if out.IsZero() {
		return Numeric{}, nil
	}
	return Numeric{d: out}, nil
}

func (n Numeric) dec() *apd.Decimal {
	if n.d == nil {
		return zeroDec
	}
	return n.d
}

// IsZero reports whether n == 0.
func (n Numeric) IsZero() bool {
	return n.d == nil || n.d.IsZero()
}

// Sign returns -1, 0 or 1 depending on the sign of n.
func (n Numeric) Sign() int {
	return n.dec().Sign()
}

// Cmp compares n and m and returns -1, 0 or 1.
func (n Numeric) Cmp(m Numeric) int {
	return n.dec().Cmp(m.dec())
}

// Neg returns -n. The NUMERIC range is symmetric so negation cannot overflow.
func (n Numeric) Neg() Numeric {
	if n.IsZero() {
		return n
	}
	out := new(apd.Decimal)
	out.Set(n.d)
	out.Negative = !out.Negative
	return Numeric{d: out}
}

// Abs returns |n|.
func (n Numeric) Abs() Numeric {
	if n.Sign() < 0 {
		return n.Neg()
	}
	return n
}

// Add returns n + m, or Overflow.
func (n Numeric) Add(m Numeric) (Numeric, error) {
	out := new(apd.Decimal)
	if res, err := context(ToNearestAway).Add(out, n.dec(), m.dec()); err != nil {
		return Numeric{}, fromApd(res)
	}
	return fit(out, ToNearestAway)
}

// Mul returns n * m rounded half away from zero to Scale, or Overflow.
func (n Numeric) Mul(m Numeric) (Numeric, error) {
	out := new(apd.Decimal)
	if res, err := context(ToNearestAway).Mul(out, n.dec(), m.dec()); err != nil {
		return Numeric{}, fromApd(res)
	}
	return fit(out, ToNearestAway)
}

// Pow returns n raised to the power exp, rounded half away from zero to
// Scale. Integral exponents are computed by repeated squaring, any other
// exponent as exp(exp * ln(n)), in both cases with workPrecision
// significant digits. It fails with Overflow when the result does not fit,
// DivisionByZero for 0 raised to a negative power and InvalidOperation for a
// negative base raised to a non-integral power. Results too small to be
// represented round to 0.
func (n Numeric) Pow(exp Numeric) (Numeric, error) {
	if exp.IsZero() {
		return oneValue, nil
	}
	if n.IsZero() {
		if exp.Sign() < 0 {
			return Numeric{}, DivisionByZero
		}
		return Numeric{}, nil
	}
	out := new(apd.Decimal)
	if res, err := context(ToNearestAway).Pow(out, n.dec(), exp.dec()); err != nil {
		return Numeric{}, fromApd(res)
	}
	return fit(out, ToNearestAway)
}

// Round rounds n to digits places after the decimal point using mode m.
// Negative digits round to the left of the decimal point; digits >= Scale
// leave n unchanged. Rounding away from zero can exceed the range (e.g.
// rounding MaxValue to an integer), which is reported as Overflow.
func (n Numeric) Round(digits int64, m RoundingMode) (Numeric, error) {
	if digits >= Scale || n.IsZero() {
		return n, nil
	}
	// beyond this every value rounds to 0 or to a power of ten that
	// overflows, so clamping keeps the int32 conversion safe
	if lo := int64(-MaxIntegerDigits - 1); digits < lo {
		digits = lo
	}
	out, err := quantize(n.d, int32(-digits), m)
	if err != nil {
		return Numeric{}, err
	}
	return fit(out, m)
}

// Trunc truncates n toward zero to digits places after the decimal point.
// The magnitude never grows so Trunc cannot fail.
func (n Numeric) Trunc(digits int64) Numeric {
	t, err := n.Round(digits, ToZero)
	if err != nil {
		panic("decimal: truncation of " + n.String() + " overflowed")
	}
	return t
}

// Ceil returns the smallest integral value >= n.
func (n Numeric) Ceil() (Numeric, error) {
	return n.Round(0, ToPositiveInf)
}

// Floor returns the largest integral value <= n.
func (n Numeric) Floor() (Numeric, error) {
	return n.Round(0, ToNegativeInf)
}

// Float64 returns the nearest float64 to n.
func (n Numeric) Float64() float64 {
	f, _ := n.dec().Float64()
	return f
}

// String returns the canonical text of n: plain notation without
// trailing fractional zeros, e.g. "0", "-1.5", "100".
func (n Numeric) String() string {
	if n.IsZero() {
		return "0"
	}
	var r apd.Decimal
	r.Reduce(n.d)
	return r.Text('f')
}
