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

package decimal

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// RoundingMode determines how a decimal will be rounded.
type RoundingMode uint8

// The following rounding modes are supported.
const (
	ToNearestEven       RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                           // == IEEE 754-2008 roundTiesToAway
	ToZero                                  // == IEEE 754-2008 roundTowardZero
	AwayFromZero                            // no IEEE 754-2008 equivalent
	ToNegativeInf                           // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                           // == IEEE 754-2008 roundTowardPositive
	ToNearestTowardZero                     // no IEEE 754-2008 equivalent
)

var roundingModeNames = []string{
	ToNearestEven:       "half_even",
	ToNearestAway:       "half_away_from_zero",
	ToZero:              "down",
	AwayFromZero:        "up",
	ToNegativeInf:       "floor",
	ToPositiveInf:       "ceiling",
	ToNearestTowardZero: "half_toward_zero",
}

var roundingModeRounders = []apd.Rounder{
	ToNearestEven:       apd.RoundHalfEven,
	ToNearestAway:       apd.RoundHalfUp,
	ToZero:              apd.RoundDown,
	AwayFromZero:        apd.RoundUp,
	ToNegativeInf:       apd.RoundFloor,
	ToPositiveInf:       apd.RoundCeiling,
	ToNearestTowardZero: apd.RoundHalfDown,
}

// ParseRoundingMode resolves the configuration name of a rounding mode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for m, n := range roundingModeNames {
		if n == normalized {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("invalid rounding mode %q: expected one of %s", name, strings.Join(roundingModeNames, ", "))
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

// Set implements pflag.Value.
func (m *RoundingMode) Set(s string) error {
	mode, err := ParseRoundingMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements pflag.Value.
func (m *RoundingMode) Type() string {
	return "rounding-mode"
}

func (m RoundingMode) rounder() apd.Rounder {
	if int(m) < len(roundingModeRounders) {
		return roundingModeRounders[m]
	}
	return apd.RoundHalfUp
}

// Condition is a bitmask value raised by overflow-prone operations. It is
// returned as the error of the operation that raised it.
type Condition uint32

const (
	// ConversionSyntax occurs when a string is converted to a decimal and does
	// not have a valid syntax.
	ConversionSyntax Condition = 1 << iota
	// DivisionByZero occurs when a power operation would divide a finite,
	// non-zero value by zero (e.g. 0 raised to a negative power).
	DivisionByZero
	// DivisionUndefined occurs when both the dividend and the divisor are zero.
	DivisionUndefined
	// InvalidOperation occurs when the result is not a real number, e.g. a
	// negative base raised to a non-integral power.
	InvalidOperation
	// Overflow occurs when the rounded result does not fit in the
	// precision and scale of a NUMERIC.
	Overflow
	// Underflow occurs when an intermediate result is too small to be
	// represented; the result rounds to zero.
	Underflow
)

func (c Condition) Error() string { return c.String() }

func (c Condition) String() string {
	if c == 0 {
		return ""
	}

	var b strings.Builder
	for i := Condition(1); c != 0; i <<= 1 {
		if c&i == 0 {
			continue
		}
		switch c ^= i; i {
		case ConversionSyntax:
			b.WriteString("conversion syntax, ")
		case DivisionByZero:
			b.WriteString("division by zero, ")
		case DivisionUndefined:
			b.WriteString("division undefined, ")
		case InvalidOperation:
			b.WriteString("invalid operation, ")
		case Overflow:
			b.WriteString("overflow, ")
		case Underflow:
			b.WriteString("underflow, ")
		default:
			fmt.Fprintf(&b, "unknown(%d), ", i)
		}
	}
	// Omit trailing comma and space.
	return b.String()[:b.Len()-2]
}

var _ error = Condition(0)

// fromApd translates the conditions raised by apd into the subset this
// package reports.
func fromApd(res apd.Condition) Condition {
	var c Condition
	if res&apd.DivisionByZero != 0 {
		c |= DivisionByZero
	}
	if res&(apd.DivisionUndefined|apd.DivisionImpossible) != 0 {
		c |= DivisionUndefined
	}
	if res&apd.InvalidOperation != 0 {
		c |= InvalidOperation
	}
	if res&(apd.Overflow|apd.SystemOverflow) != 0 {
		c |= Overflow
	}
	if res&(apd.Underflow|apd.SystemUnderflow) != 0 {
		c |= Underflow
	}
	if c == 0 {
		c = InvalidOperation
	}
	return c
}

const (
	// workPrecision is the number of significant digits kept by
	// intermediate results. It holds the exact product of two NUMERIC
	// coefficients, so multiplication rounds only once.
	workPrecision = 2*MaxPrecision + 4

	// traps are the apd conditions that abort an operation. Underflow and
	// subnormal results are allowed: they round to zero at Scale.
	traps = apd.SystemOverflow |
		apd.Overflow |
		apd.DivisionUndefined |
		apd.DivisionByZero |
		apd.DivisionImpossible |
		apd.InvalidOperation
)

// quantize rounds d to exponent exp with mode m. apd zeroes a value whose
// digits all lie below exp without applying the rounding direction, so
// that case is resolved here: the result is 0 or ±10^exp.
func quantize(d *apd.Decimal, exp int32, m RoundingMode) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if d.IsZero() || int64(d.NumDigits())+int64(d.Exponent) > int64(exp) {
		if res, err := context(m).Quantize(out, d, exp); err != nil {
			return nil, fromApd(res)
		}
		return out, nil
	}
	if roundsAway(d, exp, m) {
		out.SetFinite(1, exp)
		out.Negative = d.Negative
	} else {
		out.SetFinite(0, exp)
	}
	return out, nil
}

// roundsAway reports whether a non-zero d with |d| < 10^exp rounds to
// ±10^exp rather than to 0 under mode m.
func roundsAway(d *apd.Decimal, exp int32, m RoundingMode) bool {
	switch m {
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !d.Negative
	case ToNegativeInf:
		return d.Negative
	}
	var abs apd.Decimal
	abs.Abs(d)
	switch abs.Cmp(apd.New(5, exp-1)) {
	case 1:
		return true
	case 0:
		return m == ToNearestAway
	}
	return false
}

// context returns the apd context used for intermediate results rounded
// with mode m. apd contexts are safe for concurrent use as long as they
// are not mutated, so each call hands out a fresh value.
func context(m RoundingMode) *apd.Context {
	return &apd.Context{
		Precision:   workPrecision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       traps,
		Rounding:    m.rounder(),
	}
}
