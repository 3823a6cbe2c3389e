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

package evalengine

import (
	"math"

	"golang.org/x/exp/constraints"

	"vitess.io/sqlmath/go/decimal"
)

// roundToIntegral rounds f to an integral value using mode m. NaN and
// infinities are returned unchanged and zeros keep their sign.
func roundToIntegral(f float64, m decimal.RoundingMode) float64 {
	switch m {
	case decimal.ToNearestEven:
		return math.RoundToEven(f)
	case decimal.ToZero:
		return math.Trunc(f)
	case decimal.AwayFromZero:
		if f < 0 {
			return math.Floor(f)
		}
		return math.Ceil(f)
	case decimal.ToNegativeInf:
		return math.Floor(f)
	case decimal.ToPositiveInf:
		return math.Ceil(f)
	case decimal.ToNearestTowardZero:
		t := math.Trunc(f)
		if math.Abs(f-t) > 0.5 {
			return t + math.Copysign(1, f)
		}
		return t
	default:
		return math.Round(f)
	}
}

func roundFloat[T constraints.Float](m decimal.RoundingMode) func(T) (T, error) {
	return func(x T) (T, error) {
		return T(roundToIntegral(float64(x), m)), nil
	}
}

// roundFloatDigits rounds to a number of decimal places. bitSize is the
// width of T, used to find the shortest decimal text of the operand.
func roundFloatDigits[T constraints.Float](bitSize int, m decimal.RoundingMode) func(T, int64) (T, error) {
	return func(x T, digits int64) (T, error) {
		return T(decimal.RoundFloat(float64(x), bitSize, digits, m)), nil
	}
}

func roundNumeric(m decimal.RoundingMode) func(decimal.Numeric) (decimal.Numeric, error) {
	return func(x decimal.Numeric) (decimal.Numeric, error) {
		return roundNumericDigits(m)(x, 0)
	}
}

func roundNumericDigits(m decimal.RoundingMode) func(decimal.Numeric, int64) (decimal.Numeric, error) {
	return func(x decimal.Numeric, digits int64) (decimal.Numeric, error) {
		r, err := x.Round(digits, m)
		if err != nil {
			return decimal.Numeric{}, failNumericOverflow
		}
		return r, nil
	}
}

func truncNumeric(x decimal.Numeric) (decimal.Numeric, error) {
	return x.Trunc(0), nil
}

func truncNumericDigits(x decimal.Numeric, digits int64) (decimal.Numeric, error) {
	return x.Trunc(digits), nil
}

func ceilNumeric(x decimal.Numeric) (decimal.Numeric, error) {
	r, err := x.Ceil()
	if err != nil {
		return decimal.Numeric{}, failNumericOverflow
	}
	return r, nil
}

func floorNumeric(x decimal.Numeric) (decimal.Numeric, error) {
	r, err := x.Floor()
	if err != nil {
		return decimal.Numeric{}, failNumericOverflow
	}
	return r, nil
}

func registerRoundingBuiltins(r *Registry) {
	fm, nm := r.cfg.FloatRounding, r.cfg.NumericRounding
	r.add(
		newUnary("ROUND", floatKind, floatKind, roundFloat[float32](fm)),
		newUnary("ROUND", doubleKind, doubleKind, roundFloat[float64](fm)),
		newUnary("ROUND", numericKind, numericKind, roundNumeric(nm)),
		newBinary("ROUND", floatKind, int64Kind, floatKind, roundFloatDigits[float32](32, fm)),
		newBinary("ROUND", doubleKind, int64Kind, doubleKind, roundFloatDigits[float64](64, fm)),
		newBinary("ROUND", numericKind, int64Kind, numericKind, roundNumericDigits(nm)),

		newUnary("TRUNC", floatKind, floatKind, roundFloat[float32](decimal.ToZero)),
		newUnary("TRUNC", doubleKind, doubleKind, roundFloat[float64](decimal.ToZero)),
		newUnary("TRUNC", numericKind, numericKind, truncNumeric),
		newBinary("TRUNC", floatKind, int64Kind, floatKind, roundFloatDigits[float32](32, decimal.ToZero)),
		newBinary("TRUNC", doubleKind, int64Kind, doubleKind, roundFloatDigits[float64](64, decimal.ToZero)),
		newBinary("TRUNC", numericKind, int64Kind, numericKind, truncNumericDigits),

		newUnary("CEIL", floatKind, floatKind, roundFloat[float32](decimal.ToPositiveInf)),
		newUnary("CEIL", doubleKind, doubleKind, roundFloat[float64](decimal.ToPositiveInf)),
		newUnary("CEIL", numericKind, numericKind, ceilNumeric),

		newUnary("FLOOR", floatKind, floatKind, roundFloat[float32](decimal.ToNegativeInf)),
		newUnary("FLOOR", doubleKind, doubleKind, roundFloat[float64](decimal.ToNegativeInf)),
		newUnary("FLOOR", numericKind, numericKind, floorNumeric),
	)
}
