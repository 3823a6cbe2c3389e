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

// floatFunc lifts a float64 function to T after checking the domain of the
// named function. FLOAT operands are computed in double precision and the
// result is narrowed back, so a result beyond the float32 range becomes an
// infinity.
func floatFunc[T constraints.Float](name string, fn func(float64) float64) func(T) (T, error) {
	return func(x T) (T, error) {
		f := float64(x)
		if err := checkDomain(name, f); err != nil {
			return 0, err
		}
		return T(fn(f)), nil
	}
}

func floatFunc2[T constraints.Float](name string, fn func(float64, float64) float64) func(T, T) (T, error) {
	return func(x, y T) (T, error) {
		f, g := float64(x), float64(y)
		if err := checkDomain(name, f, g); err != nil {
			return 0, err
		}
		return T(fn(f, g)), nil
	}
}

func ieeeDivide(x, y float64) float64 {
	return x / y
}

// logBase returns the logarithm of x in the given base. A base of 1 is
// accepted and yields an infinity, or NaN for LOG(1, 1).
func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// powNumeric reports every failure of the decimal power as a floating point
// error, whatever the condition raised by the decimal context.
func powNumeric(x, y decimal.Numeric) (decimal.Numeric, error) {
	r, err := x.Pow(y)
	if err != nil {
		return decimal.Numeric{}, failFloatingPoint
	}
	return r, nil
}

var unaryMath = []struct {
	name string
	fn   func(float64) float64
}{
	{"SQRT", math.Sqrt},
	{"EXP", math.Exp},
	{"LN", math.Log},
	{"LOG", math.Log},
	{"LOG10", math.Log10},
	{"SIN", math.Sin},
	{"COS", math.Cos},
	{"TAN", math.Tan},
	{"SINH", math.Sinh},
	{"COSH", math.Cosh},
	{"TANH", math.Tanh},
	{"ASIN", math.Asin},
	{"ACOS", math.Acos},
	{"ATAN", math.Atan},
	{"ASINH", math.Asinh},
	{"ACOSH", math.Acosh},
	{"ATANH", math.Atanh},
}

var binaryMath = []struct {
	name string
	fn   func(float64, float64) float64
}{
	{"IEEE_DIVIDE", ieeeDivide},
	{"POW", math.Pow},
	{"LOG", logBase},
	{"ATAN2", math.Atan2},
}

func registerMathBuiltins(r *Registry) {
	for _, m := range unaryMath {
		r.add(
			newUnary(m.name, floatKind, floatKind, floatFunc[float32](m.name, m.fn)),
			newUnary(m.name, doubleKind, doubleKind, floatFunc[float64](m.name, m.fn)),
		)
	}
	for _, m := range binaryMath {
		r.add(
			newBinary(m.name, floatKind, floatKind, floatKind, floatFunc2[float32](m.name, m.fn)),
			newBinary(m.name, doubleKind, doubleKind, doubleKind, floatFunc2[float64](m.name, m.fn)),
		)
	}
	r.add(newBinary("POW", numericKind, numericKind, numericKind, powNumeric))
}
