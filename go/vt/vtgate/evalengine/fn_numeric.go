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

func absSigned[T constraints.Signed](x T) (T, error) {
	if x >= 0 {
		return x, nil
	}
	// the negation of the minimum value wraps around to itself
	if -x < 0 {
		return 0, failIntegerOverflow
	}
	return -x, nil
}

func absUnsigned[T constraints.Unsigned](x T) (T, error) {
	return x, nil
}

func absFloat[T constraints.Float](x T) (T, error) {
	return T(math.Abs(float64(x))), nil
}

func absNumeric(x decimal.Numeric) (decimal.Numeric, error) {
	return x.Abs(), nil
}

func signSigned[T constraints.Signed](x T) (T, error) {
	switch {
	case x > 0:
		return 1, nil
	case x < 0:
		return -1, nil
	}
	return 0, nil
}

func signUnsigned[T constraints.Unsigned](x T) (T, error) {
	if x > 0 {
		return 1, nil
	}
	return 0, nil
}

// signFloat returns NaN for NaN, and 0 for both zeros.
func signFloat[T constraints.Float](x T) (T, error) {
	switch {
	case x > 0:
		return 1, nil
	case x < 0:
		return -1, nil
	case x == 0:
		return 0, nil
	}
	return x, nil
}

func signNumeric(x decimal.Numeric) (decimal.Numeric, error) {
	return decimal.FromInt64(int64(x.Sign())), nil
}

func isNaN[T constraints.Float](x T) (bool, error) {
	return math.IsNaN(float64(x)), nil
}

func isInf[T constraints.Float](x T) (bool, error) {
	return math.IsInf(float64(x), 0), nil
}

func registerNumericBuiltins(r *Registry) {
	r.add(
		newUnary("ABS", int32Kind, int32Kind, absSigned[int32]),
		newUnary("ABS", int64Kind, int64Kind, absSigned[int64]),
		newUnary("ABS", uint32Kind, uint32Kind, absUnsigned[uint32]),
		newUnary("ABS", uint64Kind, uint64Kind, absUnsigned[uint64]),
		newUnary("ABS", floatKind, floatKind, absFloat[float32]),
		newUnary("ABS", doubleKind, doubleKind, absFloat[float64]),
		newUnary("ABS", numericKind, numericKind, absNumeric),

		newUnary("SIGN", int32Kind, int32Kind, signSigned[int32]),
		newUnary("SIGN", int64Kind, int64Kind, signSigned[int64]),
		newUnary("SIGN", uint32Kind, uint32Kind, signUnsigned[uint32]),
		newUnary("SIGN", uint64Kind, uint64Kind, signUnsigned[uint64]),
		newUnary("SIGN", floatKind, floatKind, signFloat[float32]),
		newUnary("SIGN", doubleKind, doubleKind, signFloat[float64]),
		newUnary("SIGN", numericKind, numericKind, signNumeric),

		newUnary("IS_NAN", floatKind, boolKind, isNaN[float32]),
		newUnary("IS_NAN", doubleKind, boolKind, isNaN[float64]),
		newUnary("IS_INF", floatKind, boolKind, isInf[float32]),
		newUnary("IS_INF", doubleKind, boolKind, isInf[float64]),
	)
}
