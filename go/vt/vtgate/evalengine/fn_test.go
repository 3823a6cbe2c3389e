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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/sqlmath/go/decimal"
	"vitess.io/sqlmath/go/sqltypes"
)

var (
	sampleInt64s = []int64{math.MinInt64 + 1, -1 << 40, -12345, -1, 0, 1, 7, 1 << 53, math.MaxInt64}
	sampleFloats = []float64{
		-1e300, -123456.789, -2.5, -1, -0.4, math.Copysign(0, -1), 0, 1e-300, 0.1, 2.345, 2.5, 1e21, math.MaxFloat64,
	}
	sampleNumerics = []string{
		"-99999999999999999999999999999.999999999", "-123.456789012", "-2.5", "-0.000000001",
		"0", "0.5", "1.999999999", "2.345", "98765432109876543210.123456789",
	}
)

func TestAbsIsNonNegative(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	for _, i := range sampleInt64s {
		v, err := r.Call("ABS", sqltypes.NewInt64(i))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.Int64(), int64(0), "ABS(%d)", i)

		if i >= math.MinInt32 && i <= math.MaxInt32 {
			v, err = r.Call("ABS", sqltypes.NewInt32(int32(i)))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v.Int32(), int32(0), "ABS(%d)", i)
		}
	}
	for _, f := range sampleFloats {
		v, err := r.Call("ABS", sqltypes.NewFloat64(f))
		require.NoError(t, err)
		assert.False(t, math.Signbit(v.Float64()), "ABS(%v)", f)
	}
	for _, s := range sampleNumerics {
		v, err := r.Call("ABS", sqltypes.NewNumeric(decimal.MustParse(s)))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.Numeric().Sign(), 0, "ABS(%s)", s)
	}

	_, err := r.Call("ABS", sqltypes.NewInt32(math.MinInt32))
	assert.True(t, IsOutOfRange(err))
	_, err = r.Call("ABS", sqltypes.NewInt64(math.MinInt64))
	assert.True(t, IsOutOfRange(err))
}

func TestSignMatchesComparison(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	for _, i := range sampleInt64s {
		v, err := r.Call("SIGN", sqltypes.NewInt64(i))
		require.NoError(t, err)
		switch {
		case i > 0:
			assert.Equal(t, int64(1), v.Int64())
		case i < 0:
			assert.Equal(t, int64(-1), v.Int64())
		default:
			assert.Equal(t, int64(0), v.Int64())
		}
	}
	for _, u := range []uint64{0, 1, math.MaxUint64} {
		v, err := r.Call("SIGN", sqltypes.NewUint64(u))
		require.NoError(t, err)
		assert.Contains(t, []uint64{0, 1}, v.Uint64())
	}
	for _, f := range sampleFloats {
		v, err := r.Call("SIGN", sqltypes.NewFloat64(f))
		require.NoError(t, err)
		switch {
		case f > 0:
			assert.Equal(t, 1.0, v.Float64())
		case f < 0:
			assert.Equal(t, -1.0, v.Float64())
		default:
			assert.True(t, sqltypes.NewFloat64(0).Equal(v), "SIGN(%v) = %v", f, v)
		}
	}
	for _, s := range sampleNumerics {
		n := decimal.MustParse(s)
		v, err := r.Call("SIGN", sqltypes.NewNumeric(n))
		require.NoError(t, err)
		assert.Equal(t, n.Sign(), v.Numeric().Sign())
	}
}

func TestTruncIsIdempotent(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	for n := int64(-25); n <= 12; n++ {
		digits := sqltypes.NewInt64(n)
		for _, f := range sampleFloats {
			once, err := r.Call("TRUNC", sqltypes.NewFloat64(f), digits)
			require.NoError(t, err)
			twice, err := r.Call("TRUNC", once, digits)
			require.NoError(t, err)
			assert.Truef(t, once.Equal(twice), "TRUNC(TRUNC(%v, %d), %d) = %v, want %v", f, n, n, twice, once)

			once, err = r.Call("TRUNC", sqltypes.NewFloat32(float32(f)), digits)
			require.NoError(t, err)
			twice, err = r.Call("TRUNC", once, digits)
			require.NoError(t, err)
			assert.Truef(t, once.Equal(twice), "TRUNC(TRUNC(FLOAT %v, %d), %d) = %v, want %v", f, n, n, twice, once)
		}
		for _, s := range sampleNumerics {
			once, err := r.Call("TRUNC", sqltypes.NewNumeric(decimal.MustParse(s)), digits)
			require.NoError(t, err)
			twice, err := r.Call("TRUNC", once, digits)
			require.NoError(t, err)
			assert.Truef(t, once.Equal(twice), "TRUNC(TRUNC(%s, %d), %d) = %v, want %v", s, n, n, twice, once)
		}
	}
}

func TestFloatSpecialsAreNotErrors(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	specials := []float64{math.Inf(1), math.Inf(-1), math.NaN()}
	for _, name := range []string{"ROUND", "TRUNC", "CEIL", "FLOOR", "ABS", "SIGN", "EXP", "SIN", "ATAN", "SINH", "TANH"} {
		for _, f := range specials {
			_, err := r.Call(name, sqltypes.NewFloat64(f))
			assert.NoError(t, err, "%s(%v)", name, f)
			_, err = r.Call(name, sqltypes.NewFloat32(float32(f)))
			assert.NoError(t, err, "%s(FLOAT %v)", name, f)
		}
	}
	for _, name := range []string{"IEEE_DIVIDE", "POW", "ATAN2"} {
		for _, x := range append(specials, 0, -1) {
			for _, y := range append(specials, 0, -1) {
				_, err := r.Call(name, sqltypes.NewFloat64(x), sqltypes.NewFloat64(y))
				assert.NoError(t, err, "%s(%v, %v)", name, x, y)
			}
		}
	}
}

func TestRoundToIntegral(t *testing.T) {
	testcases := []struct {
		mode decimal.RoundingMode
		in   []float64
		out  []float64
	}{{
		mode: decimal.ToNearestAway,
		in:   []float64{2.5, -2.5, 0.5, 1.4999999999999998, 3.5},
		out:  []float64{3, -3, 1, 1, 4},
	}, {
		mode: decimal.ToNearestEven,
		in:   []float64{2.5, -2.5, 0.5, 3.5, 2.6},
		out:  []float64{2, -2, 0, 4, 3},
	}, {
		mode: decimal.ToNearestTowardZero,
		in:   []float64{2.5, -2.5, 2.6, -2.6, 0.4},
		out:  []float64{2, -2, 3, -3, 0},
	}, {
		mode: decimal.ToZero,
		in:   []float64{2.9, -2.9, 0.1},
		out:  []float64{2, -2, 0},
	}, {
		mode: decimal.AwayFromZero,
		in:   []float64{2.1, -2.1, 3},
		out:  []float64{3, -3, 3},
	}, {
		mode: decimal.ToPositiveInf,
		in:   []float64{2.1, -2.9},
		out:  []float64{3, -2},
	}, {
		mode: decimal.ToNegativeInf,
		in:   []float64{2.9, -2.1},
		out:  []float64{2, -3},
	}}
	for _, tc := range testcases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			for i, in := range tc.in {
				assert.Equal(t, tc.out[i], roundToIntegral(in, tc.mode), "round(%v)", in)
			}
			assert.True(t, math.IsNaN(roundToIntegral(math.NaN(), tc.mode)))
			assert.True(t, math.IsInf(roundToIntegral(math.Inf(-1), tc.mode), -1))
			assert.True(t, math.Signbit(roundToIntegral(math.Copysign(0, -1), tc.mode)))
		})
	}
}

func TestRoundingModeConfig(t *testing.T) {
	r := NewRegistry(Config{
		FloatRounding:   decimal.ToNearestEven,
		NumericRounding: decimal.ToZero,
	})

	v, err := r.Call("ROUND", sqltypes.NewFloat64(2.5))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.Float64())

	v, err = r.Call("ROUND", sqltypes.NewFloat64(0.125), sqltypes.NewInt64(2))
	require.NoError(t, err)
	assert.Equal(t, 0.12, v.Float64())

	v, err = r.Call("ROUND", sqltypes.NewNumeric(decimal.MustParse("2.9")))
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())

	// TRUNC, CEIL and FLOOR ignore the configuration
	v, err = r.Call("CEIL", sqltypes.NewFloat64(2.1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Float64())
	v, err = r.Call("TRUNC", sqltypes.NewNumeric(decimal.MustParse("-2.9")))
	require.NoError(t, err)
	assert.Equal(t, "-2", v.String())
}

func TestDirectedRoundingOfSmallValues(t *testing.T) {
	r := NewRegistry(Config{
		FloatRounding:   decimal.ToPositiveInf,
		NumericRounding: decimal.AwayFromZero,
	})

	v, err := r.Call("ROUND", sqltypes.NewNumeric(decimal.MustParse("0.000000001")))
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	v, err = r.Call("ROUND", sqltypes.NewNumeric(decimal.MustParse("-0.01")), sqltypes.NewInt64(1))
	require.NoError(t, err)
	assert.Equal(t, "-0.1", v.String())

	v, err = r.Call("ROUND", sqltypes.NewNumeric(decimal.FromInt64(1)), sqltypes.NewInt64(-28))
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000000000000000", v.String())

	_, err = r.Call("ROUND", sqltypes.NewNumeric(decimal.FromInt64(1)), sqltypes.NewInt64(-29))
	assert.EqualError(t, err, "Numeric overflow in function: ROUND: 1")

	v, err = r.Call("ROUND", sqltypes.NewFloat64(0.001), sqltypes.NewInt64(2))
	require.NoError(t, err)
	assert.Equal(t, 0.01, v.Float64())

	v, err = r.Call("ROUND", sqltypes.NewFloat64(-0.001), sqltypes.NewInt64(2))
	require.NoError(t, err)
	assert.Equal(t, "-0", v.String())
}

func TestCeilFloorBoundValue(t *testing.T) {
	r := NewRegistry(DefaultConfig())
	for _, s := range append(sampleNumerics, "0.01", "-0.01", "0.1", "-0.000000005") {
		x := decimal.MustParse(s)

		ceil, err := r.Call("CEIL", sqltypes.NewNumeric(x))
		if x.Cmp(decimal.MaxValue().Trunc(0)) > 0 {
			assert.True(t, IsOutOfRange(err), "CEIL(%s)", s)
		} else if assert.NoError(t, err, "CEIL(%s)", s) {
			assert.GreaterOrEqual(t, ceil.Numeric().Cmp(x), 0, "CEIL(%s) = %v", s, ceil)
			assert.Equal(t, ceil.String(), ceil.Numeric().Trunc(0).String(), "CEIL(%s) is not integral", s)
		}

		floor, err := r.Call("FLOOR", sqltypes.NewNumeric(x))
		if x.Cmp(decimal.MinValue().Trunc(0)) < 0 {
			assert.True(t, IsOutOfRange(err), "FLOOR(%s)", s)
		} else if assert.NoError(t, err, "FLOOR(%s)", s) {
			assert.LessOrEqual(t, floor.Numeric().Cmp(x), 0, "FLOOR(%s) = %v", s, floor)
			assert.Equal(t, floor.String(), floor.Numeric().Trunc(0).String(), "FLOOR(%s) is not integral", s)
		}
	}
	for _, f := range sampleFloats {
		if math.IsNaN(f) {
			continue
		}
		ceil, err := r.Call("CEIL", sqltypes.NewFloat64(f))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ceil.Float64(), f, "CEIL(%v)", f)
		floor, err := r.Call("FLOOR", sqltypes.NewFloat64(f))
		require.NoError(t, err)
		assert.LessOrEqual(t, floor.Float64(), f, "FLOOR(%v)", f)
	}
}

func TestDomains(t *testing.T) {
	assert.True(t, nonNegative.contains(0))
	assert.True(t, nonNegative.contains(math.Copysign(0, -1)))
	assert.False(t, nonNegative.contains(-1e-300))
	assert.False(t, positive.contains(0))
	assert.True(t, positive.contains(math.Inf(1)))
	assert.True(t, unitClosed.contains(-1))
	assert.False(t, unitOpen.contains(1))
	assert.False(t, atLeastOne.contains(math.Nextafter(1, 0)))
	assert.True(t, unitOpen.contains(math.NaN()))

	assert.NoError(t, checkDomain("SIN", -1e300))
	assert.Equal(t, failDomain, checkDomain("LOG", 2, -1))
}

func TestFailureMessages(t *testing.T) {
	err := outOfRange(failFloatingPoint, "POW", sqltypes.NewNumeric(decimal.MustParse("-1.50")))
	assert.EqualError(t, err, "Floating point error in function: POW: -1.5")
	assert.True(t, IsOutOfRange(err))

	assert.Equal(t, "Integer overflow", failIntegerOverflow.Error())
	assert.Equal(t, "Numeric overflow", failNumericOverflow.Error())
	assert.Equal(t, "Domain error", failDomain.Error())
	assert.False(t, IsOutOfRange(nil))
	assert.False(t, IsOutOfRange(assert.AnError))
}
