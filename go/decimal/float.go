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
	"errors"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// maxFloatDigits bounds the digits argument of RoundFloat. Every float64
// has fewer than this many decimal digits on either side of the point.
const maxFloatDigits = 400

// RoundFloat rounds f to digits places after the decimal point using mode m.
// bitSize is 32 or 64 and selects the precision f is printed and re-parsed
// with. The rounding is performed on the shortest decimal text of f, so
// RoundFloat(2.345, 64, 2, ToNearestAway) is 2.35 even though the binary
// value of 2.345 is slightly below it.
//
// NaN, infinities and zeros are returned unchanged. A result whose
// magnitude no longer fits in the float type becomes an infinity of the
// same sign; a result that rounds to zero keeps the sign of f.
func RoundFloat(f float64, bitSize int, digits int64, m RoundingMode) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return f
	}
	if digits > maxFloatDigits {
		return f
	}
	if digits < -maxFloatDigits {
		digits = -maxFloatDigits
	}

	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, bitSize))
	if err != nil {
		return f
	}
	if -int64(d.Exponent) <= digits {
		// no fractional digits past the requested position
		return f
	}

	out, err := quantize(d, int32(-digits), m)
	if err != nil {
		return f
	}
	r, err := strconv.ParseFloat(out.String(), bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return f
	}
	if r == 0 {
		return math.Copysign(0, f)
	}
	return r
}
