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
	"errors"
	"math"

	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/sqltypes"
	"vitess.io/sqlmath/go/vt/vterrors"
)

// failure is what the function families return when a call cannot produce a
// value. Builtin.Call turns it into an OutOfRange error naming the function
// and the first operand.
type failure uint8

const (
	failDomain failure = iota + 1
	failIntegerOverflow
	failNumericOverflow
	failFloatingPoint
)

func (f failure) Error() string {
	switch f {
	case failDomain:
		return "Domain error"
	case failIntegerOverflow:
		return "Integer overflow"
	case failNumericOverflow:
		return "Numeric overflow"
	case failFloatingPoint:
		return "Floating point error"
	}
	return "Unknown error"
}

// outOfRange builds the only error kind returned by the math builtins.
func outOfRange(f failure, name string, first sqltypes.Value) error {
	return vterrors.NewErrorf(codes.OutOfRange, vterrors.DataOutOfRange, "%s in function: %s: %s", f, name, first)
}

// IsOutOfRange returns true if err was returned by a math builtin because
// its operands were out of the function's domain or its result overflowed.
func IsOutOfRange(err error) bool {
	return err != nil && vterrors.Code(err) == codes.OutOfRange && vterrors.ErrState(err) == vterrors.DataOutOfRange
}

// classify turns a failure returned by a function family into an OutOfRange
// error. Any other error is a bug in the family and is returned unchanged.
func classify(err error, name string, first sqltypes.Value) error {
	var f failure
	if errors.As(err, &f) {
		return outOfRange(f, name, first)
	}
	return err
}

// interval is the closed or open range of operands a function accepts.
type interval struct {
	lo, hi         float64
	openLo, openHi bool
}

// contains returns true if x is inside d. NaN is always inside: it
// propagates through the computation instead of failing.
func (d interval) contains(x float64) bool {
	if math.IsNaN(x) {
		return true
	}
	if x < d.lo || (d.openLo && x == d.lo) {
		return false
	}
	if x > d.hi || (d.openHi && x == d.hi) {
		return false
	}
	return true
}

var (
	nonNegative = interval{lo: 0, hi: math.Inf(1)}
	positive    = interval{lo: 0, hi: math.Inf(1), openLo: true}
	unitClosed  = interval{lo: -1, hi: 1}
	unitOpen    = interval{lo: -1, hi: 1, openLo: true, openHi: true}
	atLeastOne  = interval{lo: 1, hi: math.Inf(1)}
)

// domains lists the functions whose operands are checked before computing.
// Functions missing from the map accept any operand.
var domains = map[string]interval{
	"SQRT":  nonNegative,
	"LN":    positive,
	"LOG":   positive,
	"LOG10": positive,
	"ACOS":  unitClosed,
	"ASIN":  unitClosed,
	"ACOSH": atLeastOne,
	"ATANH": unitOpen,
}

// checkDomain returns failDomain if any of xs is outside the domain of the
// named function.
func checkDomain(name string, xs ...float64) error {
	d, ok := domains[name]
	if !ok {
		return nil
	}
	for _, x := range xs {
		if !d.contains(x) {
			return failDomain
		}
	}
	return nil
}
