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

// Package sqltypes implements the typed values consumed and produced by
// the SQL math functions.
package sqltypes

import (
	"math"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/decimal"
	"vitess.io/sqlmath/go/vt/vterrors"
)

// NULL represents the absent value produced by SAFE evaluation.
var NULL = Value{}

// Value is an immutable, typed SQL value. Integers are stored as two's
// complement bits, floats as their float64 IEEE bits (FLOAT values are
// always exactly representable in float32) and NUMERIC values as a
// decimal.Numeric.
//
// The accessors do not check the kind: calling Int64 on a DOUBLE returns
// garbage. Use Kind to find out what a value holds.
type Value struct {
	kind Kind
	bits uint64
	num  decimal.Numeric
}

// NewInt32 builds an INT32 Value.
func NewInt32(v int32) Value {
	return Value{kind: Int32, bits: uint64(int64(v))}
}

// NewInt64 builds an INT64 Value.
func NewInt64(v int64) Value {
	return Value{kind: Int64, bits: uint64(v)}
}

// NewUint32 builds a UINT32 Value.
func NewUint32(v uint32) Value {
	return Value{kind: Uint32, bits: uint64(v)}
}

// NewUint64 builds a UINT64 Value.
func NewUint64(v uint64) Value {
	return Value{kind: Uint64, bits: v}
}

// NewFloat32 builds a FLOAT Value.
func NewFloat32(v float32) Value {
	return Value{kind: Float32, bits: math.Float64bits(float64(v))}
}

// NewFloat64 builds a DOUBLE Value.
func NewFloat64(v float64) Value {
	return Value{kind: Float64, bits: math.Float64bits(v)}
}

// NewNumeric builds a NUMERIC Value.
func NewNumeric(v decimal.Numeric) Value {
	return Value{kind: Numeric, num: v}
}

// NewBool builds a BOOL Value.
func NewBool(v bool) Value {
	if v {
		return Value{kind: Bool, bits: 1}
	}
	return Value{kind: Bool}
}

// Kind returns the kind of v; NULL has kind Unknown.
func (v Value) Kind() Kind { return v.kind }

// IsNull returns true if v is NULL.
func (v Value) IsNull() bool { return v.kind == Unknown }

// Int32 returns the value of an INT32.
func (v Value) Int32() int32 { return int32(int64(v.bits)) }

// Int64 returns the value of an INT64.
func (v Value) Int64() int64 { return int64(v.bits) }

// Uint32 returns the value of a UINT32.
func (v Value) Uint32() uint32 { return uint32(v.bits) }

// Uint64 returns the value of a UINT64.
func (v Value) Uint64() uint64 { return v.bits }

// Float32 returns the value of a FLOAT.
func (v Value) Float32() float32 { return float32(math.Float64frombits(v.bits)) }

// Float64 returns the value of a DOUBLE, or a FLOAT widened to float64.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// Numeric returns the value of a NUMERIC.
func (v Value) Numeric() decimal.Numeric { return v.num }

// Bool returns the value of a BOOL.
func (v Value) Bool() bool { return v.bits != 0 }

// String returns the canonical text of v. It is locale independent and is
// the form embedded in error messages.
func (v Value) String() string {
	switch v.kind {
	case Unknown:
		return "NULL"
	case Int32, Int64:
		return strconv.FormatInt(int64(v.bits), 10)
	case Uint32, Uint64:
		return strconv.FormatUint(v.bits, 10)
	case Float32:
		return formatFloat(v.Float64(), 32)
	case Float64:
		return formatFloat(v.Float64(), 64)
	case Numeric:
		return v.num.String()
	case Bool:
		return strconv.FormatBool(v.Bool())
	}
	return "<" + v.kind.String() + ">"
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// Equal reports whether v and o have the same kind and canonical text.
// Unlike ==, NaN equals NaN and -0 differs from 0, which is what result
// comparisons in tests need.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == Numeric {
		return v.num.Cmp(o.num) == 0
	}
	if v.kind.IsFloat() {
		f, g := v.Float64(), o.Float64()
		if math.IsNaN(f) || math.IsNaN(g) {
			return math.IsNaN(f) && math.IsNaN(g)
		}
	}
	return v.bits == o.bits
}

// ParseValue parses the canonical text of a value of the given kind.
// Floats also accept the spellings understood by strconv ("Infinity",
// "+Inf", "NaN") and the literal "NULL" yields NULL for any kind.
func ParseValue(kind Kind, text string) (Value, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "NULL") {
		return NULL, nil
	}

	var err error
	switch kind {
	case Int32:
		var i int64
		if i, err = strconv.ParseInt(text, 10, 32); err == nil {
			return NewInt32(int32(i)), nil
		}
	case Int64:
		var i int64
		if i, err = strconv.ParseInt(text, 10, 64); err == nil {
			return NewInt64(i), nil
		}
	case Uint32:
		var u uint64
		if u, err = strconv.ParseUint(text, 10, 32); err == nil {
			return NewUint32(uint32(u)), nil
		}
	case Uint64:
		var u uint64
		if u, err = strconv.ParseUint(text, 10, 64); err == nil {
			return NewUint64(u), nil
		}
	case Float32:
		var f float64
		if f, err = strconv.ParseFloat(text, 32); err == nil {
			return NewFloat32(float32(f)), nil
		}
	case Float64:
		var f float64
		if f, err = strconv.ParseFloat(text, 64); err == nil {
			return NewFloat64(f), nil
		}
	case Numeric:
		var n decimal.Numeric
		if n, err = decimal.Parse(text); err == nil {
			return NewNumeric(n), nil
		}
	case Bool:
		var b bool
		if b, err = strconv.ParseBool(text); err == nil {
			return NewBool(b), nil
		}
	default:
		return NULL, vterrors.Errorf(codes.InvalidArgument, "cannot parse a value of kind %v", kind)
	}
	return NULL, vterrors.Errorf(codes.InvalidArgument, "invalid %v value %q: %v", kind, text, err)
}

// ParseTypedValue parses the "KIND:VALUE" notation used by test vectors and
// the command line, e.g. "DOUBLE:-1.5" or "NUMERIC:NULL". A bare "NULL" is
// accepted too.
func ParseTypedValue(s string) (Value, error) {
	if strings.EqualFold(strings.TrimSpace(s), "NULL") {
		return NULL, nil
	}
	kindName, text, ok := strings.Cut(s, ":")
	if !ok {
		return NULL, vterrors.Errorf(codes.InvalidArgument, "invalid typed value %q: expected KIND:VALUE", s)
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return NULL, vterrors.Errorf(codes.InvalidArgument, "invalid typed value %q: %v", s, err)
	}
	return ParseValue(kind, text)
}

// TypedString returns v in the notation accepted by ParseTypedValue.
func (v Value) TypedString() string {
	if v.IsNull() {
		return "NULL"
	}
	return v.kind.String() + ":" + v.String()
}
