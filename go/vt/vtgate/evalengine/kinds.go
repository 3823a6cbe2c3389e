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
	"vitess.io/sqlmath/go/decimal"
	"vitess.io/sqlmath/go/sqltypes"
)

// kindOf binds a sqltypes.Kind to the Go type holding its values, so the
// generic function families can be registered once per kind.
type kindOf[T any] struct {
	kind sqltypes.Kind
	from func(sqltypes.Value) T
	to   func(T) sqltypes.Value
}

var (
	int32Kind   = kindOf[int32]{sqltypes.Int32, sqltypes.Value.Int32, sqltypes.NewInt32}
	int64Kind   = kindOf[int64]{sqltypes.Int64, sqltypes.Value.Int64, sqltypes.NewInt64}
	uint32Kind  = kindOf[uint32]{sqltypes.Uint32, sqltypes.Value.Uint32, sqltypes.NewUint32}
	uint64Kind  = kindOf[uint64]{sqltypes.Uint64, sqltypes.Value.Uint64, sqltypes.NewUint64}
	floatKind   = kindOf[float32]{sqltypes.Float32, sqltypes.Value.Float32, sqltypes.NewFloat32}
	doubleKind  = kindOf[float64]{sqltypes.Float64, sqltypes.Value.Float64, sqltypes.NewFloat64}
	numericKind = kindOf[decimal.Numeric]{sqltypes.Numeric, sqltypes.Value.Numeric, sqltypes.NewNumeric}
	boolKind    = kindOf[bool]{sqltypes.Bool, sqltypes.Value.Bool, sqltypes.NewBool}
)

type evalFunc func(args []sqltypes.Value) (sqltypes.Value, error)

func unary[T, R any](in kindOf[T], out kindOf[R], fn func(T) (R, error)) evalFunc {
	return func(args []sqltypes.Value) (sqltypes.Value, error) {
		r, err := fn(in.from(args[0]))
		if err != nil {
			return sqltypes.NULL, err
		}
		return out.to(r), nil
	}
}

func binary[T, U, R any](in1 kindOf[T], in2 kindOf[U], out kindOf[R], fn func(T, U) (R, error)) evalFunc {
	return func(args []sqltypes.Value) (sqltypes.Value, error) {
		r, err := fn(in1.from(args[0]), in2.from(args[1]))
		if err != nil {
			return sqltypes.NULL, err
		}
		return out.to(r), nil
	}
}
