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

package sqltypes

import (
	"fmt"
	"strings"
)

// These bit flags can be used to query on the
// common properties of types.
const (
	flagIsIntegral = 256
	flagIsUnsigned = 512
	flagIsFloat    = 1024
	flagIsDecimal  = 2048
)

// Kind is the closed set of value kinds understood by the math layer.
// The low byte is an ordinal; the high bits are the property flags above.
type Kind int32

// The numeric kinds, plus Bool which is only ever produced as a result.
const (
	Unknown Kind = 0
	Int32   Kind = 1 | flagIsIntegral
	Int64   Kind = 2 | flagIsIntegral
	Uint32  Kind = 3 | flagIsIntegral | flagIsUnsigned
	Uint64  Kind = 4 | flagIsIntegral | flagIsUnsigned
	Float32 Kind = 5 | flagIsFloat
	Float64 Kind = 6 | flagIsFloat
	Numeric Kind = 7 | flagIsDecimal
	Bool    Kind = 8
)

// NumericKinds lists every numeric kind in declaration order.
var NumericKinds = []Kind{Int32, Int64, Uint32, Uint64, Float32, Float64, Numeric}

var kindNames = map[Kind]string{
	Int32:   "INT32",
	Int64:   "INT64",
	Uint32:  "UINT32",
	Uint64:  "UINT64",
	Float32: "FLOAT",
	Float64: "DOUBLE",
	Numeric: "NUMERIC",
	Bool:    "BOOL",
}

var kindAliases = map[string]Kind{
	"INT32":   Int32,
	"INT64":   Int64,
	"UINT32":  Uint32,
	"UINT64":  Uint64,
	"FLOAT":   Float32,
	"FLOAT32": Float32,
	"DOUBLE":  Float64,
	"FLOAT64": Float64,
	"NUMERIC": Numeric,
	"DECIMAL": Numeric,
	"BOOL":    Bool,
}

// String returns the SQL name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int32(k))
}

// ParseKind resolves a SQL kind name (case insensitive).
func ParseKind(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return Unknown, fmt.Errorf("unknown kind %q", name)
}

// IsIntegral returns true if k is an integral kind.
func (k Kind) IsIntegral() bool {
	return int(k)&flagIsIntegral == flagIsIntegral
}

// IsSigned returns true if k is a signed integral kind.
func (k Kind) IsSigned() bool {
	return int(k)&(flagIsIntegral|flagIsUnsigned) == flagIsIntegral
}

// IsUnsigned returns true if k is an unsigned integral kind.
func (k Kind) IsUnsigned() bool {
	return int(k)&flagIsUnsigned == flagIsUnsigned
}

// IsFloat returns true if k is an IEEE floating point kind.
func (k Kind) IsFloat() bool {
	return int(k)&flagIsFloat == flagIsFloat
}

// IsDecimal returns true for the fixed-scale NUMERIC kind.
func (k Kind) IsDecimal() bool {
	return int(k)&flagIsDecimal == flagIsDecimal
}
