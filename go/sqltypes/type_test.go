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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeValues(t *testing.T) {
	testcases := []struct {
		kind     Kind
		name     string
		integral bool
		signed   bool
		unsigned bool
		float    bool
		decimal  bool
	}{
		{kind: Int32, name: "INT32", integral: true, signed: true},
		{kind: Int64, name: "INT64", integral: true, signed: true},
		{kind: Uint32, name: "UINT32", integral: true, unsigned: true},
		{kind: Uint64, name: "UINT64", integral: true, unsigned: true},
		{kind: Float32, name: "FLOAT", float: true},
		{kind: Float64, name: "DOUBLE", float: true},
		{kind: Numeric, name: "NUMERIC", decimal: true},
		{kind: Bool, name: "BOOL"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.kind.String())
			assert.Equal(t, tc.integral, tc.kind.IsIntegral())
			assert.Equal(t, tc.signed, tc.kind.IsSigned())
			assert.Equal(t, tc.unsigned, tc.kind.IsUnsigned())
			assert.Equal(t, tc.float, tc.kind.IsFloat())
			assert.Equal(t, tc.decimal, tc.kind.IsDecimal())

			parsed, err := ParseKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, parsed)
		})
	}
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"float32":   Float32,
		"Float64":   Float64,
		" decimal ": Numeric,
	} {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, k)
	}

	_, err := ParseKind("int8")
	assert.EqualError(t, err, `unknown kind "int8"`)
	assert.Equal(t, "KIND(0)", Unknown.String())
	assert.Len(t, NumericKinds, 7)
}
