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

package vterrors

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCRoundTrip(t *testing.T) {
	assert.Nil(t, ToGRPC(nil))
	assert.Nil(t, FromGRPC(nil))
	assert.Equal(t, io.EOF, FromGRPC(io.EOF))

	orig := NewErrorf(codes.OutOfRange, DataOutOfRange, "Floating point error in function: POW: %s", "99999999999999999999999999999.999999999")
	grpcErr := ToGRPC(orig)
	s, ok := status.FromError(grpcErr)
	require.True(t, ok)
	assert.Equal(t, codes.OutOfRange, s.Code())
	assert.Equal(t, orig.Error(), s.Message())

	back := FromGRPC(grpcErr)
	assert.Equal(t, codes.OutOfRange, Code(back))
	assert.Equal(t, DataOutOfRange, ErrState(back))
	assert.Equal(t, orig.Error(), back.Error())

	plain := FromGRPC(errors.New("boom"))
	assert.Equal(t, codes.Unknown, Code(plain))
	assert.Equal(t, Undefined, ErrState(plain))
}

func TestTruncateError(t *testing.T) {
	long := New(codes.OutOfRange, strings.Repeat("x", 10000))
	msg := status.Convert(ToGRPC(long)).Message()
	assert.Less(t, len(msg), 8*1024)
	assert.True(t, strings.HasSuffix(msg, "[remainder of the error is truncated because gRPC has a size limit on errors.]"))
}
