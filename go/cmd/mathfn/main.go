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

// mathfn evaluates and documents the SQL math builtins from the command
// line.
package main

import (
	"os"

	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/cmd/mathfn/cli"
	"vitess.io/sqlmath/go/vt/log"
	"vitess.io/sqlmath/go/vt/vterrors"
)

func main() {
	defer log.Flush()

	if err := cli.Main().Execute(); err != nil {
		log.Flush()
		if vterrors.Code(err) == codes.OutOfRange {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
