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

/*
Package evalengine implements the scalar math builtins of the SQL engine:
absolute value and sign, the exponential and logarithm family, the
trigonometric and hyperbolic functions, POW, IEEE_DIVIDE and the rounding
family, over the INT32, INT64, UINT32, UINT64, FLOAT, DOUBLE and NUMERIC
kinds.

A Registry maps a function name and the kinds of its arguments to exactly
one Builtin. Builtins never wrap silently: operands outside the domain of a
function and results that do not fit the NUMERIC range fail with an error
for which IsOutOfRange returns true, and whose message names the function
and the first operand, e.g.

	Domain error in function: SQRT: -1

FLOAT and DOUBLE results follow IEEE-754: overflow yields an infinity and
NaN propagates, neither of which is an error.
*/
package evalengine
