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
	"slices"
	"strings"

	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/sqltypes"
	"vitess.io/sqlmath/go/stats"
	"vitess.io/sqlmath/go/vt/log"
	"vitess.io/sqlmath/go/vt/vterrors"
)

var (
	// MathFunctionCalls counts the evaluations of each math builtin.
	MathFunctionCalls = stats.NewCountersWithSingleLabel("MathFunctionCalls", "Math builtin evaluations", "Function")
	// MathFunctionErrors counts the evaluations that failed with OutOfRange.
	MathFunctionErrors = stats.NewCountersWithSingleLabel("MathFunctionErrors", "Math builtin evaluations that failed with an out of range error", "Function")
	// MathSafeNulls counts the SAFE evaluations that returned NULL instead of failing.
	MathSafeNulls = stats.NewCounter("MathSafeNulls", "SAFE math builtin evaluations that returned NULL instead of an error")
	// MathBuiltins is the number of signatures in the last registry built.
	MathBuiltins = stats.NewGauge("MathBuiltins", "Number of registered math builtin signatures")
)

var aliases = map[string]string{
	"POWER":   "POW",
	"CEILING": "CEIL",
}

var functionInfo = map[string]string{
	"ABS":         "Absolute value. Fails for the minimum value of signed integer kinds.",
	"SIGN":        "-1, 0 or 1 depending on the sign of the operand; NaN for NaN.",
	"IS_NAN":      "True if the operand is NaN.",
	"IS_INF":      "True if the operand is positive or negative infinity.",
	"SQRT":        "Square root; the operand must not be negative.",
	"EXP":         "e raised to the operand.",
	"LN":          "Natural logarithm; the operand must be positive.",
	"LOG":         "Natural logarithm, or logarithm in the given base; operands must be positive.",
	"LOG10":       "Base 10 logarithm; the operand must be positive.",
	"SIN":         "Sine, in radians.",
	"COS":         "Cosine, in radians.",
	"TAN":         "Tangent, in radians.",
	"SINH":        "Hyperbolic sine.",
	"COSH":        "Hyperbolic cosine.",
	"TANH":        "Hyperbolic tangent.",
	"ASIN":        "Arcsine; the operand must be in [-1, 1].",
	"ACOS":        "Arccosine; the operand must be in [-1, 1].",
	"ATAN":        "Arctangent.",
	"ASINH":       "Inverse hyperbolic sine.",
	"ACOSH":       "Inverse hyperbolic cosine; the operand must be at least 1.",
	"ATANH":       "Inverse hyperbolic tangent; the operand must be in (-1, 1).",
	"ATAN2":       "Arctangent of y/x using the signs of both operands.",
	"IEEE_DIVIDE": "IEEE division; division by zero yields an infinity or NaN.",
	"POW":         "First operand raised to the second.",
	"ROUND":       "Rounds to an integer, or to a number of decimal places.",
	"TRUNC":       "Truncates toward zero, to an integer or to a number of decimal places.",
	"CEIL":        "Smallest integral value not less than the operand.",
	"FLOOR":       "Largest integral value not greater than the operand.",
}

// Builtin is the implementation of a math function for one signature.
type Builtin struct {
	Name    string
	Args    []sqltypes.Kind
	Returns sqltypes.Kind
	Info    string

	call evalFunc
}

func newUnary[T, R any](name string, in kindOf[T], out kindOf[R], fn func(T) (R, error)) *Builtin {
	return &Builtin{
		Name:    name,
		Args:    []sqltypes.Kind{in.kind},
		Returns: out.kind,
		call:    unary(in, out, fn),
	}
}

func newBinary[T, U, R any](name string, in1 kindOf[T], in2 kindOf[U], out kindOf[R], fn func(T, U) (R, error)) *Builtin {
	return &Builtin{
		Name:    name,
		Args:    []sqltypes.Kind{in1.kind, in2.kind},
		Returns: out.kind,
		call:    binary(in1, in2, out, fn),
	}
}

// Signature returns b's signature, e.g. "ROUND(DOUBLE, INT64) -> DOUBLE".
func (b *Builtin) Signature() string {
	return formatCall(b.Name, b.Args) + " -> " + b.Returns.String()
}

// Call evaluates b. The result is NULL when any argument is NULL. Domain
// violations and overflows are returned as OutOfRange errors; arguments
// whose kinds do not match b.Args are a programming error and panic.
func (b *Builtin) Call(args ...sqltypes.Value) (sqltypes.Value, error) {
	if len(args) != len(b.Args) {
		b.mismatch(args)
	}
	for i, arg := range args {
		if arg.IsNull() {
			return sqltypes.NULL, nil
		}
		if arg.Kind() != b.Args[i] {
			b.mismatch(args)
		}
	}

	MathFunctionCalls.Add(b.Name, 1)
	v, err := b.call(args)
	if err != nil {
		MathFunctionErrors.Add(b.Name, 1)
		return sqltypes.NULL, classify(err, b.Name, args[0])
	}
	return v, nil
}

func (b *Builtin) mismatch(args []sqltypes.Value) {
	kinds := make([]sqltypes.Kind, len(args))
	for i, arg := range args {
		kinds[i] = arg.Kind()
	}
	dispatchDefect("%s called as %s", b.Signature(), formatCall(b.Name, kinds))
}

func dispatchDefect(format string, args ...any) {
	err := vterrors.Errorf(codes.Internal, format, args...)
	log.ErrorS("math builtin dispatch defect", "error", err)
	panic(err)
}

func formatCall(name string, kinds []sqltypes.Kind) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, k := range kinds {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

type signature struct {
	name  string
	arity int
	args  [2]sqltypes.Kind
}

func signatureOf(name string, kinds []sqltypes.Kind) signature {
	sig := signature{name: name, arity: len(kinds)}
	copy(sig.args[:], kinds)
	return sig
}

// CanonicalName upper-cases name and resolves aliases.
func CanonicalName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Registry maps a function name and the kinds of its arguments to exactly
// one Builtin. A Registry is immutable once built and safe for concurrent
// use.
type Registry struct {
	cfg      Config
	builtins map[signature]*Builtin
}

// NewRegistry builds the math builtins, using cfg for the rounding policy.
func NewRegistry(cfg Config) *Registry {
	r := &Registry{
		cfg:      cfg,
		builtins: make(map[signature]*Builtin),
	}
	registerNumericBuiltins(r)
	registerMathBuiltins(r)
	registerRoundingBuiltins(r)

	MathBuiltins.Set(int64(len(r.builtins)))
	log.V(2).Infof("Registered %d math builtins (float rounding: %v, numeric rounding: %v)",
		len(r.builtins), cfg.FloatRounding, cfg.NumericRounding)
	return r
}

func (r *Registry) add(builtins ...*Builtin) {
	for _, b := range builtins {
		sig := signatureOf(b.Name, b.Args)
		if _, ok := r.builtins[sig]; ok {
			panic("evalengine: duplicate math builtin " + b.Signature())
		}
		b.Info = functionInfo[b.Name]
		r.builtins[sig] = b
	}
}

// Config returns the configuration r was built with.
func (r *Registry) Config() Config {
	return r.cfg
}

// Lookup returns the builtin implementing name for arguments of the given
// kinds. Names are case insensitive and aliases (POWER, CEILING) resolve to
// their canonical function.
func (r *Registry) Lookup(name string, kinds ...sqltypes.Kind) (*Builtin, bool) {
	if len(kinds) > len(signature{}.args) {
		return nil, false
	}
	b, ok := r.builtins[signatureOf(CanonicalName(name), kinds)]
	return b, ok
}

// MustLookup is like Lookup but panics when no builtin matches. Callers are
// expected to have type checked the call.
func (r *Registry) MustLookup(name string, kinds ...sqltypes.Kind) *Builtin {
	b, ok := r.Lookup(name, kinds...)
	if !ok {
		dispatchDefect("no math builtin matches %s", formatCall(CanonicalName(name), kinds))
	}
	return b
}

// Call evaluates the function name over args, selecting the builtin from
// the kinds of args. If any argument is NULL the call is skipped and the
// result is NULL.
func (r *Registry) Call(name string, args ...sqltypes.Value) (sqltypes.Value, error) {
	kinds := make([]sqltypes.Kind, len(args))
	for i, arg := range args {
		if arg.IsNull() {
			return sqltypes.NULL, nil
		}
		kinds[i] = arg.Kind()
	}
	return r.MustLookup(name, kinds...).Call(args...)
}

// SafeCall is like Call but returns NULL instead of an OutOfRange error.
func (r *Registry) SafeCall(name string, args ...sqltypes.Value) (sqltypes.Value, error) {
	v, err := r.Call(name, args...)
	if IsOutOfRange(err) {
		MathSafeNulls.Add(1)
		return sqltypes.NULL, nil
	}
	return v, err
}

// Builtins returns every registered builtin ordered by name, arity and
// argument kinds.
func (r *Registry) Builtins() []*Builtin {
	out := make([]*Builtin, 0, len(r.builtins))
	for _, b := range r.builtins {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *Builtin) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if c := len(a.Args) - len(b.Args); c != 0 {
			return c
		}
		return slices.Compare(a.Args, b.Args)
	})
	return out
}
