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

package cli

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/sqltypes"
	"vitess.io/sqlmath/go/stats/prometheusbackend"
	"vitess.io/sqlmath/go/vt/log"
	"vitess.io/sqlmath/go/vt/utils"
	"vitess.io/sqlmath/go/vt/vterrors"
)

// Eval returns the eval command.
func Eval(r *root) *cobra.Command {
	var (
		safe    bool
		metrics bool
	)
	cmd := &cobra.Command{
		Use:   "eval <function> [<KIND:VALUE> ...]",
		Short: "Evaluates a math builtin and prints its result as KIND:VALUE.",
		Example: "mathfn eval POW NUMERIC:2 NUMERIC:10\n" +
			"mathfn eval --safe SQRT DOUBLE:-1\n" +
			"mathfn eval --float-round-mode half_even ROUND DOUBLE:2.5",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.eval(cmd, args[0], args[1:], safe, metrics)
		},
	}
	utils.SetFlagBoolVar(cmd.Flags(), &safe, "safe", false, "Return NULL instead of failing when the operands are out of range.")
	utils.SetFlagBoolVar(cmd.Flags(), &metrics, "metrics", false, "Print the function metrics in the Prometheus text format after the result.")
	return cmd
}

// parseArg parses a KIND:VALUE argument. The kind is returned separately
// because a NULL value does not carry one.
func parseArg(arg string) (sqltypes.Kind, sqltypes.Value, error) {
	name, _, ok := strings.Cut(arg, ":")
	if !ok {
		return sqltypes.Unknown, sqltypes.NULL, vterrors.Errorf(codes.InvalidArgument, "invalid argument %q: expected KIND:VALUE", arg)
	}
	kind, err := sqltypes.ParseKind(name)
	if err != nil {
		return sqltypes.Unknown, sqltypes.NULL, vterrors.Errorf(codes.InvalidArgument, "invalid argument %q: %v", arg, err)
	}
	v, err := sqltypes.ParseTypedValue(arg)
	return kind, v, err
}

func (r *root) eval(cmd *cobra.Command, name string, args []string, safe, metrics bool) error {
	kinds := make([]sqltypes.Kind, len(args))
	values := make([]sqltypes.Value, len(args))
	for i, arg := range args {
		var err error
		if kinds[i], values[i], err = parseArg(arg); err != nil {
			return err
		}
	}

	// check the signature first: the registry treats unknown calls as bugs
	b, ok := r.registry.Lookup(name, kinds...)
	if !ok {
		return vterrors.Errorf(codes.NotFound, "unknown function or signature: %s", formatArgs(name, kinds))
	}

	call := r.registry.Call
	if safe {
		call = r.registry.SafeCall
	}
	v, err := call(b.Name, values...)
	if err != nil {
		return err
	}
	log.DebugS("Evaluated math builtin", "signature", b.Signature(), "safe", safe, "result", v.TypedString())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, v.TypedString())
	if metrics {
		return writeMetrics(cmd)
	}
	return nil
}

func formatArgs(name string, kinds []sqltypes.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.ToUpper(name) + "(" + strings.Join(names, ", ") + ")"
}

// writeMetrics exports the process metrics to a private Prometheus registry
// and prints them in the text exposition format.
func writeMetrics(cmd *cobra.Command) error {
	reg := prometheus.NewRegistry()
	prometheusbackend.InitWithRegisterer("mathfn", reg)

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}
	return nil
}
