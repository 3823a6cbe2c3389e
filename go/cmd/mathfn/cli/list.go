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
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/vt/utils"
	"vitess.io/sqlmath/go/vt/vterrors"
	"vitess.io/sqlmath/go/vt/vtgate/evalengine"
)

// List returns the list command.
func List(r *root) *cobra.Command {
	var function string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the signatures of the math builtins.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.list(cmd, function)
		},
	}
	utils.SetFlagStringVar(cmd.Flags(), &function, "function", "", "Only list the signatures of this function; aliases such as POWER are accepted.")
	return cmd
}

func (r *root) list(cmd *cobra.Command, function string) error {
	var name string
	if function != "" {
		name = evalengine.CanonicalName(function)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Function", "Arguments", "Returns", "Description")
	rows := 0
	for _, b := range r.registry.Builtins() {
		if name != "" && b.Name != name {
			continue
		}
		args := make([]string, len(b.Args))
		for i, k := range b.Args {
			args[i] = k.String()
		}
		if err := table.Append([]string{b.Name, strings.Join(args, ", "), b.Returns.String(), b.Info}); err != nil {
			return err
		}
		rows++
	}
	if rows == 0 {
		return vterrors.Errorf(codes.NotFound, "unknown function %q", function)
	}
	return table.Render()
}
