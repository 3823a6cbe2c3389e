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

// Package cli implements the mathfn commands.
package cli

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vitess.io/sqlmath/go/vt/log"
	"vitess.io/sqlmath/go/vt/utils"
	"vitess.io/sqlmath/go/vt/vterrors"
	"vitess.io/sqlmath/go/vt/vtgate/evalengine"
)

// root holds the state shared by the mathfn commands. The registry is built
// once the flags and the configuration file have been read.
type root struct {
	configFile string
	cfg        evalengine.Config
	registry   *evalengine.Registry
}

// Main returns the mathfn root command.
func Main() *cobra.Command {
	r := &root{cfg: evalengine.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "mathfn",
		Short: "mathfn evaluates and documents the SQL math builtins.",
		Long: "`mathfn` resolves a function call to the builtin matching the kinds of its arguments, " +
			"the same way the query engine does, and prints its result.\n\n" +
			"Arguments are written as KIND:VALUE, for example `DOUBLE:-1.5` or `NUMERIC:NULL`.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: r.preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		Run: func(cmd *cobra.Command, _ []string) { _ = cmd.Help() },
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(utils.NormalizeUnderscoresToDashes)
	utils.SetFlagStringVar(fs, &r.configFile, "config", "", "Path to a configuration file (YAML, TOML or JSON) holding the rounding modes.")
	r.cfg.RegisterFlags(fs)
	log.RegisterFlags(fs)
	fs.AddGoFlagSet(goflag.CommandLine)

	cmd.AddCommand(Eval(r))
	cmd.AddCommand(List(r))
	return cmd
}

func (r *root) preRun(cmd *cobra.Command, args []string) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}

	v := viper.New()
	if r.configFile != "" {
		v.SetConfigFile(r.configFile)
		if err := v.ReadInConfig(); err != nil {
			return vterrors.Wrapf(err, "failed to read config file %s", r.configFile)
		}
		log.InfoS("Loaded configuration", "file", v.ConfigFileUsed())
	}
	// flags given on the command line override the file
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := evalengine.LoadConfig(v)
	if err != nil {
		return err
	}
	r.cfg = cfg
	r.registry = evalengine.NewRegistry(cfg)
	return nil
}
