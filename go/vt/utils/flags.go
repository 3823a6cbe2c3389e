/*
Copyright 2025 The Vitess Authors.

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

// Package utils holds the flag registration helpers shared by the
// mathfn packages. Flag names use dashes; underscored spellings are
// accepted on the command line and normalized with a deprecation notice.
package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// warnings is where naming and deprecation notices are written.
var warnings io.Writer = os.Stderr

// flagVariants returns two variants of the flag name:
// one with dashes replaced by underscores and one with underscores replaced by dashes.
func flagVariants(name string) (underscored, dashed string) {
	prefix := ""
	if strings.HasPrefix(name, "--") {
		prefix = "--"
		name = strings.TrimPrefix(name, prefix)
	}
	return prefix + strings.ReplaceAll(name, "-", "_"), prefix + strings.ReplaceAll(name, "_", "-")
}

// setFlagVar is a generic helper for registering flags.
func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	_, dashed := flagVariants(name)
	if dashed != name {
		fmt.Fprintf(warnings, "[WARNING] flag %q is registered with underscores, use %q\n", name, dashed)
	}
	setFunc(fs, p, dashed, def, usage)
}

// SetFlagBoolVar registers a bool flag under its dashed name.
func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

// SetFlagStringVar registers a string flag under its dashed name.
func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

// SetFlagVar registers a flag that implements pflag.Value under its
// dashed name.
func SetFlagVar(fs *pflag.FlagSet, value pflag.Value, name, usage string) {
	_, dashed := flagVariants(name)
	if dashed != name {
		fmt.Fprintf(warnings, "[WARNING] flag %q is registered with underscores, use %q\n", name, dashed)
	}
	fs.Var(value, dashed, usage)
}

var (
	deprecationMu              sync.Mutex
	deprecationWarningsEmitted = make(map[string]bool)
)

// NormalizeUnderscoresToDashes translates flag names from underscores to
// dashes and prints a deprecation warning the first time each underscored
// name is seen. Install it with (*pflag.FlagSet).SetNormalizeFunc.
func NormalizeUnderscoresToDashes(f *pflag.FlagSet, name string) pflag.NormalizedName {
	// glog owns these and spells them with underscores
	if name == "log_dir" || name == "log_link" || name == "log_backtrace_at" {
		return pflag.NormalizedName(name)
	}

	// We only want to normalize flags that purely use underscores.
	if !strings.Contains(name, "_") || strings.Contains(name, "-") {
		return pflag.NormalizedName(name)
	}

	_, normalizedName := flagVariants(name)

	deprecationMu.Lock()
	defer deprecationMu.Unlock()
	if !deprecationWarningsEmitted[name] {
		deprecationWarningsEmitted[name] = true
		fmt.Fprintf(warnings, "Flag --%s has been deprecated, use --%s instead \n", name, normalizedName)
	}

	return pflag.NormalizedName(normalizedName)
}
