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
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/grpc/codes"

	"vitess.io/sqlmath/go/decimal"
	"vitess.io/sqlmath/go/vt/utils"
	"vitess.io/sqlmath/go/vt/vterrors"
)

const (
	floatRoundModeKey   = "float-round-mode"
	numericRoundModeKey = "numeric-round-mode"
)

// Config holds the tie-breaking policy of ROUND for each kind family.
// TRUNC, CEIL and FLOOR have fixed directions and ignore it.
type Config struct {
	FloatRounding   decimal.RoundingMode
	NumericRounding decimal.RoundingMode
}

// DefaultConfig rounds halves away from zero for every kind, so that
// ROUND(2.5) = 3 and ROUND(-2.5) = -3.
func DefaultConfig() Config {
	return Config{
		FloatRounding:   decimal.ToNearestAway,
		NumericRounding: decimal.ToNearestAway,
	}
}

// RegisterFlags installs the rounding flags on fs, bound to cfg.
func (cfg *Config) RegisterFlags(fs *pflag.FlagSet) {
	utils.SetFlagVar(fs, &cfg.FloatRounding, floatRoundModeKey, "Rounding mode of ROUND for FLOAT and DOUBLE values.")
	utils.SetFlagVar(fs, &cfg.NumericRounding, numericRoundModeKey, "Rounding mode of ROUND for NUMERIC values.")
}

// LoadConfig reads the rounding modes from v. Keys that are not set keep
// their default value.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range []struct {
		key  string
		mode *decimal.RoundingMode
	}{
		{floatRoundModeKey, &cfg.FloatRounding},
		{numericRoundModeKey, &cfg.NumericRounding},
	} {
		if !v.IsSet(opt.key) {
			continue
		}
		if err := opt.mode.Set(v.GetString(opt.key)); err != nil {
			return Config{}, vterrors.Errorf(codes.InvalidArgument, "%s: %v", opt.key, err)
		}
	}
	return cfg, nil
}
