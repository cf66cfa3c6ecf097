// Package config loads curve and logging settings from a YAML file, the
// environment and command line flags.
package config

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. ECARITH_CURVE_Q.
const EnvPrefix = "ECARITH"

// DefaultCurve is used when neither a preset nor explicit parameters are set.
const DefaultCurve = "secp256k1"

// Config is the top level configuration.
type Config struct {
	Curve CurveConfig    `mapstructure:"curve"`
	Log   logging.Config `mapstructure:"log"`
}

// CurveConfig names a preset or spells out the parameters of a curve. Numbers
// are decimal or prefixed with 0x, 0o or 0b.
type CurveConfig struct {
	Name string `mapstructure:"name"`
	A    string `mapstructure:"a"`
	B    string `mapstructure:"b"`
	Q    string `mapstructure:"q"`
	N    string `mapstructure:"n"`
	H    string `mapstructure:"h"`
	Gx   string `mapstructure:"gx"`
	Gy   string `mapstructure:"gy"`
}

// FlagNames maps configuration keys to the command line flags that override
// them.
var FlagNames = map[string]string{
	"curve.name": "curve",
	"curve.a":    "a",
	"curve.b":    "b",
	"curve.q":    "q",
	"curve.n":    "order",
	"curve.h":    "cofactor",
	"curve.gx":   "gx",
	"curve.gy":   "gy",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load reads the optional file at path, applies ECARITH_* environment
// variables and then any flag in flags that was set explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so register all of them.
	for key := range FlagNames {
		v.SetDefault(key, "")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if flags != nil {
		for key, name := range FlagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &c, nil
}

// Build resolves the configured curve. Explicit parameters win over a preset
// name, which then only labels the curve. Parameters without q are an error
// rather than being dropped in favour of the preset.
func (c CurveConfig) Build() (*curves.Curve, error) {
	p := &curves.Params{Name: c.Name}
	fields := []struct {
		name string
		in   string
		out  **big.Int
	}{
		{"a", c.A, &p.A},
		{"b", c.B, &p.B},
		{"q", c.Q, &p.Q},
		{"n", c.N, &p.N},
		{"h", c.H, &p.H},
		{"gx", c.Gx, &p.Gx},
		{"gy", c.Gy, &p.Gy},
	}

	if c.Q == "" {
		for _, field := range fields {
			if field.in != "" {
				return nil, errors.Errorf("curve parameter %s requires q", field.name)
			}
		}
		name := c.Name
		if name == "" {
			name = DefaultCurve
		}
		return curves.ByName(name)
	}

	for _, field := range fields {
		if field.in == "" {
			continue
		}
		n, ok := new(big.Int).SetString(field.in, 0)
		if !ok {
			return nil, errors.Errorf("curve parameter %s: %q is not an integer", field.name, field.in)
		}
		*field.out = n
	}
	return curves.FromParams(p)
}
