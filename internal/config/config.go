// Package config loads decimal64ctl's currency presets: named
// precision/rounding combinations so operators don't have to remember that
// BTC means 8 fractional digits and down-rounding while USD means 2 and
// half-even.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Preset is one currency's precision/rounding combination, e.g.:
//
//	[currencies.USD]
//	precision = 2
//	rounding  = "half-even"
//
//	[currencies.BTC]
//	precision = 8
//	rounding  = "down"
type Preset struct {
	Precision int    `toml:"precision"`
	Rounding  string `toml:"rounding"`
}

// Config is the root of a decimal64ctl currency preset file.
type Config struct {
	Currencies map[string]Preset `toml:"currencies"`
}

// Load decodes the TOML config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve looks up the preset for a currency code.
func (c *Config) Resolve(currency string) (Preset, error) {
	p, ok := c.Currencies[currency]
	if !ok {
		return Preset{}, fmt.Errorf("config: no preset for currency %q", currency)
	}
	return p, nil
}
