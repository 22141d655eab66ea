// Package config provides YAML-based rule configuration for oi2048.
package config

import (
	"fmt"

	"github.com/vovakirdan/oi2048/internal/engine"
)

// Config contains the tunable game rules.
type Config struct {
	WinTile int          `yaml:"win_tile"`
	Spawn   SpawnWeights `yaml:"spawn"`
}

// SpawnWeights defines the relative probability of each spawnable tile.
// Entries with zero weight are left out of the spawn pool.
type SpawnWeights struct {
	Two    float64 `yaml:"two"`
	Four   float64 `yaml:"four"`
	MulOne float64 `yaml:"mul_one"`
	MulTwo float64 `yaml:"mul_two"`
}

// Default returns the standard rules: win at 65536, spawn mostly 2s with
// occasional 4s and small multipliers.
func Default() Config {
	return Config{
		WinTile: engine.DefaultWinTile,
		Spawn: SpawnWeights{
			Two:    0.783,
			Four:   0.078,
			MulOne: 0.1118,
			MulTwo: 0.0272,
		},
	}
}

// Rules converts the config into an engine rule set, validating it.
func (c Config) Rules() (engine.Config, error) {
	var dist engine.Distribution
	for _, w := range []struct {
		value  int
		weight float64
	}{
		{2, c.Spawn.Two},
		{4, c.Spawn.Four},
		{-1, c.Spawn.MulOne},
		{-2, c.Spawn.MulTwo},
	} {
		if w.weight != 0 {
			dist = append(dist, engine.WeightedTile{Value: w.value, Weight: w.weight})
		}
	}

	rules := engine.Config{WinTile: c.WinTile, Spawn: dist}
	if err := rules.Validate(); err != nil {
		return engine.Config{}, fmt.Errorf("invalid game rules: %w", err)
	}
	return rules, nil
}
