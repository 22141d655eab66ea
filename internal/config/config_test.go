package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/oi2048/internal/engine"
)

func TestDefaultRules(t *testing.T) {
	rules, err := Default().Rules()
	if err != nil {
		t.Fatalf("Default().Rules() failed: %v", err)
	}
	if rules.WinTile != engine.DefaultWinTile {
		t.Errorf("WinTile = %d, want %d", rules.WinTile, engine.DefaultWinTile)
	}
	if len(rules.Spawn) != 4 {
		t.Errorf("spawn pool has %d entries, want 4", len(rules.Spawn))
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestRulesSkipZeroWeights(t *testing.T) {
	cfg := Default()
	cfg.Spawn.MulOne = 0
	cfg.Spawn.MulTwo = 0

	rules, err := cfg.Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}
	for _, w := range rules.Spawn {
		if w.Value < 0 {
			t.Errorf("zero-weight multiplier %d still in spawn pool", w.Value)
		}
	}
}

func TestRulesRejectBadConfig(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"win tile not a power of two", func(c *Config) { c.WinTile = 1000 }},
		{"multiplier win tile", func(c *Config) { c.WinTile = -2 }},
		{"all weights zero", func(c *Config) { c.Spawn = SpawnWeights{} }},
		{"negative weight", func(c *Config) { c.Spawn.Two = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			if _, err := cfg.Rules(); err == nil {
				t.Error("Rules() should fail")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("win_tile: 2048\nspawn:\n  two: 0.9\n  four: 0.1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WinTile != 2048 {
		t.Errorf("WinTile = %d, want 2048", cfg.WinTile)
	}
	if cfg.Spawn.MulOne != 0 {
		t.Errorf("MulOne = %v, want 0", cfg.Spawn.MulOne)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}
