package config

import (
	_ "embed"
)

//go:embed defaults/oi2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration.
func DefaultYAML() []byte {
	return defaultYAML
}
