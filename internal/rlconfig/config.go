// Package rlconfig loads the optional TOML configuration file accepted by
// cmd/rlc's --config flag, unmarshalling it with BurntSushi/toml.
package rlconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the set of settings a user may override via --config. Zero
// value is the all-defaults configuration.
type Config struct {
	OutputDir      string `toml:"output_dir"`
	NormalizeWidth bool   `toml:"normalize_width"`
}

// Default returns the configuration cmd/rlc uses when no --config flag is
// given.
func Default() Config {
	return Config{OutputDir: "output"}
}

// Load reads and unmarshals the TOML file at path, starting from Default()
// so a config file only needs to specify the fields it wants to override.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
