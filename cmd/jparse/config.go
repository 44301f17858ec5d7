package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings for a run of jparse.
type Config struct {
	Tokens  bool   `toml:"tokens"`  // print the token stream
	Print   bool   `toml:"print"`   // print the parsed value as compact JSON
	Path    string `toml:"path"`    // select a value by path before printing
	JWCC    bool   `toml:"jwcc"`    // accept comments and trailing commas
	Timings bool   `toml:"timings"` // log the time spent in each stage
	Verbose bool   `toml:"verbose"` // enable debug logging
	Color   string `toml:"color"`   // auto, always, or never
}

// loadConfig reads a configuration from the TOML file at path.
func loadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if un := md.Undecoded(); len(un) != 0 {
		return nil, fmt.Errorf("unknown config key %q", un[0].String())
	}
	cfg.applyDefaults()
	return &cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color setting %q (want auto, always, or never)", c.Color)
}
