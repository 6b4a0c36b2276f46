package cliconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds default flag values shared by the generate and search
// subcommands.
type Config struct {
	CaveInfo string `yaml:"caveinfo,omitempty"`
	Format   string `yaml:"format,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`
	Out      string `yaml:"out,omitempty"`
}

// Load reads and parses a YAML config file. A missing Format defaults
// to "json", matching the generate subcommand's own flag default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML config: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	return &cfg, nil
}
