package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/garlicgarrison/hanoi/hanoi"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type PegsConfig struct {
	Source      string `yaml:"source"`
	Auxiliary   string `yaml:"auxiliary"`
	Destination string `yaml:"destination"`
}

type Config struct {
	Pegs     PegsConfig `yaml:"pegs"`
	Format   string     `yaml:"format"`
	LogLevel string     `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Pegs: PegsConfig{
			Source:      string(hanoi.DefaultPegs.Source),
			Auxiliary:   string(hanoi.DefaultPegs.Auxiliary),
			Destination: string(hanoi.DefaultPegs.Destination),
		},
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %s", ErrInvalidConfig, path, err)
	}

	if err := cfg.PegSet().Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

func (c Config) PegSet() hanoi.Pegs {
	return hanoi.Pegs{
		Source:      hanoi.Peg(c.Pegs.Source),
		Auxiliary:   hanoi.Peg(c.Pegs.Auxiliary),
		Destination: hanoi.Peg(c.Pegs.Destination),
	}
}
