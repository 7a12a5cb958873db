// Package config loads and saves run configurations.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/crystalsim/internal/scenario"
)

const (
	DefaultRows     = 100
	DefaultCols     = 64
	DefaultDuration = 30.0
	DefaultInterval = 0.5
	DefaultBed      = 0.1
	DefaultSeedRow  = 0.5
)

type Config struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	RuleSet     string  `yaml:"rule_set"`
	Duration    float64 `yaml:"duration"`
	Interval    float64 `yaml:"interval"`
	Seed        int64   `yaml:"seed"`
	BedFraction float64 `yaml:"bed_fraction"`
	SeedStart   float64 `yaml:"seed_start"`
	OpenEdges   bool    `yaml:"open_edges"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		RuleSet:     "isotropic",
		Duration:    DefaultDuration,
		Interval:    DefaultInterval,
		BedFraction: DefaultBed,
		SeedStart:   DefaultSeedRow,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scenario converts the configuration into a runnable scenario config.
func (c *Config) Scenario() scenario.Config {
	return scenario.Config{
		Rows:        c.Rows,
		Cols:        c.Cols,
		RuleSet:     c.RuleSet,
		Duration:    c.Duration,
		Interval:    c.Interval,
		Seed:        c.Seed,
		BedFraction: c.BedFraction,
		SeedStart:   c.SeedStart,
		OpenEdges:   c.OpenEdges,
	}
}
