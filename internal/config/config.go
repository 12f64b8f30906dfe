package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInitialCapacity = 0
	DefaultOrder           = "natural"
	DefaultBenchElements   = 1000000
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	InitialCapacity int         `yaml:"initial_capacity"`
	Order           string      `yaml:"order"`
	Seed            uint64      `yaml:"seed"`
	Bench           BenchConfig `yaml:"bench"`
}

type BenchConfig struct {
	Elements          int   `yaml:"elements"`
	InitialCapacities []int `yaml:"initial_capacities"`
}

func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: DefaultInitialCapacity,
		Order:           DefaultOrder,
		Bench: BenchConfig{
			Elements:          DefaultBenchElements,
			InitialCapacities: []int{0, 5},
		},
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
	if err := cfg.Validate(); err != nil {
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

// Validate rejects values no list or benchmark can run with.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial_capacity %d", ErrInvalidConfig, c.InitialCapacity)
	}
	if c.Order == "" {
		return fmt.Errorf("%w: empty order", ErrInvalidConfig)
	}
	if c.Bench.Elements <= 0 {
		return fmt.Errorf("%w: bench.elements %d", ErrInvalidConfig, c.Bench.Elements)
	}
	for _, capacity := range c.Bench.InitialCapacities {
		if capacity < 0 {
			return fmt.Errorf("%w: bench.initial_capacities contains %d", ErrInvalidConfig, capacity)
		}
	}
	return nil
}
