package config

import (
	"slices"
	"sort"
)

var Presets = map[string]*Config{
	"small": {
		Order: "natural",
		Bench: BenchConfig{Elements: 10000, InitialCapacities: []int{0, 5}},
	},
	"default": {
		Order: "natural",
		Bench: BenchConfig{Elements: DefaultBenchElements, InitialCapacities: []int{0, 5}},
	},
	"large": {
		Order: "natural",
		Bench: BenchConfig{Elements: 10000000, InitialCapacities: []int{0, 5, 1000}},
	},
	"presized": {
		InitialCapacity: 1024, Order: "asc",
		Bench: BenchConfig{Elements: DefaultBenchElements, InitialCapacities: []int{0, 1024, DefaultBenchElements}},
	},
}

// GetPreset returns a copy of the named preset, or nil when it is unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Bench.InitialCapacities = slices.Clone(cfg.Bench.InitialCapacities)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
