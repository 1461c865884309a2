package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunables consumed by the stochastic behavior rules.
// Decay maxima bound the uniform per-frame draw subtracted from a
// particle's life budget; the chances are per-roll probabilities.
type Params struct {
	SmokeDecayMax float64 `yaml:"smoke_decay_max"`
	FireDecayMax  float64 `yaml:"fire_decay_max"`
	FlameDecayMax float64 `yaml:"flame_decay_max"`

	OilIgniteChance  float64 `yaml:"oil_ignite_chance"`
	WoodIgniteChance float64 `yaml:"wood_ignite_chance"`
	FireSmokeChance  float64 `yaml:"fire_smoke_chance"`
}

func (p Params) decayMax(m Material) float64 {
	switch m {
	case Smoke:
		return p.SmokeDecayMax
	case Flame:
		return p.FlameDecayMax
	}
	return 0
}

// Stroke pre-places material when a scenario is applied, through the same
// rasterizer the input layer uses.
type Stroke struct {
	Material string `yaml:"material"`
	From     [2]int `yaml:"from"`
	To       [2]int `yaml:"to"`
	Radius   int    `yaml:"radius"`
}

// Scenario describes the initial contents of the grid.
type Scenario struct {
	Strokes []Stroke `yaml:"strokes"`
}

// Config controls the falling sand world.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params   Params   `yaml:"params"`
	Scenario Scenario `yaml:"scenario"`
}

// DefaultParams returns the behavior constants of the reference rules.
func DefaultParams() Params {
	return Params{
		SmokeDecayMax:    0.1,
		FireDecayMax:     0.15,
		FlameDecayMax:    0.25,
		OilIgniteChance:  0.75,
		WoodIgniteChance: 0.5,
		FireSmokeChance:  0.2,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 192,
		Seed:   1337,
		Params: DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floats := map[string]*float64{
		"smoke_decay_max":    &c.Params.SmokeDecayMax,
		"fire_decay_max":     &c.Params.FireDecayMax,
		"flame_decay_max":    &c.Params.FlameDecayMax,
		"oil_ignite_chance":  &c.Params.OilIgniteChance,
		"wood_ignite_chance": &c.Params.WoodIgniteChance,
		"fire_smoke_chance":  &c.Params.FireSmokeChance,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	return c
}

// LoadFile reads a YAML config, starting from the defaults so omitted
// fields keep their standard values.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return c, fmt.Errorf("config %s: grid dimensions must be positive", path)
	}
	return c, nil
}

// WriteFile saves the configuration as YAML.
func (c Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
