package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballsim/internal/phys"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 10.0
	DefaultBodies   = 100
)

type Config struct {
	Dt       float64     `yaml:"dt"`
	Duration float64     `yaml:"duration"`
	Seed     int64       `yaml:"seed"`
	Bodies   int         `yaml:"bodies"`
	World    WorldConfig `yaml:"world"`
}

type WorldConfig struct {
	UniverseWidth  float64 `yaml:"universe_width"`
	UniverseHeight float64 `yaml:"universe_height"`
	WindowWidth    float64 `yaml:"window_width"`
	WindowHeight   float64 `yaml:"window_height"`
	Scale          float64 `yaml:"scale"`
	Gravity        float64 `yaml:"gravity"`
	Friction       float64 `yaml:"friction"`
	RestSpeed      float64 `yaml:"rest_speed"`
	RestMargin     float64 `yaml:"rest_margin"`
	Collisions     bool    `yaml:"collisions"`
}

func DefaultConfig() *Config {
	p := phys.DefaultParams()
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Bodies:   DefaultBodies,
		World: WorldConfig{
			UniverseWidth:  p.UniverseWidth,
			UniverseHeight: p.UniverseHeight,
			WindowWidth:    p.WindowWidth,
			WindowHeight:   p.WindowHeight,
			Scale:          p.Scale,
			Gravity:        p.Gravity,
			Friction:       p.Friction,
			RestSpeed:      p.RestSpeed,
			RestMargin:     p.RestMargin,
			Collisions:     p.Collisions,
		},
	}
}

// Load reads a yaml config over the defaults, so omitted fields keep their
// default values.
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

// Params converts the world section into the integrator's parameter set.
func (c *Config) Params() phys.Params {
	return phys.Params{
		UniverseWidth:  c.World.UniverseWidth,
		UniverseHeight: c.World.UniverseHeight,
		WindowWidth:    c.World.WindowWidth,
		WindowHeight:   c.World.WindowHeight,
		Scale:          c.World.Scale,
		Gravity:        c.World.Gravity,
		Friction:       c.World.Friction,
		RestSpeed:      c.World.RestSpeed,
		RestMargin:     c.World.RestMargin,
		Collisions:     c.World.Collisions,
	}
}
