package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var Presets = map[string]*Config{
	// The stock scene: a hundred bodies raining into the box.
	"rain": preset(func(c *Config) {}),

	"dense": preset(func(c *Config) {
		c.Bodies = 250
	}),

	"sparse": preset(func(c *Config) {
		c.Bodies = 20
		c.Duration = 30.0
	}),

	// Pure gravity and walls, no drag and no contacts.
	"freefall": preset(func(c *Config) {
		c.Bodies = 50
		c.World.Friction = 0
		c.World.Collisions = false
	}),

	// Attraction only; bodies clump instead of falling.
	"drift": preset(func(c *Config) {
		c.Bodies = 60
		c.World.Gravity = 0
		c.World.Friction = 0.1
	}),
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
