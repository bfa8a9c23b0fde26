package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the demo. All values have defaults, so the
// demo runs without a config file.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type WorldConfig struct {
	MaxEntities       int `toml:"max_entities"`
	MaxComponentTypes int `toml:"max_component_types"`
}

type SpawnConfig struct {
	Count       int     `toml:"count"` // 0 fills the entity pool
	RectSize    float64 `toml:"rect_size"`
	MinVelocity float64 `toml:"min_velocity"`
	MaxVelocity float64 `toml:"max_velocity"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Default returns the configuration the demo runs with when no file is
// given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 640, Height: 640, Title: "ECS Falling Rectangles"},
		World:  WorldConfig{MaxEntities: 512, MaxComponentTypes: 32},
		Spawn:  SpawnConfig{Count: 0, RectSize: 32, MinVelocity: 20, MaxVelocity: 100},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a toml config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.World.MaxEntities <= 0 {
		return fmt.Errorf("world.max_entities must be positive, got %d", c.World.MaxEntities)
	}
	if c.World.MaxComponentTypes <= 0 {
		return fmt.Errorf("world.max_component_types must be positive, got %d", c.World.MaxComponentTypes)
	}
	if c.Spawn.MinVelocity > c.Spawn.MaxVelocity {
		return fmt.Errorf("spawn.min_velocity %v exceeds spawn.max_velocity %v",
			c.Spawn.MinVelocity, c.Spawn.MaxVelocity)
	}
	return nil
}
