// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"CAVERN_SEED" envDefault:"0"`

	Width       int `env:"CAVERN_WIDTH" envDefault:"90"`
	Height      int `env:"CAVERN_HEIGHT" envDefault:"45"`
	MaxRooms    int `env:"CAVERN_MAX_ROOMS" envDefault:"30"`
	MonstersMin int `env:"CAVERN_MONSTERS_MIN" envDefault:"20"`
	MonstersMax int `env:"CAVERN_MONSTERS_MAX" envDefault:"30"`
	SightRadius int `env:"CAVERN_SIGHT_RADIUS" envDefault:"8"`

	// Dump prints one generated level as text and exits instead of starting the UI.
	Dump bool `env:"CAVERN_DUMP" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// LogFile receives log output while the terminal UI owns the screen.
	LogFile   string `env:"CAVERN_LOG_FILE" envDefault:"cavern.log"`
	Telemetry bool   `env:"CAVERN_TELEMETRY" envDefault:"false"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the configuration from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SightRadius < 0 {
		return Config{}, fmt.Errorf("parse env: sight radius %d is negative", cfg.SightRadius)
	}
	return cfg, nil
}

// ResolveSeed returns the configured seed, or a time based one when it is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Strategy builds the generation strategy for this configuration.
func (c Config) Strategy(templates *gamedata.EnemyRegistry) world.GenerationStrategy {
	s := world.StrategyFor(world.Dim{Width: c.Width, Height: c.Height}, templates)
	s.MaxRooms = c.MaxRooms
	s.Monsters = world.MonsterRange{Min: c.MonstersMin, Max: c.MonstersMax}
	return s
}
