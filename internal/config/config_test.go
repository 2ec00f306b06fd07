package config

import (
	"errors"
	"testing"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/world"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Width != 90 || cfg.Height != 45 {
		t.Errorf("dimensions = %dx%d, want 90x45", cfg.Width, cfg.Height)
	}
	if cfg.MaxRooms != 30 {
		t.Errorf("MaxRooms = %d, want 30", cfg.MaxRooms)
	}
	if cfg.SightRadius != 8 {
		t.Errorf("SightRadius = %d, want 8", cfg.SightRadius)
	}
	if cfg.Seed != 0 || cfg.Dump || cfg.Telemetry {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.LogFile != "cavern.log" {
		t.Errorf("log settings = %q/%q/%q", cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"CAVERN_SEED":         "42",
		"CAVERN_WIDTH":        "60",
		"CAVERN_HEIGHT":       "30",
		"CAVERN_MAX_ROOMS":    "12",
		"CAVERN_MONSTERS_MIN": "1",
		"CAVERN_MONSTERS_MAX": "3",
		"CAVERN_DUMP":         "true",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.ResolveSeed() != 42 {
		t.Errorf("ResolveSeed() = %d, want 42", cfg.ResolveSeed())
	}
	if !cfg.Dump {
		t.Error("Dump should be true")
	}

	s := cfg.Strategy(gamedata.MustLoadEnemyRegistry())
	if s.Dim != (world.Dim{Width: 60, Height: 30}) {
		t.Errorf("strategy dim = %v", s.Dim)
	}
	if s.MaxRooms != 12 || s.Monsters != (world.MonsterRange{Min: 1, Max: 3}) {
		t.Errorf("strategy = %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("strategy should be valid: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"CAVERN_WIDTH": "wide"}); err == nil {
		t.Error("non-numeric width should fail")
	}
	if _, err := LoadFrom(map[string]string{"CAVERN_SIGHT_RADIUS": "-1"}); err == nil {
		t.Error("negative sight radius should fail")
	}
}

func TestStrategyValidationSurfacesConfigErrors(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"CAVERN_WIDTH": "5"})
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	err = cfg.Strategy(gamedata.MustLoadEnemyRegistry()).Validate()
	if !errors.Is(err, world.ErrInvalidStrategy) {
		t.Errorf("Validate() = %v, want ErrInvalidStrategy", err)
	}
}
