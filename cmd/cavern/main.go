// Package main is the entry point for Cavern.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavern/internal/config"
	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/game"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
	"github.com/samdwyer/cavern/internal/ui"
	"github.com/samdwyer/cavern/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	templates, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		log.Fatalf("Failed to load monster templates: %v", err)
	}

	if cfg.Dump {
		logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if err := dump(ctx, cfg, templates); err != nil {
			log.Fatalf("Failed to generate level: %v", err)
		}
		return
	}

	// The terminal UI owns stdout and stderr, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger.Init(cfg.LogLevel, cfg.LogFormat, logFile)

	screen, err := ui.NewTerminalBackend()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Close()

	g, err := game.New(ctx, cfg, templates, screen)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// dump prints one fully revealed level to stdout.
func dump(ctx context.Context, cfg config.Config, templates *gamedata.EnemyRegistry) error {
	seed := cfg.ResolveSeed()
	level, layout, err := world.Generate(ctx, rand.New(rand.NewSource(seed)), cfg.Strategy(templates))
	if err != nil {
		return err
	}

	backend, err := ui.NewTextBackend(level.Width(), level.Height(), os.Stdout)
	if err != nil {
		return err
	}
	renderer := ui.NewRenderer(backend)
	renderer.RevealAll = true
	renderer.Render(level, entity.NewPlayer(layout.PlayerStart, cfg.SightRadius), entity.MonstersFromLayout(layout), "")

	fmt.Printf("seed=%d rooms=%d monsters=%d\n", seed, len(layout.Rooms), len(layout.Spawns))
	return nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "cavern" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
