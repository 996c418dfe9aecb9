// Package main is the entry point for Torchlit.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/torchlit/internal/game"
	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// run owns every deferred cleanup so the log file is closed and spans are
// flushed before main exits on error.
func run(ctx context.Context) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer closer.Close()

	if cfg.Honeycomb.Enabled() {
		cfg.Honeycomb.Export()
		shutdown, err := telemetry.Setup(ctx)
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
	} else {
		telemetry.Disable()
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
