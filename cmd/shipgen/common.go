package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/ship"
)

// loadConfig loads the config file, applies flag overrides and sets up logging
func loadConfig(path string, overrides *config.Overrides) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := overrides.Apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// generateShip runs one generation with the configured textures
func generateShip(cfg *config.Config, textures *material.Library, opts ...ship.Option) (*ship.Result, error) {
	opts = append([]ship.Option{
		ship.WithLogger(logger.Named("ship")),
		ship.WithTextures(textures),
	}, opts...)
	return ship.Generate(cfg.Generation, opts...)
}
