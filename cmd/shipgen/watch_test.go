package main

import (
	"path/filepath"
	"testing"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteShip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Generation.Seed = ship.IntSeed(7)
	cfg.Output.Path = filepath.Join(dir, "ship.stl")
	cfg.Output.Format = config.FormatSTL

	require.NoError(t, writeShip(cfg, material.NewLibrary("")))
	assert.FileExists(t, cfg.Output.Path)
}

func TestWriteShipMissingTextures(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Path = filepath.Join(t.TempDir(), "ship.obj")

	err := writeShip(cfg, material.NewLibrary(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, material.ErrAssetLoad)
	assert.NoFileExists(t, cfg.Output.Path)
}
