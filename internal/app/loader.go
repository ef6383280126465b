package app

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/analysis"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/philipparndt/shipgen/pkg/watcher"
	"go.uber.org/zap"
)

// setupFileWatcher regenerates the ship whenever the config file changes
func (app *App) setupFileWatcher(ctx context.Context) error {
	if app.Generate.configPath == "" {
		return fmt.Errorf("no config file to watch")
	}

	// Create file watcher with 300ms debounce
	fw, err := watcher.NewFileWatcher(300*time.Millisecond, logger.Named("watcher"))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		logger.Info("config changed", zap.String("path", changedFile))
		app.Generate.needsReload.Store(true)
	}

	if err := fw.Watch([]string{app.Generate.configPath}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(ctx)
	app.Generate.fileWatcher = fw
	logger.Info("watching config for changes", zap.String("path", app.Generate.configPath))

	return nil
}

// reloadConfig re-reads the config file and regenerates the ship
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.Generate.configPath)
	if err != nil {
		logger.Warn("keeping previous config", zap.Error(err))
		app.notifyError(fmt.Sprintf("Config error: %v", err))
		return
	}
	app.Generate.config = cfg
	app.startGeneration(cfg.Generation)
}

// startGeneration generates a ship in the background. Mesh upload happens
// later on the main thread.
func (app *App) startGeneration(cfg ship.Config) {
	// If already generating, skip
	if app.Generate.isLoading {
		return
	}

	app.Generate.isLoading = true
	app.Generate.loadingStartTime = time.Now()
	app.Generate.progress.Store(0)

	go func() {
		result, err := ship.Generate(cfg,
			ship.WithLogger(logger.Named("ship")),
			ship.WithTextures(app.Generate.textures),
			ship.WithProgress(func(percent int) {
				app.Generate.progress.Store(int32(percent))
			}))

		app.Generate.mu.Lock()
		app.Generate.loaded = result
		app.Generate.err = err
		app.Generate.mu.Unlock()
	}()
}

// applyLoadedShip applies a generated ship (must be called on main thread)
func (app *App) applyLoadedShip() {
	app.Generate.mu.Lock()
	result, err := app.Generate.loaded, app.Generate.err
	app.Generate.loaded, app.Generate.err = nil, nil
	app.Generate.mu.Unlock()

	if err != nil {
		app.Generate.isLoading = false
		logger.Error("generation failed", zap.Error(err))
		app.notifyError(fmt.Sprintf("Generation failed: %v", err))
		return
	}
	if result == nil {
		return
	}

	triangles := result.Mesh.Triangulate()
	newMesh := shipToRaylibMesh(triangles, result.Materials)

	bbox := result.Mesh.Bounds()
	center := bbox.Center()

	// Switch to new model
	oldMesh := app.Model.mesh
	hadMesh := app.Model.ship != nil
	app.Model.mesh = newMesh
	app.Model.ship = result
	app.Model.summary = analysis.AnalyzeMesh(result.Mesh)
	app.Model.triangles = triangles
	app.Model.edges = faceEdges(result.Mesh)
	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(bbox.MaxDimension())

	if hadMesh {
		// Unload old mesh after switching
		rl.UnloadMesh(&oldMesh)
	} else {
		app.frameModel()
	}

	elapsed := time.Since(app.Generate.loadingStartTime)
	logger.Info("ship ready",
		zap.String("seed", result.Seed.Describe()),
		zap.Int("faces", app.Model.summary.Faces),
		zap.Duration("elapsed", elapsed))

	app.Generate.isLoading = false
}

// notify shows a short message in the HUD
func (app *App) notify(message string) {
	app.UI.message = message
	app.UI.messageTime = time.Now()
	app.UI.messageIsError = false
}

// notifyError shows a short error message in the HUD
func (app *App) notifyError(message string) {
	app.notify(message)
	app.UI.messageIsError = true
}
