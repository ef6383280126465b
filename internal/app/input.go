package app

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/internal/export"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/ship"
	"go.uber.org/zap"
)

// handleInput processes user input
func (app *App) handleInput() {
	// Generation shortcuts
	if rl.IsKeyPressed(rl.KeyN) {
		cfg := app.Generate.config.Generation
		cfg.Seed = ship.RandomSeed()
		app.startGeneration(cfg)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.startGeneration(app.Generate.config.Generation)
	}
	if rl.IsKeyPressed(rl.KeyE) {
		app.exportShip()
	}

	// View shortcuts
	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.View.showGrid = !app.View.showGrid
	}

	// Pan if Shift is held when the drag starts
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}

	delta := rl.GetMouseDelta()
	moving := delta.X != 0 || delta.Y != 0
	switch {
	case (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton):
		if moving {
			app.doPan(delta)
		}
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if moving {
			app.rotate(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoom(wheel)
	}
}

// exportShip writes the current ship to the configured output path
func (app *App) exportShip() {
	if app.Model.ship == nil {
		return
	}
	out := app.Generate.config.Output
	if err := export.Write(out.Path, out.Format, app.Model.ship); err != nil {
		logger.Error("export failed", zap.Error(err))
		app.notifyError(fmt.Sprintf("Export failed: %v", err))
		return
	}
	logger.Info("ship exported", zap.String("path", out.Path), zap.String("format", out.Format))
	app.notify(fmt.Sprintf("Exported %s", filepath.Base(out.Path)))
}
