package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/material"
	"go.uber.org/zap"
)

// App is the interactive ship viewer
type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	Generate    GenerateState
	UI          UIState
}

// Options configures the viewer
type Options struct {
	// ConfigPath is watched for changes when set
	ConfigPath string
	// Config is the resolved configuration including command line overrides
	Config *config.Config
	// Watch regenerates whenever the config file changes
	Watch bool
}

// Run opens the viewer window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	app := &App{
		View: ViewSettings{
			showWireframe: cfg.Viewer.Wireframe,
			showFilled:    true,
			showGrid:      true,
		},
		Generate: GenerateState{
			configPath: opts.ConfigPath,
			config:     cfg,
			textures:   material.NewLibrary(cfg.Textures.Directory),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up file watching
	if opts.Watch && opts.ConfigPath != "" {
		if err := app.setupFileWatcher(ctx); err != nil {
			logger.Warn("auto-reload will not be available", zap.Error(err))
		} else {
			defer app.Generate.fileWatcher.Close()
		}
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Viewer.Width), int32(cfg.Viewer.Height), "shipgen")
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window")
	}
	rl.SetTargetFPS(int32(cfg.Viewer.FPSLimit))

	// Vertex colors are baked into the mesh, the default material uses them
	app.Model.material = rl.LoadMaterialDefault()

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: 1},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.frameModel()

	app.startGeneration(cfg.Generation)

	// Main loop
	for !rl.WindowShouldClose() {
		// Check if config needs reloading (file changed)
		if app.Generate.needsReload.Load() && !app.Generate.isLoading {
			app.Generate.needsReload.Store(false)
			app.reloadConfig()
		}

		// Apply generated ship if ready (must be on main thread)
		app.applyLoadedShip()

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)

		if app.View.showGrid {
			app.drawGrid()
			app.drawAxes()
		}

		if app.Model.ship != nil {
			if app.View.showFilled {
				rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
			}
			if app.View.showWireframe {
				app.drawWireframe()
			}
		}

		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	// Cleanup
	if app.Model.ship != nil {
		rl.UnloadMesh(&app.Model.mesh)
	}
	rl.CloseWindow()
	return nil
}
