package app

import (
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/pkg/analysis"
	"github.com/philipparndt/shipgen/pkg/geometry"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/philipparndt/shipgen/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ModelData holds the ship currently on screen
type ModelData struct {
	ship      *ship.Result
	summary   *analysis.MeshSummary
	triangles []geometry.Triangle
	edges     [][2]geometry.Vector3
	mesh      rl.Mesh
	material  rl.Material
	center    rl.Vector3 // Model center
	size      float32    // Model size (max dimension)
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showGrid      bool
	showHelp      bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	isPanning bool
}

// GenerateState holds configuration, file watching and background generation state
type GenerateState struct {
	configPath       string
	config           *config.Config
	textures         *material.Library
	fileWatcher      *watcher.FileWatcher // File watcher for auto-reload
	needsReload      atomic.Bool          // Config file changed
	isLoading        bool                 // A generation is in progress
	loadingStartTime time.Time            // When generation started
	progress         atomic.Int32         // Last reported percentage

	mu     sync.Mutex
	loaded *ship.Result // Ship generated in background
	err    error        // Error of the last background generation
}

// UIState holds UI-related state
type UIState struct {
	message        string
	messageTime    time.Time
	messageIsError bool
}
