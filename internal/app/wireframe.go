package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawWireframe renders the polygon edges of the ship
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 110, 130, 200)

	for _, edge := range app.Model.edges {
		a := rl.Vector3{X: float32(edge[0].X), Y: float32(edge[0].Y), Z: float32(edge[0].Z)}
		b := rl.Vector3{X: float32(edge[1].X), Y: float32(edge[1].Y), Z: float32(edge[1].Z)}
		rl.DrawLine3D(a, b, wireframeColor)
	}
}

// drawGrid draws a ground grid sized to the ship
func (app *App) drawGrid() {
	spacing := float32(1)
	if app.Model.size > 0 {
		spacing = app.Model.size / 10
	}
	rl.DrawGrid(20, spacing)
}

// drawAxes draws the X, Y and Z axes through the origin
func (app *App) drawAxes() {
	length := app.Model.size * 0.6
	if length <= 0 {
		length = 1
	}
	origin := rl.Vector3{}
	rl.DrawLine3D(origin, rl.Vector3{X: length}, rl.NewColor(230, 80, 80, 255))
	rl.DrawLine3D(origin, rl.Vector3{Y: length}, rl.NewColor(80, 200, 100, 255))
	rl.DrawLine3D(origin, rl.Vector3{Z: length}, rl.NewColor(80, 140, 240, 255))
}
