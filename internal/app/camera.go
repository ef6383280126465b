package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Model.center
}

// frameModel points the camera at the current model and makes that view the default
func (app *App) frameModel() {
	distance := app.Model.size * 2.0
	if distance <= 0 {
		distance = 1
	}
	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.4
	app.Camera.defaultAngleY = 0.8
	app.resetCameraView()
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// rotate orbits the camera, clamping the pitch short of the poles
func (app *App) rotate(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	maxAngle := float32(math.Pi/2 - 0.1)
	if app.Camera.angleX > maxAngle {
		app.Camera.angleX = maxAngle
	}
	if app.Camera.angleX < -maxAngle {
		app.Camera.angleX = -maxAngle
	}
}

// zoom scales the camera distance by the wheel movement
func (app *App) zoom(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	if minDist := app.Model.size * 0.05; app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	// Calculate camera right and up vectors for panning
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	// Move camera target based on mouse delta
	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}
