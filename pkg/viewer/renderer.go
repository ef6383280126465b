package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/mesh"
)

// ShipView is a fyne widget showing a shaded ship that can be rotated by
// dragging and zoomed by scrolling
type ShipView struct {
	widget.BaseWidget

	mu        sync.Mutex
	mesh      *mesh.Mesh
	materials []material.Material
	preview   *Preview
	image     *canvas.Image
	dragStart *fyne.Position
}

// NewShipView creates an empty view; call SetShip to show a mesh
func NewShipView() *ShipView {
	v := &ShipView{
		mesh:  mesh.New(),
		image: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.preview = NewPreview(v.mesh, 400, 400)
	v.ExtendBaseWidget(v)
	return v
}

// SetShip replaces the displayed mesh and reframes the camera
func (v *ShipView) SetShip(m *mesh.Mesh, materials []material.Material) {
	v.mu.Lock()
	v.mesh = m
	v.materials = materials
	v.preview.Camera.Frame(m.Bounds())
	v.mu.Unlock()

	v.Render()
}

// SetWireframe toggles the polygon outline overlay
func (v *ShipView) SetWireframe(on bool) {
	v.mu.Lock()
	v.preview.Wireframe = on
	v.mu.Unlock()

	v.Render()
}

// Render redraws the ship at the current widget size
func (v *ShipView) Render() {
	v.mu.Lock()
	size := v.Size()
	if size.Width >= 1 && size.Height >= 1 {
		v.preview.Width = int(size.Width)
		v.preview.Height = int(size.Height)
	}
	img := v.preview.Render(v.mesh, v.materials)
	v.mu.Unlock()

	fyne.Do(func() {
		v.image.Image = img
		v.image.Refresh()
	})
}

// CreateRenderer creates the renderer for the widget
func (v *ShipView) CreateRenderer() fyne.WidgetRenderer {
	return &shipViewRenderer{view: v}
}

// Dragged handles mouse drag events for rotation
func (v *ShipView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.mu.Lock()
		v.preview.Camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.mu.Unlock()
		v.Render()
	}
	v.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (v *ShipView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *ShipView) Scrolled(event *fyne.ScrollEvent) {
	v.mu.Lock()
	v.preview.Camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.mu.Unlock()
	v.Render()
}

// shipViewRenderer implements fyne.WidgetRenderer
type shipViewRenderer struct {
	view *ShipView
}

func (r *shipViewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	go r.view.Render()
}

func (r *shipViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *shipViewRenderer) Refresh() {
	r.view.image.Refresh()
}

func (r *shipViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *shipViewRenderer) Destroy() {}
