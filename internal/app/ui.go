package app

import (
	"fmt"
	"slices"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/shipgen/pkg/material"
)

const (
	fontSize    = 18
	lineSpacing = 22
	messageTTL  = 4 * time.Second
)

var (
	textColor   = rl.NewColor(220, 225, 235, 255)
	dimColor    = rl.NewColor(140, 150, 165, 255)
	accentColor = rl.NewColor(255, 190, 80, 255)
	errorColor  = rl.NewColor(255, 110, 110, 255)
	panelColor  = rl.NewColor(0, 0, 0, 150)
)

var helpLines = []string{
	"Left drag: rotate",
	"Shift+drag / middle drag: pan",
	"Wheel: zoom",
	"N: new random seed",
	"G: regenerate",
	"E: export",
	"W: wireframe",
	"F: filled",
	"P: grid",
	"R: reset view",
	"H: hide help",
}

// drawUI draws the HUD on top of the 3D view
func (app *App) drawUI() {
	x, y := int32(12), int32(12)

	if summary := app.Model.summary; summary != nil {
		lines := []string{
			fmt.Sprintf("Seed: %s", app.Model.ship.Seed.Describe()),
			fmt.Sprintf("Faces: %d  Vertices: %d  Triangles: %d", summary.Faces, summary.Vertices, summary.Triangles),
			fmt.Sprintf("Size: %.2f x %.2f x %.2f", summary.Dimensions.X, summary.Dimensions.Y, summary.Dimensions.Z),
			fmt.Sprintf("Generated in %s", app.Model.ship.Stats.Elapsed.Round(time.Millisecond)),
		}
		if bevel := app.Model.ship.Bevel; bevel != nil {
			lines = append(lines, fmt.Sprintf("Bevel: %.1f%% x %d", bevel.WidthPercent, bevel.Segments))
		}

		rl.DrawRectangle(x-6, y-6, 380, int32(len(lines)*lineSpacing+len(summary.MaterialCounts)*lineSpacing+12), panelColor)
		for _, line := range lines {
			rl.DrawText(line, x, y, fontSize, textColor)
			y += lineSpacing
		}
		app.drawMaterialHistogram(x, y)
	}

	if app.Generate.isLoading {
		app.drawProgress()
	}

	if app.UI.message != "" && time.Since(app.UI.messageTime) < messageTTL {
		col := accentColor
		if app.UI.messageIsError {
			col = errorColor
		}
		rl.DrawText(app.UI.message, x, int32(rl.GetScreenHeight())-lineSpacing-8, fontSize, col)
	}

	if app.View.showHelp {
		hx := int32(rl.GetScreenWidth()) - 300
		hy := int32(12)
		rl.DrawRectangle(hx-6, hy-6, 294, int32(len(helpLines)*lineSpacing+12), panelColor)
		for _, line := range helpLines {
			rl.DrawText(line, hx, hy, fontSize, dimColor)
			hy += lineSpacing
		}
	} else {
		rl.DrawText("H: help", int32(rl.GetScreenWidth())-90, 12, fontSize, dimColor)
	}
}

// drawMaterialHistogram draws one bar per material slot
func (app *App) drawMaterialHistogram(x, y int32) {
	counts := app.Model.summary.MaterialCounts
	if len(counts) == 0 {
		return
	}

	tags := make([]material.Tag, 0, len(counts))
	maxCount := 0
	for tag, n := range counts {
		tags = append(tags, tag)
		maxCount = max(maxCount, n)
	}
	slices.Sort(tags)

	for _, tag := range tags {
		n := counts[tag]
		c := material.ColorOf(app.Model.ship.Materials, tag)
		width := int32(150 * n / maxCount)
		rl.DrawRectangle(x, y+3, max(width, 2), fontSize-4, rl.NewColor(c.R, c.G, c.B, 255))
		rl.DrawText(fmt.Sprintf("%s %d", tag, n), x+160, y, fontSize, textColor)
		y += lineSpacing
	}
}

// drawProgress draws the generation progress in the bottom right corner
func (app *App) drawProgress() {
	percent := app.Generate.progress.Load()
	w, h := int32(220), int32(14)
	x := int32(rl.GetScreenWidth()) - w - 16
	y := int32(rl.GetScreenHeight()) - h - 16

	elapsed := time.Since(app.Generate.loadingStartTime).Seconds()
	spinner := `|/-\`[int(elapsed*8)%4]
	rl.DrawText(fmt.Sprintf("%c Generating %d%%", spinner, percent), x, y-lineSpacing, fontSize, accentColor)
	rl.DrawRectangle(x, y, w, h, panelColor)
	rl.DrawRectangle(x, y, w*percent/100, h, accentColor)
}
