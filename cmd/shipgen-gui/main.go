package main

import (
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/export"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/analysis"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/ship"
	"github.com/philipparndt/shipgen/pkg/viewer"
	"go.uber.org/zap"
)

type App struct {
	window   fyne.Window
	cfg      *config.Config
	result   *ship.Result
	view     *viewer.ShipView
	progress *widget.ProgressBar
	info     *widget.Label
	generate *widget.Button
	form     *Form
}

// Form holds the input widgets of the generation panel
type Form struct {
	seed       *widget.Entry
	intSeed    *widget.Check
	axisX      *widget.Check
	axisY      *widget.Check
	axisZ      *widget.Check
	hullMin    *widget.Entry
	hullMax    *widget.Entry
	asymmetry  *widget.Check
	asymMin    *widget.Entry
	asymMax    *widget.Entry
	faceDetail *widget.Check
	horizontal *widget.Check
	vertical   *widget.Check
	bevel      *widget.Check
	materials  *widget.Check
	textures   *widget.Entry
	output     *widget.Entry
	format     *widget.Select
}

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := app.New()
	w := a.NewWindow("shipgen")

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}
	appInstance.setupMainUI()
	appInstance.loadForm(cfg)

	w.Resize(fyne.NewSize(1200, 800))
	w.Show()
	appInstance.startGeneration()
	a.Run()
}

func (a *App) setupMainUI() {
	f := &Form{
		seed:       widget.NewEntry(),
		intSeed:    widget.NewCheck("Integer seed", nil),
		axisX:      widget.NewCheck("X", nil),
		axisY:      widget.NewCheck("Y", nil),
		axisZ:      widget.NewCheck("Z", nil),
		hullMin:    widget.NewEntry(),
		hullMax:    widget.NewEntry(),
		asymmetry:  widget.NewCheck("Asymmetric protrusions", nil),
		asymMin:    widget.NewEntry(),
		asymMax:    widget.NewEntry(),
		faceDetail: widget.NewCheck("Face detail", nil),
		horizontal: widget.NewCheck("Horizontal symmetry", nil),
		vertical:   widget.NewCheck("Vertical symmetry", nil),
		bevel:      widget.NewCheck("Bevel", nil),
		materials:  widget.NewCheck("Assign materials", nil),
		textures:   widget.NewEntry(),
		output:     widget.NewEntry(),
		format:     widget.NewSelect(config.Formats, nil),
	}
	f.seed.SetPlaceHolder("random")
	f.textures.SetPlaceHolder("no textures")
	a.form = f

	a.view = viewer.NewShipView()
	a.progress = widget.NewProgressBar()
	a.progress.Max = 100
	a.info = widget.NewLabel("")

	a.generate = widget.NewButton("Generate", a.startGeneration)
	a.generate.Importance = widget.HighImportance

	randomButton := widget.NewButton("Random Seed", func() {
		f.seed.SetText("")
		a.startGeneration()
	})
	resetButton := widget.NewButton("Reset to Defaults", func() {
		a.loadForm(config.Default())
	})
	exportButton := widget.NewButton("Export", a.exportShip)

	wireframeCheck := widget.NewCheck("Show Wireframe", a.view.SetWireframe)
	wireframeCheck.SetChecked(a.cfg.Viewer.Wireframe)

	generation := widget.NewForm(
		widget.NewFormItem("Seed", f.seed),
		widget.NewFormItem("", f.intSeed),
		widget.NewFormItem("Hull axes", container.NewHBox(f.axisX, f.axisY, f.axisZ)),
		widget.NewFormItem("Hull segments", container.NewGridWithColumns(2, f.hullMin, f.hullMax)),
		widget.NewFormItem("", f.asymmetry),
		widget.NewFormItem("Protrusion segments", container.NewGridWithColumns(2, f.asymMin, f.asymMax)),
		widget.NewFormItem("", f.faceDetail),
		widget.NewFormItem("", f.horizontal),
		widget.NewFormItem("", f.vertical),
		widget.NewFormItem("", f.bevel),
		widget.NewFormItem("", f.materials),
		widget.NewFormItem("Textures", f.textures),
	)
	output := widget.NewForm(
		widget.NewFormItem("File", f.output),
		widget.NewFormItem("Format", f.format),
	)

	instructions := widget.NewLabel("Drag to rotate the view.\nScroll to zoom in/out.")
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Generation:"),
		widget.NewSeparator(),
		generation,
		container.NewGridWithColumns(2, a.generate, randomButton),
		resetButton,
		a.progress,
		widget.NewSeparator(),
		widget.NewLabel("Ship Information:"),
		a.info,
		widget.NewSeparator(),
		widget.NewLabel("Output:"),
		output,
		exportButton,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		wireframeCheck,
		instructions,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(340, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, scroll, a.view))
}

// loadForm shows cfg in the form widgets
func (a *App) loadForm(cfg *config.Config) {
	f := a.form
	gen := cfg.Generation

	f.seed.SetText(gen.Seed.String())
	f.intSeed.SetChecked(gen.Seed.IsInt())
	f.axisX.SetChecked(gen.Axes.X)
	f.axisY.SetChecked(gen.Axes.Y)
	f.axisZ.SetChecked(gen.Axes.Z)
	f.hullMin.SetText(strconv.Itoa(gen.HullSegments.Min))
	f.hullMax.SetText(strconv.Itoa(gen.HullSegments.Max))
	f.asymmetry.SetChecked(gen.Asymmetry.Enabled)
	f.asymMin.SetText(strconv.Itoa(gen.Asymmetry.Segments.Min))
	f.asymMax.SetText(strconv.Itoa(gen.Asymmetry.Segments.Max))
	f.faceDetail.SetChecked(gen.FaceDetail)
	f.horizontal.SetChecked(gen.Symmetry.Horizontal)
	f.vertical.SetChecked(gen.Symmetry.Vertical)
	f.bevel.SetChecked(gen.Bevel)
	f.materials.SetChecked(gen.AssignMaterials)
	f.textures.SetText(cfg.Textures.Directory)
	f.output.SetText(cfg.Output.Path)
	f.format.SetSelected(cfg.Output.Format)
}

// readForm copies the form widgets into a.cfg. Bounds that are not
// integers keep their default.
func (a *App) readForm() {
	f := a.form
	gen := &a.cfg.Generation

	switch {
	case f.seed.Text == "":
		gen.Seed = ship.RandomSeed()
	case f.intSeed.Checked:
		n, err := strconv.ParseInt(f.seed.Text, 10, 64)
		if err != nil {
			gen.Seed = ship.StringSeed(f.seed.Text)
		} else {
			gen.Seed = ship.IntSeed(n)
		}
	default:
		gen.Seed = ship.StringSeed(f.seed.Text)
	}

	gen.Axes = ship.Axes{X: f.axisX.Checked, Y: f.axisY.Checked, Z: f.axisZ.Checked}
	gen.HullSegments = ship.Range{
		Min: ship.ParseCount(f.hullMin.Text, ship.DefaultHullSegments.Min),
		Max: ship.ParseCount(f.hullMax.Text, ship.DefaultHullSegments.Max),
	}
	gen.Asymmetry = ship.Asymmetry{
		Enabled: f.asymmetry.Checked,
		Segments: ship.Range{
			Min: ship.ParseCount(f.asymMin.Text, ship.DefaultAsymmetrySegments.Min),
			Max: ship.ParseCount(f.asymMax.Text, ship.DefaultAsymmetrySegments.Max),
		},
	}
	gen.FaceDetail = f.faceDetail.Checked
	gen.Symmetry = ship.Symmetry{Horizontal: f.horizontal.Checked, Vertical: f.vertical.Checked}
	gen.Bevel = f.bevel.Checked
	gen.AssignMaterials = f.materials.Checked

	a.cfg.Textures.Directory = f.textures.Text
	a.cfg.Output.Path = f.output.Text
	a.cfg.Output.Format = f.format.Selected
}

func (a *App) startGeneration() {
	a.readForm()
	cfg := a.cfg.Generation
	textures := material.NewLibrary(a.cfg.Textures.Directory)

	a.generate.Disable()
	a.progress.SetValue(0)

	go func() {
		result, err := ship.Generate(cfg,
			ship.WithLogger(logger.Named("ship")),
			ship.WithTextures(textures),
			ship.WithProgress(func(percent int) {
				fyne.Do(func() { a.progress.SetValue(float64(percent)) })
			}))

		if err == nil {
			a.view.SetShip(result.Mesh, result.Materials)
		}

		fyne.Do(func() {
			a.generate.Enable()
			if err != nil {
				logger.Error("generation failed", zap.Error(err))
				dialog.ShowError(fmt.Errorf("failed to generate ship: %w", err), a.window)
				return
			}
			a.result = result
			a.updateInfo()
		})
	}()
}

func (a *App) updateInfo() {
	r := a.result
	summary := analysis.AnalyzeMesh(r.Mesh)

	text := fmt.Sprintf(
		"Seed: %s\nFaces: %d\nVertices: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f\n\nGenerated in %s",
		r.Seed.Describe(),
		summary.Faces,
		summary.Vertices,
		summary.SurfaceArea,
		summary.Dimensions.X,
		summary.Dimensions.Y,
		summary.Dimensions.Z,
		r.Stats.Elapsed,
	)
	if r.Bevel != nil {
		text += fmt.Sprintf("\nBevel: %.1f%%", r.Bevel.WidthPercent)
	}
	a.info.SetText(text)
}

func (a *App) exportShip() {
	if a.result == nil {
		return
	}
	a.readForm()
	out := a.cfg.Output
	if err := export.Write(out.Path, out.Format, a.result); err != nil {
		dialog.ShowError(fmt.Errorf("failed to export ship: %w", err), a.window)
		return
	}
	logger.Info("ship exported", zap.String("path", out.Path), zap.String("format", out.Format))
	dialog.ShowInformation("Export", fmt.Sprintf("Wrote %s", out.Path), a.window)
}
