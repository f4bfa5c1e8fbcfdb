// Package app is the raylib host: it owns the window and the frame loop,
// turns raylib input into widget events and draws the scene together with
// the widget primitives.
package app

import (
	"context"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/internal/scene"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/viewer"
	"github.com/philipparndt/gizmo/pkg/widget"
	"github.com/philipparndt/gizmo/pkg/widgetmanager"
)

const (
	defaultAngleX = 0.3
	defaultAngleY = 0.3
)

// SceneBounds returns the box the camera frames: the scene bounds, or a
// default box sized for the mode when there is no scene
func SceneBounds(model *stl.Model, mode Mode) geometry.BoundingBox {
	if model != nil {
		if b := model.BoundingBox(); b.IsValid() {
			return b
		}
	}
	half := 1.0
	if mode == ModePlane {
		half = 5
	}
	return geometry.NewBoundingBoxFromPoints(
		geometry.NewVector3(-half, -half, -half),
		geometry.NewVector3(half, half, half))
}

// newApp builds the session state without touching the window
func newApp(opts Options, model *stl.Model) (*App, error) {
	bbox := SceneBounds(model, opts.Mode)
	camera := viewer.NewCamera(bbox)
	camera.FOV = mgl64.DegToRad(opts.Config.Camera.FOVDegrees)
	camera.SetViewport(float64(opts.Config.Window.Width), float64(opts.Config.Window.Height))
	camera.SetOrbit(defaultAngleX, defaultAngleY)

	app := &App{
		cfg:    opts.Config,
		window: newWindow(camera),
		logger: slog.Default().With("component", "app", "mode", string(opts.Mode)),
		Camera: CameraState{
			camera:        camera,
			defaultDist:   camera.Distance,
			defaultAngleX: defaultAngleX,
			defaultAngleY: defaultAngleY,
			defaultTarget: camera.Target,
		},
		Model: ModelData{model: model, clipDirty: true},
		View:  ViewSettings{showFilled: true, showWireframe: true},
	}

	manager := widgetmanager.New(app.window)
	app.Widgets = WidgetState{mode: opts.Mode, manager: manager}

	w, err := SetupWidget(manager, opts.Mode, bbox, opts.Config.Widget)
	if err != nil {
		return nil, err
	}
	switch w := w.(type) {
	case *widget.Angle:
		app.Widgets.angle = w
	case *widget.ImplicitPlane:
		app.Widgets.plane = w
		w.OnInteraction(func(widget.Interaction) { app.Model.clipDirty = true })
	}
	return app, nil
}

func (app *App) widgets() []widget.Widget {
	return app.Widgets.manager.Widgets()
}

// applyConfig applies appearance settings to the widgets
func (app *App) applyConfig(cfg config.Config) error {
	if err := config.Apply(cfg.Widget, app.widgets()...); err != nil {
		return err
	}
	app.cfg.Widget = cfg.Widget
	app.Widgets.manager.Render()
	return nil
}

// applyPending applies a reloaded scene or configuration. Runs on the
// frame loop.
func (app *App) applyPending() {
	if r := app.FileWatch.reloader; r != nil {
		if model := r.Take(); model != nil {
			app.applyScene(model)
		}
	}
	select {
	case cfg := <-app.FileWatch.configUpdates:
		if err := app.applyConfig(cfg); err != nil {
			app.logger.Warn("config not applied", "err", err)
		}
	default:
	}
}

// applyScene swaps in a reloaded scene and keeps the camera where it is
func (app *App) applyScene(model *stl.Model) {
	app.Model.model = model
	app.Model.clipDirty = true
	if w := app.Widgets.plane; w != nil {
		Refit(w, model.BoundingBox())
	}
	app.Widgets.manager.Render()
	app.logger.Info("scene applied", "triangles", model.TriangleCount())
}

// Run opens the window and runs the frame loop until it is closed
func Run(ctx context.Context, opts Options) error {
	var model *stl.Model
	var files []string
	if opts.ScenePath != "" {
		var err error
		model, files, err = scene.Load(ctx, opts.ScenePath)
		if err != nil {
			return fmt.Errorf("error loading scene: %w", err)
		}
	}

	app, err := newApp(opts, model)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.ScenePath != "" {
		reloader, err := scene.Watch(ctx, opts.ScenePath, files)
		if err != nil {
			app.logger.Warn("auto-reload not available", "err", err)
		} else {
			app.FileWatch.reloader = reloader
			defer reloader.Close()
		}
	}
	if opts.ConfigPath != "" {
		app.FileWatch.configUpdates = make(chan config.Config, 1)
		stop, err := config.Watch(ctx, opts.ConfigPath, func(cfg config.Config) {
			select {
			case app.FileWatch.configUpdates <- cfg:
			default:
			}
		})
		if err != nil {
			app.logger.Warn("config reload not available", "err", err)
		} else {
			defer stop()
		}
	}

	win := opts.Config.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(win.FPS))
	// Escape belongs to the widgets
	rl.SetExitKey(rl.KeyNull)

	app.Model.material = rl.LoadMaterialDefault()
	app.Interaction.lastMousePos = rl.GetMousePosition()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		app.frame()
	}

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
	}
	return nil
}

// frame runs one iteration of the loop
func (app *App) frame() {
	app.applyPending()
	app.Camera.camera.SetViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

	app.handleInput()
	app.updateCamera(rl.GetFrameTime())

	manager := app.Widgets.manager
	manager.Frame()
	manager.Render()
	app.window.applyCursor()

	if app.Model.clipDirty {
		app.rebuildMesh()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

	rl.BeginMode3D(app.window.camera3D())
	app.drawScene()
	var labels []representation.Primitive
	for _, w := range app.widgets() {
		labels = drawPrimitives(w.Representation().Primitives(), labels)
	}
	rl.EndMode3D()

	app.drawLabels(labels)
	app.drawUI()

	rl.EndDrawing()
}
