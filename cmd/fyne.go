package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	fwidget "fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gizmo/internal/app"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/internal/scene"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/viewer"
	"github.com/philipparndt/gizmo/pkg/widget"
)

const reloadPoll = 200 * time.Millisecond

// fyneHost is the fyne window: a viewport and a status line
type fyneHost struct {
	viewport *viewer.Viewport
	widget   widget.Widget
	status   *fwidget.Label
	logger   *slog.Logger
}

func newFyneHost(opts app.Options, model *stl.Model) (*fyneHost, error) {
	bounds := app.SceneBounds(model, opts.Mode)
	camera := viewer.NewCamera(bounds)
	camera.FOV = mgl64.DegToRad(opts.Config.Camera.FOVDegrees)
	camera.SetViewport(float64(opts.Config.Window.Width), float64(opts.Config.Window.Height))

	h := &fyneHost{
		viewport: viewer.NewViewport(camera, model),
		status:   fwidget.NewLabel(""),
		logger:   slog.Default().With("component", "fyne", "mode", string(opts.Mode)),
	}
	w, err := app.SetupWidget(h.viewport.Manager(), opts.Mode, bounds, opts.Config.Widget)
	if err != nil {
		return nil, err
	}
	h.widget = w
	w.OnInteraction(func(widget.Interaction) { h.updateStatus() })
	w.OnEndInteraction(func(widget.Interaction) { h.updateStatus() })
	h.updateStatus()
	return h, nil
}

func (h *fyneHost) updateStatus() {
	h.status.SetText(app.Status(h.widget))
}

func (h *fyneHost) applyScene(model *stl.Model) {
	app.Refit(h.widget, model.BoundingBox())
	h.viewport.SetScene(model)
	h.updateStatus()
}

func (h *fyneHost) applyConfig(cfg config.Config) {
	if err := config.Apply(cfg.Widget, h.widget); err != nil {
		h.logger.Warn("config not applied", "err", err)
		return
	}
	h.viewport.Manager().Render()
}

// pollScene hands reloaded scenes to the UI thread until ctx is done
func (h *fyneHost) pollScene(ctx context.Context, reloader *scene.Reloader) {
	ticker := time.NewTicker(reloadPoll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if model := reloader.Take(); model != nil {
				fyne.Do(func() { h.applyScene(model) })
			}
		}
	}
}

func runFyne(ctx context.Context, opts app.Options) error {
	var model *stl.Model
	var files []string
	if opts.ScenePath != "" {
		var err error
		model, files, err = scene.Load(ctx, opts.ScenePath)
		if err != nil {
			return fmt.Errorf("error loading scene: %w", err)
		}
	}

	a := fyneapp.New()
	host, err := newFyneHost(opts, model)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.ScenePath != "" {
		reloader, err := scene.Watch(ctx, opts.ScenePath, files)
		if err != nil {
			host.logger.Warn("auto-reload not available", "err", err)
		} else {
			defer reloader.Close()
			go host.pollScene(ctx, reloader)
		}
	}
	if opts.ConfigPath != "" {
		stop, err := config.Watch(ctx, opts.ConfigPath, func(cfg config.Config) {
			fyne.Do(func() { host.applyConfig(cfg) })
		})
		if err != nil {
			host.logger.Warn("config reload not available", "err", err)
		} else {
			defer stop()
		}
	}

	win := opts.Config.Window
	w := a.NewWindow(win.Title)
	w.SetContent(container.NewBorder(nil, host.status, nil, nil, host.viewport))
	w.Canvas().SetOnTypedKey(host.viewport.TypedKey)
	w.Resize(fyne.NewSize(float32(win.Width), float32(win.Height)))

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(a.Quit)
		case <-done:
		}
	}()

	host.viewport.Start()
	w.ShowAndRun()
	host.viewport.Stop()
	close(done)
	return nil
}
