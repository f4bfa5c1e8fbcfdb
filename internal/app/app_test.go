package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/widget"
)

func boxModel(min, max geometry.Vector3) *stl.Model {
	m := stl.NewModel("box")
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, min, geometry.NewVector3(max.X, min.Y, min.Z), max))
	return m
}

func TestSceneBounds(t *testing.T) {
	b := SceneBounds(nil, ModeAngle)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), b.Max)

	b = SceneBounds(nil, ModePlane)
	assert.Equal(t, geometry.NewVector3(-5, -5, -5), b.Min)

	model := boxModel(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 4, 6))
	b = SceneBounds(model, ModePlane)
	assert.Equal(t, geometry.NewVector3(2, 4, 6), b.Max)

	b = SceneBounds(stl.NewModel("empty"), ModeAngle)
	assert.True(t, b.IsValid())
}

func TestNewAppAngleMode(t *testing.T) {
	app, err := newApp(Options{Config: config.Default(), Mode: ModeAngle}, nil)
	require.NoError(t, err)

	require.NotNil(t, app.Widgets.angle)
	assert.Nil(t, app.Widgets.plane)
	assert.True(t, app.Widgets.angle.HasFocus())
	assert.Equal(t, widget.Widget(app.Widgets.angle), app.Widgets.manager.Focused())
	assert.Equal(t, 0.1, app.Widgets.angle.State().MoveHandle().Scale)
	assert.InDelta(t, math.Pi/4, app.Camera.camera.FOV, 1e-9)
}

func TestNewAppPlaneMode(t *testing.T) {
	model := boxModel(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 4, 6))
	app, err := newApp(Options{Config: config.Default(), Mode: ModePlane}, model)
	require.NoError(t, err)

	plane := app.Widgets.plane
	require.NotNil(t, plane)
	bounds, ok := plane.State().Bounds()
	require.True(t, ok)
	assert.Equal(t, model.BoundingBox(), bounds)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), plane.State().Origin())
	assert.True(t, app.Model.clipDirty)
}

func TestNewAppUnknownMode(t *testing.T) {
	_, err := newApp(Options{Config: config.Default(), Mode: "ruler"}, nil)
	assert.Error(t, err)
}

func TestApplySceneRecentersEscapedOrigin(t *testing.T) {
	first := boxModel(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 2, 2))
	app, err := newApp(Options{Config: config.Default(), Mode: ModePlane}, first)
	require.NoError(t, err)
	app.Model.clipDirty = false

	moved := boxModel(geometry.NewVector3(10, 10, 10), geometry.NewVector3(12, 12, 12))
	app.applyScene(moved)

	assert.True(t, app.Model.clipDirty)
	assert.Equal(t, geometry.NewVector3(11, 11, 11), app.Widgets.plane.State().Origin())
}

func TestApplyConfigRejectsBadColors(t *testing.T) {
	app, err := newApp(Options{Config: config.Default(), Mode: ModeAngle}, nil)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Widget.Colors.Line = "not a color"
	assert.Error(t, app.applyConfig(cfg))

	cfg = config.Default()
	cfg.Widget.HandleScale = 0.5
	require.NoError(t, app.applyConfig(cfg))
	assert.Equal(t, 0.5, app.Widgets.angle.State().MoveHandle().Scale)
}

func TestOrbitTween(t *testing.T) {
	tween := newOrbitTween(0, 0, 1, 2, 1)

	x, y, done := tween.update(0.5)
	assert.False(t, done)
	assert.Greater(t, x, 0.0)
	assert.Less(t, x, 1.0)
	assert.Greater(t, y, 0.0)

	x, y, done = tween.update(0.6)
	assert.True(t, done)
	assert.InDelta(t, 1.0, x, 1e-6)
	assert.InDelta(t, 2.0, y, 1e-6)
}

func TestOrbitTweenTakesShortWay(t *testing.T) {
	tween := newOrbitTween(0, 3*math.Pi/2, 0, 0, 1)
	_, y, done := tween.update(1)
	assert.True(t, done)
	assert.InDelta(t, 2*math.Pi, y, 1e-5)
}

func TestPresetTransition(t *testing.T) {
	app, err := newApp(Options{Config: config.Default(), Mode: ModeAngle}, nil)
	require.NoError(t, err)

	app.setCameraRightView()
	require.NotNil(t, app.Camera.transition)
	for i := 0; i < 100 && app.Camera.transition != nil; i++ {
		app.updateCamera(0.05)
	}
	assert.Nil(t, app.Camera.transition)
	assert.InDelta(t, 0, app.Camera.camera.RotationX, 1e-5)
	assert.InDelta(t, math.Pi/2, app.Camera.camera.RotationY, 1e-5)
}

func TestWindowCursorChange(t *testing.T) {
	app, err := newApp(Options{Config: config.Default(), Mode: ModeAngle}, nil)
	require.NoError(t, err)

	w := app.window
	w.changed = false
	w.SetCursor(widget.CursorDefault)
	assert.False(t, w.changed)
	w.SetCursor(widget.CursorCrosshair)
	assert.True(t, w.changed)
	assert.Equal(t, widget.CursorCrosshair, w.cursor)
}

func TestRefitKeepsContainedOrigin(t *testing.T) {
	plane := widget.NewImplicitPlane("plane")
	plane.State().SetOrigin(geometry.NewVector3(1, 1, 1))

	Refit(plane, geometry.NewBoundingBoxFromPoints(geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 4, 4)))
	assert.Equal(t, geometry.NewVector3(1, 1, 1), plane.State().Origin())

	Refit(plane, geometry.NewBoundingBox())
	bounds, ok := plane.State().Bounds()
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(4, 4, 4), bounds.Max)

	Refit(widget.NewAngle("angle"), bounds)
}

func TestStatus(t *testing.T) {
	angle := widget.NewAngle("angle")
	assert.Equal(t, "Angle: idle, 0/3 points", Status(angle))

	plane := widget.NewImplicitPlane("plane")
	assert.Contains(t, Status(plane), "Plane: idle, origin (0.00, 0.00, 0.00)")
}
