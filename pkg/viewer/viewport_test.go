package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/widget"
)

func newViewport(t *testing.T) *Viewport {
	test.NewTempApp(t)
	scene := stl.NewModel("cube")
	scene.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(-1, -1, -1), geometry.NewVector3(1, -1, -1), geometry.NewVector3(1, 1, 1)))
	v := NewViewport(NewCamera(scene.BoundingBox()), scene)
	v.Render(400, 300)
	return v
}

func mouse(x, y float32, b desktop.MouseButton, m fyne.KeyModifier) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: b, Modifier: m}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		name     string
		in       fyne.KeyModifier
		expected event.Modifier
	}{
		{"none", 0, 0},
		{"shift", fyne.KeyModifierShift, event.ModShift},
		{"control alt", fyne.KeyModifierControl | fyne.KeyModifierAlt, event.ModControl | event.ModAlt},
		{"super only", fyne.KeyModifierSuper, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, modifiers(tt.in))
		})
	}
}

func TestDesktopCursor(t *testing.T) {
	assert.Equal(t, desktop.DefaultCursor, desktopCursor(widget.CursorDefault))
	assert.Equal(t, desktop.PointerCursor, desktopCursor(widget.CursorGrabbing))
	assert.Equal(t, desktop.CrosshairCursor, desktopCursor(widget.CursorMove))
	assert.Equal(t, desktop.VResizeCursor, desktopCursor(widget.CursorAlias))
}

func TestPrimitiveObjects(t *testing.T) {
	c := unitCamera()
	red := color.RGBA{R: 255, A: 255}

	sphere := primitiveObjects(representation.Primitive{
		Kind: representation.KindSphere, Points: []geometry.Vector3{{}}, Radius: 0.5, Color: red,
	}, c)
	require.Len(t, sphere, 1)
	circle := sphere[0].(interface{ Size() fyne.Size })
	assert.Greater(t, circle.Size().Width, float32(6))

	square := []geometry.Vector3{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	assert.Len(t, primitiveObjects(representation.Primitive{Kind: representation.KindLine, Points: square}, c), 3)
	assert.Len(t, primitiveObjects(representation.Primitive{Kind: representation.KindPolygon, Points: square}, c), 4)

	label := primitiveObjects(representation.Primitive{
		Kind: representation.KindLabel, Points: []geometry.Vector3{{}}, Text: "90.0°",
	}, c)
	assert.Len(t, label, 1)

	behind := primitiveObjects(representation.Primitive{
		Kind: representation.KindSphere, Points: []geometry.Vector3{{Z: 10}}, Radius: 1,
	}, c)
	assert.Empty(t, behind)
	assert.Empty(t, primitiveObjects(representation.Primitive{Kind: representation.KindSphere}, c))
}

func TestViewportPlacesAngleHandles(t *testing.T) {
	v := newViewport(t)
	angle := widget.NewAngle("angle")
	v.Manager().AddWidget(angle)
	v.Manager().GrabFocus(angle)

	v.MouseDown(mouse(200, 150, desktop.MouseButtonPrimary, 0))
	v.MouseUp(mouse(200, 150, desktop.MouseButtonPrimary, 0))

	require.Equal(t, 1, angle.State().Len())
	origin, ok := angle.State().Handles()[0].Origin()
	require.True(t, ok)
	assert.True(t, origin.ApproxEqual(geometry.Vector3{}, 1e-9))
	assert.NotEmpty(t, v.objects)
}

func TestViewportOrbitsOnPassThrough(t *testing.T) {
	v := newViewport(t)
	before := v.Camera().RotationY

	v.MouseDown(mouse(200, 150, desktop.MouseButtonPrimary, 0))
	drag := &fyne.DragEvent{}
	drag.Position = fyne.NewPos(250, 150)
	v.Dragged(drag)
	v.DragEnd()

	assert.NotEqual(t, before, v.Camera().RotationY)
	assert.False(t, v.orbiting)
}

func TestViewportShiftPans(t *testing.T) {
	v := newViewport(t)
	target := v.Camera().Target

	v.MouseDown(mouse(200, 150, desktop.MouseButtonPrimary, fyne.KeyModifierShift))
	assert.True(t, v.panning)
	drag := &fyne.DragEvent{}
	drag.Position = fyne.NewPos(200, 200)
	v.Dragged(drag)
	v.MouseUp(mouse(200, 200, desktop.MouseButtonPrimary, fyne.KeyModifierShift))

	assert.NotEqual(t, target, v.Camera().Target)
	assert.False(t, v.panning)
}

func TestViewportEscapeReleasesFocus(t *testing.T) {
	v := newViewport(t)
	angle := widget.NewAngle("angle")
	v.Manager().AddWidget(angle)
	v.Manager().GrabFocus(angle)
	require.True(t, angle.HasFocus())

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, angle.HasFocus())
}

func TestViewportScrollZooms(t *testing.T) {
	v := newViewport(t)
	distance := v.Camera().Distance
	v.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 100}})
	assert.Less(t, v.Camera().Distance, distance)
}
