package viewer

import (
	"image/color"
	"log/slog"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	fwidget "fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/stl"
	"github.com/philipparndt/gizmo/pkg/widget"
	"github.com/philipparndt/gizmo/pkg/widgetmanager"
)

// Viewport is a fyne widget that hosts a widget manager over an optional
// wireframe scene. Pointer input is forwarded to the manager; events no
// widget consumes orbit, pan and zoom the camera.
type Viewport struct {
	fwidget.BaseWidget

	camera  *Camera
	scene   *stl.Model
	manager *widgetmanager.Manager
	cursor  desktop.Cursor
	objects []fyne.CanvasObject
	pump    *fyne.Animation

	dragStart *fyne.Position
	orbiting  bool
	panning   bool
	mods      event.Modifier
	logger    *slog.Logger
}

// window is the render window the widgets see: the camera plus cursor feedback
type window struct {
	*Camera
	viewport *Viewport
}

func (w window) SetCursor(c widget.Cursor) {
	w.viewport.cursor = desktopCursor(c)
}

// NewViewport creates a viewport for scene. scene may be nil.
func NewViewport(camera *Camera, scene *stl.Model) *Viewport {
	v := &Viewport{
		camera: camera,
		scene:  scene,
		cursor: desktop.DefaultCursor,
		logger: slog.Default().With("component", "viewport"),
	}
	v.manager = widgetmanager.New(window{Camera: camera, viewport: v})
	v.manager.SetRepaint(v.redraw)
	v.ExtendBaseWidget(v)
	return v
}

// Manager returns the widget manager driven by this viewport
func (v *Viewport) Manager() *widgetmanager.Manager {
	return v.manager
}

// Camera returns the viewport camera
func (v *Viewport) Camera() *Camera {
	return v.camera
}

// SetScene replaces the wireframe scene
func (v *Viewport) SetScene(scene *stl.Model) {
	v.scene = scene
	if scene != nil {
		v.logger.Debug("scene replaced", "name", scene.Name, "triangles", scene.TriangleCount())
	}
	v.manager.Render()
}

// Start begins pumping animation frames into the manager
func (v *Viewport) Start() {
	if v.pump != nil {
		return
	}
	v.pump = fyne.NewAnimation(time.Second, func(float32) {
		if v.manager.IsAnimating() {
			v.manager.Frame()
		}
	})
	v.pump.RepeatCount = fyne.AnimationRepeatForever
	v.pump.Start()
}

// Stop halts the animation pump
func (v *Viewport) Stop() {
	if v.pump == nil {
		return
	}
	v.pump.Stop()
	v.pump = nil
}

// CreateRenderer creates the renderer for the widget
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return &viewportRenderer{viewport: v}
}

// Render resizes the camera viewport and redraws every representation
func (v *Viewport) Render(width, height float64) {
	v.camera.SetViewport(width, height)
	v.manager.Render()
}

func (v *Viewport) redraw() {
	objects := v.sceneObjects()
	for _, w := range v.manager.Widgets() {
		for _, p := range w.Representation().Primitives() {
			objects = append(objects, primitiveObjects(p, v.camera)...)
		}
	}
	v.objects = objects
	v.Refresh()
}

func (v *Viewport) sceneObjects() []fyne.CanvasObject {
	if v.scene == nil {
		return nil
	}
	width, height := v.camera.ViewportSize()
	if width <= 0 || height <= 0 {
		return nil
	}

	objects := make([]fyne.CanvasObject, 0, len(v.scene.Triangles)*3)
	for _, triangle := range v.scene.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := 0; i < 3; i++ {
			x1, y1, z1 := v.camera.Project(vertices[i], width, height)
			x2, y2, z2 := v.camera.Project(vertices[(i+1)%3], width, height)
			if z1 <= 0 || z2 <= 0 {
				continue
			}

			// Depth cue: farther edges are darker
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(40, math.Min(160, 160-avgZ*2)))

			line := canvas.NewLine(color.RGBA{R: brightness, G: brightness, B: brightness, A: 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			objects = append(objects, line)
		}
	}
	return objects
}

func (v *Viewport) dispatch(e event.Event) widget.EventResult {
	return v.manager.HandleEvent(e)
}

// MouseDown implements desktop.Mouseable
func (v *Viewport) MouseDown(ev *desktop.MouseEvent) {
	v.mods = modifiers(ev.Modifier)
	e := event.NewPress(float64(ev.Position.X), float64(ev.Position.Y)).WithModifiers(v.mods)
	e.Button = button(ev.Button)

	if e.Button == event.ButtonLeft && v.dispatch(e) == widget.Consumed {
		return
	}
	pos := ev.Position
	v.dragStart = &pos
	v.panning = e.Button == event.ButtonMiddle || v.mods.Has(event.ModShift)
	v.orbiting = !v.panning
}

// MouseUp implements desktop.Mouseable
func (v *Viewport) MouseUp(ev *desktop.MouseEvent) {
	wasNavigating := v.orbiting || v.panning
	v.endNavigation()
	if wasNavigating {
		return
	}
	e := event.NewRelease(float64(ev.Position.X), float64(ev.Position.Y)).WithModifiers(modifiers(ev.Modifier))
	e.Button = button(ev.Button)
	v.dispatch(e)
}

// Dragged implements fyne.Draggable. Pointer moves with a button held
// arrive here instead of MouseMoved.
func (v *Viewport) Dragged(ev *fyne.DragEvent) {
	if v.orbiting || v.panning {
		if v.dragStart != nil {
			dx := float64(ev.Position.X - v.dragStart.X)
			dy := float64(ev.Position.Y - v.dragStart.Y)
			if v.panning {
				v.camera.Pan(dx, dy)
			} else {
				v.camera.Rotate(-dy*0.01, dx*0.01)
			}
			v.manager.Render()
		}
		pos := ev.Position
		v.dragStart = &pos
		return
	}
	v.dispatch(event.NewMove(float64(ev.Position.X), float64(ev.Position.Y)).WithModifiers(v.mods))
}

// DragEnd implements fyne.Draggable
func (v *Viewport) DragEnd() {
	v.endNavigation()
}

func (v *Viewport) endNavigation() {
	v.dragStart = nil
	v.orbiting = false
	v.panning = false
}

// MouseIn implements desktop.Hoverable
func (v *Viewport) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved implements desktop.Hoverable
func (v *Viewport) MouseMoved(ev *desktop.MouseEvent) {
	v.mods = modifiers(ev.Modifier)
	v.dispatch(event.NewMove(float64(ev.Position.X), float64(ev.Position.Y)).WithModifiers(v.mods))
}

// MouseOut implements desktop.Hoverable
func (v *Viewport) MouseOut() {
	v.cursor = desktop.DefaultCursor
}

// Scrolled zooms the camera
func (v *Viewport) Scrolled(ev *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	v.manager.Render()
}

// Cursor implements desktop.Cursorable
func (v *Viewport) Cursor() desktop.Cursor {
	return v.cursor
}

// TypedKey forwards keys relevant to widget interaction. Install it with
// Canvas.SetOnTypedKey.
func (v *Viewport) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		v.dispatch(event.NewKey(event.KeyEscape))
	}
}

func modifiers(m fyne.KeyModifier) event.Modifier {
	var mods event.Modifier
	if m&fyne.KeyModifierShift != 0 {
		mods |= event.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		mods |= event.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		mods |= event.ModAlt
	}
	return mods
}

func button(b desktop.MouseButton) event.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return event.ButtonLeft
	case desktop.MouseButtonSecondary:
		return event.ButtonRight
	case desktop.MouseButtonTertiary:
		return event.ButtonMiddle
	default:
		return event.ButtonNone
	}
}

// desktopCursor maps widget cursors to the shapes fyne provides
func desktopCursor(c widget.Cursor) desktop.Cursor {
	switch c {
	case widget.CursorPointer, widget.CursorGrabbing:
		return desktop.PointerCursor
	case widget.CursorCrosshair, widget.CursorMove:
		return desktop.CrosshairCursor
	case widget.CursorAlias:
		return desktop.VResizeCursor
	default:
		return desktop.DefaultCursor
	}
}

// primitiveObjects converts one primitive into canvas objects
func primitiveObjects(p representation.Primitive, view representation.Viewport) []fyne.CanvasObject {
	if len(p.Points) == 0 {
		return nil
	}

	switch p.Kind {
	case representation.KindSphere:
		x, y, ok := view.WorldToScreen(p.Points[0])
		if !ok {
			return nil
		}
		radius := float32(3)
		if px := view.PixelSize(p.Points[0]); px > 0 {
			radius = float32(math.Max(3, p.Radius/px))
		}
		marker := canvas.NewCircle(p.Color)
		if p.Active {
			marker.StrokeColor = color.White
			marker.StrokeWidth = 2
		}
		marker.Resize(fyne.NewSize(radius*2, radius*2))
		marker.Move(fyne.NewPos(float32(x)-radius, float32(y)-radius))
		return []fyne.CanvasObject{marker}

	case representation.KindLine:
		return segmentLines(p.Points, false, p.Color, lineWidth(p.Active), view)

	case representation.KindPolygon:
		return segmentLines(p.Points, true, p.Color, lineWidth(p.Active), view)

	case representation.KindLabel:
		x, y, ok := view.WorldToScreen(p.Points[0])
		if !ok {
			return nil
		}
		text := canvas.NewText(p.Text, p.Color)
		text.TextSize = 14
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.Move(fyne.NewPos(float32(x)+8, float32(y)-20))
		return []fyne.CanvasObject{text}
	}
	return nil
}

func lineWidth(active bool) float32 {
	if active {
		return 3
	}
	return 2
}

func segmentLines(points []geometry.Vector3, closed bool, col color.RGBA, width float32, view representation.Viewport) []fyne.CanvasObject {
	n := len(points)
	segments := n - 1
	if closed && n > 2 {
		segments = n
	}

	objects := make([]fyne.CanvasObject, 0, max(segments, 0))
	for i := 0; i < segments; i++ {
		x1, y1, ok1 := view.WorldToScreen(points[i])
		x2, y2, ok2 := view.WorldToScreen(points[(i+1)%n])
		if !ok1 || !ok2 {
			continue
		}
		line := canvas.NewLine(col)
		line.StrokeWidth = width
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		objects = append(objects, line)
	}
	return objects
}

// viewportRenderer implements fyne.WidgetRenderer
type viewportRenderer struct {
	viewport *Viewport
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.viewport.Render(float64(size.Width), float64(size.Height))
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewportRenderer) Refresh() {
	canvas.Refresh(r.viewport)
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	return r.viewport.objects
}

func (r *viewportRenderer) Destroy() {
	r.viewport.Stop()
}
