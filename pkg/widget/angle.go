package widget

import (
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/manipulator"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// MaxAngleHandles is the number of points that define an angle
const MaxAngleHandles = 3

// Angle places three points and measures the angle at the middle one.
// While focused the move handle follows the pointer and every press
// commits it as the next point. Placed points can be dragged afterwards.
type Angle struct {
	Base

	state       *widgetstate.State
	spheres     *representation.SphereHandles
	manipulator manipulator.Manipulator

	// resolved at press, used for the rest of the gesture
	dragManipulator manipulator.Manipulator
}

// NewAngle creates an angle widget. Points are placed on a camera facing
// plane through the focal point.
func NewAngle(name string) *Angle {
	w := &Angle{state: widgetstate.New(MaxAngleHandles)}
	plane := manipulator.NewPlane()
	plane.UseCameraNormal = true
	plane.UseCameraFocalPoint = true
	w.manipulator = plane
	w.spheres = representation.NewSphereHandles(w.state)
	w.init(w, name, KindAngle, w.state, w.spheres)
	return w
}

// State returns the widget state
func (w *Angle) State() *widgetstate.State { return w.state }

// SetManipulator replaces the default manipulator
func (w *Angle) SetManipulator(m manipulator.Manipulator) { w.manipulator = m }

// Phase implements Widget
func (w *Angle) Phase() Phase {
	return w.phase(w.state.AtCapacity())
}

// Bounds returns the box around all placed points
func (w *Angle) Bounds() geometry.BoundingBox {
	return w.state.Bounds()
}

// Angle returns the angle in radians at the second point once all three are placed
func (w *Angle) Angle() (float64, bool) {
	handles := w.state.Handles()
	if len(handles) != MaxAngleHandles {
		return 0, false
	}
	var p [MaxAngleHandles]geometry.Vector3
	for i, h := range handles {
		o, ok := h.Origin()
		if !ok {
			return 0, false
		}
		p[i] = o
	}
	return p[0].Sub(p[1]).AngleTo(p[2].Sub(p[1])), true
}

// Reset removes all points and drops the focus
func (w *Angle) Reset() {
	w.LoseFocus()
	w.state.Reset()
	w.render()
}

func (w *Angle) effectiveManipulator(h *widgetstate.Handle) manipulator.Manipulator {
	if h != nil && h.Manipulator != nil {
		return h.Manipulator
	}
	return w.manipulator
}

// configure refreshes m for h. Committed handles share the placement
// manipulator, so the move handle must not inherit a dragged handle's origin.
func (w *Angle) configure(m manipulator.Manipulator, h *widgetstate.Handle) {
	if h == w.state.MoveHandle() {
		m.ClearWidgetOrigin()
		return
	}
	if origin, ok := h.Origin(); ok {
		m.SetWidgetOrigin(origin)
	}
}

// HandleEvent implements Widget
func (w *Angle) HandleEvent(e event.Event) EventResult {
	switch e.Type {
	case event.Press:
		return w.handlePress(e)
	case event.Move:
		return w.handleMove(e)
	case event.Release:
		return w.handleRelease(e)
	default:
		return PassThrough
	}
}

func (w *Angle) handlePress(e event.Event) EventResult {
	if !w.ready() || ignoreKey(e) {
		return PassThrough
	}

	moveHandle := w.state.MoveHandle()
	m := w.effectiveManipulator(w.active)
	w.configure(m, w.active)
	w.dragManipulator = m
	res := m.HandleEvent(e, w.ctx.Window)

	if w.active == moveHandle && !w.state.AtCapacity() {
		origin, ok := moveHandle.Origin()
		if !ok {
			origin = res.WorldCoords
			moveHandle.SetOrigin(origin)
		}
		h := w.state.AddHandle()
		h.SetOrigin(origin)
		h.Color = moveHandle.Color
		h.Scale = moveHandle.Scale
		h.Manipulator = m
		w.logger.Debug("handle committed", "handle", h.Name(), "origin", origin, "count", w.state.Len())
	} else if w.draggable {
		w.dragging = true
		w.setCursor(CursorGrabbing)
		w.requestAnimation()
		w.logger.Debug("drag started", "handle", w.active.Name())
	}

	w.invokeStart()
	return Consumed
}

func (w *Angle) handleMove(e event.Event) EventResult {
	if w.ready() && w.draggable && !ignoreKey(e) {
		m := w.dragManipulator
		if !w.dragging || m == nil {
			m = w.effectiveManipulator(w.active)
			w.configure(m, w.active)
		}
		res := m.HandleEvent(e, w.ctx.Window)

		if w.active == w.state.MoveHandle() || w.dragging {
			if origin, ok := w.active.Origin(); ok {
				w.active.SetOrigin(origin.Add(res.WorldDelta))
			} else {
				w.active.SetOrigin(res.WorldCoords)
			}
			w.invokeInteraction()
			return Consumed
		}
	}
	if w.hasFocus {
		w.disablePicking()
	}
	return PassThrough
}

func (w *Angle) handleRelease(e event.Event) EventResult {
	if !w.ready() {
		return PassThrough
	}
	if w.hasFocus && w.state.AtCapacity() {
		w.LoseFocus()
		return PassThrough
	}

	if w.dragging {
		w.setCursor(CursorPointer)
		w.state.Deactivate()
		w.cancelAnimation()
		w.dragging = false
		w.dragManipulator = nil
		w.logger.Debug("drag finished")
	} else if w.active != w.state.MoveHandle() {
		w.state.Deactivate()
	}

	if (w.hasFocus && w.active == nil) || (w.active != nil && !w.active.Active) {
		w.enablePicking()
		w.render()
	}

	w.invokeEnd()
	return Consumed
}

// GrabFocus shows the move handle and lets it follow the pointer until
// all points are placed
func (w *Angle) GrabFocus() {
	if !w.hasFocus && !w.state.AtCapacity() {
		moveHandle := w.state.MoveHandle()
		w.active = moveHandle
		moveHandle.Active = true
		moveHandle.Visible = true
		w.requestAnimation()
		w.invokeStart()
		w.logger.Debug("focus grabbed")
	}
	w.hasFocus = true
}

// LoseFocus hides the move handle and ends any interaction in flight
func (w *Angle) LoseFocus() {
	if w.hasFocus || w.dragging {
		w.cancelAnimation()
	}
	if w.hasFocus {
		w.invokeEnd()
	}
	w.dragging = false
	w.dragManipulator = nil
	w.state.Deactivate()
	moveHandle := w.state.MoveHandle()
	moveHandle.Active = false
	moveHandle.Visible = false
	moveHandle.ClearOrigin()
	w.active = nil
	w.hasFocus = false
	w.enablePicking()
	w.render()
	w.logger.Debug("focus lost", "handles", w.state.Len())
}
