package widget

import (
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/manipulator"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// planeRoute binds a handle role to the manipulator and update it drives
type planeRoute struct {
	manipulator func(w *ImplicitPlane) manipulator.Manipulator
	update      func(w *ImplicitPlane, e event.Event)
	cursor      Cursor
}

var planeRoutes = map[widgetstate.Role]planeRoute{
	widgetstate.RoleFromOrigin: {
		manipulator: func(w *ImplicitPlane) manipulator.Manipulator { return w.plane },
		update:      (*ImplicitPlane).updateFromOrigin,
		cursor:      CursorCrosshair,
	},
	widgetstate.RoleFromPlane: {
		manipulator: func(w *ImplicitPlane) manipulator.Manipulator { return w.line },
		update:      (*ImplicitPlane).updateFromPlane,
		cursor:      CursorMove,
	},
	widgetstate.RoleFromNormal: {
		manipulator: func(w *ImplicitPlane) manipulator.Manipulator { return w.trackball },
		update:      (*ImplicitPlane).updateFromNormal,
		cursor:      CursorAlias,
	},
}

// ImplicitPlane edits a plane through three handles: the origin ball moves
// the plane within itself, the plane surface pushes it along its normal and
// the normal tip rotates it. The origin never leaves the state bounds.
type ImplicitPlane struct {
	Base

	state   *widgetstate.PlaneState
	outline *representation.ImplicitPlane

	line      *manipulator.Line
	plane     *manipulator.Plane
	trackball *manipulator.Trackball

	route          *planeRoute
	draggingOrigin geometry.Vector3
}

// NewImplicitPlane creates an implicit plane widget
func NewImplicitPlane(name string) *ImplicitPlane {
	w := &ImplicitPlane{
		state:     widgetstate.NewPlaneState(),
		line:      manipulator.NewLine(),
		plane:     manipulator.NewPlane(),
		trackball: manipulator.NewTrackball(),
	}
	w.outline = representation.NewImplicitPlane(w.state)
	w.init(w, name, KindImplicitPlane, w.state, w.outline)
	return w
}

// State returns the widget state
func (w *ImplicitPlane) State() *widgetstate.PlaneState { return w.state }

// Phase implements Widget
func (w *ImplicitPlane) Phase() Phase {
	return w.phase(false)
}

// Bounds returns the confinement box of the plane
func (w *ImplicitPlane) Bounds() geometry.BoundingBox {
	if b, ok := w.state.Bounds(); ok {
		return b
	}
	bbox := geometry.NewBoundingBox()
	bbox.Extend(w.state.Origin())
	bbox.Extend(w.outline.NormalTip())
	return bbox
}

// ActivateHandle activates h and shows the cursor of its role
func (w *ImplicitPlane) ActivateHandle(h *widgetstate.Handle) bool {
	if !w.Base.ActivateHandle(h) {
		return false
	}
	if rt, ok := planeRoutes[h.Role]; ok && !w.dragging {
		w.setCursor(rt.cursor)
	}
	return true
}

// HandleEvent implements Widget
func (w *ImplicitPlane) HandleEvent(e event.Event) EventResult {
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

func (w *ImplicitPlane) handlePress(e event.Event) EventResult {
	if !w.ready() || ignoreKey(e) {
		return PassThrough
	}
	rt, ok := planeRoutes[w.active.Role]
	if !ok {
		return PassThrough
	}

	origin := w.state.Origin()
	normal := w.state.Normal()
	w.line.SetWidgetOrigin(origin)
	w.line.SetWidgetNormal(normal)
	w.plane.SetWidgetOrigin(origin)
	w.plane.SetWidgetNormal(normal)
	w.trackball.Reset(e)
	w.trackball.SetWidgetNormal(normal)

	w.route = &rt
	rt.manipulator(w).HandleEvent(e, w.ctx.Window)

	if w.draggable {
		w.draggingOrigin = origin
		w.dragging = true
		w.setCursor(CursorGrabbing)
		w.requestAnimation()
		w.logger.Debug("drag started", "role", w.active.Role)
	}

	w.invokeStart()
	return Consumed
}

func (w *ImplicitPlane) handleMove(e event.Event) EventResult {
	if !w.dragging || ignoreKey(e) {
		return PassThrough
	}
	if !w.ready() || w.route == nil {
		return PassThrough
	}
	w.route.update(w, e)
	w.invokeInteraction()
	return Consumed
}

func (w *ImplicitPlane) handleRelease(e event.Event) EventResult {
	if !w.ready() {
		return PassThrough
	}
	if w.dragging {
		w.cancelAnimation()
		w.dragging = false
		w.setCursor(CursorDefault)
		w.logger.Debug("drag finished", "origin", w.state.Origin(), "normal", w.state.Normal())
	}
	w.route = nil
	w.state.Deactivate()

	w.invokeEnd()
	return Consumed
}

// updateFromOrigin slides the plane within itself. Motion is applied only
// while the pointer stays inside the bounds.
func (w *ImplicitPlane) updateFromOrigin(e event.Event) {
	w.plane.SetWidgetNormal(w.state.Normal())
	res := w.plane.HandleEvent(e, w.ctx.Window)

	w.draggingOrigin = w.draggingOrigin.Add(res.WorldDelta)
	if w.state.ContainsPoint(res.WorldCoords) {
		w.state.SetOrigin(w.draggingOrigin)
	}
}

// updateFromPlane pushes the plane along its normal as long as the
// origin stays inside the bounds
func (w *ImplicitPlane) updateFromPlane(e event.Event) {
	w.line.SetWidgetNormal(w.state.Normal())
	res := w.line.HandleEvent(e, w.ctx.Window)

	w.draggingOrigin = w.draggingOrigin.Add(res.WorldDelta)
	if w.state.ContainsPoint(w.draggingOrigin) {
		w.state.SetOrigin(w.draggingOrigin)
	}
}

func (w *ImplicitPlane) updateFromNormal(e event.Event) {
	w.trackball.SetWidgetNormal(w.state.Normal())
	res := w.trackball.HandleEvent(e, w.ctx.Window)
	w.state.SetNormal(res.WorldCoords)
}
