package widget

import (
	"log/slog"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// handleSet is the part of a widget state the base behavior edits
type handleSet interface {
	Owns(h *widgetstate.Handle) bool
	ActivateOnly(h *widgetstate.Handle)
	Deactivate()
}

// Base carries the runtime state shared by all widgets
type Base struct {
	name    string
	kind    Kind
	self    Widget
	ctx     Context
	handles handleSet
	rep     representation.Representation

	pickable  bool
	draggable bool
	hasFocus  bool
	dragging  bool
	active    *widgetstate.Handle

	listeners listenerRegistry
	logger    *slog.Logger
}

func (b *Base) init(self Widget, name string, kind Kind, handles handleSet, rep representation.Representation) {
	b.self = self
	b.name = name
	b.kind = kind
	b.handles = handles
	b.rep = rep
	b.pickable = true
	b.draggable = true
	b.logger = slog.Default().With("widget", name)
}

// Name returns the widget name
func (b *Base) Name() string { return b.name }

// Kind returns the widget composition
func (b *Base) Kind() Kind { return b.kind }

// Bind attaches the widget to a window, interactor and picking controller
func (b *Base) Bind(ctx Context) {
	b.ctx = ctx
}

// HasFocus reports whether the widget holds the keyboard and pointer focus
func (b *Base) HasFocus() bool { return b.hasFocus }

// IsDragging reports whether a drag gesture is in flight
func (b *Base) IsDragging() bool { return b.dragging }

// ActiveHandle returns the active state, nil when there is none
func (b *Base) ActiveHandle() *widgetstate.Handle { return b.active }

// Representation returns the widget representation
func (b *Base) Representation() representation.Representation { return b.rep }

// Pickable reports whether the widget reacts to pointer input
func (b *Base) Pickable() bool { return b.pickable }

// SetPickable enables or disables pointer input
func (b *Base) SetPickable(v bool) { b.pickable = v }

// Draggable reports whether handles can be dragged
func (b *Base) Draggable() bool { return b.draggable }

// SetDraggable enables or disables dragging of handles
func (b *Base) SetDraggable(v bool) { b.draggable = v }

// ActivateHandle implements Widget
func (b *Base) ActivateHandle(h *widgetstate.Handle) bool {
	if !b.handles.Owns(h) {
		return false
	}
	b.handles.ActivateOnly(h)
	b.active = h
	return true
}

// DeactivateAllHandles clears the active flag of every handle. The active
// state reference is kept so a later activation can resume it.
func (b *Base) DeactivateAllHandles() {
	b.handles.Deactivate()
}

// AnimationFrame refreshes the representation once per animation frame
func (b *Base) AnimationFrame() {
	if b.rep != nil && b.ctx.Window != nil {
		b.rep.Update(b.ctx.Window)
	}
}

// GrabFocus gives the widget the focus
func (b *Base) GrabFocus() {
	b.hasFocus = true
}

// LoseFocus ends any interaction in flight and drops the focus
func (b *Base) LoseFocus() {
	if b.hasFocus || b.dragging {
		b.cancelAnimation()
	}
	if b.hasFocus {
		b.invokeEnd()
	}
	b.dragging = false
	b.handles.Deactivate()
	b.active = nil
	b.hasFocus = false
	b.enablePicking()
	b.render()
}

func (b *Base) phase(atCapacity bool) Phase {
	switch {
	case b.dragging:
		return Dragging
	case b.hasFocus && atCapacity:
		return Committed
	case b.hasFocus:
		return Focused
	default:
		return Idle
	}
}

// OnStartInteraction registers fn for the start of an interaction
func (b *Base) OnStartInteraction(fn func(Interaction)) Subscription {
	return b.listeners.add(lifecycleStart, fn)
}

// OnInteraction registers fn for every update during an interaction
func (b *Base) OnInteraction(fn func(Interaction)) Subscription {
	return b.listeners.add(lifecycleInteraction, fn)
}

// OnEndInteraction registers fn for the end of an interaction
func (b *Base) OnEndInteraction(fn func(Interaction)) Subscription {
	return b.listeners.add(lifecycleEnd, fn)
}

func (b *Base) invokeStart() {
	b.listeners.fire(lifecycleStart, Interaction{Widget: b.self, Handle: b.active})
}

func (b *Base) invokeInteraction() {
	b.listeners.fire(lifecycleInteraction, Interaction{Widget: b.self, Handle: b.active})
}

func (b *Base) invokeEnd() {
	b.listeners.fire(lifecycleEnd, Interaction{Widget: b.self, Handle: b.active})
}

// ready reports whether the active state accepts pointer input
func (b *Base) ready() bool {
	return b.active != nil && b.active.Active && b.pickable && b.ctx.Window != nil
}

// ignoreKey reports whether a held modifier hands the event to the camera
func ignoreKey(e event.Event) bool {
	return e.HasModifier()
}

func (b *Base) requestAnimation() {
	if b.ctx.Interactor != nil {
		b.ctx.Interactor.RequestAnimation(b)
	}
}

func (b *Base) cancelAnimation() {
	if b.ctx.Interactor != nil {
		b.ctx.Interactor.CancelAnimation(b)
	}
}

func (b *Base) render() {
	if b.ctx.Interactor != nil {
		b.ctx.Interactor.Render()
	}
}

func (b *Base) setCursor(c Cursor) {
	if b.ctx.Window != nil {
		b.ctx.Window.SetCursor(c)
	}
}

func (b *Base) enablePicking() {
	if b.ctx.Picking != nil {
		b.ctx.Picking.EnablePicking()
	}
}

func (b *Base) disablePicking() {
	if b.ctx.Picking != nil {
		b.ctx.Picking.DisablePicking()
	}
}
