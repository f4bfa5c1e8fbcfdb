// Package widget implements the interaction state machines of the
// manipulation widgets. A widget consumes pointer events, drives a
// manipulator and edits its widget state; its representation turns the
// state into drawable primitives.
package widget

import (
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// EventResult tells the dispatcher whether an event was handled
type EventResult int

const (
	PassThrough EventResult = iota
	Consumed
)

func (r EventResult) String() string {
	if r == Consumed {
		return "consumed"
	}
	return "pass-through"
}

// Cursor is the pointer shape requested by a widget
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrabbing
	CursorCrosshair
	CursorMove
	CursorAlias
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorGrabbing:
		return "grabbing"
	case CursorCrosshair:
		return "crosshair"
	case CursorMove:
		return "move"
	case CursorAlias:
		return "alias"
	default:
		return "default"
	}
}

// Phase is the interaction phase derived from the runtime flags
type Phase int

const (
	Idle Phase = iota
	Focused
	Dragging
	Committed
)

func (p Phase) String() string {
	switch p {
	case Focused:
		return "focused"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	default:
		return "idle"
	}
}

// Kind names a widget composition
type Kind string

const (
	KindAngle         Kind = "angle"
	KindImplicitPlane Kind = "implicitPlane"
)

// RenderWindow is the window a widget is displayed in
type RenderWindow interface {
	representation.Viewport
	SetCursor(c Cursor)
}

// Animator receives one call per animation frame while registered
type Animator interface {
	AnimationFrame()
}

// Interactor schedules rendering
type Interactor interface {
	// RequestAnimation registers a for continuous frames. Repeated requests are no-ops.
	RequestAnimation(a Animator)
	// CancelAnimation unregisters a. Cancelling an unregistered animator is a no-op.
	CancelAnimation(a Animator)
	// Render requests a single repaint
	Render()
}

// PickingController toggles hover picking of the widget manager
type PickingController interface {
	EnablePicking()
	DisablePicking()
}

// Context binds a widget to its environment
type Context struct {
	Window     RenderWindow
	Interactor Interactor
	Picking    PickingController
}

// Interaction is passed to lifecycle listeners
type Interaction struct {
	Widget Widget
	Handle *widgetstate.Handle
}

// Widget is an interactive manipulation widget
type Widget interface {
	Name() string
	Kind() Kind
	Bind(ctx Context)

	// HandleEvent runs the state machine for one event
	HandleEvent(e event.Event) EventResult
	GrabFocus()
	LoseFocus()
	HasFocus() bool
	IsDragging() bool
	Phase() Phase

	// ActivateHandle makes h the active state if the widget owns it
	ActivateHandle(h *widgetstate.Handle) bool
	DeactivateAllHandles()
	ActiveHandle() *widgetstate.Handle

	Representation() representation.Representation
	Bounds() geometry.BoundingBox

	OnStartInteraction(fn func(Interaction)) Subscription
	OnInteraction(fn func(Interaction)) Subscription
	OnEndInteraction(fn func(Interaction)) Subscription
}
