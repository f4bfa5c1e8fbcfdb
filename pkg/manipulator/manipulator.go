// Package manipulator maps 2D pointer positions to constrained 3D world
// coordinates. Every manipulator reports the world coordinates under the
// pointer and the delta to the coordinates reported by the previous call.
package manipulator

import (
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
)

// View is the camera collaborator a manipulator projects through
type View interface {
	// ScreenToWorldRay returns the ray from the eye through the screen position
	ScreenToWorldRay(x, y float64) geometry.Ray
	// ViewDirection is the unit direction of projection
	ViewDirection() geometry.Vector3
	// ViewUp is the unit up vector of the camera
	ViewUp() geometry.Vector3
	// FocalPoint is the point the camera looks at
	FocalPoint() geometry.Vector3
	// ViewportSize returns the viewport size in pixels
	ViewportSize() (width, height float64)
}

// Result of a manipulator event
type Result struct {
	WorldCoords geometry.Vector3
	WorldDelta  geometry.Vector3
}

// Manipulator converts pointer events into world space coordinates
type Manipulator interface {
	SetWidgetOrigin(origin geometry.Vector3)
	// ClearWidgetOrigin drops the configured origin. The delta baseline is kept.
	ClearWidgetOrigin()
	SetWidgetNormal(normal geometry.Vector3)
	HandleEvent(e event.Event, v View) Result
}

// base holds the configuration and the delta baseline shared by all manipulators
type base struct {
	origin    geometry.Vector3
	normal    geometry.Vector3
	hasOrigin bool
	hasNormal bool

	last    geometry.Vector3
	hasLast bool
}

// SetWidgetOrigin sets the constraint origin and resets the delta baseline to it
func (b *base) SetWidgetOrigin(origin geometry.Vector3) {
	b.origin = origin
	b.hasOrigin = true
	b.last = origin
	b.hasLast = true
}

// ClearWidgetOrigin forgets the constraint origin so that camera relative
// placement applies again
func (b *base) ClearWidgetOrigin() {
	b.origin = geometry.Vector3{}
	b.hasOrigin = false
}

// SetWidgetNormal sets the constraint normal or direction
func (b *base) SetWidgetNormal(normal geometry.Vector3) {
	b.normal = normal
	b.hasNormal = true
}

// WidgetOrigin returns the configured origin
func (b *base) WidgetOrigin() geometry.Vector3 {
	return b.origin
}

// WidgetNormal returns the configured normal
func (b *base) WidgetNormal() geometry.Vector3 {
	return b.normal
}

func (b *base) advance(coords geometry.Vector3) Result {
	if !b.hasLast {
		b.last = coords
		b.hasLast = true
	}
	delta := coords.Sub(b.last)
	b.last = coords
	return Result{WorldCoords: coords, WorldDelta: delta}
}

// stall reports the last valid coordinates without motion
func (b *base) stall() Result {
	return Result{WorldCoords: b.last}
}
