// Package widgetstate holds the editable state of manipulation widgets:
// handles with their placement and appearance, and the collections that
// own them.
package widgetstate

import (
	"image/color"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/manipulator"
)

// Role selects how dragging a handle updates the widget
type Role int

const (
	RoleNone Role = iota
	RoleFromOrigin
	RoleFromPlane
	RoleFromNormal
)

func (r Role) String() string {
	switch r {
	case RoleFromOrigin:
		return "origin"
	case RoleFromPlane:
		return "plane"
	case RoleFromNormal:
		return "normal"
	default:
		return "none"
	}
}

// placement is the position and orientation of one or more handles
type placement struct {
	origin    geometry.Vector3
	normal    geometry.Vector3
	hasOrigin bool
	hasNormal bool
}

// Handle is a single draggable element of a widget
type Handle struct {
	name      string
	placement *placement

	Color   color.RGBA
	Scale   float64
	Active  bool
	Visible bool
	Role    Role

	// Manipulator overrides the widget's default manipulator when set
	Manipulator manipulator.Manipulator
}

// NewHandle creates a visible handle without origin
func NewHandle(name string) *Handle {
	return newHandle(name, &placement{})
}

func newHandle(name string, p *placement) *Handle {
	return &Handle{
		name:      name,
		placement: p,
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Scale:     1,
		Visible:   true,
	}
}

// Name returns the handle name
func (h *Handle) Name() string {
	return h.name
}

// Origin returns the handle position and whether it has been set
func (h *Handle) Origin() (geometry.Vector3, bool) {
	return h.placement.origin, h.placement.hasOrigin
}

// SetOrigin sets the handle position
func (h *Handle) SetOrigin(p geometry.Vector3) {
	h.placement.origin = p
	h.placement.hasOrigin = true
}

// ClearOrigin removes the handle position
func (h *Handle) ClearOrigin() {
	h.placement.origin = geometry.Vector3{}
	h.placement.hasOrigin = false
}

// Normal returns the handle orientation and whether it has been set
func (h *Handle) Normal() (geometry.Vector3, bool) {
	return h.placement.normal, h.placement.hasNormal
}

// SetNormal sets the handle orientation. Zero vectors are ignored.
func (h *Handle) SetNormal(n geometry.Vector3) {
	n = n.Normalize()
	if n.IsZero() {
		return
	}
	h.placement.normal = n
	h.placement.hasNormal = true
}

func (h *Handle) String() string {
	return h.name
}
