// Package representation turns widget state into drawable primitives and
// pickable props. Representations only read widget state.
package representation

import (
	"image/color"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/manipulator"
	"github.com/philipparndt/gizmo/pkg/picker"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// Viewport is the camera as seen by a representation
type Viewport interface {
	manipulator.View
	// WorldToScreen projects a world point to pixels. ok is false behind the camera.
	WorldToScreen(p geometry.Vector3) (x, y float64, ok bool)
	// PixelSize returns the world length of one pixel at p
	PixelSize(p geometry.Vector3) float64
}

// Kind of a primitive
type Kind int

const (
	KindSphere Kind = iota
	KindLine
	KindPolygon
	KindLabel
)

// Primitive is one drawable element. Spheres and labels use Points[0],
// lines connect consecutive points, polygons are convex and closed.
type Primitive struct {
	Kind   Kind
	Handle *widgetstate.Handle
	Points []geometry.Vector3
	Radius float64
	Color  color.RGBA
	Active bool
	Text   string
}

// DisplayPoint is a handle position projected to the screen
type DisplayPoint struct {
	Handle *widgetstate.Handle
	X, Y   float64
}

// Representation renders the state of one widget
type Representation interface {
	// Update rebuilds primitives and props from the current state
	Update(v Viewport)
	Primitives() []Primitive
	Props() []picker.Prop
	// SetDisplayCallback registers fn to receive the projected handle
	// positions after every Update. A nil fn removes the callback.
	SetDisplayCallback(fn func([]DisplayPoint))
}

// handleRadius returns the world radius of a handle drawn as a sphere of diameter Scale
func handleRadius(h *widgetstate.Handle, at geometry.Vector3, scaleInPixels bool, v Viewport) float64 {
	r := h.Scale / 2
	if scaleInPixels && v != nil {
		r *= v.PixelSize(at)
	}
	return r
}

func project(v Viewport, h *widgetstate.Handle, p geometry.Vector3, out []DisplayPoint) []DisplayPoint {
	if v == nil {
		return out
	}
	x, y, ok := v.WorldToScreen(p)
	if !ok {
		return out
	}
	return append(out, DisplayPoint{Handle: h, X: x, Y: y})
}
