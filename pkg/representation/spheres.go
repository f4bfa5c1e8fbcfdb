package representation

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/picker"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// SphereHandles draws every handle of a State as a sphere, connects them
// with a polyline and labels the angle at the middle handle once three
// handles are placed
type SphereHandles struct {
	state      *widgetstate.State
	primitives []Primitive
	props      []picker.Prop
	display    func([]DisplayPoint)

	LineColor  color.RGBA
	LabelColor color.RGBA
}

// NewSphereHandles creates a representation for s
func NewSphereHandles(s *widgetstate.State) *SphereHandles {
	return &SphereHandles{
		state:      s,
		LineColor:  color.RGBA{R: 255, G: 255, B: 0, A: 255},
		LabelColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetDisplayCallback implements Representation
func (r *SphereHandles) SetDisplayCallback(fn func([]DisplayPoint)) {
	r.display = fn
}

// Primitives implements Representation
func (r *SphereHandles) Primitives() []Primitive {
	return r.primitives
}

// Props implements Representation. The move handle is never pickable.
func (r *SphereHandles) Props() []picker.Prop {
	return r.props
}

// Update implements Representation
func (r *SphereHandles) Update(v Viewport) {
	r.primitives = r.primitives[:0]
	r.props = r.props[:0]
	var display []DisplayPoint
	var path []geometry.Vector3

	addSphere := func(h *widgetstate.Handle, pickable bool) {
		origin, ok := h.Origin()
		if !ok || !h.Visible {
			return
		}
		radius := handleRadius(h, origin, r.state.ScaleInPixels, v)
		r.primitives = append(r.primitives, Primitive{
			Kind:   KindSphere,
			Handle: h,
			Points: []geometry.Vector3{origin},
			Radius: radius,
			Color:  h.Color,
			Active: h.Active,
		})
		if pickable {
			r.props = append(r.props, picker.Prop{Handle: h, Shape: picker.Sphere{Center: origin, Radius: radius}})
		}
		path = append(path, origin)
		display = project(v, h, origin, display)
	}

	handles := r.state.Handles()
	for _, h := range handles {
		addSphere(h, true)
	}
	if !r.state.AtCapacity() {
		addSphere(r.state.MoveHandle(), false)
	}

	if len(path) > 1 {
		r.primitives = append(r.primitives, Primitive{Kind: KindLine, Points: path, Color: r.LineColor})
	}

	if angle, ok := handleAngle(handles); ok {
		vertex, _ := handles[1].Origin()
		r.primitives = append(r.primitives, Primitive{
			Kind:   KindLabel,
			Handle: handles[1],
			Points: []geometry.Vector3{vertex},
			Color:  r.LabelColor,
			Text:   fmt.Sprintf("%.1f°", mgl64.RadToDeg(angle)),
		})
	}

	if r.display != nil {
		r.display(display)
	}
}

// handleAngle returns the angle at the second of three placed handles
func handleAngle(handles []*widgetstate.Handle) (float64, bool) {
	if len(handles) != 3 {
		return 0, false
	}
	var p [3]geometry.Vector3
	for i, h := range handles {
		o, ok := h.Origin()
		if !ok {
			return 0, false
		}
		p[i] = o
	}
	return p[0].Sub(p[1]).AngleTo(p[2].Sub(p[1])), true
}
