package representation

import (
	"image/color"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/picker"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// ImplicitPlane draws a plane clipped to its bounds, the bounds outline,
// an origin ball and a normal arrow ending in a ball
type ImplicitPlane struct {
	state      *widgetstate.PlaneState
	primitives []Primitive
	props      []picker.Prop
	display    func([]DisplayPoint)

	// AxisScale is the normal arrow length relative to the bounds diagonal
	AxisScale float64
	// HandleSizeRatio is the ball radius relative to the bounds diagonal
	HandleSizeRatio float64
	// DefaultSize is used as diagonal when the state has no bounds
	DefaultSize float64

	OutlineVisible bool
	PlaneVisible   bool
	NormalVisible  bool
	OriginVisible  bool
	OutlineColor   color.RGBA
}

// NewImplicitPlane creates a representation for s
func NewImplicitPlane(s *widgetstate.PlaneState) *ImplicitPlane {
	return &ImplicitPlane{
		state:           s,
		AxisScale:       0.25,
		HandleSizeRatio: 0.02,
		DefaultSize:     10,
		OutlineVisible:  true,
		PlaneVisible:    true,
		NormalVisible:   true,
		OriginVisible:   true,
		OutlineColor:    color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// SetDisplayCallback implements Representation
func (r *ImplicitPlane) SetDisplayCallback(fn func([]DisplayPoint)) {
	r.display = fn
}

// Primitives implements Representation
func (r *ImplicitPlane) Primitives() []Primitive {
	return r.primitives
}

// Props implements Representation
func (r *ImplicitPlane) Props() []picker.Prop {
	return r.props
}

// NormalTip returns the end point of the normal arrow
func (r *ImplicitPlane) NormalTip() geometry.Vector3 {
	return r.state.Origin().Add(r.state.Normal().Mul(r.diagonal() * r.AxisScale))
}

func (r *ImplicitPlane) diagonal() float64 {
	if b, ok := r.state.Bounds(); ok && b.Diagonal() > 0 {
		return b.Diagonal()
	}
	return r.DefaultSize
}

// Update implements Representation
func (r *ImplicitPlane) Update(v Viewport) {
	r.primitives = r.primitives[:0]
	r.props = r.props[:0]
	var display []DisplayPoint

	origin := r.state.Origin()
	normal := r.state.Normal()
	diag := r.diagonal()
	radius := diag * r.HandleSizeRatio

	bounds, hasBounds := r.state.Bounds()
	if r.OutlineVisible && hasBounds {
		for _, e := range bounds.BoxEdges() {
			r.primitives = append(r.primitives, Primitive{
				Kind:   KindLine,
				Points: []geometry.Vector3{e.A, e.B},
				Color:  r.OutlineColor,
			})
		}
	}

	planeHandle := r.state.PlaneHandle()
	if r.PlaneVisible && planeHandle.Visible {
		var polygon []geometry.Vector3
		if hasBounds {
			polygon = geometry.PlaneBoxPolygon(origin, normal, bounds)
		} else {
			polygon = square(origin, normal, diag/2)
		}
		if len(polygon) >= 3 {
			r.primitives = append(r.primitives, Primitive{
				Kind:   KindPolygon,
				Handle: planeHandle,
				Points: polygon,
				Color:  planeHandle.Color,
				Active: planeHandle.Active,
			})
			discRadius := 0.0
			for _, p := range polygon {
				if d := p.Distance(origin); d > discRadius {
					discRadius = d
				}
			}
			r.props = append(r.props, picker.Prop{
				Handle: planeHandle,
				Shape:  picker.Disc{Center: origin, Normal: normal, Radius: discRadius},
			})
		}
	}

	normalHandle := r.state.NormalHandle()
	if r.NormalVisible && normalHandle.Visible {
		tip := r.NormalTip()
		r.primitives = append(r.primitives,
			Primitive{
				Kind:   KindLine,
				Handle: normalHandle,
				Points: []geometry.Vector3{origin, tip},
				Color:  normalHandle.Color,
				Active: normalHandle.Active,
			},
			Primitive{
				Kind:   KindSphere,
				Handle: normalHandle,
				Points: []geometry.Vector3{tip},
				Radius: radius,
				Color:  normalHandle.Color,
				Active: normalHandle.Active,
			},
		)
		r.props = append(r.props, picker.Prop{Handle: normalHandle, Shape: picker.Sphere{Center: tip, Radius: radius}})
		display = project(v, normalHandle, tip, display)
	}

	originHandle := r.state.OriginHandle()
	if r.OriginVisible && originHandle.Visible {
		r.primitives = append(r.primitives, Primitive{
			Kind:   KindSphere,
			Handle: originHandle,
			Points: []geometry.Vector3{origin},
			Radius: radius,
			Color:  originHandle.Color,
			Active: originHandle.Active,
		})
		r.props = append(r.props, picker.Prop{Handle: originHandle, Shape: picker.Sphere{Center: origin, Radius: radius}})
		display = project(v, originHandle, origin, display)
	}

	if r.display != nil {
		r.display(display)
	}
}

func square(center, normal geometry.Vector3, half float64) []geometry.Vector3 {
	u, v := geometry.Basis(normal)
	u = u.Mul(half)
	v = v.Mul(half)
	return []geometry.Vector3{
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	}
}
