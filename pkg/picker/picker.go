// Package picker finds the widget handle under the pointer.
package picker

import (
	"math"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// Shape is a pickable geometric primitive
type Shape interface {
	// Intersect returns the distance along the ray to the shape
	Intersect(ray geometry.Ray) (float64, bool)
}

// Sphere is a pickable ball
type Sphere struct {
	Center geometry.Vector3
	Radius float64
}

// Intersect implements Shape
func (s Sphere) Intersect(ray geometry.Ray) (float64, bool) {
	return ray.IntersectSphere(s.Center, s.Radius)
}

// Disc is a pickable flat circle
type Disc struct {
	Center geometry.Vector3
	Normal geometry.Vector3
	Radius float64
}

// Intersect implements Shape
func (d Disc) Intersect(ray geometry.Ray) (float64, bool) {
	hit, ok := ray.IntersectPlane(d.Center, d.Normal)
	if !ok || hit.Distance(d.Center) > d.Radius {
		return 0, false
	}
	return hit.Distance(ray.Origin), true
}

// Prop binds a shape to the handle it selects
type Prop struct {
	Handle *widgetstate.Handle
	Shape  Shape
}

// Hit is the result of a successful pick
type Hit struct {
	Prop     Prop
	Distance float64
	Point    geometry.Vector3
}

// Picker tests a ray against the current pick list
type Picker struct {
	props []Prop
}

// New creates a picker with an empty pick list
func New() *Picker {
	return &Picker{}
}

// InitializePickList empties the pick list
func (p *Picker) InitializePickList() {
	p.props = p.props[:0]
}

// SetPickList replaces the pick list
func (p *Picker) SetPickList(props []Prop) {
	p.props = append(p.props[:0], props...)
}

// AddPickList appends props to the pick list
func (p *Picker) AddPickList(props ...Prop) {
	p.props = append(p.props, props...)
}

// Len returns the size of the pick list
func (p *Picker) Len() int {
	return len(p.props)
}

// Pick returns the nearest prop hit by the ray
func (p *Picker) Pick(ray geometry.Ray) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat64}
	found := false
	for _, prop := range p.props {
		if prop.Shape == nil || prop.Handle == nil || !prop.Handle.Visible {
			continue
		}
		d, ok := prop.Shape.Intersect(ray)
		if !ok || d >= best.Distance {
			continue
		}
		best = Hit{Prop: prop, Distance: d, Point: ray.PointAt(d)}
		found = true
	}
	return best, found
}
