package geometry

import "math"

// Epsilon is the tolerance used for parallelism tests
const Epsilon = 1e-9

// Ray is a half line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// PointAt returns the point at parameter t along the ray
func (r Ray) PointAt(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane intersects the ray with the plane through origin with the given normal.
// ok is false when the ray is parallel to the plane or the hit lies behind the ray origin.
func (r Ray) IntersectPlane(origin, normal Vector3) (hit Vector3, ok bool) {
	n := normal.Normalize()
	denom := r.Direction.Dot(n)
	if n.IsZero() || math.Abs(denom) < Epsilon {
		return Vector3{}, false
	}
	t := origin.Sub(r.Origin).Dot(n) / denom
	if t < 0 {
		return Vector3{}, false
	}
	hit = r.PointAt(t)
	if !hit.IsFinite() {
		return Vector3{}, false
	}
	return hit, true
}

// ClosestPointOnLine returns the point on the infinite line (origin, direction)
// closest to the ray. ok is false when the ray runs parallel to the line.
func (r Ray) ClosestPointOnLine(origin, direction Vector3) (Vector3, bool) {
	d := direction.Normalize()
	if d.IsZero() {
		return Vector3{}, false
	}
	w := r.Origin.Sub(origin)
	a := d.Dot(d)
	b := d.Dot(r.Direction)
	c := r.Direction.Dot(r.Direction)
	denom := a*c - b*b
	if math.Abs(denom) < Epsilon {
		return Vector3{}, false
	}
	s := (c*d.Dot(w) - b*r.Direction.Dot(w)) / denom
	p := origin.Add(d.Mul(s))
	if !p.IsFinite() {
		return Vector3{}, false
	}
	return p, true
}

// IntersectSphere returns the distance along the ray to the first hit of the sphere
func (r Ray) IntersectSphere(center Vector3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// DistanceToPoint returns the shortest distance between the ray and a point
func (r Ray) DistanceToPoint(p Vector3) float64 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return p.Distance(r.Origin)
	}
	return p.Distance(r.PointAt(t))
}
