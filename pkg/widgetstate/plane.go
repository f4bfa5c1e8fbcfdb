package widgetstate

import (
	"image/color"

	"github.com/philipparndt/gizmo/pkg/geometry"
)

// PlaneState describes an implicit plane: a shared origin and normal edited
// through three role handles, optionally confined to a bounding box
type PlaneState struct {
	placement *placement
	bounds    geometry.BoundingBox
	hasBounds bool

	origin *Handle
	plane  *Handle
	normal *Handle
}

// NewPlaneState creates a plane through the world origin facing +Z
func NewPlaneState() *PlaneState {
	p := &placement{
		normal:    geometry.NewVector3(0, 0, 1),
		hasOrigin: true,
		hasNormal: true,
	}
	s := &PlaneState{
		placement: p,
		origin:    newHandle("origin", p),
		plane:     newHandle("plane", p),
		normal:    newHandle("normal", p),
	}
	s.origin.Role = RoleFromOrigin
	s.plane.Role = RoleFromPlane
	s.normal.Role = RoleFromNormal

	s.origin.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	s.plane.Color = color.RGBA{R: 128, G: 160, B: 255, A: 128}
	s.normal.Color = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	return s
}

// Origin returns the plane origin
func (s *PlaneState) Origin() geometry.Vector3 {
	return s.placement.origin
}

// SetOrigin moves the plane
func (s *PlaneState) SetOrigin(p geometry.Vector3) {
	s.placement.origin = p
}

// Normal returns the unit plane normal
func (s *PlaneState) Normal() geometry.Vector3 {
	return s.placement.normal
}

// SetNormal orients the plane. Zero vectors are ignored.
func (s *PlaneState) SetNormal(n geometry.Vector3) {
	s.origin.SetNormal(n)
}

// SetBounds confines the plane origin to b
func (s *PlaneState) SetBounds(b geometry.BoundingBox) {
	s.bounds = b
	s.hasBounds = b.IsValid()
}

// Bounds returns the confinement box and whether one is set
func (s *PlaneState) Bounds() (geometry.BoundingBox, bool) {
	return s.bounds, s.hasBounds
}

// ContainsPoint reports whether p lies inside the bounds.
// Without bounds every point is contained.
func (s *PlaneState) ContainsPoint(p geometry.Vector3) bool {
	if !s.hasBounds {
		return true
	}
	return s.bounds.Contains(p)
}

// OriginHandle returns the handle that translates the plane within itself
func (s *PlaneState) OriginHandle() *Handle { return s.origin }

// PlaneHandle returns the handle that pushes the plane along its normal
func (s *PlaneState) PlaneHandle() *Handle { return s.plane }

// NormalHandle returns the handle that rotates the plane
func (s *PlaneState) NormalHandle() *Handle { return s.normal }

// Handles returns the role handles
func (s *PlaneState) Handles() []*Handle {
	return []*Handle{s.origin, s.plane, s.normal}
}

// Owns reports whether h is one of the role handles
func (s *PlaneState) Owns(h *Handle) bool {
	return h != nil && (h == s.origin || h == s.plane || h == s.normal)
}

// Deactivate clears the active flag of every role handle
func (s *PlaneState) Deactivate() {
	for _, h := range s.Handles() {
		h.Active = false
	}
}

// ActivateOnly deactivates every role handle and then activates h
func (s *PlaneState) ActivateOnly(h *Handle) {
	s.Deactivate()
	if s.Owns(h) {
		h.Active = true
	}
}
