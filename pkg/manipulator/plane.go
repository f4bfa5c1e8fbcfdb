package manipulator

import (
	"github.com/philipparndt/gizmo/pkg/event"
)

// Plane constrains the pointer to a plane given by origin and normal
type Plane struct {
	base

	// UseCameraNormal makes the plane face the camera, ignoring the widget normal
	UseCameraNormal bool
	// UseCameraFocalPoint places the plane through the camera focal point
	// as long as no widget origin has been set
	UseCameraFocalPoint bool
}

// NewPlane creates a plane manipulator
func NewPlane() *Plane {
	return &Plane{}
}

// HandleEvent intersects the pointer ray with the plane
func (p *Plane) HandleEvent(e event.Event, v View) Result {
	origin := p.origin
	if !p.hasOrigin && p.UseCameraFocalPoint {
		origin = v.FocalPoint()
	}

	normal := p.normal
	if p.UseCameraNormal {
		normal = v.ViewDirection().Negate()
	} else if !p.hasNormal || normal.IsZero() {
		assertf("plane manipulator used without a normal")
		return p.stall()
	}

	ray := v.ScreenToWorldRay(e.Position.X, e.Position.Y)
	hit, ok := ray.IntersectPlane(origin, normal)
	if !ok {
		return p.stall()
	}
	return p.advance(hit)
}
