package manipulator

import "github.com/philipparndt/gizmo/pkg/geometry"

// orthoView looks down -Z; screen (x, y) maps to the world line through (x, y, 10)
type orthoView struct {
	width, height float64
}

func newOrthoView() orthoView {
	return orthoView{width: 400, height: 300}
}

func (v orthoView) ScreenToWorldRay(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, y, 10), geometry.NewVector3(0, 0, -1))
}

func (v orthoView) ViewDirection() geometry.Vector3 { return geometry.NewVector3(0, 0, -1) }
func (v orthoView) ViewUp() geometry.Vector3        { return geometry.NewVector3(0, 1, 0) }
func (v orthoView) FocalPoint() geometry.Vector3    { return geometry.Vector3{} }

func (v orthoView) ViewportSize() (float64, float64) {
	return v.width, v.height
}
