package manipulator

import (
	"github.com/philipparndt/gizmo/pkg/event"
)

// Line constrains the pointer to the line through the widget origin
// along the widget normal
type Line struct {
	base
}

// NewLine creates a line manipulator
func NewLine() *Line {
	return &Line{}
}

// HandleEvent returns the point on the line closest to the pointer ray
func (l *Line) HandleEvent(e event.Event, v View) Result {
	if !l.hasNormal || l.normal.IsZero() {
		assertf("line manipulator used without a direction")
		return l.stall()
	}

	ray := v.ScreenToWorldRay(e.Position.X, e.Position.Y)
	p, ok := ray.ClosestPointOnLine(l.origin, l.normal)
	if !ok {
		return l.stall()
	}
	return l.advance(p)
}
