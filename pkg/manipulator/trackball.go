package manipulator

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
)

// Trackball rotates the widget normal by the pointer motion. A horizontal
// drag across the full viewport width turns it by 360 degrees about the
// view up axis, a vertical drag across the full height by 360 degrees
// about the screen horizontal axis.
type Trackball struct {
	base

	prev    event.Position
	hasPrev bool
}

// NewTrackball creates a trackball manipulator
func NewTrackball() *Trackball {
	return &Trackball{}
}

// Reset sets the pointer baseline used for the next rotation
func (t *Trackball) Reset(e event.Event) {
	t.prev = e.Position
	t.hasPrev = true
}

// HandleEvent returns the rotated normal in WorldCoords
func (t *Trackball) HandleEvent(e event.Event, v View) Result {
	if !t.hasNormal || t.normal.IsZero() {
		assertf("trackball manipulator used without a normal")
		return Result{WorldCoords: t.normal}
	}
	current := t.normal.Normalize()
	if !t.hasPrev {
		t.Reset(e)
	}

	width, height := v.ViewportSize()
	if width <= 0 || height <= 0 {
		return Result{WorldCoords: current}
	}

	dx := e.Position.X - t.prev.X
	dy := t.prev.Y - e.Position.Y
	t.prev = e.Position

	angleX := 360 * dx / width
	angleY := 360 * dy / height

	up := toVec3(v.ViewUp().Normalize())
	right := toVec3(v.ViewDirection().Cross(v.ViewUp()).Normalize())

	q := mgl64.QuatIdent()
	if up.Len() > geometry.Epsilon {
		q = mgl64.QuatRotate(mgl64.DegToRad(angleX), up).Mul(q)
	}
	if right.Len() > geometry.Epsilon {
		q = mgl64.QuatRotate(mgl64.DegToRad(-angleY), right).Mul(q)
	}

	rotated := fromVec3(q.Normalize().Rotate(toVec3(current))).Normalize()
	if rotated.IsZero() || !rotated.IsFinite() {
		return Result{WorldCoords: current}
	}
	return Result{WorldCoords: rotated, WorldDelta: rotated.Sub(current)}
}

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}
