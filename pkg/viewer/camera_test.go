package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func unitCamera() *Camera {
	box := geometry.NewBoundingBoxFromPoints(geometry.NewVector3(-1, -1, -1), geometry.NewVector3(1, 1, 1))
	c := NewCamera(box)
	c.SetViewport(400, 300)
	return c
}

func TestNewCamera(t *testing.T) {
	c := unitCamera()
	assert.InDelta(t, 4.0, c.Distance, 1e-9)
	assert.True(t, c.Position.ApproxEqual(geometry.NewVector3(0, 0, 4), 1e-9))
	assert.True(t, c.FocalPoint().ApproxEqual(geometry.Vector3{}, 1e-9))

	empty := NewCamera(geometry.NewBoundingBox())
	assert.InDelta(t, 4.0, empty.Distance, 1e-9)
}

func TestCameraAxes(t *testing.T) {
	c := unitCamera()
	assert.True(t, c.ViewDirection().ApproxEqual(geometry.NewVector3(0, 0, -1), 1e-9))
	assert.True(t, c.ViewUp().ApproxEqual(geometry.NewVector3(0, 1, 0), 1e-9))

	w, h := c.ViewportSize()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)
}

func TestScreenToWorldRayCenter(t *testing.T) {
	c := unitCamera()
	ray := c.ScreenToWorldRay(200, 150)
	assert.True(t, ray.Origin.ApproxEqual(c.Position, 1e-9))
	assert.True(t, ray.Direction.ApproxEqual(geometry.NewVector3(0, 0, -1), 1e-9))
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := unitCamera()
	c.Rotate(0.4, 0.7)

	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0.5, -0.3, 0.2),
		geometry.NewVector3(-1, 1, 1),
	}
	for _, p := range points {
		x, y, ok := c.WorldToScreen(p)
		assert.True(t, ok)
		ray := c.ScreenToWorldRay(x, y)
		assert.InDelta(t, 0, ray.DistanceToPoint(p), 1e-6, "point %v", p)
	}
}

func TestWorldToScreenBehind(t *testing.T) {
	c := unitCamera()
	_, _, ok := c.WorldToScreen(geometry.NewVector3(0, 0, 10))
	assert.False(t, ok)
}

func TestPixelSize(t *testing.T) {
	c := unitCamera()
	expected := 2 * 4 * math.Tan(math.Pi/8) / 300
	assert.InDelta(t, expected, c.PixelSize(geometry.Vector3{}), 1e-9)
}

func TestRotateClampsElevation(t *testing.T) {
	c := unitCamera()
	c.Rotate(10, 0)
	assert.InDelta(t, math.Pi/2-0.1, c.RotationX, 1e-9)
	c.Rotate(-20, 0)
	assert.InDelta(t, -(math.Pi/2 - 0.1), c.RotationX, 1e-9)
}

func TestZoomAndPan(t *testing.T) {
	c := unitCamera()
	c.Zoom(-0.5)
	assert.InDelta(t, 2.0, c.Distance, 1e-9)
	c.Zoom(-10)
	assert.InDelta(t, 0.1, c.Distance, 1e-9)

	c = unitCamera()
	c.Pan(100, 0)
	assert.Less(t, c.Target.X, 0.0)
	assert.InDelta(t, 4.0, c.Position.Distance(c.Target), 1e-9)
}
