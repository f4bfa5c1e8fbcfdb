package viewer

import (
	"math"

	"github.com/philipparndt/gizmo/pkg/geometry"
)

// Camera is an orbit camera around a target point. It implements the view
// the manipulators project through and the viewport the representations
// draw into.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth

	width  float64
	height float64
}

// NewCamera creates a camera positioned to view a bounding box. An invalid
// box frames the unit cube around the origin.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	if !bbox.IsValid() {
		bbox = geometry.NewBoundingBoxFromPoints(geometry.NewVector3(-1, -1, -1), geometry.NewVector3(1, 1, 1))
	}
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance < 0.1 {
		distance = 0.1
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
		width:    800,
		height:   600,
	}
}

// SetViewport sets the size of the drawing area in pixels
func (c *Camera) SetViewport(width, height float64) {
	c.width = width
	c.height = height
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.SetOrbit(c.RotationX+deltaX, c.RotationY+deltaY)
}

// SetOrbit places the camera at absolute orbit angles
func (c *Camera) SetOrbit(rotationX, rotationY float64) {
	// Keep away from the poles, the up vector is fixed
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, rotationX))
	c.RotationY = rotationY
	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Pan moves the target parallel to the image plane by a pixel delta
func (c *Camera) Pan(dx, dy float64) {
	_, right, up := c.basis()
	speed := c.Distance * 0.001
	c.Target = c.Target.Add(right.Mul(-dx * speed)).Add(up.Mul(dy * speed))
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates. The returned depth
// is the distance along the view direction and is not clamped.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := z
	if depth <= 0.01 {
		depth = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(depth*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(depth*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()

	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position, rayDir.Normalize()
}

// ScreenToWorldRay returns the ray from the eye through a pixel of the viewport
func (c *Camera) ScreenToWorldRay(x, y float64) geometry.Ray {
	if c.width <= 0 || c.height <= 0 {
		forward, _, _ := c.basis()
		return geometry.NewRay(c.Position, forward)
	}
	origin, dir := c.Unproject(x, y, c.width, c.height)
	return geometry.NewRay(origin, dir)
}

// WorldToScreen projects p into the viewport. ok is false for points
// behind the near plane.
func (c *Camera) WorldToScreen(p geometry.Vector3) (x, y float64, ok bool) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0, false
	}
	x, y, z := c.Project(p, c.width, c.height)
	return x, y, z > 0.01
}

// PixelSize returns the world length covered by one pixel at the depth of p
func (c *Camera) PixelSize(p geometry.Vector3) float64 {
	if c.height <= 0 {
		return 0
	}
	forward, _, _ := c.basis()
	z := math.Max(p.Sub(c.Position).Dot(forward), 0.01)
	return 2 * z * math.Tan(c.FOV/2) / c.height
}

func (c *Camera) ViewDirection() geometry.Vector3 {
	forward, _, _ := c.basis()
	return forward
}

func (c *Camera) ViewUp() geometry.Vector3 {
	_, _, up := c.basis()
	return up
}

func (c *Camera) FocalPoint() geometry.Vector3 {
	return c.Target
}

func (c *Camera) ViewportSize() (width, height float64) {
	return c.width, c.height
}
