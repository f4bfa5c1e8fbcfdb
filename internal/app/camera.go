package app

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const presetDuration = 0.35 // seconds

// orbitTween animates the camera between two orbit angle pairs
type orbitTween struct {
	x, y *gween.Tween
}

// newOrbitTween eases from (fromX, fromY) to (toX, toY). The azimuth takes
// the shorter way around.
func newOrbitTween(fromX, fromY, toX, toY float64, duration float32) *orbitTween {
	delta := math.Remainder(toY-fromY, 2*math.Pi)
	return &orbitTween{
		x: gween.New(float32(fromX), float32(toX), duration, ease.InOutCubic),
		y: gween.New(float32(fromY), float32(fromY+delta), duration, ease.InOutCubic),
	}
}

// update advances both angles by dt seconds
func (t *orbitTween) update(dt float32) (x, y float64, done bool) {
	cx, doneX := t.x.Update(dt)
	cy, doneY := t.y.Update(dt)
	return float64(cx), float64(cy), doneX && doneY
}

// orbitTo starts a transition to the given orbit angles
func (app *App) orbitTo(angleX, angleY float64) {
	c := app.Camera.camera
	app.Camera.transition = newOrbitTween(c.RotationX, c.RotationY, angleX, angleY, presetDuration)
}

// resetCameraView returns to the initial view
func (app *App) resetCameraView() {
	app.Camera.camera.Distance = app.Camera.defaultDist
	app.Camera.camera.Target = app.Camera.defaultTarget
	app.orbitTo(app.Camera.defaultAngleX, app.Camera.defaultAngleY)
}

// Presets by name. Elevation is clamped just short of the poles.
func (app *App) setCameraTopView()    { app.orbitTo(math.Pi/2, 0) }
func (app *App) setCameraBottomView() { app.orbitTo(-math.Pi/2, 0) }
func (app *App) setCameraFrontView()  { app.orbitTo(0, 0) }
func (app *App) setCameraBackView()   { app.orbitTo(0, math.Pi) }
func (app *App) setCameraLeftView()   { app.orbitTo(0, -math.Pi/2) }
func (app *App) setCameraRightView()  { app.orbitTo(0, math.Pi/2) }

// updateCamera advances a running preset transition
func (app *App) updateCamera(dt float32) {
	t := app.Camera.transition
	if t == nil {
		return
	}
	x, y, done := t.update(dt)
	app.Camera.camera.SetOrbit(x, y)
	if done {
		app.Camera.transition = nil
	}
}
