package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/widget"
)

// currentModifiers reads the held modifier keys
func currentModifiers() event.Modifier {
	var mods event.Modifier
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= event.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		mods |= event.ModControl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		mods |= event.ModAlt
	}
	return mods
}

// handleInput translates this frame's input into widget events. Pointer
// input no widget consumes drives the camera.
func (app *App) handleInput() {
	app.handleKeys()

	mouse := rl.GetMousePosition()
	mods := currentModifiers()
	x, y := float64(mouse.X), float64(mouse.Y)
	moved := mouse != app.Interaction.lastMousePos
	delta := rl.Vector2{X: mouse.X - app.Interaction.lastMousePos.X, Y: mouse.Y - app.Interaction.lastMousePos.Y}
	app.Interaction.lastMousePos = mouse

	manager := app.Widgets.manager

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if manager.HandleEvent(event.NewPress(x, y).WithModifiers(mods)) == widget.PassThrough {
			app.Interaction.navigating = true
			app.Interaction.panning = mods.Has(event.ModShift)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.Interaction.navigating = true
		app.Interaction.panning = true
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		app.Interaction.navigating = true
		app.Interaction.panning = false
	}

	if moved {
		if app.Interaction.navigating {
			app.navigate(delta)
		} else {
			manager.HandleEvent(event.NewMove(x, y).WithModifiers(mods))
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if app.Interaction.navigating {
			app.Interaction.navigating = false
		} else {
			manager.HandleEvent(event.NewRelease(x, y).WithModifiers(mods))
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) || rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.Interaction.navigating = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Camera.camera.Zoom(-float64(wheel) * 0.1)
	}
}

// navigate orbits or pans the camera by a pointer delta
func (app *App) navigate(delta rl.Vector2) {
	c := app.Camera.camera
	app.Camera.transition = nil
	if app.Interaction.panning {
		c.Pan(float64(delta.X), float64(delta.Y))
		return
	}
	c.Rotate(-float64(delta.Y)*0.01, float64(delta.X)*0.01)
}

func (app *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Widgets.manager.HandleEvent(event.NewKey(event.KeyEscape))
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	// N starts a new angle measurement
	if rl.IsKeyPressed(rl.KeyN) && app.Widgets.angle != nil {
		app.Widgets.angle.Reset()
		app.Widgets.manager.GrabFocus(app.Widgets.angle)
	}
}
