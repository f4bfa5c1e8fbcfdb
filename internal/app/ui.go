package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	fontSize14 = 14
	fontSize16 = 16
)

// drawUI draws the status panel and the key help
func (app *App) drawUI() {
	font := rl.GetFontDefault()
	y := float32(10)
	line := func(text string, size float32, col rl.Color) {
		rl.DrawTextEx(font, text, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += size + 6
	}

	if m := app.Model.model; m != nil {
		size := m.BoundingBox().Size()
		line("Scene:", fontSize16, rl.Yellow)
		line(fmt.Sprintf("  %s, %d triangles", m.Name, m.TriangleCount()), fontSize14, rl.White)
		line(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", size.X, size.Y, size.Z), fontSize14, rl.White)
		y += 8
	}

	switch {
	case app.Widgets.angle != nil:
		w := app.Widgets.angle
		line("Angle:", fontSize16, rl.Yellow)
		line(fmt.Sprintf("  %s, %d/%d points", w.Phase(), w.State().Len(), w.State().MaxHandles()), fontSize14, rl.White)
		if angle, ok := w.Angle(); ok {
			line(fmt.Sprintf("  %.2f°", mgl64.RadToDeg(angle)), fontSize16, rl.NewColor(0, 255, 255, 255))
		}

	case app.Widgets.plane != nil:
		w := app.Widgets.plane
		o, n := w.State().Origin(), w.State().Normal()
		line("Plane:", fontSize16, rl.Yellow)
		line(fmt.Sprintf("  %s", w.Phase()), fontSize14, rl.White)
		line(fmt.Sprintf("  Origin: (%.2f, %.2f, %.2f)", o.X, o.Y, o.Z), fontSize14, rl.White)
		line(fmt.Sprintf("  Normal: (%.3f, %.3f, %.3f)", n.X, n.Y, n.Z), fontSize14, rl.White)
		if len(app.Model.cut) > 0 {
			line(fmt.Sprintf("  Cut: %d segments", len(app.Model.cut)), fontSize14, rl.NewColor(255, 200, 60, 255))
		}
	}

	if !app.View.showHelp {
		rl.DrawTextEx(font, "H: Help", rl.Vector2{X: 10, Y: float32(rl.GetScreenHeight()) - 24}, fontSize14, 1, rl.LightGray)
		return
	}

	y += 8
	line("View:", fontSize16, rl.Yellow)
	line("  Home: Reset | T: Top | B: Bottom", fontSize14, rl.LightGray)
	line("  1: Front | 2: Back | 3: Left | 4: Right", fontSize14, rl.LightGray)
	line("  W: Wireframe | F: Fill", fontSize14, rl.LightGray)
	line("Navigate:", fontSize16, rl.Yellow)
	line("  Drag: Rotate | Shift+Drag: Pan", fontSize14, rl.LightGray)
	line("  Mouse Wheel: Zoom | Middle: Pan", fontSize14, rl.LightGray)
	line("Widgets:", fontSize16, rl.Yellow)
	if app.Widgets.angle != nil {
		line("  Click: Place point | Drag point: Move", fontSize14, rl.LightGray)
		line("  N: New angle | Esc: Stop placing", fontSize14, rl.LightGray)
	} else {
		line("  Ball: Move in plane | Plane: Push", fontSize14, rl.LightGray)
		line("  Arrow tip: Rotate | Esc: Release", fontSize14, rl.LightGray)
	}
}
