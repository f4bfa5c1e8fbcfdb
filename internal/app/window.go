package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gizmo/pkg/viewer"
	"github.com/philipparndt/gizmo/pkg/widget"
)

// window is the render window the widgets see. Projection goes through the
// orbit camera; cursor requests are applied once per frame.
type window struct {
	*viewer.Camera
	cursor  widget.Cursor
	changed bool
}

func newWindow(camera *viewer.Camera) *window {
	return &window{Camera: camera, changed: true}
}

func (w *window) SetCursor(c widget.Cursor) {
	if c != w.cursor {
		w.cursor = c
		w.changed = true
	}
}

// applyCursor pushes a changed cursor to raylib
func (w *window) applyCursor() {
	if !w.changed {
		return
	}
	w.changed = false
	switch w.cursor {
	case widget.CursorPointer:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	case widget.CursorGrabbing, widget.CursorMove:
		rl.SetMouseCursor(rl.MouseCursorResizeAll)
	case widget.CursorCrosshair:
		rl.SetMouseCursor(rl.MouseCursorCrosshair)
	case widget.CursorAlias:
		rl.SetMouseCursor(rl.MouseCursorResizeNS)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// camera3D mirrors the orbit camera for raylib's 3D mode
func (w *window) camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   toRl(w.Position),
		Target:     toRl(w.Target),
		Up:         toRl(w.Up),
		Fovy:       float32(mgl64.RadToDeg(w.FOV)),
		Projection: rl.CameraPerspective,
	}
}
