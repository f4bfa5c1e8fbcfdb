package app

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gizmo/internal/config"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/widget"
	"github.com/philipparndt/gizmo/pkg/widgetmanager"
)

// SetupWidget creates the widget for mode, registers it with manager and
// styles it. The plane widget is confined to bounds and starts at its
// center; the angle widget starts with the focus.
func SetupWidget(manager *widgetmanager.Manager, mode Mode, bounds geometry.BoundingBox, cfg config.WidgetConfig) (widget.Widget, error) {
	var w widget.Widget
	switch mode {
	case ModeAngle:
		w = widget.NewAngle("angle")
	case ModePlane:
		plane := widget.NewImplicitPlane("plane")
		plane.State().SetBounds(bounds)
		plane.State().SetOrigin(bounds.Center())
		w = plane
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	if err := config.Apply(cfg, w); err != nil {
		return nil, err
	}
	manager.AddWidget(w)
	if mode == ModeAngle {
		manager.GrabFocus(w)
	}
	return w, nil
}

// Refit confines a plane widget to new scene bounds. The origin is moved
// to the center only when it falls outside them.
func Refit(w widget.Widget, bounds geometry.BoundingBox) {
	plane, ok := w.(*widget.ImplicitPlane)
	if !ok || !bounds.IsValid() {
		return
	}
	plane.State().SetBounds(bounds)
	if !bounds.Contains(plane.State().Origin()) {
		plane.State().SetOrigin(bounds.Center())
	}
}

// Status describes the widget state in one line for the hosts' status bars
func Status(w widget.Widget) string {
	switch w := w.(type) {
	case *widget.Angle:
		s := fmt.Sprintf("Angle: %s, %d/%d points", w.Phase(), w.State().Len(), w.State().MaxHandles())
		if angle, ok := w.Angle(); ok {
			s += fmt.Sprintf(", %.2f°", mgl64.RadToDeg(angle))
		}
		return s
	case *widget.ImplicitPlane:
		o, n := w.State().Origin(), w.State().Normal()
		return fmt.Sprintf("Plane: %s, origin (%.2f, %.2f, %.2f), normal (%.3f, %.3f, %.3f)",
			w.Phase(), o.X, o.Y, o.Z, n.X, n.Y, n.Z)
	}
	return w.Name()
}
