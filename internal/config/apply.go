package config

import (
	"github.com/philipparndt/gizmo/pkg/representation"
	"github.com/philipparndt/gizmo/pkg/widget"
)

// Apply copies the appearance settings onto widgets. Handles placed
// later inherit the handle color and scale.
func Apply(cfg WidgetConfig, widgets ...widget.Widget) error {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return err
	}

	for _, w := range widgets {
		switch w := w.(type) {
		case *widget.Angle:
			s := w.State()
			s.ScaleInPixels = cfg.ScaleInPixels
			s.HandleColor = palette.Handle
			s.HandleScale = cfg.HandleScale
			for _, h := range s.Handles() {
				h.Color = palette.Handle
				h.Scale = cfg.HandleScale
			}
			s.MoveHandle().Color = palette.MoveHandle
			s.MoveHandle().Scale = cfg.HandleScale
			if rep, ok := w.Representation().(*representation.SphereHandles); ok {
				rep.LineColor = palette.Line
				rep.LabelColor = palette.Label
			}

		case *widget.ImplicitPlane:
			s := w.State()
			s.OriginHandle().Color = palette.Origin
			s.PlaneHandle().Color = palette.Plane
			s.NormalHandle().Color = palette.Normal
			if rep, ok := w.Representation().(*representation.ImplicitPlane); ok {
				rep.OutlineColor = palette.Outline
			}
		}
	}
	return nil
}
