package manipulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
)

func TestLineProjectsOntoAxis(t *testing.T) {
	view := newOrthoView()
	l := NewLine()
	l.SetWidgetOrigin(geometry.NewVector3(0, 0, 0))
	l.SetWidgetNormal(geometry.NewVector3(1, 0, 0))

	r := l.HandleEvent(event.NewMove(3, 5), view)
	assert.True(t, r.WorldCoords.ApproxEqual(geometry.NewVector3(3, 0, 0), 1e-9), "got %v", r.WorldCoords)
	assert.True(t, r.WorldDelta.ApproxEqual(geometry.NewVector3(3, 0, 0), 1e-9), "got %v", r.WorldDelta)

	r = l.HandleEvent(event.NewMove(1, -5), view)
	assert.True(t, r.WorldDelta.ApproxEqual(geometry.NewVector3(-2, 0, 0), 1e-9), "got %v", r.WorldDelta)
}

func TestLineParallelToRay(t *testing.T) {
	view := newOrthoView()
	l := NewLine()
	l.SetWidgetOrigin(geometry.NewVector3(1, 2, 3))
	l.SetWidgetNormal(geometry.NewVector3(0, 0, 1))

	r := l.HandleEvent(event.NewMove(3, 5), view)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), r.WorldCoords)
	assert.Equal(t, geometry.Vector3{}, r.WorldDelta)
}
