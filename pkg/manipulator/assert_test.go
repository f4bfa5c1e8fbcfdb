//go:build !debug

package manipulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
)

func TestUnconfiguredManipulatorsDoNotPanic(t *testing.T) {
	view := newOrthoView()
	assert.NotPanics(t, func() {
		r := NewLine().HandleEvent(event.NewMove(1, 1), view)
		assert.Equal(t, geometry.Vector3{}, r.WorldDelta)
	})
	assert.NotPanics(t, func() {
		NewPlane().HandleEvent(event.NewMove(1, 1), view)
	})
	assert.NotPanics(t, func() {
		NewTrackball().HandleEvent(event.NewMove(1, 1), view)
	})
}
