package widget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/geometry"
)

func TestAngleCommitOnPress(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	w.GrabFocus()

	assert.Equal(t, Consumed, w.HandleEvent(event.NewMove(3, 4)))
	before, ok := w.State().MoveHandle().Origin()
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(3, 4, 0), before)

	assert.Equal(t, Consumed, w.HandleEvent(event.NewPress(3, 4)))
	handles := w.State().Handles()
	require.Len(t, handles, 1)
	committed, _ := handles[0].Origin()
	assert.Equal(t, before, committed)

	after, _ := w.State().MoveHandle().Origin()
	assert.Equal(t, before, after, "move handle keeps its position")
	assert.Same(t, w.manipulator, handles[0].Manipulator)
	assert.False(t, w.IsDragging())
	assert.Len(t, h.interactor.animations, 1, "focus animation stays registered")
}

func TestAngleCommitUsesMoveHandleOrigin(t *testing.T) {
	w := NewAngle("angle")
	bind(w)
	w.GrabFocus()
	w.HandleEvent(event.NewMove(3, 4))

	w.HandleEvent(event.NewPress(50, 60))
	committed, _ := w.State().Handles()[0].Origin()
	assert.Equal(t, geometry.NewVector3(3, 4, 0), committed)
}

func TestAngleCommitSnapsUnplacedMoveHandle(t *testing.T) {
	w := NewAngle("angle")
	bind(w)
	w.GrabFocus()

	w.HandleEvent(event.NewPress(7, 8))
	committed, ok := w.State().Handles()[0].Origin()
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(7, 8, 0), committed)
}

func TestAngleCapacity(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	w.GrabFocus()

	points := [][2]float64{{1, 0}, {0, 0}, {0, 1}}
	for i, p := range points {
		w.HandleEvent(event.NewMove(p[0], p[1]))
		assert.Equal(t, Consumed, w.HandleEvent(event.NewPress(p[0], p[1])), "press %d", i)
		result := w.HandleEvent(event.NewRelease(p[0], p[1]))
		if i < len(points)-1 {
			assert.Equal(t, Consumed, result, "release %d", i)
		} else {
			assert.Equal(t, PassThrough, result, "last release loses focus")
		}
	}

	assert.Equal(t, 3, w.State().Len())
	assert.False(t, w.HasFocus())
	assert.Empty(t, h.interactor.animations)
	assert.Nil(t, w.ActiveHandle())

	assert.Equal(t, PassThrough, w.HandleEvent(event.NewPress(5, 5)))
	assert.Equal(t, 3, w.State().Len())

	w.GrabFocus()
	assert.False(t, w.State().MoveHandle().Visible, "full widget does not show the move handle")
	assert.Equal(t, Committed, w.Phase())

	angle, ok := w.Angle()
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)
}

func TestAngleModifierVeto(t *testing.T) {
	tests := []struct {
		name string
		mods event.Modifier
	}{
		{"alt", event.ModAlt},
		{"control", event.ModControl},
		{"shift", event.ModShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewAngle("angle")
			bind(w)
			w.GrabFocus()

			assert.Equal(t, PassThrough, w.HandleEvent(event.NewMove(3, 4).WithModifiers(tt.mods)))
			_, placed := w.State().MoveHandle().Origin()
			assert.False(t, placed)

			assert.Equal(t, PassThrough, w.HandleEvent(event.NewPress(3, 4).WithModifiers(tt.mods)))
			assert.Equal(t, 0, w.State().Len())
		})
	}
}

func TestAngleFocus(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)

	var started, ended int
	w.OnStartInteraction(func(Interaction) { started++ })
	w.OnEndInteraction(func(in Interaction) {
		ended++
		assert.Same(t, w, in.Widget)
	})

	assert.Equal(t, Idle, w.Phase())
	w.GrabFocus()
	moveHandle := w.State().MoveHandle()
	assert.True(t, w.HasFocus())
	assert.Same(t, moveHandle, w.ActiveHandle())
	assert.True(t, moveHandle.Active)
	assert.True(t, moveHandle.Visible)
	assert.Len(t, h.interactor.animations, 1)
	assert.Equal(t, 1, started)
	assert.Equal(t, Focused, w.Phase())

	// a second grab changes nothing
	w.GrabFocus()
	assert.Equal(t, 1, started)

	w.HandleEvent(event.NewMove(3, 4))
	w.LoseFocus()
	assert.False(t, w.HasFocus())
	assert.Nil(t, w.ActiveHandle())
	assert.False(t, moveHandle.Active)
	assert.False(t, moveHandle.Visible)
	_, placed := moveHandle.Origin()
	assert.False(t, placed)
	assert.Empty(t, h.interactor.animations)
	assert.True(t, h.picking.enabled)
	assert.Equal(t, 1, ended)
	assert.Equal(t, Idle, w.Phase())
}

func TestAngleDragCommittedHandle(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	w.GrabFocus()
	w.HandleEvent(event.NewMove(3, 4))
	w.HandleEvent(event.NewPress(3, 4))
	w.HandleEvent(event.NewRelease(3, 4))
	w.LoseFocus()

	handle := w.State().Handles()[0]
	require.True(t, w.ActivateHandle(handle))

	assert.Equal(t, Consumed, w.HandleEvent(event.NewPress(3, 4)))
	assert.True(t, w.IsDragging())
	assert.Equal(t, Dragging, w.Phase())
	assert.Equal(t, CursorGrabbing, h.window.cursor)
	assert.Len(t, h.interactor.animations, 1)

	var updates int
	sub := w.OnInteraction(func(Interaction) { updates++ })
	assert.Equal(t, Consumed, w.HandleEvent(event.NewMove(5, 4)))
	origin, _ := handle.Origin()
	assert.True(t, origin.ApproxEqual(geometry.NewVector3(5, 4, 0), 1e-9), "got %v", origin)
	assert.Equal(t, 1, updates)

	sub.Remove()
	w.HandleEvent(event.NewMove(6, 4))
	assert.Equal(t, 1, updates, "removed listener does not fire")

	assert.Equal(t, Consumed, w.HandleEvent(event.NewRelease(6, 4)))
	assert.False(t, w.IsDragging())
	assert.False(t, handle.Active)
	assert.Empty(t, h.interactor.animations)
	assert.Equal(t, CursorPointer, h.window.cursor)
	assert.True(t, h.picking.enabled)
}

func TestAnglePreviewFollowsFocalPointAfterDrag(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	w.GrabFocus()
	w.HandleEvent(event.NewMove(3, 4))
	w.HandleEvent(event.NewPress(3, 4))
	w.HandleEvent(event.NewRelease(3, 4))
	w.LoseFocus()

	handle := w.State().Handles()[0]
	require.True(t, w.ActivateHandle(handle))
	w.HandleEvent(event.NewPress(3, 4))
	w.HandleEvent(event.NewMove(5, 4))
	w.HandleEvent(event.NewRelease(5, 4))

	h.window.focal = geometry.NewVector3(0, 0, -5)
	w.GrabFocus()
	require.Equal(t, Consumed, w.HandleEvent(event.NewMove(4, 4)))
	origin, ok := w.State().MoveHandle().Origin()
	require.True(t, ok)
	assert.Equal(t, geometry.NewVector3(4, 4, -5), origin)

	w.HandleEvent(event.NewPress(4, 4))
	committed, _ := w.State().Handles()[1].Origin()
	assert.Equal(t, geometry.NewVector3(4, 4, -5), committed)

	dragged, _ := handle.Origin()
	assert.Equal(t, geometry.NewVector3(5, 4, 0), dragged)
}

func TestAngleLoseFocusWhileDragging(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	handle := w.State().AddHandle()
	handle.SetOrigin(geometry.NewVector3(1, 1, 0))
	w.ActivateHandle(handle)
	w.HandleEvent(event.NewPress(1, 1))
	require.True(t, w.IsDragging())

	w.LoseFocus()
	assert.False(t, w.IsDragging())
	assert.Empty(t, h.interactor.animations)
}

func TestAngleFocusedMoveDisablesPicking(t *testing.T) {
	w := NewAngle("angle")
	h := bind(w)
	w.hasFocus = true

	assert.Equal(t, PassThrough, w.HandleEvent(event.NewMove(1, 1)))
	assert.Equal(t, 1, h.picking.disables)
}

func TestAngleIgnoresEventsWithoutActiveState(t *testing.T) {
	w := NewAngle("angle")
	bind(w)

	assert.Equal(t, PassThrough, w.HandleEvent(event.NewPress(1, 1)))
	assert.Equal(t, PassThrough, w.HandleEvent(event.NewMove(1, 1)))
	assert.Equal(t, PassThrough, w.HandleEvent(event.NewRelease(1, 1)))
	assert.Equal(t, PassThrough, w.HandleEvent(event.NewKey(event.KeyEscape)))
}

func TestAngleNotPickable(t *testing.T) {
	w := NewAngle("angle")
	bind(w)
	w.GrabFocus()
	w.SetPickable(false)

	assert.Equal(t, PassThrough, w.HandleEvent(event.NewPress(1, 1)))
	assert.Equal(t, 0, w.State().Len())
}

func TestAngleReset(t *testing.T) {
	w := NewAngle("angle")
	bind(w)
	w.GrabFocus()
	w.HandleEvent(event.NewPress(1, 1))
	w.Reset()

	assert.Equal(t, 0, w.State().Len())
	assert.False(t, w.HasFocus())
	assert.False(t, w.Bounds().IsValid())
}
