package widgetstate

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/gizmo/pkg/geometry"
)

// State is an ordered, capacity limited list of handles plus a move handle
// that previews the next handle to be placed
type State struct {
	handles    []*Handle
	moveHandle *Handle
	maxHandles int

	// ScaleInPixels means handle scales are screen sizes and do not
	// contribute to the world bounds
	ScaleInPixels bool
	// HandleColor and HandleScale are given to handles created by AddHandle
	HandleColor color.RGBA
	HandleScale float64
}

// New creates a state holding at most maxHandles handles
func New(maxHandles int) *State {
	mh := NewHandle("moveHandle")
	mh.Visible = false
	mh.Color = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	return &State{
		handles:     make([]*Handle, 0, maxHandles),
		moveHandle:  mh,
		maxHandles:  maxHandles,
		HandleColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HandleScale: 1,
	}
}

// Handles returns the committed handles in insertion order
func (s *State) Handles() []*Handle {
	out := make([]*Handle, len(s.handles))
	copy(out, s.handles)
	return out
}

// Len returns the number of committed handles
func (s *State) Len() int {
	return len(s.handles)
}

// MaxHandles returns the capacity
func (s *State) MaxHandles() int {
	return s.maxHandles
}

// AtCapacity reports whether no further handle can be added
func (s *State) AtCapacity() bool {
	return len(s.handles) >= s.maxHandles
}

// MoveHandle returns the preview handle
func (s *State) MoveHandle() *Handle {
	return s.moveHandle
}

// AddHandle appends a new handle. It returns nil when the state is full.
func (s *State) AddHandle() *Handle {
	if s.AtCapacity() {
		return nil
	}
	h := NewHandle(fmt.Sprintf("handle%d", len(s.handles)))
	h.Color = s.HandleColor
	h.Scale = s.HandleScale
	s.handles = append(s.handles, h)
	return h
}

// Owns reports whether h is the move handle or one of the committed handles
func (s *State) Owns(h *Handle) bool {
	if h == nil {
		return false
	}
	if h == s.moveHandle {
		return true
	}
	for _, c := range s.handles {
		if c == h {
			return true
		}
	}
	return false
}

// Deactivate clears the active flag of every handle
func (s *State) Deactivate() {
	s.moveHandle.Active = false
	for _, h := range s.handles {
		h.Active = false
	}
}

// ActivateOnly deactivates every handle and then activates h
func (s *State) ActivateOnly(h *Handle) {
	s.Deactivate()
	if s.Owns(h) {
		h.Active = true
	}
}

// Reset removes all committed handles and hides the move handle
func (s *State) Reset() {
	s.handles = s.handles[:0]
	s.moveHandle.Active = false
	s.moveHandle.Visible = false
	s.moveHandle.ClearOrigin()
}

// Bounds returns the box around all placed handles, each taken as a sphere
// of diameter Scale
func (s *State) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	add := func(h *Handle) {
		origin, ok := h.Origin()
		if !ok {
			return
		}
		radius := h.Scale / 2
		if s.ScaleInPixels {
			radius = 0
		}
		bbox.ExtendSphere(origin, radius)
	}
	for _, h := range s.handles {
		add(h)
	}
	if s.moveHandle.Visible {
		add(s.moveHandle)
	}
	return bbox
}
