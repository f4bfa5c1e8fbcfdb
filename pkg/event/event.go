// Package event defines the device independent input events consumed by widgets.
package event

import "strings"

// Type identifies the kind of an input event
type Type int

const (
	Press Type = iota
	Move
	Release
	KeyDown
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case KeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
)

// Has reports whether all bits of m are set
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

func (mods Modifier) String() string {
	var parts []string
	if mods.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if mods.Has(ModControl) {
		parts = append(parts, "control")
	}
	if mods.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// Key identifies a keyboard key relevant to widget interaction
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// Position is a screen position in pixels, origin at the top left corner
type Position struct {
	X, Y float64
}

// Event is a single pointer or keyboard event
type Event struct {
	Type      Type
	Position  Position
	Button    Button
	Modifiers Modifier
	Key       Key
}

// NewPress creates a left button press at (x, y)
func NewPress(x, y float64) Event {
	return Event{Type: Press, Position: Position{X: x, Y: y}, Button: ButtonLeft}
}

// NewMove creates a pointer move to (x, y)
func NewMove(x, y float64) Event {
	return Event{Type: Move, Position: Position{X: x, Y: y}}
}

// NewRelease creates a left button release at (x, y)
func NewRelease(x, y float64) Event {
	return Event{Type: Release, Position: Position{X: x, Y: y}, Button: ButtonLeft}
}

// NewKey creates a key press
func NewKey(k Key) Event {
	return Event{Type: KeyDown, Key: k}
}

// WithModifiers returns a copy of e with the given modifiers held
func (e Event) WithModifiers(m Modifier) Event {
	e.Modifiers = m
	return e
}

// HasModifier reports whether shift, control or alt is held
func (e Event) HasModifier() bool {
	return e.Modifiers&(ModShift|ModControl|ModAlt) != 0
}
