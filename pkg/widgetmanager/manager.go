// Package widgetmanager routes input to widgets, owns hover picking and
// drives the per-frame animation of widgets that are being interacted with.
package widgetmanager

import (
	"log/slog"

	"github.com/philipparndt/gizmo/pkg/event"
	"github.com/philipparndt/gizmo/pkg/picker"
	"github.com/philipparndt/gizmo/pkg/widget"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

// Diagnostics is a read-only snapshot of the manager state
type Diagnostics struct {
	Widgets        int
	Animating      int
	PickingEnabled bool
	PickListSize   int
	Focused        string
	Hovered        string
	Frames         uint64
	Renders        uint64
	Consumed       uint64
	PassedThrough  uint64
}

// Manager owns the widgets of one render window
type Manager struct {
	window  widget.RenderWindow
	widgets []widget.Widget
	owners  map[*widgetstate.Handle]widget.Widget

	picker         *picker.Picker
	pickingEnabled bool
	hovered        *widgetstate.Handle

	animations []widget.Animator
	focused    widget.Widget
	repaint    func()

	frames, renders, consumed, passed uint64
	logger                            *slog.Logger
}

// New creates a manager for window
func New(window widget.RenderWindow) *Manager {
	return &Manager{
		window:         window,
		owners:         make(map[*widgetstate.Handle]widget.Widget),
		picker:         picker.New(),
		pickingEnabled: true,
		logger:         slog.Default().With("component", "widgetmanager"),
	}
}

// SetRepaint installs the hook that repaints the window
func (m *Manager) SetRepaint(fn func()) {
	m.repaint = fn
}

// AddWidget binds w to the manager and its window
func (m *Manager) AddWidget(w widget.Widget) {
	for _, existing := range m.widgets {
		if existing == w {
			return
		}
	}
	w.Bind(widget.Context{Window: m.window, Interactor: m, Picking: m})
	m.widgets = append(m.widgets, w)
	w.Representation().Update(m.window)
	m.logger.Debug("widget added", "widget", w.Name(), "kind", w.Kind())
}

// RemoveWidget ends any interaction of w and unbinds it
func (m *Manager) RemoveWidget(w widget.Widget) {
	for i, existing := range m.widgets {
		if existing != w {
			continue
		}
		if w.HasFocus() || w.IsDragging() {
			w.LoseFocus()
		}
		if m.focused == w {
			m.focused = nil
		}
		m.widgets = append(m.widgets[:i], m.widgets[i+1:]...)
		w.Bind(widget.Context{})
		m.rebuildPickList()
		return
	}
}

// Widgets returns the managed widgets in insertion order
func (m *Manager) Widgets() []widget.Widget {
	out := make([]widget.Widget, len(m.widgets))
	copy(out, m.widgets)
	return out
}

// EnablePicking turns hover picking on
func (m *Manager) EnablePicking() {
	m.pickingEnabled = true
}

// DisablePicking turns hover picking off
func (m *Manager) DisablePicking() {
	m.pickingEnabled = false
}

// PickingEnabled reports whether hover picking is on
func (m *Manager) PickingEnabled() bool {
	return m.pickingEnabled
}

// RequestAnimation registers a for per-frame callbacks. Registering twice is a no-op.
func (m *Manager) RequestAnimation(a widget.Animator) {
	for _, existing := range m.animations {
		if existing == a {
			return
		}
	}
	m.animations = append(m.animations, a)
}

// CancelAnimation unregisters a. Unknown animators are ignored.
func (m *Manager) CancelAnimation(a widget.Animator) {
	for i, existing := range m.animations {
		if existing == a {
			m.animations = append(m.animations[:i], m.animations[i+1:]...)
			return
		}
	}
}

// IsAnimating reports whether any animator is registered
func (m *Manager) IsAnimating() bool {
	return len(m.animations) > 0
}

// Frame runs one animation frame: every registered animator exactly once,
// then a repaint
func (m *Manager) Frame() {
	if len(m.animations) == 0 {
		return
	}
	snapshot := make([]widget.Animator, len(m.animations))
	copy(snapshot, m.animations)
	for _, a := range snapshot {
		a.AnimationFrame()
	}
	m.frames++
	if m.repaint != nil {
		m.repaint()
	}
}

// Render updates every representation and repaints once
func (m *Manager) Render() {
	for _, w := range m.widgets {
		w.Representation().Update(m.window)
	}
	m.renders++
	if m.repaint != nil {
		m.repaint()
	}
}

// GrabFocus gives w the focus, taking it from the previously focused widget
func (m *Manager) GrabFocus(w widget.Widget) {
	if m.focused != nil && m.focused != w && m.focused.HasFocus() {
		m.focused.LoseFocus()
	}
	m.focused = w
	w.GrabFocus()
	m.Render()
}

// ReleaseFocus takes the focus from the focused widget
func (m *Manager) ReleaseFocus() {
	if m.focused != nil && m.focused.HasFocus() {
		m.focused.LoseFocus()
	}
	m.focused = nil
}

// Focused returns the widget holding the focus, nil when there is none
func (m *Manager) Focused() widget.Widget {
	if m.focused != nil && !m.focused.HasFocus() {
		m.focused = nil
	}
	return m.focused
}

// HandleEvent dispatches e to the widgets. Pointer moves no widget
// consumed update the hovered handle while picking is enabled.
func (m *Manager) HandleEvent(e event.Event) widget.EventResult {
	if e.Type == event.KeyDown {
		return m.handleKey(e)
	}
	if e.Type == event.Press {
		m.rebuildPickList()
	}

	for _, w := range m.widgets {
		if w.HandleEvent(e) == widget.Consumed {
			m.consumed++
			return widget.Consumed
		}
	}
	m.passed++

	if e.Type == event.Move && m.pickingEnabled {
		m.updateHover(e)
	}
	return widget.PassThrough
}

func (m *Manager) handleKey(e event.Event) widget.EventResult {
	if e.Key == event.KeyEscape {
		if focused := m.Focused(); focused != nil {
			focused.LoseFocus()
			m.focused = nil
			m.consumed++
			return widget.Consumed
		}
	}
	m.passed++
	return widget.PassThrough
}

func (m *Manager) rebuildPickList() {
	m.picker.InitializePickList()
	m.owners = make(map[*widgetstate.Handle]widget.Widget, len(m.owners))
	for _, w := range m.widgets {
		props := w.Representation().Props()
		m.picker.AddPickList(props...)
		for _, p := range props {
			m.owners[p.Handle] = w
		}
	}
}

func (m *Manager) updateHover(e event.Event) {
	m.rebuildPickList()
	ray := m.window.ScreenToWorldRay(e.Position.X, e.Position.Y)
	hit, ok := m.picker.Pick(ray)

	var selected *widgetstate.Handle
	var owner widget.Widget
	if ok {
		selected = hit.Prop.Handle
		owner = m.owners[selected]
	}

	for _, w := range m.widgets {
		if w == owner {
			w.ActivateHandle(selected)
		} else {
			w.DeactivateAllHandles()
		}
	}

	if selected == m.hovered {
		return
	}
	if selected == nil {
		m.window.SetCursor(widget.CursorDefault)
	} else if selected.Role == widgetstate.RoleNone {
		m.window.SetCursor(widget.CursorPointer)
	}
	m.hovered = selected
	m.Render()
}

// Diagnostics returns a snapshot of the manager state
func (m *Manager) Diagnostics() Diagnostics {
	d := Diagnostics{
		Widgets:        len(m.widgets),
		Animating:      len(m.animations),
		PickingEnabled: m.pickingEnabled,
		PickListSize:   m.picker.Len(),
		Frames:         m.frames,
		Renders:        m.renders,
		Consumed:       m.consumed,
		PassedThrough:  m.passed,
	}
	if f := m.Focused(); f != nil {
		d.Focused = f.Name()
	}
	if m.hovered != nil {
		d.Hovered = m.hovered.Name()
	}
	return d
}
