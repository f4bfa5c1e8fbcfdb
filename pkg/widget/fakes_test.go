package widget

import "github.com/philipparndt/gizmo/pkg/geometry"

// fakeWindow looks down -Z: screen (x, y) maps to the world line through (x, y, 10)
type fakeWindow struct {
	cursor  Cursor
	cursors []Cursor
	focal   geometry.Vector3
}

func (w *fakeWindow) ScreenToWorldRay(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, y, 10), geometry.NewVector3(0, 0, -1))
}
func (w *fakeWindow) ViewDirection() geometry.Vector3  { return geometry.NewVector3(0, 0, -1) }
func (w *fakeWindow) ViewUp() geometry.Vector3         { return geometry.NewVector3(0, 1, 0) }
func (w *fakeWindow) FocalPoint() geometry.Vector3     { return w.focal }
func (w *fakeWindow) ViewportSize() (float64, float64) { return 400, 300 }
func (w *fakeWindow) PixelSize(geometry.Vector3) float64 {
	return 1
}
func (w *fakeWindow) WorldToScreen(p geometry.Vector3) (float64, float64, bool) {
	return p.X, p.Y, true
}
func (w *fakeWindow) SetCursor(c Cursor) {
	w.cursor = c
	w.cursors = append(w.cursors, c)
}

type fakeInteractor struct {
	animations map[Animator]bool
	requests   int
	renders    int
}

func newFakeInteractor() *fakeInteractor {
	return &fakeInteractor{animations: map[Animator]bool{}}
}

func (i *fakeInteractor) RequestAnimation(a Animator) {
	i.requests++
	i.animations[a] = true
}

func (i *fakeInteractor) CancelAnimation(a Animator) {
	delete(i.animations, a)
}

func (i *fakeInteractor) Render() {
	i.renders++
}

type fakePicking struct {
	enabled  bool
	disables int
}

func (p *fakePicking) EnablePicking() { p.enabled = true }
func (p *fakePicking) DisablePicking() {
	p.enabled = false
	p.disables++
}

type harness struct {
	window     *fakeWindow
	interactor *fakeInteractor
	picking    *fakePicking
}

func bind(w Widget) harness {
	h := harness{
		window:     &fakeWindow{},
		interactor: newFakeInteractor(),
		picking:    &fakePicking{enabled: true},
	}
	w.Bind(Context{Window: h.window, Interactor: h.interactor, Picking: h.picking})
	return h
}
