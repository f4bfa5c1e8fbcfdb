package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/widgetstate"
)

func downRay(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x, y, 10), geometry.NewVector3(0, 0, -1))
}

func TestPickNearest(t *testing.T) {
	near := widgetstate.NewHandle("near")
	far := widgetstate.NewHandle("far")

	p := New()
	p.SetPickList([]Prop{
		{Handle: far, Shape: Sphere{Center: geometry.NewVector3(0, 0, 0), Radius: 1}},
		{Handle: near, Shape: Sphere{Center: geometry.NewVector3(0, 0, 5), Radius: 1}},
	})

	hit, ok := p.Pick(downRay(0, 0))
	require.True(t, ok)
	assert.Same(t, near, hit.Prop.Handle)
	assert.InDelta(t, 4.0, hit.Distance, 1e-9)
	assert.True(t, hit.Point.ApproxEqual(geometry.NewVector3(0, 0, 6), 1e-9))
}

func TestPickSkipsInvisibleHandles(t *testing.T) {
	hidden := widgetstate.NewHandle("hidden")
	hidden.Visible = false

	p := New()
	p.AddPickList(Prop{Handle: hidden, Shape: Sphere{Radius: 1}})
	_, ok := p.Pick(downRay(0, 0))
	assert.False(t, ok)
}

func TestPickDisc(t *testing.T) {
	h := widgetstate.NewHandle("plane")
	p := New()
	p.SetPickList([]Prop{{Handle: h, Shape: Disc{Normal: geometry.NewVector3(0, 0, 1), Radius: 2}}})

	_, ok := p.Pick(downRay(1, 1))
	assert.True(t, ok)
	_, ok = p.Pick(downRay(3, 0))
	assert.False(t, ok)
}

func TestInitializePickList(t *testing.T) {
	p := New()
	p.AddPickList(Prop{Handle: widgetstate.NewHandle("a"), Shape: Sphere{Radius: 1}})
	assert.Equal(t, 1, p.Len())
	p.InitializePickList()
	assert.Equal(t, 0, p.Len())
	_, ok := p.Pick(downRay(0, 0))
	assert.False(t, ok)
}
