// Package stl loads triangle scenes from STL files. A scene supplies the
// data bounds the plane widget is confined to and the mesh the hosts draw
// and clip.
package stl

import (
	"github.com/philipparndt/gizmo/pkg/geometry"
)

// Model is a triangle soup read from an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the bounds of all vertices. It is invalid for an
// empty model.
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		for _, v := range triangle.Vertices() {
			bbox.Extend(v)
		}
	}
	return bbox
}

// SurfaceArea returns the summed area of all triangles
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Section is a model clipped against a plane
type Section struct {
	// Kept holds the triangles on the positive side of the plane
	Kept []geometry.Triangle
	// Cut holds the segments where triangles cross the plane
	Cut []geometry.Segment
}

// Clip keeps the part of the model on the side the normal points to
func (m *Model) Clip(origin, normal geometry.Vector3) Section {
	section := Section{Kept: make([]geometry.Triangle, 0, len(m.Triangles))}
	for _, triangle := range m.Triangles {
		kept, cut, ok := geometry.ClipTriangle(triangle, origin, normal)
		section.Kept = append(section.Kept, kept...)
		if ok {
			section.Cut = append(section.Cut, cut)
		}
	}
	return section
}
