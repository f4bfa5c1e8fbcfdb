package stl

import (
	"math"

	"github.com/philipparndt/gizmo/pkg/geometry"
)

// Stats summarizes a model for the info command
type Stats struct {
	Triangles   int
	Edges       int
	SurfaceArea float64
	Bounds      geometry.BoundingBox
	MinEdge     float64
	MaxEdge     float64
	AvgEdge     float64
}

// Stats computes the model statistics. Edges are counted per triangle,
// so a shared edge counts twice.
func (m *Model) Stats() Stats {
	s := Stats{
		Triangles:   m.TriangleCount(),
		SurfaceArea: m.SurfaceArea(),
		Bounds:      m.BoundingBox(),
	}
	if len(m.Triangles) == 0 {
		return s
	}

	s.MinEdge = math.MaxFloat64
	total := 0.0
	for _, triangle := range m.Triangles {
		for _, length := range triangle.EdgeLengths() {
			total += length
			s.MinEdge = math.Min(s.MinEdge, length)
			s.MaxEdge = math.Max(s.MaxEdge, length)
			s.Edges++
		}
	}
	s.AvgEdge = total / float64(s.Edges)
	return s
}
