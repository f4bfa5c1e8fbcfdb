package geometry

// Triangle is a facet of a scene mesh. Normal is the stored facet normal,
// which may be zero in files that leave it to the reader.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Vertices returns the corners in winding order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

func (t Triangle) cross() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// CalculateNormal returns the unit normal from the winding order, zero
// for a degenerate triangle
func (t Triangle) CalculateNormal() Vector3 {
	return t.cross().Normalize()
}

// Area returns the surface area
func (t Triangle) Area() float64 {
	return t.cross().Length() / 2
}

// EdgeLengths returns the lengths of V1V2, V2V3 and V3V1
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}
