package geometry

import (
	"math"
	"sort"
)

// Segment is a straight line between two points
type Segment struct {
	A, B Vector3
}

// SignedDistance returns the signed distance of p to the plane (origin, normal)
func SignedDistance(p, origin, normal Vector3) float64 {
	return p.Sub(origin).Dot(normal.Normalize())
}

// ClipTriangle clips a triangle against the plane (origin, normal), keeping the
// half space the normal points into. When the plane crosses the triangle the cut
// segment lying in the plane is returned with ok set.
func ClipTriangle(tri Triangle, origin, normal Vector3) (kept []Triangle, cut Segment, ok bool) {
	vertices := tri.Vertices()
	var dist [3]float64
	inside := [3]bool{}
	insideCount := 0
	for i, v := range vertices {
		dist[i] = SignedDistance(v, origin, normal)
		inside[i] = dist[i] >= 0
		if inside[i] {
			insideCount++
		}
	}

	switch insideCount {
	case 3:
		return []Triangle{tri}, Segment{}, false
	case 0:
		return nil, Segment{}, false
	}

	crossing := func(i, j int) Vector3 {
		t := dist[i] / (dist[i] - dist[j])
		return vertices[i].Lerp(vertices[j], t)
	}

	if insideCount == 1 {
		var in int
		for i := range inside {
			if inside[i] {
				in = i
				break
			}
		}
		a, b := (in+1)%3, (in+2)%3
		p1 := crossing(in, a)
		p2 := crossing(in, b)
		kept = []Triangle{NewTriangle(tri.Normal, vertices[in], p1, p2)}
		return kept, Segment{A: p1, B: p2}, true
	}

	// two vertices inside, one outside: the kept part is a quad
	var out int
	for i := range inside {
		if !inside[i] {
			out = i
			break
		}
	}
	a, b := (out+1)%3, (out+2)%3
	p1 := crossing(out, a)
	p2 := crossing(out, b)
	kept = []Triangle{
		NewTriangle(tri.Normal, vertices[a], vertices[b], p1),
		NewTriangle(tri.Normal, vertices[b], p2, p1),
	}
	return kept, Segment{A: p1, B: p2}, true
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxEdges returns the twelve edges of the box
func (b BoundingBox) BoxEdges() []Segment {
	corners := b.Corners()
	edges := make([]Segment, 0, len(boxEdges))
	for _, e := range boxEdges {
		edges = append(edges, Segment{A: corners[e[0]], B: corners[e[1]]})
	}
	return edges
}

// Basis returns two unit vectors that together with n form an orthonormal basis
func Basis(n Vector3) (u, v Vector3) {
	n = n.Normalize()
	helper := NewVector3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		helper = NewVector3(0, 1, 0)
	}
	u = helper.Cross(n).Normalize()
	v = n.Cross(u)
	return u, v
}

// PlaneBoxPolygon returns the convex polygon where the plane (origin, normal)
// cuts the box, ordered around its centroid. It is empty when the plane misses the box.
func PlaneBoxPolygon(origin, normal Vector3, box BoundingBox) []Vector3 {
	if !box.IsValid() || normal.IsZero() {
		return nil
	}
	var points []Vector3
	addUnique := func(p Vector3) {
		for _, q := range points {
			if q.ApproxEqual(p, 1e-9) {
				return
			}
		}
		points = append(points, p)
	}
	for _, e := range box.BoxEdges() {
		da := SignedDistance(e.A, origin, normal)
		db := SignedDistance(e.B, origin, normal)
		switch {
		case da == 0:
			addUnique(e.A)
		case db == 0:
			addUnique(e.B)
		case (da < 0) != (db < 0):
			addUnique(e.A.Lerp(e.B, da/(da-db)))
		}
	}
	if len(points) < 3 {
		return nil
	}

	var centroid Vector3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(points)))

	u, v := Basis(normal)
	sort.Slice(points, func(i, j int) bool {
		di := points[i].Sub(centroid)
		dj := points[j].Sub(centroid)
		return math.Atan2(di.Dot(v), di.Dot(u)) < math.Atan2(dj.Dot(v), dj.Dot(u))
	})
	return points
}
