package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gizmo/pkg/geometry"
	"github.com/philipparndt/gizmo/pkg/representation"
)

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// trianglesToMesh converts triangles to a raylib mesh with baked lighting
func trianglesToMesh(triangles []geometry.Triangle) rl.Mesh {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	uv := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

	idx := 0
	for _, triangle := range triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 200.0
		r := uint8(baseColor * lightIntensity * 0.5)
		g := uint8(baseColor * lightIntensity * 0.6)
		b := uint8(baseColor * lightIntensity)

		for k, v := range triangle.Vertices() {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = uv[k][0]
			texcoords[idx*2+1] = uv[k][1]
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = b
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}

// rebuildMesh uploads the scene, clipped by the plane widget when there is one
func (app *App) rebuildMesh() {
	m := &app.Model
	m.clipDirty = false
	if m.model == nil {
		return
	}

	triangles := m.model.Triangles
	m.cut = nil
	if plane := app.Widgets.plane; plane != nil {
		section := m.model.Clip(plane.State().Origin(), plane.State().Normal())
		triangles = section.Kept
		m.cut = section.Cut
	}

	if m.hasMesh {
		rl.UnloadMesh(&m.mesh)
		m.hasMesh = false
	}
	if len(triangles) == 0 {
		return
	}
	m.mesh = trianglesToMesh(triangles)
	m.hasMesh = true
}

// drawScene draws the scene mesh and the cut outline in 3D mode
func (app *App) drawScene() {
	if app.Model.hasMesh && app.View.showFilled {
		rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
	}
	if app.Model.model != nil && app.View.showWireframe && app.Widgets.plane == nil {
		wire := rl.NewColor(100, 100, 100, 200)
		for _, t := range app.Model.model.Triangles {
			v1, v2, v3 := toRl(t.V1), toRl(t.V2), toRl(t.V3)
			rl.DrawLine3D(v1, v2, wire)
			rl.DrawLine3D(v2, v3, wire)
			rl.DrawLine3D(v3, v1, wire)
		}
	}
	cutColor := rl.NewColor(255, 200, 60, 255)
	for _, s := range app.Model.cut {
		rl.DrawLine3D(toRl(s.A), toRl(s.B), cutColor)
	}
}

// drawPrimitives draws widget primitives in 3D mode. Labels are returned
// for the 2D pass.
func drawPrimitives(primitives []representation.Primitive, labels []representation.Primitive) []representation.Primitive {
	for _, p := range primitives {
		if len(p.Points) == 0 {
			continue
		}
		col := rlColor(p.Color)

		switch p.Kind {
		case representation.KindSphere:
			center := toRl(p.Points[0])
			radius := float32(p.Radius)
			rl.DrawSphere(center, radius, col)
			if p.Active {
				rl.DrawSphereWires(center, radius*1.15, 8, 12, rl.White)
			}

		case representation.KindLine:
			for i := 0; i+1 < len(p.Points); i++ {
				rl.DrawLine3D(toRl(p.Points[i]), toRl(p.Points[i+1]), col)
			}

		case representation.KindPolygon:
			drawPolygon(p.Points, col, p.Active)

		case representation.KindLabel:
			labels = append(labels, p)
		}
	}
	return labels
}

// drawPolygon fills a convex polygon from both sides and outlines it
func drawPolygon(points []geometry.Vector3, col rl.Color, active bool) {
	if len(points) < 3 {
		return
	}
	first := toRl(points[0])
	for i := 1; i+1 < len(points); i++ {
		b, c := toRl(points[i]), toRl(points[i+1])
		rl.DrawTriangle3D(first, b, c, col)
		rl.DrawTriangle3D(first, c, b, col)
	}

	outline := col
	outline.A = 255
	if active {
		outline = rl.White
	}
	for i := range points {
		rl.DrawLine3D(toRl(points[i]), toRl(points[(i+1)%len(points)]), outline)
	}
}

// drawLabel draws a boxed text centered above a screen position
func drawLabel(text string, x, y float32, col rl.Color) rl.Rectangle {
	const fontSize = 20
	const padding = 4

	font := rl.GetFontDefault()
	textSize := rl.MeasureTextEx(font, text, fontSize, 1)
	rect := rl.Rectangle{
		X:      x - textSize.X/2 - padding,
		Y:      y - textSize.Y - 2*padding - 8,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 2, col)
	rl.DrawTextEx(font, text, rl.Vector2{X: rect.X + padding, Y: rect.Y + padding}, fontSize, 1, col)
	return rect
}

// drawLabels draws label primitives in screen space
func (app *App) drawLabels(labels []representation.Primitive) {
	for _, l := range labels {
		x, y, ok := app.window.WorldToScreen(l.Points[0])
		if !ok {
			continue
		}
		drawLabel(l.Text, float32(x), float32(y), rlColor(l.Color))
	}
}
