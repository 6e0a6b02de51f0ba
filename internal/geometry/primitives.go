package geometry

import "github.com/go-gl/mathgl/mgl32"

var cornerColors = [4]mgl32.Vec4{
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 1, 1, 1},
}

var cornerUVs = [4]mgl32.Vec2{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// Cube builds an axis-aligned cube of half-extent s centered on the origin,
// with per-face normals and a color/UV at each corner.
func Cube(s float32) *Mesh {
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-s, -s, -s}, {-s, s, -s}, {s, s, -s}, {s, -s, -s}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-s, s, -s}, {-s, s, s}, {s, s, s}, {s, s, -s}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{s, -s, -s}, {s, s, -s}, {s, s, s}, {s, -s, s}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
	}

	m := &Mesh{}
	for _, f := range faces {
		base := len(m.Vertices)
		for i, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{
				Position: c.Vec4(1),
				Color:    cornerColors[i],
				Normal:   f.normal,
				UV:       cornerUVs[i],
			})
		}
		appendQuad(m, base)
	}
	return m
}

// Plane builds a horizontal quad of half-extent s at y = 0 facing up.
func Plane(s float32) *Mesh {
	corners := [4]mgl32.Vec3{{-s, 0, -s}, {-s, 0, s}, {s, 0, s}, {s, 0, -s}}
	m := &Mesh{}
	for i, c := range corners {
		m.Vertices = append(m.Vertices, Vertex{
			Position: c.Vec4(1),
			Color:    mgl32.Vec4{1, 1, 1, 1},
			Normal:   mgl32.Vec3{0, 1, 0},
			UV:       cornerUVs[i],
		})
	}
	appendQuad(m, 0)
	return m
}

// appendQuad emits the two triangles of a quad whose corners were laid out
// counter-clockwise around the outward normal.
func appendQuad(m *Mesh, base int) {
	m.Indices = append(m.Indices,
		base, base+2, base+1,
		base, base+3, base+2,
	)
}
