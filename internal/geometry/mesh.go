package geometry

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the attribute bundle meshes feed to the vertex stage.
type Vertex struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is an indexed triangle list; every triple of indices forms one
// triangle wound for this renderer's front-face convention
// (counter-clockwise in screen space, y growing downward).
type Mesh struct {
	Vertices []Vertex
	Indices  []int
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three vertices of triangle n.
func (m *Mesh) Triangle(n int) (*Vertex, *Vertex, *Vertex) {
	i := n * 3
	return &m.Vertices[m.Indices[i]],
		&m.Vertices[m.Indices[i+1]],
		&m.Vertices[m.Indices[i+2]]
}
