package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeLayout(t *testing.T) {
	m := Cube(1)
	if len(m.Vertices) != 24 {
		t.Fatalf("got %d vertices, want 24", len(m.Vertices))
	}
	if m.TriangleCount() != 12 {
		t.Fatalf("got %d triangles, want 12", m.TriangleCount())
	}

	for i, v := range m.Vertices {
		// every corner sits on the face its normal names
		if got := v.Position.Vec3().Dot(v.Normal); got != 1 {
			t.Fatalf("vertex %d: position/normal dot = %v, want 1", i, got)
		}
		if v.Position.W() != 1 {
			t.Fatalf("vertex %d: w = %v, want 1", i, v.Position.W())
		}
	}
}

func TestCubeWindingOutward(t *testing.T) {
	m := Cube(1)
	for n := 0; n < m.TriangleCount(); n++ {
		v0, v1, v2 := m.Triangle(n)
		p0 := v0.Position.Vec3()
		// emitted order is reversed, so this cross points outward
		face := v2.Position.Vec3().Sub(p0).Cross(v1.Position.Vec3().Sub(p0))
		if face.Dot(v0.Normal) <= 0 {
			t.Fatalf("triangle %d winds inward (cross %v, normal %v)", n, face, v0.Normal)
		}
	}
}

func TestPlaneLayout(t *testing.T) {
	m := Plane(2)
	if len(m.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(m.Vertices))
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("got %d triangles, want 2", m.TriangleCount())
	}

	up := mgl32.Vec3{0, 1, 0}
	for i, v := range m.Vertices {
		if v.Normal != up {
			t.Fatalf("vertex %d normal: got %v, want %v", i, v.Normal, up)
		}
		if v.Position.Y() != 0 {
			t.Fatalf("vertex %d not on the y = 0 plane: %v", i, v.Position)
		}
	}

	for n := 0; n < m.TriangleCount(); n++ {
		v0, v1, v2 := m.Triangle(n)
		p0 := v0.Position.Vec3()
		face := v2.Position.Vec3().Sub(p0).Cross(v1.Position.Vec3().Sub(p0))
		if face.Dot(up) <= 0 {
			t.Fatalf("triangle %d winds downward", n)
		}
	}
}
