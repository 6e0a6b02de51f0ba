package raster

import "github.com/go-gl/mathgl/mgl32"

// Interpolate is the contract every varying bundle must satisfy so the
// rasterizer can blend it across a triangle. Implementations enumerate their
// leaf fields explicitly using the Correct*/Blend* helpers below; a field type
// without a helper is a compile error rather than silently wrong output.
type Interpolate[T any] interface {
	// Zero returns a bundle with every leaf field at its additive identity.
	Zero() T

	// Correct divides every leaf field by the vertex's clip-space w. Raw
	// attributes are not linear in screen space; attributes divided by w are,
	// which is what makes the blend in Interpolate perspective-correct.
	Correct(w float32) T

	// Interpolate blends the receiver (vertex 0) with v1 and v2 using the
	// pixel's barycentric weights. invW is the barycentric blend of the three
	// vertices' 1/w and undoes the Correct step.
	Interpolate(v1, v2 T, w0, w1, w2, invW float32) T
}

// Correct divides a scalar leaf field by the clip-space w.
func Correct(a, w float32) float32 { return a / w }

func CorrectVec2(v mgl32.Vec2, w float32) mgl32.Vec2 { return v.Mul(1 / w) }

func CorrectVec3(v mgl32.Vec3, w float32) mgl32.Vec3 { return v.Mul(1 / w) }

func CorrectVec4(v mgl32.Vec4, w float32) mgl32.Vec4 { return v.Mul(1 / w) }

// Blend is the perspective-correct blend of one scalar leaf field.
func Blend(a, b, c, w0, w1, w2, invW float32) float32 {
	return (w0*a + w1*b + w2*c) / invW
}

func BlendVec2(a, b, c mgl32.Vec2, w0, w1, w2, invW float32) mgl32.Vec2 {
	return a.Mul(w0).Add(b.Mul(w1)).Add(c.Mul(w2)).Mul(1 / invW)
}

func BlendVec3(a, b, c mgl32.Vec3, w0, w1, w2, invW float32) mgl32.Vec3 {
	return a.Mul(w0).Add(b.Mul(w1)).Add(c.Mul(w2)).Mul(1 / invW)
}

func BlendVec4(a, b, c mgl32.Vec4, w0, w1, w2, invW float32) mgl32.Vec4 {
	return a.Mul(w0).Add(b.Mul(w1)).Add(c.Mul(w2)).Mul(1 / invW)
}
