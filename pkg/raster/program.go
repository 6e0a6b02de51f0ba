package raster

import "github.com/go-gl/mathgl/mgl32"

// VertexProgram transforms one vertex into clip space. It runs once per
// input vertex per triangle and populates the varying out-parameter consumed
// by the fragment stage after interpolation. The returned position's w is the
// perspective divisor and must be non-zero.
type VertexProgram[U, V any, T Interpolate[T]] func(uniform *U, vertex *V, varying *T) mgl32.Vec4

// FragmentProgram computes the color of one covered pixel from the uniform
// and the perspective-correct interpolated varying.
type FragmentProgram[U any, T Interpolate[T]] func(uniform *U, varying *T) mgl32.Vec4

// Target is the writable color destination of a draw call. The rasterizer
// only ever writes to it, with x in [0, Width) and y in [0, Height).
type Target interface {
	Width() int
	Height() int
	Set(x, y int, color mgl32.Vec4)
}
