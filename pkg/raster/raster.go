// Package raster is a software scan-conversion engine. Triangle takes a
// caller-shaded clip-space triangle through screen mapping, backface and
// degeneracy rejection, flat-top/flat-bottom scanline decomposition,
// per-pixel barycentric weighting, depth testing against a DepthBuffer and
// perspective-correct interpolation of an arbitrary varying bundle, then
// hands each surviving pixel to the fragment program.
package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// areaEpsilon guards the barycentric denominator. Triangles whose signed
// screen-space area is below it are back-facing or degenerate and are skipped
// before any per-pixel work.
const areaEpsilon = 1e-6

// wEpsilon rejects clip positions whose perspective divisor is effectively
// zero.
const wEpsilon = 1e-8

// Triangle rasterizes one triangle. The vertex program runs once per input
// vertex, producing a clip position and a varying bundle; covered pixels that
// pass the depth test receive the fragment program's color. Front faces wind
// counter-clockwise in screen space (y grows downward); the rest are culled.
// Triangles with any vertex behind the near plane are discarded whole, there
// is no partial clipping.
//
// The call owns depth and target exclusively for its duration; triangles of
// a frame are submitted sequentially. The depth comparison is non-strict, so
// on equal depth the last submitted triangle wins.
func Triangle[U, V any, T Interpolate[T]](
	vertex VertexProgram[U, V, T],
	fragment FragmentProgram[U, T],
	depth *DepthBuffer,
	target Target,
	uniform *U,
	v0, v1, v2 *V,
) {
	halfW := float32(target.Width()) * 0.5
	halfH := float32(target.Height()) * 0.5

	var zero T
	vy0 := zero.Zero()
	vy1 := zero.Zero()
	vy2 := zero.Zero()

	p0 := vertex(uniform, v0, &vy0)
	p1 := vertex(uniform, v1, &vy1)
	p2 := vertex(uniform, v2, &vy2)

	// Crude near-plane reject, the documented stand-in for frustum clipping.
	if p0.Z() < 0 || p1.Z() < 0 || p2.Z() < 0 {
		return
	}
	if !finiteClip(p0) || !finiteClip(p1) || !finiteClip(p2) {
		return
	}

	s0 := screenPos(p0, halfW, halfH)
	s1 := screenPos(p1, halfW, halfH)
	s2 := screenPos(p2, halfW, halfH)

	// The signed area doubles as the winding test and the degeneracy guard.
	area := edge(s0, s1, s2)
	if area <= areaEpsilon {
		return
	}

	tri := triangle[U, T]{
		fragment: fragment,
		depth:    depth,
		target:   target,
		uniform:  uniform,
		vy0:      vy0.Correct(p0.W()),
		vy1:      vy1.Correct(p1.W()),
		vy2:      vy2.Correct(p2.W()),
		iw0:      1 / p0.W(),
		iw1:      1 / p1.W(),
		iw2:      1 / p2.W(),
		s0:       s0,
		s1:       s1,
		s2:       s2,
		area:     area,
	}
	tri.scan()
}

// triangle carries the per-primitive state through scan conversion so the
// span loops stay free of parameter plumbing. Varyings are already
// perspective-corrected and kept in submission order, matching s0..s2.
type triangle[U any, T Interpolate[T]] struct {
	fragment FragmentProgram[U, T]
	depth    *DepthBuffer
	target   Target
	uniform  *U

	vy0, vy1, vy2 T
	iw0, iw1, iw2 float32

	s0, s1, s2 mgl32.Vec2
	area       float32
}

// scan decomposes the triangle into flat-bottom and flat-top halves. A
// generic scanline fill only has a closed-form per-row x range when the top
// or bottom edge is horizontal, so the general case is split on the long edge
// at the middle vertex's height. The split row belongs to the flat-top half,
// so no row is walked twice.
func (t *triangle[U, T]) scan() {
	a, b, c := t.s0, t.s1, t.s2
	if a.Y() > b.Y() {
		a, b = b, a
	}
	if b.Y() > c.Y() {
		b, c = c, b
	}
	if a.Y() > b.Y() {
		a, b = b, a
	}

	switch {
	case b.Y() == c.Y():
		t.fillFlatBottom(a, b, c)
	case a.Y() == b.Y():
		t.fillFlatTop(a, b, c)
	default:
		m := mgl32.Vec2{
			a.X() + (b.Y()-a.Y())/(c.Y()-a.Y())*(c.X()-a.X()),
			b.Y(),
		}
		t.fillFlatBottom(a, b, m)
		t.fillFlatTop(b, m, c)
	}
}

// fillFlatBottom walks rows [apex.y, base.y) of a triangle whose bottom edge
// is horizontal, interpolating the row's x bounds along the two slanted
// edges.
func (t *triangle[U, T]) fillFlatBottom(apex, b0, b1 mgl32.Vec2) {
	dy := b0.Y() - apex.Y()
	if dy <= 0 {
		return
	}
	y0 := ceilInt(apex.Y())
	y1 := ceilInt(b0.Y())
	for y := y0; y < y1; y++ {
		s := (float32(y) - apex.Y()) / dy
		xa := apex.X() + s*(b0.X()-apex.X())
		xb := apex.X() + s*(b1.X()-apex.X())
		t.span(y, xa, xb)
	}
}

// fillFlatTop walks rows [top.y, apex.y) of a triangle whose top edge is
// horizontal.
func (t *triangle[U, T]) fillFlatTop(t0, t1, apex mgl32.Vec2) {
	dy := apex.Y() - t0.Y()
	if dy <= 0 {
		return
	}
	y0 := ceilInt(t0.Y())
	y1 := ceilInt(apex.Y())
	for y := y0; y < y1; y++ {
		s := (float32(y) - t0.Y()) / dy
		xa := t0.X() + s*(apex.X()-t0.X())
		xb := t1.X() + s*(apex.X()-t1.X())
		t.span(y, xa, xb)
	}
}

// span resolves the pixels of one row: barycentric weights from edge-function
// ratios, depth test, perspective-correct interpolation, fragment shading and
// the target write. Spans are half-open [ceil(xa), ceil(xb)) and clamped to
// the target, so adjacent triangles never shade a shared edge twice and no
// out-of-range index ever reaches the buffers.
func (t *triangle[U, T]) span(y int, xa, xb float32) {
	if y < 0 || y >= t.target.Height() {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	x0 := ceilInt(xa)
	if x0 < 0 {
		x0 = 0
	}
	x1 := ceilInt(xb)
	if w := t.target.Width(); x1 > w {
		x1 = w
	}

	fy := float32(y)
	for x := x0; x < x1; x++ {
		p := mgl32.Vec2{float32(x), fy}
		w0 := edge(t.s1, t.s2, p) / t.area
		w1 := edge(t.s2, t.s0, p) / t.area
		w2 := edge(t.s0, t.s1, p) / t.area

		// Interpolated 1/w doubles as the depth value: larger is nearer.
		z := w0*t.iw0 + w1*t.iw1 + w2*t.iw2
		if z < t.depth.Get(x, y) {
			continue
		}
		t.depth.Set(x, y, z)

		varying := t.vy0.Interpolate(t.vy1, t.vy2, w0, w1, w2, z)
		t.target.Set(x, y, t.fragment(t.uniform, &varying))
	}
}

// edge is the signed doubled area of triangle (a, b, c). Its sign encodes
// winding and its ratios against the full triangle's area yield barycentric
// weights.
func edge(a, b, c mgl32.Vec2) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

func screenPos(p mgl32.Vec4, halfW, halfH float32) mgl32.Vec2 {
	return mgl32.Vec2{
		(p.X()/p.W())*halfW + halfW,
		(-p.Y()/p.W())*halfH + halfH,
	}
}

func finiteClip(p mgl32.Vec4) bool {
	for i := 0; i < 4; i++ {
		f := float64(p[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return mgl32.Abs(p.W()) > wEpsilon
}

func ceilInt(v float32) int {
	return int(math.Ceil(float64(v)))
}
