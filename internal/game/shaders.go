package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-gpu/internal/geometry"
	"mini-gpu/internal/graphics"
	"mini-gpu/pkg/raster"
)

// Uniform carries the per-draw constants for the demo shaders. It is rebuilt
// between frames and read-only during a draw.
type Uniform struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Sampler    graphics.Sampler // nil renders vertex colors
	Light      mgl32.Vec3
}

// Varying is the demo's interpolated attribute bundle.
type Varying struct {
	Position mgl32.Vec4
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Color    mgl32.Vec4
}

func (v Varying) Zero() Varying { return Varying{} }

func (v Varying) Correct(w float32) Varying {
	return Varying{
		Position: raster.CorrectVec4(v.Position, w),
		Normal:   raster.CorrectVec3(v.Normal, w),
		UV:       raster.CorrectVec2(v.UV, w),
		Color:    raster.CorrectVec4(v.Color, w),
	}
}

func (v Varying) Interpolate(v1, v2 Varying, w0, w1, w2, invW float32) Varying {
	return Varying{
		Position: raster.BlendVec4(v.Position, v1.Position, v2.Position, w0, w1, w2, invW),
		Normal:   raster.BlendVec3(v.Normal, v1.Normal, v2.Normal, w0, w1, w2, invW),
		UV:       raster.BlendVec2(v.UV, v1.UV, v2.UV, w0, w1, w2, invW),
		Color:    raster.BlendVec4(v.Color, v1.Color, v2.Color, w0, w1, w2, invW),
	}
}

// VertexShade transforms positions into clip space and forwards world
// position, normal, uv and color to the fragment stage.
func VertexShade(u *Uniform, in *geometry.Vertex, out *Varying) mgl32.Vec4 {
	world := u.Model.Mul4x1(in.Position)
	out.Position = world
	out.Normal = u.Model.Mat3().Mul3x1(in.Normal)
	out.UV = in.UV
	out.Color = in.Color
	return u.Projection.Mul4(u.View).Mul4x1(world)
}

// FragmentShade is a point light with a rough specular term over the sampler
// (or the interpolated vertex color when no sampler is set).
func FragmentShade(u *Uniform, v *Varying) mgl32.Vec4 {
	normal := v.Normal.Normalize()
	toPoint := v.Position.Vec3().Sub(u.Light).Normalize()
	lambert := normal.Dot(toPoint)
	if lambert < 0 {
		return mgl32.Vec4{0, 0, 0, 1}
	}

	eye := v.Position.Vec3().Normalize().Mul(-1)
	specular := mgl32.Clamp(reflect(toPoint, normal).Dot(eye), 0, 1)

	base := v.Color
	if u.Sampler != nil {
		base = u.Sampler.Sample(v.UV.X(), v.UV.Y())
	}
	out := base.Mul(lambert * specular)
	out[3] = 1
	return out
}

func reflect(in, normal mgl32.Vec3) mgl32.Vec3 {
	return in.Sub(normal.Mul(2 * in.Dot(normal)))
}
