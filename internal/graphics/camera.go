package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         70.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// GetOrbitViewMatrix returns a view circling the origin at the given angle,
// eye height and radius.
func (c *Camera) GetOrbitViewMatrix(angle, height, radius float32) mgl32.Mat4 {
	eye := mgl32.Vec3{
		float32(math.Sin(float64(angle))) * radius,
		height,
		float32(math.Cos(float64(angle))) * radius,
	}
	return mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}
