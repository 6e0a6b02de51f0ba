package raster

// DepthBuffer holds one depth value per pixel in row-major order. The
// rasterizer stores interpolated 1/w, so larger values are nearer and a
// cleared cell holds 0, meaning "infinitely far". A freshly allocated buffer
// is already cleared. The size is fixed at construction.
type DepthBuffer struct {
	width  int
	height int
	data   []float32
}

// NewDepthBuffer allocates a cleared width x height depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	return &DepthBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

func (d *DepthBuffer) Width() int  { return d.width }
func (d *DepthBuffer) Height() int { return d.height }

// Clear resets every cell to the far sentinel.
func (d *DepthBuffer) Clear() {
	clear(d.data)
}

// Get returns the depth at (x, y). Callers guarantee bounds; the rasterizer
// clamps rows and spans before any indexed access.
func (d *DepthBuffer) Get(x, y int) float32 {
	return d.data[x+y*d.width]
}

// Set stores z at (x, y) under the same bounds contract as Get.
func (d *DepthBuffer) Set(x, y int, z float32) {
	d.data[x+y*d.width] = z
}
