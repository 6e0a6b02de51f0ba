package graphics

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a CPU-side RGBA8 color target the rasterizer draws into.
// Row 0 is the top of the picture.
type Framebuffer struct {
	width  int
	height int
	img    *image.RGBA
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Set writes one pixel. Color components are clamped to [0, 1] before the
// 8-bit conversion.
func (f *Framebuffer) Set(x, y int, c mgl32.Vec4) {
	i := f.img.PixOffset(x, y)
	p := f.img.Pix[i : i+4 : i+4]
	p[0] = toByte(c.X())
	p[1] = toByte(c.Y())
	p[2] = toByte(c.Z())
	p[3] = toByte(c.W())
}

// Clear fills the whole framebuffer with one color.
func (f *Framebuffer) Clear(c color.RGBA) {
	pix := f.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Pix returns the raw RGBA pixels, row-major from the top-left, for texture
// upload.
func (f *Framebuffer) Pix() []uint8 {
	return f.img.Pix
}

// Image exposes the backing image; the overlay and PNG export draw through
// it.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
