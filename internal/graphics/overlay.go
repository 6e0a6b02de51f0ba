package graphics

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay draws debug text into a framebuffer after the 3D pass.
type Overlay struct {
	face font.Face
}

func NewOverlay() *Overlay {
	return &Overlay{face: basicfont.Face7x13}
}

// Draw renders the given lines in the top-left corner.
func (o *Overlay) Draw(fb *Framebuffer, lines []string) {
	d := font.Drawer{
		Dst:  fb.Image(),
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: o.face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(4, 14+i*14)
		d.DrawString(line)
	}
}
