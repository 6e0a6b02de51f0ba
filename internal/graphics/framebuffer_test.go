package graphics

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFramebufferSetClamps(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	cases := []struct {
		name string
		in   mgl32.Vec4
		want [4]uint8
	}{
		{"mid grey", mgl32.Vec4{0.5, 0.5, 0.5, 1}, [4]uint8{128, 128, 128, 255}},
		{"overbright", mgl32.Vec4{2, 1.5, 1, 1}, [4]uint8{255, 255, 255, 255}},
		{"negative", mgl32.Vec4{-1, -0.5, 0, 1}, [4]uint8{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fb.Set(1, 1, tc.in)
			c := fb.Image().RGBAAt(1, 1)
			got := [4]uint8{c.R, c.G, c.B, c.A}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, mgl32.Vec4{1, 1, 1, 1})
	fb.Clear(color.RGBA{10, 20, 30, 255})

	pix := fb.Pix()
	if len(pix) != 3*2*4 {
		t.Fatalf("got %d bytes, want %d", len(pix), 3*2*4)
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 10 || pix[i+1] != 20 || pix[i+2] != 30 || pix[i+3] != 255 {
			t.Fatalf("pixel %d not cleared: %v", i/4, pix[i:i+4])
		}
	}
}

func TestFramebufferSize(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	if fb.Width() != 7 || fb.Height() != 5 {
		t.Fatalf("got %dx%d, want 7x5", fb.Width(), fb.Height())
	}
}

func TestOverlayDrawsPixels(t *testing.T) {
	fb := NewFramebuffer(64, 32)
	fb.Clear(color.RGBA{0, 0, 0, 255})
	NewOverlay().Draw(fb, []string{"fps 60"})

	lit := 0
	for i, pix := 0, fb.Pix(); i < len(pix); i += 4 {
		if pix[i] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("overlay text left the framebuffer untouched")
	}
}
