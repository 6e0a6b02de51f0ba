package graphics

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCheckerSampler(t *testing.T) {
	c := Checker{Frequency: 2}
	white := mgl32.Vec4{1, 1, 1, 1}
	grey := mgl32.Vec4{0.5, 0.5, 0.5, 1}

	cases := []struct {
		u, v float32
		want mgl32.Vec4
	}{
		{0.1, 0.1, white},
		{0.6, 0.1, grey},
		{0.1, 0.6, grey},
		{0.6, 0.6, white},
	}
	for _, tc := range cases {
		if got := c.Sample(tc.u, tc.v); got != tc.want {
			t.Fatalf("Sample(%v, %v): got %v, want %v", tc.u, tc.v, got, tc.want)
		}
	}
}

func TestImageSampler(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})

	s := NewImageSampler(img, 0)
	cases := []struct {
		u, v float32
		want mgl32.Vec4
	}{
		{0.25, 0.25, mgl32.Vec4{1, 0, 0, 1}},
		{0.75, 0.25, mgl32.Vec4{0, 1, 0, 1}},
		{0.25, 0.75, mgl32.Vec4{0, 0, 1, 1}},
		{0.75, 0.75, mgl32.Vec4{1, 1, 1, 1}},
		// repeat wrapping
		{1.25, 1.25, mgl32.Vec4{1, 0, 0, 1}},
		{-0.75, -0.75, mgl32.Vec4{1, 0, 0, 1}},
	}
	for _, tc := range cases {
		if got := s.Sample(tc.u, tc.v); got != tc.want {
			t.Fatalf("Sample(%v, %v): got %v, want %v", tc.u, tc.v, got, tc.want)
		}
	}
}

func TestImageSamplerResample(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 16))
	s := NewImageSampler(img, 32)
	b := s.img.Bounds()
	if b.Dx() != 32 || b.Dy() != 8 {
		t.Fatalf("got %dx%d, want 32x8", b.Dx(), b.Dy())
	}
}
