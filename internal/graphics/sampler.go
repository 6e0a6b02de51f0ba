package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Sampler produces a color for a UV coordinate. Fragment programs hold one
// through their uniform.
type Sampler interface {
	Sample(u, v float32) mgl32.Vec4
}

// Checker is a procedural checkerboard sampler.
type Checker struct {
	Frequency float32
}

func (c Checker) Sample(u, v float32) mgl32.Vec4 {
	x := int(math.Floor(float64(u * c.Frequency)))
	y := int(math.Floor(float64(v * c.Frequency)))
	if (x+y)%2 == 0 {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return mgl32.Vec4{0.5, 0.5, 0.5, 1}
}

// ImageSampler samples a decoded texture image with nearest lookup and
// repeat wrapping.
type ImageSampler struct {
	img *image.NRGBA
}

// NewImageSampler converts src to NRGBA, resampling with a bilinear kernel
// when maxSize > 0 and the image's larger side exceeds it.
func NewImageSampler(src image.Image, maxSize int) *ImageSampler {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		scale := float64(maxSize) / float64(max(w, h))
		w = max(1, int(float64(w)*scale))
		h = max(1, int(float64(h)*scale))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return &ImageSampler{img: dst}
}

// LoadImageSampler decodes a texture file (PNG or JPEG) into a sampler.
func LoadImageSampler(path string, maxSize int) (*ImageSampler, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return NewImageSampler(img, maxSize), nil
}

func (s *ImageSampler) Sample(u, v float32) mgl32.Vec4 {
	b := s.img.Bounds()
	x := wrapTexel(u, b.Dx())
	y := wrapTexel(v, b.Dy())
	c := s.img.NRGBAAt(x, y)
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func wrapTexel(t float32, n int) int {
	i := int(math.Floor(float64(t) * float64(n)))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
