// Command render rasterizes a single frame to a PNG without opening a
// window.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"mini-gpu/internal/game"
	"mini-gpu/internal/geometry"
	"mini-gpu/internal/graphics"
	"mini-gpu/pkg/raster"
)

func main() {
	width := flag.Int("width", 512, "output width in pixels")
	height := flag.Int("height", 512, "output height in pixels")
	out := flag.String("out", "frame.png", "output file")
	model := flag.String("model", "", "OBJ model; defaults to the built-in cube")
	texture := flag.String("texture", "", "texture image; defaults to a procedural checkerboard")
	angle := flag.Float64("angle", 0.6, "model rotation around y in radians")
	flag.Parse()

	mesh := geometry.Cube(1)
	if *model != "" {
		m, err := geometry.LoadOBJ(*model)
		if err != nil {
			log.Fatalf("load model: %v", err)
		}
		mesh = m
	}

	var sampler graphics.Sampler = graphics.Checker{Frequency: 8}
	if *texture != "" {
		s, err := graphics.LoadImageSampler(*texture, 512)
		if err != nil {
			log.Fatalf("load texture: %v", err)
		}
		sampler = s
	}

	camera := graphics.NewCamera(*width, *height)
	uniform := game.Uniform{
		Projection: camera.GetProjectionMatrix(),
		View:       camera.GetOrbitViewMatrix(0, 2.25, 3),
		Model:      mgl32.HomogRotate3D(float32(*angle), mgl32.Vec3{0, 1, 0}),
		Sampler:    sampler,
		Light:      mgl32.Vec3{10, -10, 0},
	}

	fb := graphics.NewFramebuffer(*width, *height)
	fb.Clear(color.RGBA{A: 255})
	depth := raster.NewDepthBuffer(*width, *height)

	for n := 0; n < mesh.TriangleCount(); n++ {
		v0, v1, v2 := mesh.Triangle(n)
		raster.Triangle(game.VertexShade, game.FragmentShade, depth, fb, &uniform, v0, v1, v2)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		log.Fatalf("encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %s (%dx%d, %d triangles)", *out, *width, *height, mesh.TriangleCount())
}
