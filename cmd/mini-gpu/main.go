package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-gpu/internal/config"
	"mini-gpu/internal/display"
	"mini-gpu/internal/game"
	"mini-gpu/internal/geometry"
	"mini-gpu/internal/graphics"
	"mini-gpu/internal/input"
)

const (
	winW = 480
	winH = 300
)

func init() {
	runtime.LockOSThread()
}

func main() {
	modelPath := flag.String("model", "", "OBJ model to render alongside the built-in meshes")
	texturePath := flag.String("texture", "", "texture image; defaults to a procedural checkerboard")
	fps := flag.Int("fps", 60, "frame rate cap, 0 for uncapped")
	pixelSize := flag.Int("pixel-size", 2, "screen pixels per framebuffer texel")
	flag.Parse()

	config.SetFPSLimit(*fps)
	config.SetPixelSize(*pixelSize)

	meshes := []*geometry.Mesh{geometry.Cube(1), geometry.Plane(1.5)}
	if *modelPath != "" {
		m, err := geometry.LoadOBJ(*modelPath)
		if err != nil {
			log.Fatalf("load model: %v", err)
		}
		meshes = append([]*geometry.Mesh{m}, meshes...)
	}

	var sampler graphics.Sampler = graphics.Checker{Frequency: 8}
	if *texturePath != "" {
		s, err := graphics.LoadImageSampler(*texturePath, 512)
		if err != nil {
			log.Fatalf("load texture: %v", err)
		}
		sampler = s
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := display.New("mini-gpu", winW, winH, config.GetPixelSize())
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	im := input.NewInputManager()
	im.InstallCallbacks(window.Handle())

	game.NewApp(window, im, sampler, meshes, winW, winH).Run()
}
