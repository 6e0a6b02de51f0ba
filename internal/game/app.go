package game

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"mini-gpu/internal/display"
	"mini-gpu/internal/geometry"
	"mini-gpu/internal/graphics"
	"mini-gpu/internal/input"
	"mini-gpu/internal/profiling"
	"mini-gpu/pkg/raster"
)

// App owns the demo's main loop: it animates the uniform, submits every mesh
// triangle to the rasterizer and presents the finished framebuffer.
type App struct {
	window  *display.Window
	input   *input.InputManager
	camera  *graphics.Camera
	fb      *graphics.Framebuffer
	depth   *raster.DepthBuffer
	overlay *graphics.Overlay
	limiter *FPSLimiter

	meshes  []*geometry.Mesh
	meshIdx int

	uniform Uniform
	sampler graphics.Sampler

	paused      bool
	textured    bool
	showOverlay bool

	time      float32
	lastFrame time.Time
	frames    int
	fpsTick   time.Time
	fps       int
}

// NewApp wires the loop together. meshes must be non-empty; sampler may be
// nil to render vertex colors only.
func NewApp(window *display.Window, im *input.InputManager, sampler graphics.Sampler, meshes []*geometry.Mesh, width, height int) *App {
	return &App{
		window:      window,
		input:       im,
		camera:      graphics.NewCamera(width, height),
		fb:          graphics.NewFramebuffer(width, height),
		depth:       raster.NewDepthBuffer(width, height),
		overlay:     graphics.NewOverlay(),
		limiter:     NewFPSLimiter(),
		meshes:      meshes,
		sampler:     sampler,
		textured:    sampler != nil,
		showOverlay: true,
	}
}

func (a *App) Run() {
	a.lastFrame = time.Now()
	a.fpsTick = a.lastFrame
	for a.window.Active() {
		a.tick()
		a.limiter.Wait()
	}
}

func (a *App) tick() {
	now := time.Now()
	dt := float32(now.Sub(a.lastFrame).Seconds())
	a.lastFrame = now

	a.input.Update()
	a.handleInput()
	if !a.paused {
		a.time += dt
	}

	profiling.ResetFrame()
	a.updateUniform()

	stopRaster := profiling.Track("raster.Frame")
	a.fb.Clear(color.RGBA{A: 255})
	a.depth.Clear()
	mesh := a.meshes[a.meshIdx]
	for n := 0; n < mesh.TriangleCount(); n++ {
		v0, v1, v2 := mesh.Triangle(n)
		raster.Triangle(VertexShade, FragmentShade, a.depth, a.fb, &a.uniform, v0, v1, v2)
	}
	stopRaster()

	if a.showOverlay {
		a.overlay.Draw(a.fb, []string{
			fmt.Sprintf("fps %d  tris %d", a.fps, mesh.TriangleCount()),
			profiling.TopN(2),
		})
	}

	stopPresent := profiling.Track("display.Present")
	a.window.Present(a.fb)
	stopPresent()

	a.frames++
	if now.Sub(a.fpsTick) >= time.Second {
		a.fps = a.frames
		a.frames = 0
		a.fpsTick = now
		log.Printf("fps %d (%s)", a.fps, profiling.TopN(3))
	}
}

func (a *App) handleInput() {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.Close()
	}
	if a.input.JustPressed(input.ActionPauseSpin) {
		a.paused = !a.paused
	}
	if a.input.JustPressed(input.ActionToggleTexture) && a.sampler != nil {
		a.textured = !a.textured
	}
	if a.input.JustPressed(input.ActionToggleOverlay) {
		a.showOverlay = !a.showOverlay
	}
	if a.input.JustPressed(input.ActionCycleModel) {
		a.meshIdx = (a.meshIdx + 1) % len(a.meshes)
	}
}

func (a *App) updateUniform() {
	t := float64(a.time)
	a.uniform.Projection = a.camera.GetProjectionMatrix()
	a.uniform.View = a.camera.GetOrbitViewMatrix(a.time*0.5, 2.25, 3)
	a.uniform.Model = mgl32.HomogRotate3D(a.time, mgl32.Vec3{0, 1, 0})
	a.uniform.Light = mgl32.Vec3{
		float32(math.Cos(t*4.2)) * 10,
		-10,
		float32(math.Sin(t*4.2)) * 10,
	}
	if a.textured {
		a.uniform.Sampler = a.sampler
	} else {
		a.uniform.Sampler = nil
	}
}
