// Package display presents CPU framebuffers on screen. The rasterizer never
// touches GL; each frame is uploaded as a texture and blitted with a
// fullscreen quad.
package display

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-gpu/internal/graphics"
)

const quadVertShader = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 uv;
out vec2 fragUV;
void main() {
	fragUV = uv;
	gl_Position = vec4(position, 0.0, 1.0);
}` + "\x00"

const quadFragShader = `#version 410 core
uniform sampler2D frame;
in vec2 fragUV;
out vec4 fragColor;
void main() {
	fragColor = texture(frame, fragUV);
}` + "\x00"

// The first texel row is the framebuffer's top row, so the top of the quad
// samples v = 0.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// Window owns a GLFW window and the GL objects used to blit a framebuffer
// into it. The caller must hold the main OS thread and have initialized GLFW.
type Window struct {
	win     *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	width   int
	height  int
}

// New creates a window sized width*pixelSize x height*pixelSize that presents
// width x height framebuffers.
func New(title string, width, height, pixelSize int) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(width*pixelSize, height*pixelSize, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %v", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to initialize GL: %v", err)
	}

	program, err := newProgram(quadVertShader, quadFragShader)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	w := &Window{win: win, program: program, width: width, height: height}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 16, gl.PtrOffset(8))

	gl.GenTextures(1, &w.tex)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.ClearColor(0, 0, 0, 1)
	return w, nil
}

// Active reports whether the window wants more frames.
func (w *Window) Active() bool {
	return !w.win.ShouldClose()
}

// Close asks the main loop to stop after the current frame.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Handle exposes the GLFW window for input callback installation.
func (w *Window) Handle() *glfw.Window {
	return w.win
}

// Present uploads fb, blits it across the window and pumps events. fb must
// match the size the window was created with.
func (w *Window) Present(fb *graphics.Framebuffer) {
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix()))

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(w.program)
	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Destroy releases the GL objects and the window.
func (w *Window) Destroy() {
	gl.DeleteTextures(1, &w.tex)
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteProgram(w.program)
	w.win.Destroy()
}

// newProgram compiles shaders and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %v", err)
	}
	f, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(v)
		return 0, fmt.Errorf("fragment shader: %v", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("program link error: %s", string(log))
	}

	// shaders can be deleted after linking
	gl.DeleteShader(v)
	gl.DeleteShader(f)
	return program, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("compile error: %s", string(log))
	}
	return shader, nil
}
