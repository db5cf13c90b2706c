package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gltext"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
// It implements gltext.Surface.
type Window struct {
	window *glfw.Window
}

var _ gltext.Surface = (*Window)(nil)

// WindowOption configures NewWindow.
type WindowOption func(*windowOptions)

type windowOptions struct {
	hidden bool
}

// Hidden creates the window invisible, for offscreen captures.
func Hidden() WindowOption {
	return func(o *windowOptions) { o.hidden = true }
}

// NewWindow initializes GLFW, opens a window and loads the GL entry points.
// Callers must run on the main OS thread and call Destroy when done.
func NewWindow(width, height int, title string, opts ...WindowOption) (*Window, error) {
	var o windowOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if o.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gltext.Logger().Info("OpenGL context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	)

	reportExtensions(glfw.ExtensionSupported)

	w := &Window{window: win}
	win.SetKeyCallback(w.keyCallback)
	return w, nil
}

// reportedExtensions are logged at startup. Neither is required.
var reportedExtensions = []string{
	"GL_ARB_debug_output",
	"GL_EXT_draw_instanced",
}

// reportExtensions logs whether each of reportedExtensions is available
// in the current context.
func reportExtensions(supported func(name string) bool) {
	log := gltext.Logger()
	for _, name := range reportedExtensions {
		if supported(name) {
			log.Info("extension supported", "name", name)
		} else {
			log.Warn("extension not supported", "name", name)
		}
	}
}

// PollEvents processes pending window and input events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the window's close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
	}
}
