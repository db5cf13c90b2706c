// Example draws one line of text with a draw call per glyph.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run from the repository root
//
// The font is read from external/fonts/Hack-Regular.ttf relative to the
// working directory; download Hack from https://sourcefoundry.org/hack/
// and place it there. Press Escape or close the window to quit.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/gltext"
	"github.com/go-theft-auto/gltext/backend/opengl"
	"github.com/go-theft-auto/gltext/face"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	gltext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := gltext.NewConfig()
	if err != nil {
		return err
	}

	window, err := opengl.NewWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.BuildProgram(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	device, err := opengl.NewDevice(program, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer device.Delete()

	fnt, err := face.Open(cfg.FontPath, cfg.PixelSize)
	if err != nil {
		return err
	}
	cache := gltext.NewGlyphCache(fnt, device)
	defer cache.Release()
	// The cache holds everything it needs; the face is not used again.
	if err := fnt.Close(); err != nil {
		return fmt.Errorf("close font: %w", err)
	}

	renderer := gltext.NewTextRenderer(cache, device, gltext.WithTextColor(cfg.TextColor))
	loop := gltext.NewFrameLoop(window, device, renderer, cfg.Line(), gltext.WithClearColor(cfg.ClearColor))
	loop.Run()

	return nil
}
