// Command gen renders the demo line at several sizes and colors in a hidden
// window, captures the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//
// The embedded Go Regular font is used so no font file is needed.
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltext"
	"github.com/go-theft-auto/gltext/backend/opengl"
	"github.com/go-theft-auto/gltext/face"
)

const (
	width  = 900
	height = 120
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name      string // filename without extension
	pixelSize int
	scale     float32
	color     mgl32.Vec3
}

func run() error {
	window, err := opengl.NewWindow(width, height, "screenshot-gen", opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.BuildProgram(gltext.DefaultVertexShader, gltext.DefaultFragmentShader)
	if err != nil {
		return err
	}
	defer program.Delete()

	device, err := opengl.NewDevice(program, width, height)
	if err != nil {
		return err
	}
	defer device.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "default", pixelSize: 16, scale: 1, color: mgl32.Vec3{1, 1, 1}},
		{name: "scaled", pixelSize: 16, scale: 2, color: mgl32.Vec3{1, 1, 1}},
		{name: "large", pixelSize: 32, scale: 1, color: mgl32.Vec3{1, 1, 1}},
		{name: "amber", pixelSize: 24, scale: 1, color: mgl32.Vec3{1, 0.75, 0.2}},
	}

	for _, s := range shots {
		if err := capture(device, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, width, height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(device *opengl.Device, s screenshot, outDir string) error {
	fnt, err := face.Open("", s.pixelSize)
	if err != nil {
		return err
	}
	defer fnt.Close()

	// Fresh cache per screenshot: the pixel size is fixed per cache.
	cache := gltext.NewGlyphCache(fnt, device)
	defer func() {
		cache.Release()
		if n := device.Textures(); n != 0 {
			fmt.Fprintf(os.Stderr, "  %s: %d glyph textures still live after release\n", s.name, n)
		}
	}()

	renderer := gltext.NewTextRenderer(cache, device, gltext.WithTextColor(s.color))

	gl.Viewport(0, 0, width, height)
	device.Clear(mgl32.Vec4{0.12, 0.12, 0.14, 1})
	renderer.Draw(gltext.DefaultText, gltext.DefaultPaddingLeft, height/2, s.scale)
	gl.Finish()

	img := device.ReadPixels(width, height)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
