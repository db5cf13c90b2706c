package gltext

import "github.com/go-gl/mathgl/mgl32"

// ConfigOption modifies a Config.
//
// Example:
//
//	cfg, err := gltext.NewConfig(
//		gltext.WithWindowSize(1280, 720),
//		gltext.WithFont("", 24), // embedded Go Regular
//	)
type ConfigOption func(*Config)

// WithWindowSize sets the window size. Unless WithLine is given, the
// baseline keeps its PaddingTop distance from the top edge.
func WithWindowSize(width, height int) ConfigOption {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPaddingTop sets how far below the top edge the baseline sits.
// It has no effect when WithLine is given.
func WithPaddingTop(padding float32) ConfigOption {
	return func(c *Config) { c.PaddingTop = padding }
}

// WithTitle sets the window title.
func WithTitle(title string) ConfigOption {
	return func(c *Config) { c.Title = title }
}

// WithFont sets the font file and pixel size. An empty path selects the
// embedded Go Regular font.
func WithFont(path string, pixelSize int) ConfigOption {
	return func(c *Config) {
		c.FontPath = path
		c.PixelSize = pixelSize
	}
}

// WithShaders sets the vertex and fragment shader source files.
func WithShaders(vertexPath, fragmentPath string) ConfigOption {
	return func(c *Config) {
		c.VertexShader = vertexPath
		c.FragmentShader = fragmentPath
	}
}

// WithLine sets the text and where its pen starts. The explicit y wins
// over any window size or padding option, in either order.
func WithLine(text string, x, y, scale float32) ConfigOption {
	return func(c *Config) {
		c.Text = text
		c.PenX = x
		c.PenY = y
		c.Scale = scale
		c.penSet = true
	}
}

// WithColors sets the text and background colors.
func WithColors(text mgl32.Vec3, clear mgl32.Vec4) ConfigOption {
	return func(c *Config) {
		c.TextColor = text
		c.ClearColor = clear
	}
}
