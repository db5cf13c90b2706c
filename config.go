package gltext

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("gltext: invalid config")

// Default settings of the demo program.
const (
	DefaultWidth          = 900
	DefaultHeight         = 600
	DefaultTitle          = "ed"
	DefaultFontPath       = "external/fonts/Hack-Regular.ttf"
	DefaultPixelSize      = 16
	DefaultVertexShader   = "example/shaders/text.vert"
	DefaultFragmentShader = "example/shaders/text.frag"
	DefaultText           = "Good news, everyone!"
	DefaultPaddingLeft    = 10
	DefaultPaddingTop     = 18
)

// Config holds everything the demo program needs at startup.
type Config struct {
	Width, Height int
	Title         string

	// FontPath is the font file to rasterize. Empty selects the embedded
	// Go Regular font.
	FontPath  string
	PixelSize int

	VertexShader   string
	FragmentShader string

	Text  string
	PenX  float32
	PenY  float32 // Baseline, measured up from the bottom of the window
	Scale float32

	// PaddingTop places the baseline this far below the top edge unless
	// WithLine set the pen explicitly.
	PaddingTop float32
	penSet     bool

	TextColor  mgl32.Vec3
	ClearColor mgl32.Vec4
}

// DefaultConfig returns the demo settings: a 900x600 window with one white
// line of text 18 pixels below the top edge.
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Title:          DefaultTitle,
		FontPath:       DefaultFontPath,
		PixelSize:      DefaultPixelSize,
		VertexShader:   DefaultVertexShader,
		FragmentShader: DefaultFragmentShader,
		Text:           DefaultText,
		PenX:           DefaultPaddingLeft,
		PenY:           DefaultHeight - DefaultPaddingTop,
		Scale:          1,
		PaddingTop:     DefaultPaddingTop,
		TextColor:      mgl32.Vec3{1, 1, 1},
		ClearColor:     mgl32.Vec4{0, 0, 0, 1},
	}
}

// NewConfig returns DefaultConfig with opts applied, validated.
// Without WithLine the baseline is Height - PaddingTop of the final size,
// so option order does not matter.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.penSet {
		cfg.PenY = float32(cfg.Height) - cfg.PaddingTop
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.PixelSize <= 0:
		return fmt.Errorf("%w: pixel size %d", ErrInvalidConfig, c.PixelSize)
	case c.VertexShader == "" || c.FragmentShader == "":
		return fmt.Errorf("%w: shader paths must be set", ErrInvalidConfig)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidConfig, c.Scale)
	}
	return nil
}

// Line returns the text line the frame loop draws.
func (c Config) Line() Line {
	return Line{Text: c.Text, X: c.PenX, Y: c.PenY, Scale: c.Scale}
}
