package gltext_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gltext"
)

func TestDefaultConfig(t *testing.T) {
	cfg := gltext.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 900, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 16, cfg.PixelSize)
	assert.Equal(t, "external/fonts/Hack-Regular.ttf", cfg.FontPath)
	assert.Equal(t, gltext.Line{Text: "Good news, everyone!", X: 10, Y: 582, Scale: 1}, cfg.Line())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cfg.TextColor)
}

func TestNewConfigOptions(t *testing.T) {
	cfg, err := gltext.NewConfig(
		gltext.WithWindowSize(1280, 720),
		gltext.WithTitle("demo"),
		gltext.WithFont("", 24),
		gltext.WithShaders("a.vert", "a.frag"),
		gltext.WithColors(mgl32.Vec3{1, 0, 0}, mgl32.Vec4{0, 0, 1, 1}),
	)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, float32(720-18), cfg.PenY, "baseline keeps its distance from the top")
	assert.Equal(t, "demo", cfg.Title)
	assert.Empty(t, cfg.FontPath)
	assert.Equal(t, 24, cfg.PixelSize)
	assert.Equal(t, "a.vert", cfg.VertexShader)
	assert.Equal(t, "a.frag", cfg.FragmentShader)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cfg.TextColor)
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, cfg.ClearColor)

	cfg, err = gltext.NewConfig(gltext.WithLine("x", 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, gltext.Line{Text: "x", X: 1, Y: 2, Scale: 3}, cfg.Line())
}

func TestNewConfigPenIgnoresOptionOrder(t *testing.T) {
	line := gltext.WithLine("x", 10, 100, 1)
	size := gltext.WithWindowSize(1280, 720)

	lineFirst, err := gltext.NewConfig(line, size)
	require.NoError(t, err)
	sizeFirst, err := gltext.NewConfig(size, line)
	require.NoError(t, err)

	assert.Equal(t, float32(100), lineFirst.PenY)
	assert.Equal(t, float32(100), sizeFirst.PenY)
	assert.Equal(t, lineFirst.Line(), sizeFirst.Line())
}

func TestNewConfigPaddingTop(t *testing.T) {
	padFirst, err := gltext.NewConfig(gltext.WithPaddingTop(40), gltext.WithWindowSize(1280, 720))
	require.NoError(t, err)
	sizeFirst, err := gltext.NewConfig(gltext.WithWindowSize(1280, 720), gltext.WithPaddingTop(40))
	require.NoError(t, err)

	assert.Equal(t, float32(680), padFirst.PenY)
	assert.Equal(t, float32(680), sizeFirst.PenY)

	explicit, err := gltext.NewConfig(gltext.WithLine("x", 0, 5, 1), gltext.WithPaddingTop(40))
	require.NoError(t, err)
	assert.Equal(t, float32(5), explicit.PenY, "explicit line wins over padding")
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]gltext.ConfigOption{
		"zero width":      gltext.WithWindowSize(0, 600),
		"negative height": gltext.WithWindowSize(900, -1),
		"zero pixel size": gltext.WithFont("font.ttf", 0),
		"no vertex":       gltext.WithShaders("", "a.frag"),
		"no fragment":     gltext.WithShaders("a.vert", ""),
		"zero scale":      gltext.WithLine("x", 0, 0, 0),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gltext.NewConfig(opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, gltext.ErrInvalidConfig))
		})
	}
}
