package gltext_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gltext"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := gltext.Logger()
	assert.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetLoggerReportsGlyphFailures(t *testing.T) {
	var buf bytes.Buffer
	gltext.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer gltext.SetLogger(nil)

	gltext.NewGlyphCache(&fakeRasterizer{fail: map[rune]bool{'Z': true}}, newFakeTextures())

	out := buf.String()
	assert.Contains(t, out, "failed to rasterize glyph")
	assert.Contains(t, out, "rune=90")
	assert.Contains(t, out, errRasterize.Error())
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	gltext.SetLogger(slog.Default())
	gltext.SetLogger(nil)

	assert.False(t, gltext.Logger().Enabled(context.Background(), slog.LevelError))
}
