package opengl

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gltext"
)

func TestReportExtensions(t *testing.T) {
	var buf bytes.Buffer
	gltext.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer gltext.SetLogger(nil)

	var asked []string
	reportExtensions(func(name string) bool {
		asked = append(asked, name)
		return name == "GL_ARB_debug_output"
	})

	assert.Equal(t, []string{"GL_ARB_debug_output", "GL_EXT_draw_instanced"}, asked)
	out := buf.String()
	assert.Contains(t, out, `level=INFO msg="extension supported" name=GL_ARB_debug_output`)
	assert.Contains(t, out, `level=WARN msg="extension not supported" name=GL_EXT_draw_instanced`)
}
