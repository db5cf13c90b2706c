package gltext_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gltext"
)

func TestProjection(t *testing.T) {
	proj := gltext.Projection(900, 600)

	cases := []struct {
		name  string
		pixel mgl32.Vec4
		wantX float32
		wantY float32
	}{
		{"bottom-left", mgl32.Vec4{0, 0, 0, 1}, -1, -1},
		{"top-right", mgl32.Vec4{900, 600, 0, 1}, 1, 1},
		{"center", mgl32.Vec4{450, 300, 0, 1}, 0, 0},
		{"pen start", mgl32.Vec4{10, 582, 0, 1}, -1 + 20.0/900, 1 - 36.0/600},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ndc := proj.Mul4x1(tc.pixel)
			assert.InDelta(t, tc.wantX, ndc.X(), 1e-5)
			assert.InDelta(t, tc.wantY, ndc.Y(), 1e-5)
			assert.InDelta(t, 1, ndc.W(), 1e-6)
		})
	}
}
