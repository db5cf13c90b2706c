package gltext

import "github.com/go-gl/mathgl/mgl32"

// Projection returns the orthographic matrix mapping window pixels, origin
// at the bottom-left, to normalized device coordinates.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), 0, float32(height), -1, 1)
}
