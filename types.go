package gltext

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Rect represents a screen rectangle in window pixels.
// Y grows upward: (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y float32 // Bottom-left position
	W, H float32 // Width and height
}

// Empty returns true if the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TextureID is an opaque GPU texture handle. Zero means no texture.
type TextureID uint32

// Vertex is one corner of a glyph quad.
// Memory layout matches the single vec4 attribute of the text shader.
type Vertex struct {
	X, Y float32 // Position in window pixels
	U, V float32 // Texture coordinates
}
