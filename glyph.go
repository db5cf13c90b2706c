package gltext

// GlyphCount is the number of glyph slots: ASCII code points 0 through 127.
const GlyphCount = 128

// Glyph holds the GPU texture and metrics for one rasterized character.
type Glyph struct {
	Texture TextureID // 8-bit coverage bitmap, 0 if the glyph failed to load
	Size    Vec2      // Bitmap width and height in pixels
	Bearing Vec2      // Offset from the pen position to the bitmap's top-left corner
	Advance int32     // Horizontal pen movement in 1/64 pixel units
}

// AdvancePixels returns the advance in whole pixels.
// The 1/64 fraction is discarded.
func (g Glyph) AdvancePixels() int32 {
	return g.Advance >> 6
}

// Bitmap is a rasterizer's output for one code point.
type Bitmap struct {
	Width, Height int
	// Pix holds Height rows of Width coverage bytes, top row first.
	Pix []byte
	// Left and Top are the bearing: the bitmap's top-left corner relative
	// to the pen position, with Top growing upward.
	Left, Top int
	Advance   int32 // 26.6 fixed point
}

// Rasterizer renders single code points to coverage bitmaps.
type Rasterizer interface {
	Rasterize(r rune) (Bitmap, error)
}

// TextureAllocator creates and destroys single-channel glyph textures.
type TextureAllocator interface {
	// NewGlyphTexture uploads a tightly packed width x height coverage
	// bitmap. pix may be empty when either dimension is zero.
	NewGlyphTexture(width, height int, pix []byte) (TextureID, error)
	DeleteTexture(id TextureID)
}
