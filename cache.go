package gltext

// GlyphCache is a fixed table of glyphs indexed by ASCII code point.
// It is filled once by NewGlyphCache and is read-only afterwards.
type GlyphCache struct {
	glyphs   [GlyphCount]Glyph
	loaded   [GlyphCount]bool
	textures TextureAllocator
	released bool
}

// NewGlyphCache rasterizes code points 0..127 and uploads each bitmap as a
// texture. A code point that fails to rasterize or upload is logged and its
// slot left zero-valued; it then draws as an empty quad and does not move
// the pen.
func NewGlyphCache(r Rasterizer, textures TextureAllocator) *GlyphCache {
	c := &GlyphCache{textures: textures}
	log := Logger()

	for code := rune(0); code < GlyphCount; code++ {
		bm, err := r.Rasterize(code)
		if err != nil {
			log.Warn("failed to rasterize glyph", "rune", int(code), "err", err)
			continue
		}

		tex, err := textures.NewGlyphTexture(bm.Width, bm.Height, bm.Pix)
		if err != nil {
			log.Warn("failed to upload glyph texture", "rune", int(code), "err", err)
			continue
		}

		c.glyphs[code] = Glyph{
			Texture: tex,
			Size:    Vec2{X: float32(bm.Width), Y: float32(bm.Height)},
			Bearing: Vec2{X: float32(bm.Left), Y: float32(bm.Top)},
			Advance: bm.Advance,
		}
		c.loaded[code] = true
	}

	log.Debug("glyph cache populated", "loaded", c.Len())
	return c
}

// Glyph returns the glyph for r. The second result is false when r is
// outside the table; slots that failed to load still report true with a
// zero Glyph.
func (c *GlyphCache) Glyph(r rune) (Glyph, bool) {
	if r < 0 || r >= GlyphCount {
		return Glyph{}, false
	}
	return c.glyphs[r], true
}

// Loaded reports whether r was rasterized and uploaded successfully.
func (c *GlyphCache) Loaded(r rune) bool {
	if r < 0 || r >= GlyphCount {
		return false
	}
	return c.loaded[r]
}

// Len returns the number of loaded slots.
func (c *GlyphCache) Len() int {
	n := 0
	for _, ok := range c.loaded {
		if ok {
			n++
		}
	}
	return n
}

// Release deletes every glyph texture. Safe to call more than once.
func (c *GlyphCache) Release() {
	if c.released {
		return
	}
	c.released = true

	for i := range c.glyphs {
		if c.loaded[i] && c.glyphs[i].Texture != 0 {
			c.textures.DeleteTexture(c.glyphs[i].Texture)
		}
		c.glyphs[i] = Glyph{}
		c.loaded[i] = false
	}
}
