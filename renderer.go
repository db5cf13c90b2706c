package gltext

import "github.com/go-gl/mathgl/mgl32"

// Pipeline is the GPU side of the per-glyph draw protocol.
type Pipeline interface {
	// Begin activates the text program with the given color and binds the
	// shared vertex array.
	Begin(color mgl32.Vec3)
	// DrawQuad binds tex, overwrites the shared vertex buffer in place with
	// q and draws its six vertices.
	DrawQuad(tex TextureID, q *Quad)
	// End unbinds the vertex array and texture.
	End()
}

// Placement is one laid-out glyph.
type Placement struct {
	Rune    rune
	Texture TextureID
	Rect    Rect
	Quad    Quad
	PenX    float32 // Pen x before the glyph was placed
}

// TextRenderer lays out and draws single lines of text from a GlyphCache.
type TextRenderer struct {
	cache    *GlyphCache
	pipeline Pipeline
	color    mgl32.Vec3
}

// TextRendererOption configures a TextRenderer.
type TextRendererOption func(*TextRenderer)

// WithTextColor sets the solid text color. The default is white.
func WithTextColor(c mgl32.Vec3) TextRendererOption {
	return func(t *TextRenderer) { t.color = c }
}

// NewTextRenderer creates a renderer drawing glyphs from cache through p.
func NewTextRenderer(cache *GlyphCache, p Pipeline, opts ...TextRendererOption) *TextRenderer {
	t := &TextRenderer{
		cache:    cache,
		pipeline: p,
		color:    mgl32.Vec3{1, 1, 1},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Color returns the text color.
func (t *TextRenderer) Color() mgl32.Vec3 {
	return t.color
}

// Draw renders text left to right with the pen starting at (x, y) on the
// baseline. Every character in the table costs one draw call, including
// spaces and glyphs that failed to load; runes outside the table are
// skipped without moving the pen.
func (t *TextRenderer) Draw(text string, x, y, scale float32) {
	t.pipeline.Begin(t.color)
	defer t.pipeline.End()

	for _, r := range text {
		g, ok := t.cache.Glyph(r)
		if !ok {
			Logger().Debug("no glyph for rune", "rune", r)
			continue
		}

		q := NewQuad(PlaceGlyph(g, x, y, scale))
		t.pipeline.DrawQuad(g.Texture, &q)

		x += float32(g.AdvancePixels()) * scale
	}
}

// Layout returns the placements Draw would produce, without drawing.
func (t *TextRenderer) Layout(text string, x, y, scale float32) []Placement {
	var out []Placement
	for _, r := range text {
		g, ok := t.cache.Glyph(r)
		if !ok {
			continue
		}

		rect := PlaceGlyph(g, x, y, scale)
		out = append(out, Placement{
			Rune:    r,
			Texture: g.Texture,
			Rect:    rect,
			Quad:    NewQuad(rect),
			PenX:    x,
		})

		x += float32(g.AdvancePixels()) * scale
	}
	return out
}

// Measure returns how far the pen moves when drawing text at scale.
func (t *TextRenderer) Measure(text string, scale float32) float32 {
	var w float32
	for _, r := range text {
		if g, ok := t.cache.Glyph(r); ok {
			w += float32(g.AdvancePixels()) * scale
		}
	}
	return w
}
