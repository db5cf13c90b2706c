// Package gltext renders a single line of text with one draw call per glyph.
//
// The package holds the parts of the pipeline that carry design content and
// can run without a GPU:
//
//   - [GlyphCache]: 128 glyph slots indexed by ASCII code point, filled once
//     from a [Rasterizer] and a [TextureAllocator].
//   - [Quad] and [PlaceGlyph]: the two-triangle rectangle for one glyph.
//   - [TextRenderer]: lays a string out left-to-right along a baseline and
//     issues one [Pipeline.DrawQuad] per character.
//   - [FrameLoop]: poll, clear, draw, present until the window closes.
//
// GPU work happens behind small interfaces implemented by
// backend/opengl, and glyph bitmaps come from the face package.
//
// # Coordinates
//
// Positions are window pixels with the origin at the bottom-left corner,
// matching the orthographic [Projection]. Glyph advances are 26.6 fixed point
// and are truncated to whole pixels before scaling.
//
// # Usage
//
//	fnt, err := face.Open(cfg.FontPath, cfg.PixelSize)
//	...
//	cache := gltext.NewGlyphCache(fnt, device)
//	defer cache.Release()
//
//	tr := gltext.NewTextRenderer(cache, device, gltext.WithTextColor(cfg.TextColor))
//	loop := gltext.NewFrameLoop(window, device, tr, cfg.Line())
//	loop.Run()
package gltext
