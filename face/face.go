// Package face rasterizes glyphs from TrueType and OpenType fonts.
//
// A Face renders one code point at a time into an 8-bit coverage bitmap
// together with the bearing and advance the text renderer needs. It
// implements gltext.Rasterizer.
package face

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/gltext"
)

var (
	// ErrFontLoad is returned when a font file cannot be read or parsed.
	ErrFontLoad = errors.New("face: failed to load font")
	// ErrNoGlyph is returned by Rasterize when the font has no outline
	// for a code point.
	ErrNoGlyph = errors.New("face: failed to load glyph")
)

// dpi makes one point equal one pixel, so Size is a pixel size.
const dpi = 72

// Face is a font loaded at a fixed pixel size.
type Face struct {
	font      *sfnt.Font
	face      font.Face
	name      string
	pixelSize int
}

var _ gltext.Rasterizer = (*Face)(nil)

// Open loads the font at path. An empty path loads the embedded Go Regular
// font.
func Open(path string, pixelSize int) (*Face, error) {
	if path == "" {
		return New(goregular.TTF, pixelSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrFontLoad, path, err)
	}
	f, err := New(data, pixelSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// New parses an in-memory TrueType or OpenType font.
func New(data []byte, pixelSize int) (*Face, error) {
	if pixelSize <= 0 {
		return nil, fmt.Errorf("%w: pixel size %d", ErrFontLoad, pixelSize)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	ff, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	var buf sfnt.Buffer
	name, err := parsed.Name(&buf, sfnt.NameIDFull)
	if err != nil {
		name = "unknown"
	}

	gltext.Logger().Info("font loaded", "name", name, "pixelSize", pixelSize, "glyphs", parsed.NumGlyphs())

	return &Face{
		font:      parsed,
		face:      ff,
		name:      name,
		pixelSize: pixelSize,
	}, nil
}

// Name returns the font's full name.
func (f *Face) Name() string {
	return f.name
}

// PixelSize returns the size glyphs are rendered at.
func (f *Face) PixelSize() int {
	return f.pixelSize
}

// HasGlyph reports whether the font maps r to a real glyph rather than
// the .notdef fallback.
func (f *Face) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Rasterize renders r into a tightly packed coverage bitmap.
// Glyphs without ink, such as the space, return a zero-size bitmap that
// still carries the advance.
func (f *Face) Rasterize(r rune) (gltext.Bitmap, error) {
	bounds, advance, ok := f.face.GlyphBounds(r)
	if !ok {
		return gltext.Bitmap{}, fmt.Errorf("%w: rune %d", ErrNoGlyph, r)
	}

	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := x1-x0, y1-y0

	bm := gltext.Bitmap{
		Advance: int32(advance),
	}
	if w <= 0 || h <= 0 {
		return bm, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(-x0, -y0),
	}
	d.DrawString(string(r))

	bm.Width = w
	bm.Height = h
	bm.Pix = dst.Pix
	bm.Left = x0
	bm.Top = -y0
	return bm, nil
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}
