package gltext_test

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltext"
)

var errRasterize = errors.New("rasterize failed")

// fakeRasterizer produces deterministic bitmaps whose metrics depend on the
// code point. Space has no ink.
type fakeRasterizer struct {
	fail map[rune]bool
}

func (f *fakeRasterizer) Rasterize(r rune) (gltext.Bitmap, error) {
	if f.fail[r] {
		return gltext.Bitmap{}, errRasterize
	}
	// 8 to 10 whole pixels plus a fraction that must be discarded.
	advance := int32(8+int(r)%3)<<6 + 17
	if r == ' ' {
		return gltext.Bitmap{Advance: advance}, nil
	}
	w, h := 6+int(r)%4, 10+int(r)%5
	return gltext.Bitmap{
		Width:   w,
		Height:  h,
		Pix:     make([]byte, w*h),
		Left:    1,
		Top:     h - 2,
		Advance: advance,
	}, nil
}

// fakeTextures hands out sequential texture ids and tracks live ones.
type fakeTextures struct {
	next    gltext.TextureID
	live    map[gltext.TextureID]bool
	deleted int
	failFor map[int]bool // fail uploads of this width
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{live: make(map[gltext.TextureID]bool)}
}

func (f *fakeTextures) NewGlyphTexture(width, height int, pix []byte) (gltext.TextureID, error) {
	if f.failFor[width] {
		return 0, errors.New("upload failed")
	}
	f.next++
	f.live[f.next] = true
	return f.next, nil
}

func (f *fakeTextures) DeleteTexture(id gltext.TextureID) {
	delete(f.live, id)
	f.deleted++
}

type drawCall struct {
	tex  gltext.TextureID
	quad gltext.Quad
}

// recordingPipeline records the draw protocol instead of talking to a GPU.
type recordingPipeline struct {
	begins, ends int
	color        mgl32.Vec3
	calls        []drawCall
	inside       bool
}

func (p *recordingPipeline) Begin(color mgl32.Vec3) {
	p.begins++
	p.color = color
	p.inside = true
}

func (p *recordingPipeline) DrawQuad(tex gltext.TextureID, q *gltext.Quad) {
	if !p.inside {
		panic("DrawQuad outside Begin/End")
	}
	p.calls = append(p.calls, drawCall{tex: tex, quad: *q})
}

func (p *recordingPipeline) End() {
	p.ends++
	p.inside = false
}

func (p *recordingPipeline) reset() {
	*p = recordingPipeline{}
}

func newTestRenderer(fail ...rune) (*gltext.TextRenderer, *gltext.GlyphCache, *recordingPipeline) {
	r := &fakeRasterizer{fail: make(map[rune]bool)}
	for _, c := range fail {
		r.fail[c] = true
	}
	cache := gltext.NewGlyphCache(r, newFakeTextures())
	pipe := &recordingPipeline{}
	return gltext.NewTextRenderer(cache, pipe), cache, pipe
}
