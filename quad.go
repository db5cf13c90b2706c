package gltext

// QuadVertices is the number of vertices drawn per glyph.
const QuadVertices = 6

// Quad is two triangles covering one glyph rectangle.
type Quad [QuadVertices]Vertex

// PlaceGlyph returns the screen rectangle for g drawn with its pen at
// (penX, penY) on the baseline.
func PlaceGlyph(g Glyph, penX, penY, scale float32) Rect {
	return Rect{
		X: penX + g.Bearing.X*scale,
		Y: penY - (g.Size.Y-g.Bearing.Y)*scale,
		W: g.Size.X * scale,
		H: g.Size.Y * scale,
	}
}

// NewQuad builds the quad for r.
// V is flipped relative to Y because glyph bitmaps are stored top row first.
func NewQuad(r Rect) Quad {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	return Quad{
		{X: x0, Y: y1, U: 0, V: 0},
		{X: x0, Y: y0, U: 0, V: 1},
		{X: x1, Y: y0, U: 1, V: 1},

		{X: x0, Y: y1, U: 0, V: 0},
		{X: x1, Y: y0, U: 1, V: 1},
		{X: x1, Y: y1, U: 1, V: 0},
	}
}

// Bounds returns the rectangle the quad covers.
func (q *Quad) Bounds() Rect {
	return Rect{X: q[1].X, Y: q[1].Y, W: q[5].X - q[1].X, H: q[5].Y - q[1].Y}
}

// Floats returns the quad as a flat x, y, u, v array, the layout of the
// vertex buffer.
func (q *Quad) Floats() [QuadVertices * 4]float32 {
	var out [QuadVertices * 4]float32
	for i, v := range q {
		out[i*4+0] = v.X
		out[i*4+1] = v.Y
		out[i*4+2] = v.U
		out[i*4+3] = v.V
	}
	return out
}
