// Package opengl provides the OpenGL 4.1 backend for gltext: glyph
// textures, the shared quad buffer, the text shader program and a GLFW
// window.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltext"
)

// quadBytes is the size of one quad in the vertex buffer: the
// gltext.Quad.Floats layout of 6 vertices of x, y, u, v.
const quadBytes = int(unsafe.Sizeof([gltext.QuadVertices * 4]float32{}))

// Device owns the GL objects the text renderer draws with.
// It implements gltext.TextureAllocator, gltext.Pipeline and gltext.Clearer.
type Device struct {
	program  *Program
	vao, vbo uint32
	textures int
}

var (
	_ gltext.TextureAllocator = (*Device)(nil)
	_ gltext.Pipeline         = (*Device)(nil)
	_ gltext.Clearer          = (*Device)(nil)
)

// NewDevice sets up blending, uploads the projection for a width x height
// window to program and allocates the shared quad buffer.
func NewDevice(program *Program, width, height int) (*Device, error) {
	d := &Device{program: program}

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	program.Use()
	program.SetProjection(gltext.Projection(width, height))
	gl.Uniform1i(program.Uniform(UniformGlyph), 0)
	gl.UseProgram(0)

	// Create VAO
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	// Create VBO sized for exactly one quad; it is rewritten per glyph.
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quadBytes, nil, gl.DYNAMIC_DRAW)

	// vec4 attribute: position in xy, texture coordinate in zw
	stride := int32(4 * unsafe.Sizeof(float32(0)))
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		d.Delete()
		return nil, fmt.Errorf("failed to create quad buffer: gl error 0x%x", code)
	}

	return d, nil
}

// NewGlyphTexture uploads a single-channel coverage bitmap with
// clamp-to-edge wrapping and linear filtering.
func (d *Device) NewGlyphTexture(width, height int, pix []byte) (gltext.TextureID, error) {
	if len(pix) < width*height {
		return 0, fmt.Errorf("glyph bitmap is %d bytes, want %d", len(pix), width*height)
	}

	var data unsafe.Pointer
	if len(pix) > 0 {
		data = gl.Ptr(pix)
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, data)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("glyph texture %dx%d: gl error 0x%x", width, height, code)
	}

	d.textures++
	return gltext.TextureID(tex), nil
}

// DeleteTexture releases a glyph texture.
func (d *Device) DeleteTexture(id gltext.TextureID) {
	tex := uint32(id)
	if tex == 0 {
		return
	}
	gl.DeleteTextures(1, &tex)
	d.textures--
}

// Textures returns the number of live glyph textures.
func (d *Device) Textures() int {
	return d.textures
}

// Begin activates the text program and binds the quad buffer.
func (d *Device) Begin(color mgl32.Vec3) {
	d.program.Use()
	d.program.SetTextColor(color)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
}

// DrawQuad rewrites the quad buffer in place with q's x, y, u, v floats
// and draws it with tex.
func (d *Device) DrawQuad(tex gltext.TextureID, q *gltext.Quad) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	vertices := q.Floats()
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, quadBytes, gl.Ptr(&vertices[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, gltext.QuadVertices)
}

// End unbinds everything Begin and DrawQuad bound.
func (d *Device) End() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Clear fills the color buffer.
func (d *Device) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadPixels copies the bottom-left width x height region of the
// framebuffer into an image, top row first.
func (d *Device) ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img.Pix, width*4)
	return img
}

// flipRows reverses the row order of pix in place; OpenGL's origin is
// bottom-left.
func flipRows(pix []byte, rowLen int) {
	rows := len(pix) / rowLen
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bot:bot+rowLen])
		copy(pix[bot:bot+rowLen], tmp)
	}
}

// Delete releases the quad buffer and vertex array. Glyph textures are
// released by their owner through DeleteTexture.
func (d *Device) Delete() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}
