package opengl

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/gltext"
)

// ErrShaderSource is returned when a shader source file cannot be read.
var ErrShaderSource = errors.New("opengl: could not read shader source")

// Uniform names used by the text shaders.
const (
	UniformProjection = "projection"
	UniformTextColor  = "textColor"
	UniformGlyph      = "text"
)

// objectKind tells checkStatus whether it is looking at a shader stage or
// a linked program; the two use different status and log queries.
type objectKind int

const (
	stageObject objectKind = iota
	programObject
)

// Program is a linked text shader program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// BuildProgram reads, compiles and links the two shader stages.
//
// Failing to read either file is an error. Compile and link failures are
// only logged: the program is still returned and will draw nothing.
func BuildProgram(vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := readShaderSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readShaderSource(fragmentPath)
	if err != nil {
		return nil, err
	}

	vertexShader, vertexOK := compileStage(gl.VERTEX_SHADER, "VERTEX", vertexSource)
	fragmentShader, fragmentOK := compileStage(gl.FRAGMENT_SHADER, "FRAGMENT", fragmentSource)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	linked := checkStatus(program, programObject, "PROGRAM")

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	p := &Program{
		id:       program,
		uniforms: make(map[string]int32),
	}
	logProgramBuilt(p.ID(), buildStatus{vertex: vertexOK, fragment: fragmentOK, linked: linked})
	return p, nil
}

// buildStatus records which steps of BuildProgram succeeded.
type buildStatus struct {
	vertex, fragment, linked bool
}

func (s buildStatus) ok() bool {
	return s.vertex && s.fragment && s.linked
}

// logProgramBuilt reports the outcome of a build. Failures were already
// logged with the driver's diagnostics; this adds the summary.
func logProgramBuilt(id uint32, s buildStatus) {
	log := gltext.Logger()
	attrs := []any{"id", id, "vertex", s.vertex, "fragment", s.fragment, "linked", s.linked}
	if s.ok() {
		log.Info("shader program built", attrs...)
		return
	}
	log.Warn("shader program built with errors, text will not render", attrs...)
}

// readShaderSource returns the file contents NUL-terminated for gl.Strs.
func readShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w `%s`: %w", ErrShaderSource, path, err)
	}
	src := string(data)
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	return src, nil
}

func compileStage(stage uint32, name, source string) (uint32, bool) {
	shader := gl.CreateShader(stage)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)
	return shader, checkStatus(shader, stageObject, name)
}

// checkStatus reports whether a compile or link succeeded, logging the
// driver's info log if it did not.
func checkStatus(object uint32, kind objectKind, name string) bool {
	var status, logLength int32

	switch kind {
	case stageObject:
		gl.GetShaderiv(object, gl.COMPILE_STATUS, &status)
	case programObject:
		gl.GetProgramiv(object, gl.LINK_STATUS, &status)
	}
	if status != gl.FALSE {
		return true
	}

	switch kind {
	case stageObject:
		gl.GetShaderiv(object, gl.INFO_LOG_LENGTH, &logLength)
	case programObject:
		gl.GetProgramiv(object, gl.INFO_LOG_LENGTH, &logLength)
	}

	log := make([]byte, logLength+1)
	if logLength > 0 {
		switch kind {
		case stageObject:
			gl.GetShaderInfoLog(object, logLength, nil, &log[0])
		case programObject:
			gl.GetProgramInfoLog(object, logLength, nil, &log[0])
		}
	}

	gltext.Logger().Error(kind.failure(), "type", name, "error", strings.TrimRight(string(log), "\x00\n"))
	return false
}

func (k objectKind) failure() string {
	if k == programObject {
		return "shader program linking failed"
	}
	return "shader compilation failed"
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of a uniform, looked up once.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetProjection uploads the projection matrix. The program must be in use.
func (p *Program) SetProjection(m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(UniformProjection), 1, false, &m[0])
}

// SetTextColor uploads the text color. The program must be in use.
func (p *Program) SetTextColor(c mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(UniformTextColor), c[0], c[1], c[2])
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
