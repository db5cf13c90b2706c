package gltext

import "github.com/go-gl/mathgl/mgl32"

// LoopState is the state of a FrameLoop.
type LoopState int

const (
	// Running means the loop will present another frame.
	Running LoopState = iota
	// Closing is terminal: the window asked to close.
	Closing
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Surface is the window side of the frame loop.
type Surface interface {
	PollEvents()
	ShouldClose() bool
	SwapBuffers()
}

// Clearer clears the color buffer.
type Clearer interface {
	Clear(color mgl32.Vec4)
}

// Line is the text a FrameLoop draws every frame.
type Line struct {
	Text  string
	X, Y  float32
	Scale float32
}

// FrameLoop polls, clears, draws one line and presents until the surface
// reports it should close.
type FrameLoop struct {
	surface    Surface
	clearer    Clearer
	renderer   *TextRenderer
	line       Line
	clearColor mgl32.Vec4
	state      LoopState
	frames     int
}

// FrameLoopOption configures a FrameLoop.
type FrameLoopOption func(*FrameLoop)

// WithClearColor sets the background color. The default is opaque black.
func WithClearColor(c mgl32.Vec4) FrameLoopOption {
	return func(l *FrameLoop) { l.clearColor = c }
}

// NewFrameLoop creates a loop in the Running state.
func NewFrameLoop(s Surface, c Clearer, r *TextRenderer, line Line, opts ...FrameLoopOption) *FrameLoop {
	l := &FrameLoop{
		surface:    s,
		clearer:    c,
		renderer:   r,
		line:       line,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
		state:      Running,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *FrameLoop) State() LoopState {
	return l.state
}

// Frames returns the number of frames presented.
func (l *FrameLoop) Frames() int {
	return l.frames
}

// Step runs one iteration and returns the resulting state.
// Once Closing, Step does nothing.
func (l *FrameLoop) Step() LoopState {
	if l.state == Closing {
		return l.state
	}

	l.surface.PollEvents()
	if l.surface.ShouldClose() {
		l.state = Closing
		return l.state
	}

	l.clearer.Clear(l.clearColor)
	l.renderer.Draw(l.line.Text, l.line.X, l.line.Y, l.line.Scale)
	l.surface.SwapBuffers()
	l.frames++

	return l.state
}

// Run steps until the loop is Closing.
func (l *FrameLoop) Run() {
	for l.Step() == Running {
	}
	Logger().Info("frame loop closing", "frames", l.frames)
}
