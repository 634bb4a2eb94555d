package render

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/cofractal/programs"
	"github.com/stewi1014/cofractal/view"
)

type Renderer struct {
	backend    Backend
	vertices   BufferID
	indices    BufferID
	mandelbrot ProgramID
	julia      ProgramID
	iterations int32
}

// New compiles both kernels and uploads the canvas.
// A kernel that fails to compile is returned as a *ProgramCompileError.
func New(backend Backend, iterations int) (*Renderer, error) {
	if iterations <= 0 {
		iterations = programs.DefaultIterations
	}

	r := &Renderer{
		backend:    backend,
		iterations: int32(iterations),
	}

	var err error
	r.mandelbrot, err = compile(backend, programs.Mandelbrot)
	if err != nil {
		return nil, err
	}

	r.julia, err = compile(backend, programs.Julia)
	if err != nil {
		return nil, err
	}

	r.vertices, err = backend.CreateVertexBuffer(CanvasVertices)
	if err != nil {
		return nil, fmt.Errorf("creating canvas vertex buffer: %w", err)
	}

	r.indices, err = backend.CreateIndexBuffer(CanvasIndices, TriangleFan)
	if err != nil {
		return nil, fmt.Errorf("creating canvas index buffer: %w", err)
	}

	return r, nil
}

func compile(backend Backend, program programs.Program) (ProgramID, error) {
	id, err := backend.CompileProgram(program.VertexShader, program.FragmentShader)
	if err != nil {
		return 0, &ProgramCompileError{Program: program.Name, Err: err}
	}
	return id, nil
}

// Resize forwards new surface dimensions to the backend.
func (r *Renderer) Resize(width, height int) {
	r.backend.Resize(width, height)
}

// Uniforms builds the uniform block for one frame.
func (r *Renderer) Uniforms(state view.State, size image.Point) programs.Uniforms {
	return programs.Uniforms{
		Resolution:    mgl32.Vec2{float32(size.X), float32(size.Y)},
		Center:        state.Center,
		Start:         state.Start,
		Zoom:          state.Zoom,
		PaletteOffset: state.PaletteOffset,
		Iterations:    r.iterations,
		Transforms:    mgl32.Ident4(),
	}
}

func (r *Renderer) program(set view.Set) ProgramID {
	switch set {
	case view.Julia:
		return r.julia
	default:
		return r.mandelbrot
	}
}

// Render draws one frame of state on a surface of the given size and presents it.
// An empty surface draws nothing.
func (r *Renderer) Render(state view.State, size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}

	uniforms := r.Uniforms(state, size)
	if err := r.backend.Draw(r.vertices, r.indices, r.program(state.Set), &uniforms); err != nil {
		return &DrawError{Set: state.Set, Err: err}
	}

	if err := r.backend.Present(); err != nil {
		return &DrawError{Set: state.Set, Err: fmt.Errorf("present: %w", err)}
	}

	return nil
}
