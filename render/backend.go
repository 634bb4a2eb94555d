// Package render draws the active fractal kernel over a full-screen quad.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/cofractal/programs"
)

type (
	ProgramID int
	BufferID  int
)

// Topology is how an index buffer assembles primitives.
type Topology uint8

const (
	TriangleFan Topology = iota
	Triangles
)

type Vertex struct {
	Position mgl32.Vec4
}

// Backend is the graphics layer the Renderer issues work to.
// Handles are only meaningful to the backend that created them.
type Backend interface {
	CompileProgram(vertexSource, fragmentSource string) (ProgramID, error)
	CreateVertexBuffer(vertices []Vertex) (BufferID, error)
	CreateIndexBuffer(indices []uint8, topology Topology) (BufferID, error)

	// Resize informs the backend of new surface dimensions in pixels.
	Resize(width, height int)

	Draw(vertices, indices BufferID, program ProgramID, uniforms *programs.Uniforms) error

	// Present makes the drawn frame visible.
	Present() error
}

// The canvas covers clip space and is drawn as a triangle fan.
var (
	CanvasVertices = []Vertex{
		{mgl32.Vec4{1, 1, 0, 1}},
		{mgl32.Vec4{1, -1, 0, 1}},
		{mgl32.Vec4{-1, -1, 0, 1}},
		{mgl32.Vec4{-1, 1, 0, 1}},
	}
	CanvasIndices = []uint8{0, 1, 2, 3}
)
