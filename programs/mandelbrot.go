package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/mandelbrot.frag
var mandelbrotFragment string

var Mandelbrot = Program{
	Name:           "Mandelbrot",
	VertexShader:   defaultVertexShader,
	FragmentShader: mandelbrotFragment,
	GetPixel: func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec3 {
		c := PlanePoint(uniforms, pos)
		return Colour(EscapeMandelbrot(c, int(uniforms.Iterations)), uniforms.PaletteOffset)
	},
}

// EscapeMandelbrot iterates z = z² + c from z = 0.
func EscapeMandelbrot(c mgl32.Vec2, iterations int) Escape {
	return iterate(mgl32.Vec2{}, c, iterations)
}
