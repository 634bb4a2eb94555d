package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/julia.frag
var juliaFragment string

var Julia = Program{
	Name:           "Julia",
	VertexShader:   defaultVertexShader,
	FragmentShader: juliaFragment,
	GetPixel: func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec3 {
		z := PlanePoint(uniforms, pos)
		return Colour(EscapeJulia(z, uniforms.Start, int(uniforms.Iterations)), uniforms.PaletteOffset)
	},
}

// EscapeJulia iterates z = z² + start from the seed z.
func EscapeJulia(z, start mgl32.Vec2, iterations int) Escape {
	return iterate(z, start, iterations)
}
