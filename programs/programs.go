package programs

import (
	_ "embed"
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoCPUImplementation = errors.New("fractal does not have a CPU implementation")

var (
	NullColour = mgl32.Vec3{0.1, 0.1, 0.1}
)

const (
	// DefaultIterations is the escape-time budget used when none is configured.
	DefaultIterations = 256

	// EscapeRadius bounds |z|; a point whose orbit leaves it has escaped.
	EscapeRadius = 2

	// PaletteScale converts a smoothed iteration count into palette phase.
	PaletteScale = 0.02
)

//go:embed shaders/canvas.vert
var defaultVertexShader string

// PixelFunc is the CPU twin of a fragment shader.
// pos is the fragment coordinate in window pixels, origin bottom-left, like gl_FragCoord.
type PixelFunc func(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec3

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	GetPixel       PixelFunc
}

// ForSource returns the program whose fragment shader is source.
func ForSource(source string) (Program, error) {
	switch source {
	case Mandelbrot.FragmentShader:
		return Mandelbrot, nil
	case Julia.FragmentShader:
		return Julia, nil
	}
	return Program{}, ErrNoCPUImplementation
}

// PlanePoint maps a fragment coordinate to the complex plane.
// The horizontal half-extent of the view is exactly Zoom, the vertical one follows the aspect ratio.
func PlanePoint(uniforms Uniforms, pos mgl32.Vec2) mgl32.Vec2 {
	ndc := pos.Mul(2).Sub(uniforms.Resolution).Mul(1 / uniforms.Resolution.X())
	return uniforms.Center.Add(ndc.Mul(uniforms.Zoom))
}

// Escape is the outcome of an escape-time iteration.
type Escape struct {
	// Iterations is the index of the first orbit point outside EscapeRadius,
	// or the full budget when the orbit never left it.
	Iterations int
	Escaped    bool

	// Z is the last orbit point examined.
	Z mgl32.Vec2
}

// Smooth returns the continuous escape value used to avoid colour banding.
func (e Escape) Smooth() float32 {
	if !e.Escaped {
		return float32(e.Iterations)
	}
	return float32(e.Iterations) + 1 - math32.Log2(math32.Log(e.Z.Len()))
}

func iterate(z, c mgl32.Vec2, iterations int) Escape {
	for i := 0; i < iterations; i++ {
		if z.Dot(z) > EscapeRadius*EscapeRadius {
			return Escape{Iterations: i, Escaped: true, Z: z}
		}
		z = mgl32.Vec2{z[0]*z[0] - z[1]*z[1] + c[0], 2*z[0]*z[1] + c[1]}
	}
	return Escape{Iterations: iterations, Z: z}
}

// Palette is a channel-wise cosine palette with period 1.
func Palette(t float32) mgl32.Vec3 {
	const tau = 2 * math32.Pi
	return mgl32.Vec3{
		0.5 + 0.5*math32.Cos(tau*t),
		0.5 + 0.5*math32.Cos(tau*(t+0.1)),
		0.5 + 0.5*math32.Cos(tau*(t+0.2)),
	}
}

// Colour maps an escape result to RGB. Interior points are always NullColour.
func Colour(e Escape, paletteOffset float32) mgl32.Vec3 {
	if !e.Escaped {
		return NullColour
	}
	return Palette(e.Smooth()*PaletteScale + paletteOffset)
}
