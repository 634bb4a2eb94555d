package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/cofractal/programs"
)

// Software runs the CPU twins of the kernels into an image.
// Only fragment sources with a CPU implementation compile.
type Software struct {
	programs []programs.PixelFunc
	buffers  int
	target   *image.RGBA
	frames   int
}

func NewSoftware() *Software {
	return &Software{
		target: image.NewRGBA(image.Rectangle{}),
	}
}

func (s *Software) CompileProgram(vertexSource, fragmentSource string) (ProgramID, error) {
	program, err := programs.ForSource(fragmentSource)
	if err != nil {
		return 0, err
	}
	s.programs = append(s.programs, program.GetPixel)
	return ProgramID(len(s.programs) - 1), nil
}

func (s *Software) CreateVertexBuffer(vertices []Vertex) (BufferID, error) {
	s.buffers++
	return BufferID(s.buffers - 1), nil
}

func (s *Software) CreateIndexBuffer(indices []uint8, topology Topology) (BufferID, error) {
	if topology != TriangleFan {
		return 0, fmt.Errorf("software backend only fills triangle fans")
	}
	s.buffers++
	return BufferID(s.buffers - 1), nil
}

func (s *Software) Resize(width, height int) {
	s.target = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Draw fills the whole target. Columns are shaded in parallel chunks.
func (s *Software) Draw(vertices, indices BufferID, program ProgramID, uniforms *programs.Uniforms) error {
	if int(program) < 0 || int(program) >= len(s.programs) {
		return fmt.Errorf("unknown program %d", program)
	}
	if int(vertices) >= s.buffers || int(indices) >= s.buffers {
		return fmt.Errorf("unknown buffer")
	}

	pixelFunc := s.programs[program]
	bounds := s.target.Bounds()
	height := bounds.Dy()
	chunkSize := 50
	var wg sync.WaitGroup

	for chunkMin := bounds.Min.X; chunkMin < bounds.Max.X; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > bounds.Max.X {
			chunkMax = bounds.Max.X
		}

		wg.Add(1)
		go func(chunkMin, chunkMax int) {
			defer wg.Done()
			for x := chunkMin; x < chunkMax; x++ {
				for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
					// image rows go down, fragment coordinates go up
					pos := mgl32.Vec2{float32(x) + 0.5, float32(height-y) - 0.5}
					s.target.SetRGBA(x, y, toRGBA(pixelFunc(*uniforms, pos)))
				}
			}
		}(chunkMin, chunkMax)
	}

	wg.Wait()
	return nil
}

func (s *Software) Present() error {
	s.frames++
	return nil
}

// Image returns the last drawn frame.
func (s *Software) Image() *image.RGBA {
	return s.target
}

// Frames counts presented frames.
func (s *Software) Frames() int {
	return s.frames
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(mgl32.Clamp(c[0], 0, 1) * 255),
		G: uint8(mgl32.Clamp(c[1], 0, 1) * 255),
		B: uint8(mgl32.Clamp(c[2], 0, 1) * 255),
		A: 0xff,
	}
}
