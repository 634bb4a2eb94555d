// Package glrender implements render.Backend on OpenGL 4.6 core.
// Every method must be called on the goroutine owning the current GL context.
package glrender

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/cofractal/programs"
	"github.com/stewi1014/cofractal/render"
)

var _ render.Backend = (*Backend)(nil)

type program struct {
	id               uint32
	uniformLocations map[string]int32
}

type buffer struct {
	id       uint32
	target   uint32
	count    int32
	topology uint32
}

type Backend struct {
	vao      uint32
	programs []program
	buffers  []buffer
	present  func()
	log      *slog.Logger
}

// New loads GL function pointers for the current context.
// present is called to show a finished frame and may be nil when the window system presents on its own.
func New(present func(), log *slog.Logger, debug bool) (*Backend, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}

	b := &Backend{
		present: present,
		log:     log,
	}

	log.Info("OpenGL context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if debug {
		gl.DebugMessageCallback(b.debugMessage, nil)
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	return b, nil
}

func (b *Backend) CompileProgram(vertexSource, fragmentSource string) (render.ProgramID, error) {
	vertexShader, err := compileShader(vertexSource+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.BindFragDataLocation(id, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(id, l, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	p := program{
		id:               id,
		uniformLocations: make(map[string]int32),
	}
	t := reflect.TypeOf(programs.Uniforms{})
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		// -1 for uniforms the kernel does not use; setting those is a no-op
		p.uniformLocations[name] = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}

	b.programs = append(b.programs, p)
	return render.ProgramID(len(b.programs) - 1), nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func (b *Backend) CreateVertexBuffer(vertices []render.Vertex) (render.BufferID, error) {
	if len(vertices) == 0 {
		return 0, fmt.Errorf("empty vertex buffer")
	}

	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4*4, gl.Ptr(&vertices[0].Position[0]), gl.STATIC_DRAW)

	b.buffers = append(b.buffers, buffer{
		id:     id,
		target: gl.ARRAY_BUFFER,
		count:  int32(len(vertices)),
	})
	return render.BufferID(len(b.buffers) - 1), nil
}

func (b *Backend) CreateIndexBuffer(indices []uint8, topology render.Topology) (render.BufferID, error) {
	if len(indices) == 0 {
		return 0, fmt.Errorf("empty index buffer")
	}

	mode := uint32(gl.TRIANGLE_FAN)
	if topology == render.Triangles {
		mode = gl.TRIANGLES
	}

	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	b.buffers = append(b.buffers, buffer{
		id:       id,
		target:   gl.ELEMENT_ARRAY_BUFFER,
		count:    int32(len(indices)),
		topology: mode,
	})
	return render.BufferID(len(b.buffers) - 1), nil
}

func (b *Backend) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) buffer(id render.BufferID, target uint32) (buffer, error) {
	if int(id) < 0 || int(id) >= len(b.buffers) || b.buffers[id].target != target {
		return buffer{}, fmt.Errorf("unknown buffer %d", id)
	}
	return b.buffers[id], nil
}

func (b *Backend) Draw(vertices, indices render.BufferID, programID render.ProgramID, uniforms *programs.Uniforms) error {
	if int(programID) < 0 || int(programID) >= len(b.programs) {
		return fmt.Errorf("unknown program %d", programID)
	}
	p := b.programs[programID]

	vb, err := b.buffer(vertices, gl.ARRAY_BUFFER)
	if err != nil {
		return err
	}
	ib, err := b.buffer(indices, gl.ELEMENT_ARRAY_BUFFER)
	if err != nil {
		return err
	}

	gl.ClearColor(0.7, 0.7, 0.7, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(p.id)
	b.loadUniforms(p, uniforms)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.DrawElementsWithOffset(ib.topology, ib.count, gl.UNSIGNED_BYTE, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (b *Backend) Present() error {
	if b.present != nil {
		b.present()
	}
	return nil
}

func (b *Backend) loadUniforms(p program, uniforms *programs.Uniforms) {
	v := reflect.ValueOf(uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc := p.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if loc < 0 {
			continue
		}

		switch f.Type() {
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec4{}):
			gl.Uniform4fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Mat4{}):
			gl.UniformMatrix4fv(loc, 1, false, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		default:
			b.log.Warn("unsupported uniform type", "type", f.Type())
		}
	}
}
