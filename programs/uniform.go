package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the uniform block shared by every program.
// The uniform tag names the GLSL uniform a field is loaded into.
type Uniforms struct {
	Resolution    mgl32.Vec2 `uniform:"resolution"`
	Center        mgl32.Vec2 `uniform:"center"`
	Start         mgl32.Vec2 `uniform:"start"`
	Zoom          float32    `uniform:"zoom"`
	PaletteOffset float32    `uniform:"palette_offset"`
	Iterations    int32      `uniform:"iterations"`
	Transforms    mgl32.Mat4 `uniform:"transforms"`
}
