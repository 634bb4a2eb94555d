package render

import (
	"fmt"

	"github.com/stewi1014/cofractal/view"
)

// ProgramCompileError means a kernel could not be built. Nothing can be drawn without it.
type ProgramCompileError struct {
	Program string
	Err     error
}

func (e *ProgramCompileError) Error() string {
	return fmt.Sprintf("compiling %v program: %v", e.Program, e.Err)
}

func (e *ProgramCompileError) Unwrap() error {
	return e.Err
}

// DrawError means a single frame was dropped.
type DrawError struct {
	Set view.Set
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("drawing %v frame: %v", e.Set, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
