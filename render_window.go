package main

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/cofractal/app"
	"github.com/stewi1014/cofractal/config"
	"github.com/stewi1014/cofractal/input"
)

// NewRenderWindow opens a GLFW window with a current OpenGL 4.6 core context.
// glfw.Init must have been called.
func NewRenderWindow(cfg config.Window, debug bool) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(
		cfg.Width,
		cfg.Height,
		cfg.Title,
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &RenderWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
	controller    *app.Controller
	redrawPending bool
}

// RequestRedraw marks a frame as needed and wakes the event loop.
// Several requests before the loop wakes produce one frame.
func (w *RenderWindow) RequestRedraw() {
	w.redrawPending = true
	glfw.PostEmptyEvent()
}

func (w *RenderWindow) Exit() {
	w.SetShouldClose(true)
}

// Attach routes the window's events to c.
func (w *RenderWindow) Attach(c *app.Controller) {
	w.controller = c

	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok {
			k = input.KeyUnknown
		}
		phase := input.Pressed
		if action == glfw.Release {
			phase = input.Released
		}
		c.Handle(app.KeyEvent(k, phase))
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.Handle(app.ResizeEvent(width, height))
	})
	w.SetCloseCallback(func(*glfw.Window) {
		c.Handle(app.CloseEvent())
	})
	w.SetRefreshCallback(func(*glfw.Window) {
		w.RequestRedraw()
	})
}

// Run blocks in the event loop until the window closes or ctx is done.
// Nothing is drawn while no redraw is pending.
func (w *RenderWindow) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, glfw.PostEmptyEvent)
	defer stop()

	w.controller.Handle(app.InitEvent())
	w.RequestRedraw()

	for !w.ShouldClose() && ctx.Err() == nil {
		glfw.WaitEvents()

		if w.redrawPending {
			w.redrawPending = false
			w.controller.Handle(app.RedrawEvent())
		}
	}

	return nil
}

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyA:            input.KeyA,
	glfw.KeyD:            input.KeyD,
	glfw.KeyH:            input.KeyH,
	glfw.KeyJ:            input.KeyJ,
	glfw.KeyM:            input.KeyM,
	glfw.KeyR:            input.KeyR,
	glfw.KeyS:            input.KeyS,
	glfw.KeyW:            input.KeyW,
	glfw.KeyLeftShift:    input.KeyShiftLeft,
	glfw.KeyRightShift:   input.KeyShiftRight,
	glfw.KeyLeftControl:  input.KeyControlLeft,
	glfw.KeyRightControl: input.KeyControlRight,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyEqual:        input.KeyEqual,
	glfw.KeyKPSubtract:   input.KeyNumpadSubtract,
	glfw.KeyKPAdd:        input.KeyNumpadAdd,
	glfw.KeyKP0:          input.KeyNumpad0,
}
