// Package app owns the view state and reacts to window events.
package app

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/stewi1014/cofractal/input"
	"github.com/stewi1014/cofractal/view"
)

// Window is what the controller needs from the window system.
type Window interface {
	// RequestRedraw asks for a RedrawRequested event. Requests may be coalesced.
	RequestRedraw()

	// Exit ends the event loop.
	Exit()
}

// Renderer draws frames. *render.Renderer implements it.
type Renderer interface {
	Resize(width, height int)
	Render(state view.State, size image.Point) error
}

// Controller handles events one at a time on the window system's goroutine.
type Controller struct {
	state    view.State
	size     image.Point
	window   Window
	renderer Renderer
	handlers map[EventKind]func(Event)

	out *termenv.Output
	log *slog.Logger
}

type Option func(*Controller)

// WithOutput sets where the status block is printed.
func WithOutput(out *termenv.Output) Option {
	return func(c *Controller) {
		c.out = out
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithSize sets the surface size known before the first Resized event.
func WithSize(width, height int) Option {
	return func(c *Controller) {
		c.size = image.Pt(width, height)
	}
}

func New(window Window, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		state:    view.New(),
		window:   window,
		renderer: renderer,
		out:      termenv.NewOutput(io.Discard),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.handlers = map[EventKind]func(Event){
		Init:            c.onInit,
		Resized:         c.onResized,
		CloseRequested:  c.onCloseRequested,
		RedrawRequested: c.onRedrawRequested,
		KeyboardInput:   c.onKeyboardInput,
	}
	return c
}

// Handle processes ev to completion.
func (c *Controller) Handle(ev Event) {
	handler, ok := c.handlers[ev.Kind]
	if !ok {
		c.log.Debug("ignored event", "kind", ev.Kind)
		return
	}
	handler(ev)
}

// State returns a copy of the current view.
func (c *Controller) State() view.State {
	return c.state
}

// Size returns the last known surface size.
func (c *Controller) Size() image.Point {
	return c.size
}

func (c *Controller) onInit(Event) {
	c.printStatus()
}

func (c *Controller) onResized(ev Event) {
	c.size = image.Pt(ev.Width, ev.Height)
	c.renderer.Resize(ev.Width, ev.Height)
	c.window.RequestRedraw()
}

func (c *Controller) onCloseRequested(Event) {
	c.window.Exit()
}

func (c *Controller) onRedrawRequested(Event) {
	if err := c.renderer.Render(c.state, c.size); err != nil {
		c.log.Error("frame dropped", "err", err)
	}
}

func (c *Controller) onKeyboardInput(ev Event) {
	if input.HandleKey(&c.state, ev.Key, ev.Phase) {
		c.log.Debug("view changed", "key", ev.Key, "phase", ev.Phase)
		c.window.RequestRedraw()
	}
	if input.ShowsStatus(ev.Key, ev.Phase) {
		c.printStatus()
	}
}

func (c *Controller) printStatus() {
	status := c.out.String(c.state.String())
	if c.state.Set == view.Julia {
		status = status.Foreground(c.out.Color("5"))
	} else {
		status = status.Foreground(c.out.Color("6"))
	}
	fmt.Fprintln(c.out, status.String())
}
