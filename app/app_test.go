package app

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/muesli/termenv"
	"github.com/stewi1014/cofractal/input"
	"github.com/stewi1014/cofractal/programs"
	"github.com/stewi1014/cofractal/render"
	"github.com/stewi1014/cofractal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	redraws int
	exited  bool
}

func (w *fakeWindow) RequestRedraw() { w.redraws++ }
func (w *fakeWindow) Exit()          { w.exited = true }

type frame struct {
	state view.State
	size  image.Point
}

type fakeRenderer struct {
	resizes []image.Point
	frames  []frame
	err     error
}

func (r *fakeRenderer) Resize(width, height int) {
	r.resizes = append(r.resizes, image.Pt(width, height))
}

func (r *fakeRenderer) Render(state view.State, size image.Point) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, frame{state, size})
	return nil
}

func newTestController(opts ...Option) (*Controller, *fakeWindow, *fakeRenderer, *bytes.Buffer) {
	var out bytes.Buffer
	w := &fakeWindow{}
	r := &fakeRenderer{}
	opts = append([]Option{WithOutput(termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii)))}, opts...)
	return New(w, r, opts...), w, r, &out
}

func TestInitPrintsStatusOnce(t *testing.T) {
	c, w, r, out := newTestController()
	c.Handle(InitEvent())

	assert.Contains(t, out.String(), "Mandelbrot")
	assert.Contains(t, out.String(), "0.5 +i0.25")
	assert.Zero(t, w.redraws)
	assert.Empty(t, r.frames)
}

func TestKeyRequestsRedrawOnlyOnChange(t *testing.T) {
	c, w, _, _ := newTestController()

	c.Handle(KeyEvent(input.KeyShiftLeft, input.Pressed))
	assert.Equal(t, 1, w.redraws)

	c.Handle(KeyEvent(input.KeyM, input.Released))
	assert.Equal(t, 1, w.redraws, "selecting the active set is not a change")

	c.Handle(KeyEvent(input.KeyJ, input.Pressed))
	assert.Equal(t, 1, w.redraws, "set keys act on release")

	c.Handle(KeyEvent(input.KeyJ, input.Released))
	assert.Equal(t, 2, w.redraws)
	assert.Equal(t, view.Julia, c.State().Set)

	c.Handle(KeyEvent(input.KeyJ, input.Released))
	assert.Equal(t, 2, w.redraws)

	c.Handle(KeyEvent(input.KeyUnknown, input.Pressed))
	assert.Equal(t, 2, w.redraws)
}

func TestHelpKeyPrintsStatus(t *testing.T) {
	c, w, _, out := newTestController()

	c.Handle(KeyEvent(input.KeyH, input.Pressed))
	assert.Empty(t, out.String())

	c.Handle(KeyEvent(input.KeyJ, input.Released))
	c.Handle(KeyEvent(input.KeyH, input.Released))
	assert.Contains(t, out.String(), "Julia")
	assert.Equal(t, 1, w.redraws, "help alone does not redraw")
}

func TestRedrawRendersCurrentState(t *testing.T) {
	c, _, r, _ := newTestController(WithSize(300, 200))

	c.Handle(KeyEvent(input.KeyRight, input.Pressed))
	c.Handle(RedrawEvent())

	require.Len(t, r.frames, 1)
	assert.Equal(t, image.Pt(300, 200), r.frames[0].size)
	assert.Equal(t, c.State(), r.frames[0].state)
	assert.InDelta(t, 0.01, r.frames[0].state.Start.X(), 1e-6)
}

func TestResizeThenRedrawUsesNewSize(t *testing.T) {
	c, w, r, _ := newTestController(WithSize(1200, 800))

	c.Handle(ResizeEvent(640, 360))
	assert.Equal(t, []image.Point{image.Pt(640, 360)}, r.resizes)
	assert.Equal(t, 1, w.redraws)

	c.Handle(RedrawEvent())
	require.Len(t, r.frames, 1)
	assert.Equal(t, image.Pt(640, 360), r.frames[0].size)
}

func TestDrawErrorIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	c, w, r, _ := newTestController(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	r.err = &render.DrawError{Set: view.Mandelbrot, Err: errors.New("surface lost")}

	c.Handle(RedrawEvent())
	assert.Contains(t, logs.String(), "surface lost")
	assert.False(t, w.exited)

	r.err = nil
	c.Handle(RedrawEvent())
	assert.Len(t, r.frames, 1)
}

func TestCloseRequested(t *testing.T) {
	c, w, _, _ := newTestController()
	c.Handle(CloseEvent())
	assert.True(t, w.exited)
}

func TestUnknownEventIgnored(t *testing.T) {
	c, w, r, _ := newTestController()
	c.Handle(Event{Kind: EventKind(99)})
	assert.Zero(t, w.redraws)
	assert.Empty(t, r.frames)
	assert.Equal(t, "EventKind(99)", EventKind(99).String())
}

func TestSoftwareAspectFollowsResize(t *testing.T) {
	sw := render.NewSoftware()
	renderer, err := render.New(sw, 32)
	require.NoError(t, err)

	w := &fakeWindow{}
	c := New(w, renderer, WithSize(100, 100))

	c.Handle(ResizeEvent(80, 20))
	c.Handle(RedrawEvent())
	img := sw.Image()
	assert.Equal(t, image.Rect(0, 0, 80, 20), img.Bounds())

	// top edge of a 4:1 surface is a quarter of the zoom above center
	u := renderer.Uniforms(c.State(), c.Size())
	assert.Equal(t, mgl32.Vec2{80, 20}, u.Resolution)
	assert.InDelta(t, 0.25+3.0/4, programs.PlanePoint(u, mgl32.Vec2{40, 20}).Y(), 1e-5)
}
