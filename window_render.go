package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/muesli/termenv"
	"github.com/stewi1014/cofractal/app"
	"github.com/stewi1014/cofractal/config"
	"github.com/stewi1014/cofractal/glrender"
	"github.com/stewi1014/cofractal/input"
	"github.com/stewi1014/cofractal/render"
)

func gtkMain(ctx context.Context, cfg config.Config, log *slog.Logger, out *termenv.Output) error {
	gtk.Init(nil)
	gtkApp, err := gtk.ApplicationNew("com.github.stewi1014.cofractal", glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	appContext, appQuit := context.WithCancelCause(ctx)
	gtkApp.Connect("activate", func() {
		renderWindow := NewGLAreaWindow(gtkApp, cfg, log, out, appQuit)
		if renderWindow == nil {
			return
		}
		renderWindow.Connect("destroy", func() {
			appQuit(nil)
		})
	})

	go func() {
		<-appContext.Done()
		glib.IdleAdd(gtkApp.Quit)
	}()
	gtkApp.Run(nil)

	if err := context.Cause(appContext); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// GLAreaWindow draws into a GTK GLArea. GTK owns the frame buffer and presents frames itself.
type GLAreaWindow struct {
	*gtk.ApplicationWindow
	gla        *gtk.GLArea
	controller *app.Controller

	cfg  config.Config
	log  *slog.Logger
	out  *termenv.Output
	quit context.CancelCauseFunc
}

func NewGLAreaWindow(
	gtkApp *gtk.Application,
	cfg config.Config,
	log *slog.Logger,
	out *termenv.Output,
	quit context.CancelCauseFunc,
) *GLAreaWindow {
	var err error
	w := &GLAreaWindow{
		cfg:  cfg,
		log:  log,
		out:  out,
		quit: quit,
	}

	w.ApplicationWindow, err = gtk.ApplicationWindowNew(gtkApp)
	if err != nil {
		quit(fmt.Errorf("gtk.ApplicationWindowNew: %w", err))
		return nil
	}

	w.SetTitle(cfg.Window.Title)
	w.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)

	w.gla, err = gtk.GLAreaNew()
	if err != nil {
		quit(fmt.Errorf("gtk.GLAreaNew: %w", err))
		return nil
	}

	w.gla.SetRequiredVersion(4, 6)
	w.gla.Connect("realize", w.glaRealize)
	w.gla.Connect("render", w.glaRender)
	w.gla.Connect("resize", w.resize)

	w.Connect("key-press-event", w.key)
	w.Connect("key-release-event", w.key)

	w.Add(w.gla)
	w.ShowAll()

	return w
}

func (w *GLAreaWindow) RequestRedraw() {
	w.gla.QueueRender()
}

func (w *GLAreaWindow) Exit() {
	w.quit(nil)
}

func (w *GLAreaWindow) glaRealize(gla *gtk.GLArea) {
	defer CatchPanicToContext(w.quit)
	gla.MakeCurrent()

	level, _ := w.cfg.Log.SlogLevel()
	backend, err := glrender.New(nil, w.log, level <= slog.LevelDebug)
	if err != nil {
		w.quit(err)
		return
	}

	renderer, err := render.New(backend, w.cfg.Render.Iterations)
	if err != nil {
		NewErrorDialog(w.ApplicationWindow, err)
		w.quit(err)
		return
	}

	width, height := gla.GetAllocatedWidth(), gla.GetAllocatedHeight()
	renderer.Resize(width, height)
	w.controller = app.New(w, renderer,
		app.WithOutput(w.out),
		app.WithLogger(w.log),
		app.WithSize(width, height),
	)
	w.controller.Handle(app.InitEvent())
}

func (w *GLAreaWindow) glaRender(gla *gtk.GLArea) bool {
	defer CatchPanicToContext(w.quit)
	if w.controller == nil {
		return false
	}
	w.controller.Handle(app.RedrawEvent())
	return true
}

func (w *GLAreaWindow) resize(gla *gtk.GLArea, width, height int) {
	defer CatchPanicToContext(w.quit)
	if w.controller == nil {
		return
	}
	w.controller.Handle(app.ResizeEvent(width, height))
}

func (w *GLAreaWindow) key(win *gtk.ApplicationWindow, event *gdk.Event) bool {
	defer CatchPanicToContext(w.quit)
	if w.controller == nil {
		return false
	}

	keyEvent := gdk.EventKeyNewFromEvent(event)
	k, ok := gdkKeys[gdk.KeyvalToLower(keyEvent.KeyVal())]
	if !ok {
		return false
	}

	phase := input.Pressed
	if keyEvent.Type() == gdk.EVENT_KEY_RELEASE {
		phase = input.Released
	}
	w.controller.Handle(app.KeyEvent(k, phase))
	return true
}

var gdkKeys = map[uint]input.Key{
	gdk.KEY_Left:        input.KeyLeft,
	gdk.KEY_Right:       input.KeyRight,
	gdk.KEY_Up:          input.KeyUp,
	gdk.KEY_Down:        input.KeyDown,
	gdk.KEY_a:           input.KeyA,
	gdk.KEY_d:           input.KeyD,
	gdk.KEY_h:           input.KeyH,
	gdk.KEY_j:           input.KeyJ,
	gdk.KEY_m:           input.KeyM,
	gdk.KEY_r:           input.KeyR,
	gdk.KEY_s:           input.KeyS,
	gdk.KEY_w:           input.KeyW,
	gdk.KEY_Shift_L:     input.KeyShiftLeft,
	gdk.KEY_Shift_R:     input.KeyShiftRight,
	gdk.KEY_Control_L:   input.KeyControlLeft,
	gdk.KEY_Control_R:   input.KeyControlRight,
	gdk.KEY_minus:       input.KeyMinus,
	gdk.KEY_equal:       input.KeyEqual,
	gdk.KEY_KP_Subtract: input.KeyNumpadSubtract,
	gdk.KEY_KP_Add:      input.KeyNumpadAdd,
	gdk.KEY_KP_0:        input.KeyNumpad0,
	gdk.KEY_KP_Insert:   input.KeyNumpad0,
}
