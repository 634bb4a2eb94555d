package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/muesli/termenv"
	"github.com/stewi1014/cofractal/app"
	"github.com/stewi1014/cofractal/config"
	"github.com/stewi1014/cofractal/glrender"
	"github.com/stewi1014/cofractal/render"
)

func init() {
	// GLFW and GTK both want the main thread
	runtime.LockOSThread()
}

func main() {
	mainContext, mainQuit := context.WithCancelCause(context.Background())
	signalContext, stop := signal.NotifyContext(mainContext, os.Interrupt)
	defer stop()

	mainQuit(run(signalContext))

	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	var outOpts []termenv.OutputOption
	if !cfg.Log.Color {
		outOpts = append(outOpts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(os.Stdout, outOpts...)

	log.Debug("starting", "config", path, "backend", cfg.Window.Backend)
	switch cfg.Window.Backend {
	case config.BackendGTK:
		return gtkMain(ctx, cfg, log, out)
	default:
		return glfwMain(ctx, cfg, log, out)
	}
}

func glfwMain(ctx context.Context, cfg config.Config, log *slog.Logger, out *termenv.Output) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	level, _ := cfg.Log.SlogLevel()
	debug := level <= slog.LevelDebug

	window, err := NewRenderWindow(cfg.Window, debug)
	if err != nil {
		return err
	}
	defer window.Destroy()

	backend, err := glrender.New(window.SwapBuffers, log, debug)
	if err != nil {
		return err
	}

	renderer, err := render.New(backend, cfg.Render.Iterations)
	if err != nil {
		return err
	}

	width, height := window.GetFramebufferSize()
	renderer.Resize(width, height)

	controller := app.New(window, renderer,
		app.WithOutput(out),
		app.WithLogger(log),
		app.WithSize(width, height),
	)
	window.Attach(controller)

	return window.Run(ctx)
}
