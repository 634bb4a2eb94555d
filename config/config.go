// Package config loads the optional TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/stewi1014/cofractal/programs"
)

// EnvPath overrides the configuration file location.
const EnvPath = "COFRACTAL_CONFIG"

const (
	BackendGLFW = "glfw"
	BackendGTK  = "gtk"
)

type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Backend string `toml:"backend"`
}

type Render struct {
	Iterations int `toml:"iterations"`
}

type Log struct {
	Level string `toml:"level"`
	Color bool   `toml:"color"`
}

type Config struct {
	Window Window `toml:"window"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:   "Co's complex fractal",
			Width:   1200,
			Height:  800,
			Backend: BackendGLFW,
		},
		Render: Render{
			Iterations: programs.DefaultIterations,
		},
		Log: Log{
			Level: "info",
			Color: true,
		},
	}
}

// Path returns where the configuration file is looked for.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "cofractal", "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("parsing %v: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%v: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Window.Backend {
	case BackendGLFW, BackendGTK:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Window.Backend))
	}
	if c.Render.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations %d must be positive", c.Render.Iterations))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
