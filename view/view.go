// Package view holds the navigation parameters of the fractal viewer.
package view

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Set selects which fractal is drawn.
type Set uint8

const (
	Mandelbrot Set = iota
	Julia
)

func (s Set) String() string {
	switch s {
	case Mandelbrot:
		return "Mandelbrot"
	case Julia:
		return "Julia"
	}
	return fmt.Sprintf("Set(%d)", uint8(s))
}

type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Vec returns the unit vector of d in the complex plane, imaginary axis up.
func (d Direction) Vec() mgl32.Vec2 {
	switch d {
	case Left:
		return mgl32.Vec2{-1, 0}
	case Right:
		return mgl32.Vec2{1, 0}
	case Up:
		return mgl32.Vec2{0, 1}
	case Down:
		return mgl32.Vec2{0, -1}
	}
	return mgl32.Vec2{}
}

const (
	DefaultZoom          = 3
	DefaultPaletteOffset = 0.5

	// ResetPaletteOffset is where Reset puts the palette offset.
	// It is not DefaultPaletteOffset.
	ResetPaletteOffset = 0

	ZoomFactor  = 1.1
	CenterStep  = 0.1
	StartStep   = 0.01
	PaletteStep = 0.01
)

var (
	DefaultCenter = mgl32.Vec2{0.5, 0.25}
	DefaultStart  = mgl32.Vec2{0, 0}
)

// State is the mutable view. Every mutator reports whether anything changed.
type State struct {
	// Zoom is the half-width of the visible window of the complex plane. Always > 0.
	Zoom float32

	Center mgl32.Vec2

	// Start is the Julia constant. It is kept while Mandelbrot is drawn.
	Start mgl32.Vec2

	PaletteOffset float32
	Set           Set
}

func New() State {
	return State{
		Zoom:          DefaultZoom,
		Center:        DefaultCenter,
		Start:         DefaultStart,
		PaletteOffset: DefaultPaletteOffset,
		Set:           Mandelbrot,
	}
}

// Pan moves the Julia constant by a fixed step, whatever the zoom.
func (s *State) Pan(d Direction) bool {
	return setVec(&s.Start, s.Start.Add(d.Vec().Mul(StartStep)))
}

// MoveCenter moves the center by a step proportional to Zoom,
// so the apparent speed on screen is the same at every zoom level.
func (s *State) MoveCenter(d Direction) bool {
	return setVec(&s.Center, s.Center.Add(d.Vec().Mul(CenterStep*s.Zoom)))
}

func (s *State) ZoomIn() bool {
	return s.setZoom(s.Zoom / ZoomFactor)
}

func (s *State) ZoomOut() bool {
	return s.setZoom(s.Zoom * ZoomFactor)
}

// setZoom refuses values that would break Zoom > 0, like an underflow to zero or an overflow to +Inf.
func (s *State) setZoom(zoom float32) bool {
	if zoom <= 0 || math32.IsInf(zoom, 0) || math32.IsNaN(zoom) {
		return false
	}
	return setFloat(&s.Zoom, zoom)
}

// ShiftPalette adds delta to the palette offset. The offset is never wrapped or clamped.
func (s *State) ShiftPalette(delta float32) bool {
	return setFloat(&s.PaletteOffset, s.PaletteOffset+delta)
}

func (s *State) SelectSet(set Set) bool {
	if s.Set == set {
		return false
	}
	s.Set = set
	return true
}

// Reset restores zoom, center and start to their defaults and zeroes the palette offset.
// The active set is kept.
func (s *State) Reset() bool {
	before := *s
	s.Zoom = DefaultZoom
	s.Center = DefaultCenter
	s.Start = DefaultStart
	s.PaletteOffset = ResetPaletteOffset
	return before != *s
}

func setFloat(dst *float32, v float32) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func setVec(dst *mgl32.Vec2, v mgl32.Vec2) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}
