package view

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVecInDelta(t *testing.T, want, got mgl32.Vec2, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta)
	assert.InDelta(t, want.Y(), got.Y(), delta)
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, float32(3), s.Zoom)
	assert.Equal(t, mgl32.Vec2{0.5, 0.25}, s.Center)
	assert.Equal(t, mgl32.Vec2{0, 0}, s.Start)
	assert.Equal(t, float32(0.5), s.PaletteOffset)
	assert.Equal(t, Mandelbrot, s.Set)
}

func TestZoomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 20; run++ {
		s := New()
		in, out := 0, 0
		for i := 0; i < 200; i++ {
			if rng.Intn(2) == 0 {
				assert.True(t, s.ZoomIn())
				in++
			} else {
				assert.True(t, s.ZoomOut())
				out++
			}
			assert.Greater(t, s.Zoom, float32(0))
		}

		want := 3 * math.Pow(1.1, float64(out-in))
		assert.InEpsilon(t, want, float64(s.Zoom), 1e-4)
	}
}

func TestZoomStaysPositive(t *testing.T) {
	s := New()
	for i := 0; i < 5000; i++ {
		s.ZoomIn()
	}
	assert.Greater(t, s.Zoom, float32(0))
	assert.False(t, s.ZoomIn(), "zoom at its floor reports no change")

	s = New()
	for i := 0; i < 5000; i++ {
		s.ZoomOut()
	}
	assert.False(t, math.IsInf(float64(s.Zoom), 0))
	assert.False(t, s.ZoomOut(), "zoom at its ceiling reports no change")
}

func TestMoveCenterReverses(t *testing.T) {
	pairs := [][2]Direction{{Left, Right}, {Right, Left}, {Up, Down}, {Down, Up}}

	for _, zoomIns := range []int{0, 5, 40} {
		s := New()
		for i := 0; i < zoomIns; i++ {
			s.ZoomIn()
		}
		origin := s.Center

		for _, p := range pairs {
			assert.True(t, s.MoveCenter(p[0]))
			assert.True(t, s.MoveCenter(p[1]))
			assertVecInDelta(t, origin, s.Center, tol)
		}
	}
}

func TestMoveCenterScalesWithZoom(t *testing.T) {
	s := New()
	s.MoveCenter(Right)
	assert.InDelta(t, 0.5+0.3, s.Center.X(), tol)

	s = New()
	s.ZoomIn()
	s.MoveCenter(Up)
	assert.InDelta(t, 0.25+0.1*3/1.1, s.Center.Y(), tol)
}

func TestPanIgnoresZoom(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.ZoomIn()
	}
	assert.True(t, s.Pan(Left))
	assert.True(t, s.Pan(Up))
	assertVecInDelta(t, mgl32.Vec2{-0.01, 0.01}, s.Start, tol)
	assert.Equal(t, DefaultCenter, s.Center)
}

func TestShiftPalette(t *testing.T) {
	s := New()
	assert.True(t, s.ShiftPalette(PaletteStep))
	assert.InDelta(t, 0.51, s.PaletteOffset, tol)

	for i := 0; i < 200; i++ {
		s.ShiftPalette(-PaletteStep)
	}
	assert.InDelta(t, -1.49, s.PaletteOffset, 1e-4, "offset is not clamped")

	assert.False(t, s.ShiftPalette(0))

	s.PaletteOffset = 1e10
	assert.False(t, s.ShiftPalette(PaletteStep), "a step lost to rounding is no change")
}

func TestSelectSet(t *testing.T) {
	s := New()
	assert.False(t, s.SelectSet(Mandelbrot))
	assert.True(t, s.SelectSet(Julia))
	assert.Equal(t, Julia, s.Set)
	assert.False(t, s.SelectSet(Julia))
	assert.True(t, s.SelectSet(Mandelbrot))
}

func TestReset(t *testing.T) {
	s := New()
	s.ZoomIn()
	s.ZoomIn()
	s.MoveCenter(Left)
	s.Pan(Down)
	s.ShiftPalette(0.2)
	s.SelectSet(Julia)

	assert.True(t, s.Reset())
	assert.Equal(t, float32(3), s.Zoom)
	assert.Equal(t, mgl32.Vec2{0.5, 0.25}, s.Center)
	assert.Equal(t, mgl32.Vec2{0, 0}, s.Start)
	assert.Equal(t, float32(0), s.PaletteOffset, "reset zeroes the offset")
	assert.NotEqual(t, New().PaletteOffset, s.PaletteOffset)
	assert.Equal(t, Julia, s.Set, "reset keeps the active set")

	assert.False(t, s.Reset())
}

func TestResetFromStartup(t *testing.T) {
	s := New()
	assert.True(t, s.Reset(), "startup offset differs from the reset offset")
	assert.Equal(t, float32(0), s.PaletteOffset)
}

func TestStatus(t *testing.T) {
	s := New()
	s.SelectSet(Julia)
	status := s.String()
	assert.Contains(t, status, "Julia")
	assert.Contains(t, status, "0.5 +i0.25")
	assert.Contains(t, status, "0 +i0")
	assert.Contains(t, status, "zoom        : 3")
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "Mandelbrot", Mandelbrot.String())
	assert.Equal(t, "Julia", Julia.String())
	assert.Equal(t, "Set(7)", Set(7).String())
}
