package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/cofractal/view"
	"github.com/stretchr/testify/assert"
)

func TestContinuousKeysFireOnEveryPhase(t *testing.T) {
	keys := []Key{
		KeyLeft, KeyRight, KeyUp, KeyDown,
		KeyA, KeyD, KeyS, KeyW,
		KeyShiftLeft, KeyShiftRight, KeyControlLeft, KeyControlRight,
		KeyMinus, KeyEqual, KeyNumpadSubtract, KeyNumpadAdd,
	}

	for _, key := range keys {
		for _, phase := range []Phase{Pressed, Released} {
			s := view.New()
			before := s
			assert.True(t, HandleKey(&s, key, phase), "%v %v", key, phase)
			assert.NotEqual(t, before, s, "%v %v", key, phase)
		}
	}
}

func TestHeldKeyRepeats(t *testing.T) {
	s := view.New()
	for i := 0; i < 10; i++ {
		assert.True(t, HandleKey(&s, KeyRight, Pressed))
	}
	assert.InDelta(t, 0.1, s.Start.X(), 1e-5)
}

func TestOneShotKeysFireOnRelease(t *testing.T) {
	s := view.New()
	s.ZoomIn()

	assert.False(t, HandleKey(&s, KeyNumpad0, Pressed))
	assert.NotEqual(t, float32(3), s.Zoom)
	assert.True(t, HandleKey(&s, KeyNumpad0, Released))
	assert.Equal(t, float32(3), s.Zoom)
	assert.Equal(t, float32(0), s.PaletteOffset)

	s.ZoomIn()
	assert.False(t, HandleKey(&s, KeyR, Pressed))
	assert.True(t, HandleKey(&s, KeyR, Released))

	assert.False(t, HandleKey(&s, KeyJ, Pressed))
	assert.Equal(t, view.Mandelbrot, s.Set)
	assert.True(t, HandleKey(&s, KeyJ, Released))
	assert.Equal(t, view.Julia, s.Set)
}

func TestSelectingActiveSetNeedsNoRedraw(t *testing.T) {
	s := view.New()
	assert.False(t, HandleKey(&s, KeyM, Released))
	assert.False(t, HandleKey(&s, KeyM, Pressed))

	assert.True(t, HandleKey(&s, KeyJ, Released))
	assert.False(t, HandleKey(&s, KeyJ, Released))
	assert.True(t, HandleKey(&s, KeyM, Released))
}

func TestResetAtDefaultsNeedsNoRedraw(t *testing.T) {
	s := view.New()
	assert.True(t, HandleKey(&s, KeyR, Released))
	assert.False(t, HandleKey(&s, KeyR, Released))
}

func TestHelpKey(t *testing.T) {
	s := view.New()
	before := s
	assert.False(t, HandleKey(&s, KeyH, Released))
	assert.Equal(t, before, s)

	assert.True(t, ShowsStatus(KeyH, Released))
	assert.False(t, ShowsStatus(KeyH, Pressed))
	assert.False(t, ShowsStatus(KeyJ, Released))
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := view.New()
	before := s
	for _, key := range []Key{KeyUnknown, Key(999)} {
		assert.False(t, HandleKey(&s, key, Pressed))
		assert.False(t, HandleKey(&s, key, Released))
	}
	assert.Equal(t, before, s)
}

func TestBindingDirections(t *testing.T) {
	s := view.New()
	HandleKey(&s, KeyA, Pressed)
	assert.InDelta(t, 0.5-0.3, s.Center.X(), 1e-5)
	HandleKey(&s, KeyW, Pressed)
	assert.InDelta(t, 0.25+0.3, s.Center.Y(), 1e-5)

	s = view.New()
	HandleKey(&s, KeyDown, Pressed)
	assert.Equal(t, mgl32.Vec2{0, -0.01}, s.Start)

	s = view.New()
	HandleKey(&s, KeyShiftLeft, Pressed)
	assert.Less(t, s.Zoom, float32(3))
	HandleKey(&s, KeyControlRight, Pressed)
	assert.InDelta(t, 3, s.Zoom, 1e-5)

	s = view.New()
	HandleKey(&s, KeyMinus, Pressed)
	assert.InDelta(t, 0.49, s.PaletteOffset, 1e-5)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Numpad0", KeyNumpad0.String())
	assert.Equal(t, "Unknown", Key(999).String())
	assert.Equal(t, "Released", Released.String())
}
