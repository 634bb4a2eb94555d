package input

import (
	"github.com/stewi1014/cofractal/view"
)

type binding struct {
	// releaseOnly bindings are one-shot actions; the others fire on every event, repeats included.
	releaseOnly bool
	apply       func(s *view.State) bool
}

func continuous(apply func(s *view.State) bool) binding {
	return binding{apply: apply}
}

func oneShot(apply func(s *view.State) bool) binding {
	return binding{releaseOnly: true, apply: apply}
}

func pan(d view.Direction) func(s *view.State) bool {
	return func(s *view.State) bool { return s.Pan(d) }
}

func moveCenter(d view.Direction) func(s *view.State) bool {
	return func(s *view.State) bool { return s.MoveCenter(d) }
}

func shiftPalette(delta float32) func(s *view.State) bool {
	return func(s *view.State) bool { return s.ShiftPalette(delta) }
}

func selectSet(set view.Set) func(s *view.State) bool {
	return func(s *view.State) bool { return s.SelectSet(set) }
}

func noChange(*view.State) bool { return false }

var bindings = map[Key]binding{
	KeyLeft:  continuous(pan(view.Left)),
	KeyRight: continuous(pan(view.Right)),
	KeyDown:  continuous(pan(view.Down)),
	KeyUp:    continuous(pan(view.Up)),

	KeyA: continuous(moveCenter(view.Left)),
	KeyD: continuous(moveCenter(view.Right)),
	KeyS: continuous(moveCenter(view.Down)),
	KeyW: continuous(moveCenter(view.Up)),

	KeyShiftLeft:    continuous((*view.State).ZoomIn),
	KeyShiftRight:   continuous((*view.State).ZoomIn),
	KeyControlLeft:  continuous((*view.State).ZoomOut),
	KeyControlRight: continuous((*view.State).ZoomOut),

	KeyMinus:          continuous(shiftPalette(-view.PaletteStep)),
	KeyNumpadSubtract: continuous(shiftPalette(-view.PaletteStep)),
	KeyNumpadAdd:      continuous(shiftPalette(view.PaletteStep)),
	KeyEqual:          continuous(shiftPalette(view.PaletteStep)),

	KeyJ: oneShot(selectSet(view.Julia)),
	KeyM: oneShot(selectSet(view.Mandelbrot)),

	KeyNumpad0: oneShot((*view.State).Reset),
	KeyR:       oneShot((*view.State).Reset),

	KeyH: oneShot(noChange),
}

// HandleKey applies the action bound to key and reports whether a redraw is needed.
// Unbound keys are ignored.
func HandleKey(s *view.State, key Key, phase Phase) bool {
	b, ok := bindings[key]
	if !ok {
		return false
	}
	if b.releaseOnly && phase != Released {
		return false
	}
	return b.apply(s)
}

// ShowsStatus reports whether the event asks for the status block to be printed.
func ShowsStatus(key Key, phase Phase) bool {
	return key == KeyH && phase == Released
}
