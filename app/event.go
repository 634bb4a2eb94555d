package app

import (
	"fmt"

	"github.com/stewi1014/cofractal/input"
)

type EventKind uint8

const (
	Init EventKind = iota
	Resized
	CloseRequested
	RedrawRequested
	KeyboardInput
)

func (k EventKind) String() string {
	switch k {
	case Init:
		return "Init"
	case Resized:
		return "Resized"
	case CloseRequested:
		return "CloseRequested"
	case RedrawRequested:
		return "RedrawRequested"
	case KeyboardInput:
		return "KeyboardInput"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is one window system event. Only the fields of its Kind are set.
type Event struct {
	Kind EventKind

	// Resized
	Width, Height int

	// KeyboardInput
	Key   input.Key
	Phase input.Phase
}

func InitEvent() Event {
	return Event{Kind: Init}
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: Resized, Width: width, Height: height}
}

func CloseEvent() Event {
	return Event{Kind: CloseRequested}
}

func RedrawEvent() Event {
	return Event{Kind: RedrawRequested}
}

func KeyEvent(key input.Key, phase input.Phase) Event {
	return Event{Kind: KeyboardInput, Key: key, Phase: phase}
}
