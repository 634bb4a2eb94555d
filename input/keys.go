// Package input routes keyboard events to view mutations.
package input

// Key is a physical key, independent of the window system delivering it.
type Key uint16

const (
	KeyUnknown Key = iota

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyA
	KeyD
	KeyH
	KeyJ
	KeyM
	KeyR
	KeyS
	KeyW

	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight

	KeyMinus
	KeyEqual
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpad0
)

var keyNames = map[Key]string{
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyA:              "A",
	KeyD:              "D",
	KeyH:              "H",
	KeyJ:              "J",
	KeyM:              "M",
	KeyR:              "R",
	KeyS:              "S",
	KeyW:              "W",
	KeyShiftLeft:      "ShiftLeft",
	KeyShiftRight:     "ShiftRight",
	KeyControlLeft:    "ControlLeft",
	KeyControlRight:   "ControlRight",
	KeyMinus:          "Minus",
	KeyEqual:          "Equal",
	KeyNumpadSubtract: "NumpadSubtract",
	KeyNumpadAdd:      "NumpadAdd",
	KeyNumpad0:        "Numpad0",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Phase is the transition a key event reports. Auto-repeat is delivered as Pressed.
type Phase uint8

const (
	Pressed Phase = iota
	Released
)

func (p Phase) String() string {
	if p == Released {
		return "Released"
	}
	return "Pressed"
}
