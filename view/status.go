package view

import (
	"fmt"
	"strings"
)

// String renders the human readable status block printed on startup and on the help key.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "current set : %-16v press J => Julia, M => Mandelbrot\n", s.Set)
	fmt.Fprintf(&b, "center      : %-16s W A S D to move\n", complexString(s.Center[0], s.Center[1]))
	fmt.Fprintf(&b, "start       : %-16s arrows to move\n", complexString(s.Start[0], s.Start[1]))
	fmt.Fprintf(&b, "zoom        : %-16v shift / ctrl to zoom in / out\n", s.Zoom)
	fmt.Fprintf(&b, "palette     : %-16v + and - to change\n", s.PaletteOffset)
	b.WriteString("reset with numpad 0 or R, press H to see this again")
	return b.String()
}

func complexString(re, im float32) string {
	return fmt.Sprintf("%v +i%v", re, im)
}
