package engine

// Color is the display value a locked piece leaves behind on the board.
// There is exactly one color per kind.
type Color uint8

const (
	ColorYellow Color = iota // O
	ColorCyan                // I
	ColorPurple              // T
	ColorOrange              // L
	ColorBlue                // J
	ColorGreen               // S
	ColorRed                 // Z
)

func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// Cell is one board square: either empty, or filled with a color. Color
// is only meaningful when Filled is true.
type Cell struct {
	Filled bool
	Color  Color
}
