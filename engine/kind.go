package engine

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindO Kind = iota
	KindI
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// Kinds lists every shape exactly once, in declaration order.
var Kinds = [7]Kind{KindO, KindI, KindT, KindL, KindJ, KindS, KindZ}

// cells returns the kind's local template: the four cells it occupies on
// its local grid, y increasing upward.
func (k Kind) cells() [4]Offset {
	switch k {
	case KindO:
		return [4]Offset{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	case KindI:
		return [4]Offset{{0, 2}, {1, 2}, {2, 2}, {3, 2}}
	case KindT:
		return [4]Offset{{0, 1}, {1, 1}, {2, 1}, {1, 2}}
	case KindL:
		return [4]Offset{{0, 1}, {1, 1}, {2, 1}, {2, 2}}
	case KindJ:
		return [4]Offset{{0, 2}, {0, 1}, {1, 1}, {2, 1}}
	case KindS:
		return [4]Offset{{0, 1}, {1, 1}, {1, 2}, {2, 2}}
	case KindZ:
		return [4]Offset{{0, 2}, {1, 2}, {1, 1}, {2, 1}}
	}
	panic("engine: unknown kind")
}

// gridSize is the side length of the local grid the template is defined
// on: 4 for I, 3 for everything else.
func (k Kind) gridSize() int {
	if k == KindI {
		return 4
	}
	return 3
}

// Color returns the display color a piece of this kind leaves on the
// board when it locks.
func (k Kind) Color() Color {
	switch k {
	case KindO:
		return ColorYellow
	case KindI:
		return ColorCyan
	case KindT:
		return ColorPurple
	case KindL:
		return ColorOrange
	case KindJ:
		return ColorBlue
	case KindS:
		return ColorGreen
	case KindZ:
		return ColorRed
	}
	panic("engine: unknown kind")
}

func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}
