package engine

// Offset is a signed coordinate pair. It describes a piece's local
// template cells, its position, and translation deltas; values may be
// negative or off-board transiently during rotation math.
type Offset struct {
	X, Y int
}

func (o Offset) add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

func (o Offset) scaled(factor int) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Coord addresses one board cell. Coords produced by Piece.Cells always
// have non-negative components and X < Width. Row 0 is the bottom row of
// the board; Y increases upward.
type Coord struct {
	X, Y int
}

// Rotation is one of the four discrete orientations, ordered cyclically
// N, E, S, W for clockwise turns.
type Rotation uint8

const (
	RotationN Rotation = iota
	RotationE
	RotationS
	RotationW
)

// Clockwise returns the next orientation in the clockwise cycle.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) % 4
}

// CounterClockwise returns the next orientation in the counterclockwise
// cycle.
func (r Rotation) CounterClockwise() Rotation {
	return (r + 3) % 4
}

// apply rotates a local offset about the origin.
func (r Rotation) apply(o Offset) Offset {
	switch r {
	case RotationN:
		return o
	case RotationE:
		return Offset{X: o.Y, Y: -o.X}
	case RotationS:
		return Offset{X: -o.X, Y: -o.Y}
	case RotationW:
		return Offset{X: -o.Y, Y: o.X}
	}
	panic("engine: unknown rotation")
}

// intrinsicOffset is the corrective translation, per unit of local grid
// size, that realigns a rotated template to its local grid.
func (r Rotation) intrinsicOffset() Offset {
	switch r {
	case RotationN:
		return Offset{}
	case RotationE:
		return Offset{Y: 1}
	case RotationS:
		return Offset{X: 1, Y: 1}
	case RotationW:
		return Offset{X: 1}
	}
	panic("engine: unknown rotation")
}

func (r Rotation) String() string {
	switch r {
	case RotationN:
		return "N"
	case RotationE:
		return "E"
	case RotationS:
		return "S"
	case RotationW:
		return "W"
	default:
		return "?"
	}
}

// Piece is the abstract, possibly-illegal description of a shape placed
// on the board. It carries no validity guarantee of its own; the board
// predicates decide whether it may occupy its cells.
type Piece struct {
	Kind     Kind
	Position Offset
	Rotation Rotation
}

// movedBy returns a copy of the piece translated by the given offset.
func (p Piece) movedBy(offset Offset) Piece {
	p.Position = p.Position.add(offset)
	return p
}

// turned returns a copy of the piece rotated one quarter turn.
func (p Piece) turned(t Turn) Piece {
	if t == TurnCounterClockwise {
		p.Rotation = p.Rotation.CounterClockwise()
	} else {
		p.Rotation = p.Rotation.Clockwise()
	}
	return p
}

// Cells returns the four absolute board coordinates the piece occupies.
// ok is false when the geometry is unrepresentable: after rotation and
// translation some cell has a negative component or lies at X >= Width.
// Cells above the top of the board are representable; whether they are
// legal is the board's decision.
//
// The O kind is visually symmetric and exempt from the rotation
// transform. Every other kind is rotated about its local origin and then
// realigned by the intrinsic offset scaled by its local grid size. There
// is no kick table: a rotation that does not fit is simply illegal.
func (p Piece) Cells() (coords [4]Coord, ok bool) {
	for i, cell := range p.Kind.cells() {
		if p.Kind != KindO {
			cell = p.Rotation.apply(cell).add(p.Rotation.intrinsicOffset().scaled(p.Kind.gridSize()))
		}
		cell = cell.add(p.Position)
		if cell.X < 0 || cell.Y < 0 || cell.X >= Width {
			return coords, false
		}
		coords[i] = Coord{X: cell.X, Y: cell.Y}
	}
	return coords, true
}
