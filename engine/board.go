package engine

import "iter"

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Board is the fixed 10x20 playfield. The zero value is a blank board.
// Cells are stored row-major starting at the bottom row; the board never
// clears or shifts rows on its own.
type Board struct {
	cells [Width * Height]Cell
}

// InBounds reports whether the coordinate addresses a real board cell.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Cell returns the content of the cell at c. The coordinate must be in
// bounds.
func (b *Board) Cell(c Coord) Cell {
	if !b.InBounds(c) {
		panic("engine: cell coordinate out of bounds")
	}
	return b.cells[c.Y*Width+c.X]
}

// Cells iterates over every board cell, bottom row first.
func (b *Board) Cells() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if !yield(Coord{X: x, Y: y}, b.cells[y*Width+x]) {
					return
				}
			}
		}
	}
}

// IsPlaceable reports whether the piece may occupy its current cells:
// its geometry is representable, all four coordinates are in bounds, and
// all four cells are empty.
func (b *Board) IsPlaceable(p Piece) bool {
	coords, ok := p.Cells()
	if !ok {
		return false
	}
	for _, c := range coords {
		if !b.InBounds(c) || b.cells[c.Y*Width+c.X].Filled {
			return false
		}
	}
	return true
}

// IsClipping is the exact logical complement of IsPlaceable. A candidate
// move is legal only if the resulting piece is not clipping.
func (b *Board) IsClipping(p Piece) bool {
	return !b.IsPlaceable(p)
}

// Commit writes color into the piece's four cells. The piece must be
// placeable; committing an illegal piece is a programming error, not a
// recoverable condition.
func (b *Board) Commit(p Piece, color Color) {
	if !b.IsPlaceable(p) {
		panic("engine: commit of a non-placeable piece")
	}
	coords, _ := p.Cells()
	for _, c := range coords {
		b.cells[c.Y*Width+c.X] = Cell{Filled: true, Color: color}
	}
}
