// Package engine implements a falling-block puzzle engine: the playing
// board, piece geometry and rotation, the shuffled-bag piece supply, and
// the gravity/lock state machine that drives the currently falling
// piece.
//
// The engine is passive: it never blocks and owns no timers. An external
// driver calls its operations in response to input and gravity ticks and
// reads its state for display. A single Engine must not be shared
// between goroutines without external synchronization.
package engine

import (
	"errors"
	"math/rand/v2"
)

// Move is a one-column horizontal cursor command.
type Move uint8

const (
	MoveLeft Move = iota
	MoveRight
)

func (m Move) offset() Offset {
	if m == MoveLeft {
		return Offset{X: -1}
	}
	return Offset{X: 1}
}

// Turn is a quarter-turn rotation command.
type Turn uint8

const (
	TurnClockwise Turn = iota
	TurnCounterClockwise
)

// ErrBlocked is returned by SpawnNext when the spawn position is already
// occupied. It is the terminal board-full condition; the game is over.
var ErrBlocked = errors.New("engine: spawn position blocked")

// down is the gravity step.
var down = Offset{Y: -1}

// spawnPosition is where a freshly drawn piece enters the board:
// horizontally centered, in the topmost rows with one row of headroom.
var spawnPosition = Offset{X: 3, Y: Height - 4}

// Engine drives one game: it exclusively owns the board, the bag, the
// random source feeding the bag, and the cursor (the currently falling
// piece, nil between a lock and the next spawn).
type Engine struct {
	board  Board
	bag    Bag
	rng    *rand.Rand
	cursor *Piece
}

// New creates an engine with a blank board, an empty bag, no cursor, and
// an unpredictably seeded random source.
func New() *Engine {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand is New with an injected random source, for reproducible
// piece sequences in tests and replays.
func NewWithRand(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// SpawnNext draws the next kind from the bag and places it at the spawn
// position as the new cursor. There must be no active cursor. Returns
// ErrBlocked, leaving the cursor empty, when the spawn position is
// already occupied.
func (e *Engine) SpawnNext() error {
	if e.cursor != nil {
		panic("engine: SpawnNext with an active cursor")
	}
	piece := Piece{Kind: e.bag.Draw(e.rng), Position: spawnPosition, Rotation: RotationN}
	if e.board.IsClipping(piece) {
		return ErrBlocked
	}
	e.cursor = &piece
	return nil
}

// Move shifts the cursor one column left or right. It reports false and
// leaves the cursor unchanged when the shifted piece would clip; with no
// cursor it is a no-op that reports true.
func (e *Engine) Move(m Move) bool {
	return e.tryCursor(func(p Piece) Piece { return p.movedBy(m.offset()) })
}

// Rotate turns the cursor a quarter turn, with the same success contract
// as Move. There are no kick retries: a rotation that does not fit in
// place is rejected.
func (e *Engine) Rotate(t Turn) bool {
	return e.tryCursor(func(p Piece) Piece { return p.turned(t) })
}

// tryCursor replaces the cursor with transform(cursor) if the result is
// not clipping.
func (e *Engine) tryCursor(transform func(Piece) Piece) bool {
	if e.cursor == nil {
		return true
	}
	candidate := transform(*e.cursor)
	if e.board.IsClipping(candidate) {
		return false
	}
	*e.cursor = candidate
	return true
}

// TickDown applies one step of gravity. If the cursor can move down it
// does, and TickDown reports false. If it cannot, the cursor's cells are
// committed to the board in its kind's color, the cursor is cleared, and
// TickDown reports true; the caller is expected to call SpawnNext before
// the next tick. With no cursor it reports false.
func (e *Engine) TickDown() bool {
	if e.cursor == nil {
		return false
	}
	candidate := e.cursor.movedBy(down)
	if e.board.IsClipping(candidate) {
		e.lockCursor()
		return true
	}
	*e.cursor = candidate
	return false
}

// HardDrop drops the cursor to the lowest position it can reach and
// locks it there, committing its cells and clearing the cursor. No
// intermediate state is observable. Reports false when there is no
// cursor to drop.
func (e *Engine) HardDrop() bool {
	if e.cursor == nil {
		return false
	}
	for !e.TickDown() {
	}
	return true
}

// CursorHasHitBottom reports whether a cursor exists and its next
// gravity step would clip, i.e. the piece is resting and the next
// TickDown will lock it. It never mutates state.
func (e *Engine) CursorHasHitBottom() bool {
	return e.cursor != nil && e.board.IsClipping(e.cursor.movedBy(down))
}

// lockCursor commits the cursor's cells into the board and clears it.
func (e *Engine) lockCursor() {
	if e.cursor == nil {
		panic("engine: lock without a cursor")
	}
	piece := *e.cursor
	e.cursor = nil
	e.board.Commit(piece, piece.Kind.Color())
}

// Board exposes the playfield for rendering. Callers must treat it as
// read-only; only the engine commits cells.
func (e *Engine) Board() *Board {
	return &e.board
}

// Cursor returns the currently falling piece, if any.
func (e *Engine) Cursor() (Piece, bool) {
	if e.cursor == nil {
		return Piece{}, false
	}
	return *e.cursor, true
}

// CursorCells returns the absolute cells and display color of the
// currently falling piece. ok is false when no piece is falling.
func (e *Engine) CursorCells() (coords [4]Coord, color Color, ok bool) {
	if e.cursor == nil {
		return coords, 0, false
	}
	coords, ok = e.cursor.Cells()
	if !ok {
		// The cursor is only ever set to placeable pieces.
		panic("engine: cursor geometry unrepresentable")
	}
	return coords, e.cursor.Kind.Color(), true
}

// BagRemaining returns the kinds left in the current shuffle cycle, in
// draw order.
func (e *Engine) BagRemaining() []Kind {
	return e.bag.Remaining()
}

// Reset returns the engine to its initial state: blank board, empty bag,
// no cursor. The random source is retained.
func (e *Engine) Reset() {
	e.board = Board{}
	e.bag = Bag{}
	e.cursor = nil
}
