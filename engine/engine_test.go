package engine_test

import (
	"testing"

	"github.com/plus3/tetrion/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledCells(board *engine.Board) map[engine.Coord]engine.Cell {
	filled := make(map[engine.Coord]engine.Cell)
	for coord, cell := range board.Cells() {
		if cell.Filled {
			filled[coord] = cell
		}
	}
	return filled
}

// wallOverlapsRows reports whether any wall cell shares a row with any
// cursor cell, i.e. the wall can actually block a horizontal walk.
func wallOverlapsRows(wall, cursor [4]engine.Coord) bool {
	for _, w := range wall {
		for _, c := range cursor {
			if w.Y == c.Y {
				return true
			}
		}
	}
	return false
}

func TestNewEngineIsIdle(t *testing.T) {
	e := engine.New()

	_, ok := e.Cursor()
	assert.False(t, ok)
	assert.False(t, e.CursorHasHitBottom())
	assert.Empty(t, filledCells(e.Board()))
	assert.Empty(t, e.BagRemaining())
}

func TestSpawnNext(t *testing.T) {
	e := engine.NewWithRand(newTestRand(1))

	require.NoError(t, e.SpawnNext())

	piece, ok := e.Cursor()
	require.True(t, ok)
	assert.Equal(t, engine.Offset{X: 3, Y: engine.Height - 4}, piece.Position)
	assert.Equal(t, engine.RotationN, piece.Rotation)
	assert.Len(t, e.BagRemaining(), 6)

	coords, color, ok := e.CursorCells()
	require.True(t, ok)
	assert.Equal(t, piece.Kind.Color(), color)
	for _, c := range coords {
		assert.True(t, e.Board().InBounds(c))
	}
}

func TestSpawnNextWithActiveCursorPanics(t *testing.T) {
	e := engine.NewWithRand(newTestRand(1))
	require.NoError(t, e.SpawnNext())

	assert.Panics(t, func() {
		_ = e.SpawnNext()
	})
}

func TestSpawnBlockedIsGameOver(t *testing.T) {
	e := engine.NewWithRand(newTestRand(1))

	// An O committed at the spawn position overlaps the spawn footprint
	// of every kind.
	e.Board().Commit(
		engine.Piece{Kind: engine.KindO, Position: engine.Offset{X: 3, Y: engine.Height - 4}},
		engine.ColorYellow,
	)

	err := e.SpawnNext()
	assert.ErrorIs(t, err, engine.ErrBlocked)
	_, ok := e.Cursor()
	assert.False(t, ok)
}

func TestMoveWalksToTheWall(t *testing.T) {
	e := engine.NewWithRand(newTestRand(5))
	require.NoError(t, e.SpawnNext())

	// Walk left until rejected; the rejection must leave the cursor as
	// it was, and further attempts keep failing the same way.
	moves := 0
	for e.Move(engine.MoveLeft) {
		moves++
		require.Less(t, moves, engine.Width, "left wall never reached")
	}

	blocked, ok := e.Cursor()
	require.True(t, ok)
	assert.False(t, e.Move(engine.MoveLeft))
	after, _ := e.Cursor()
	assert.Equal(t, blocked, after)

	assert.True(t, e.Move(engine.MoveRight))
}

func TestMoveRejectionLeavesStateUnchanged(t *testing.T) {
	e := engine.NewWithRand(newTestRand(1))
	require.NoError(t, e.SpawnNext())

	before, ok := e.Cursor()
	require.True(t, ok)

	// Wall in the cursor on the right: a vertical I in column 8
	// spanning the four spawn rows, so every kind's cells meet it
	// before reaching the board edge.
	wall := engine.Piece{Kind: engine.KindI, Position: engine.Offset{X: 6, Y: engine.Height - 5}, Rotation: engine.RotationE}
	e.Board().Commit(wall, engine.ColorCyan)
	wallCells, ok := wall.Cells()
	require.True(t, ok)
	cursorCells, _, _ := e.CursorCells()
	require.True(t, wallOverlapsRows(wallCells, cursorCells), "fixture wall must cover the cursor's rows")

	boardBefore := filledCells(e.Board())
	for !e.CursorHasHitBottom() && e.Move(engine.MoveRight) {
	}

	rejectedAt, _ := e.Cursor()
	assert.False(t, e.Move(engine.MoveRight))
	now, _ := e.Cursor()
	assert.Equal(t, rejectedAt, now)
	assert.Equal(t, before.Kind, now.Kind)
	assert.Equal(t, boardBefore, filledCells(e.Board()), "a rejected move must not touch the board")

	// The rejection must come from the occupied column, not the board
	// edge: one more step right would keep every cell in bounds.
	stopped, _, _ := e.CursorCells()
	for _, c := range stopped {
		assert.Less(t, c.X+1, engine.Width, "cursor stopped at the edge instead of the wall")
	}
}

func TestMoveWithoutCursorIsNoop(t *testing.T) {
	e := engine.New()

	assert.True(t, e.Move(engine.MoveLeft))
	assert.True(t, e.Move(engine.MoveRight))
	assert.True(t, e.Rotate(engine.TurnClockwise))
	assert.False(t, e.TickDown())
	assert.False(t, e.HardDrop())
}

func TestRotateCyclesWithRoom(t *testing.T) {
	e := engine.NewWithRand(newTestRand(7))
	require.NoError(t, e.SpawnNext())

	// Drop into open space where every orientation fits.
	for i := 0; i < 8; i++ {
		require.False(t, e.TickDown())
	}

	start, _ := e.Cursor()
	require.True(t, e.Rotate(engine.TurnClockwise))
	cw, _ := e.Cursor()
	assert.Equal(t, start.Rotation.Clockwise(), cw.Rotation)

	require.True(t, e.Rotate(engine.TurnCounterClockwise))
	back, _ := e.Cursor()
	assert.Equal(t, start, back)
}

func TestTickDownLockAndClear(t *testing.T) {
	e := engine.NewWithRand(newTestRand(9))
	require.NoError(t, e.SpawnNext())

	locked := false
	for i := 0; i < engine.Height+4; i++ {
		if e.TickDown() {
			locked = true
			break
		}
	}
	require.True(t, locked, "piece never reached the bottom")

	_, ok := e.Cursor()
	assert.False(t, ok, "cursor must clear on lock")
	assert.Len(t, filledCells(e.Board()), 4)
}

func TestCursorHasHitBottomIsPureAndPredictsLock(t *testing.T) {
	e := engine.NewWithRand(newTestRand(11))
	require.NoError(t, e.SpawnNext())

	for !e.CursorHasHitBottom() {
		require.False(t, e.TickDown(), "TickDown locked before CursorHasHitBottom reported rest")
	}

	resting, ok := e.Cursor()
	require.True(t, ok, "hit-bottom query must not mutate the cursor")
	assert.True(t, e.CursorHasHitBottom())
	still, _ := e.Cursor()
	assert.Equal(t, resting, still)

	assert.True(t, e.TickDown())
	_, ok = e.Cursor()
	assert.False(t, ok)
}

func TestHardDropEndToEnd(t *testing.T) {
	e := engine.NewWithRand(newTestRand(1))

	// Spawn and reset until a T comes up so the drop happens on a blank
	// board. Each reset starts a fresh bag, so this is a bounded hunt.
	found := false
	for i := 0; i < 200 && !found; i++ {
		require.NoError(t, e.SpawnNext())
		piece, _ := e.Cursor()
		if piece.Kind == engine.KindT {
			found = true
			break
		}
		e.Reset()
	}
	require.True(t, found, "no T piece in 200 fresh bags")

	require.True(t, e.HardDrop())
	_, ok := e.Cursor()
	assert.False(t, ok)

	want := map[engine.Coord]engine.Cell{
		{X: 3, Y: 0}: {Filled: true, Color: engine.ColorPurple},
		{X: 4, Y: 0}: {Filled: true, Color: engine.ColorPurple},
		{X: 5, Y: 0}: {Filled: true, Color: engine.ColorPurple},
		{X: 4, Y: 1}: {Filled: true, Color: engine.ColorPurple},
	}
	assert.Equal(t, want, filledCells(e.Board()))

	require.NoError(t, e.SpawnNext())
	next, ok := e.Cursor()
	require.True(t, ok)
	assert.Equal(t, engine.Offset{X: 3, Y: engine.Height - 4}, next.Position)
}

func TestHardDropStacks(t *testing.T) {
	e := engine.NewWithRand(newTestRand(13))

	for i := 0; i < 3; i++ {
		require.NoError(t, e.SpawnNext())
		require.True(t, e.HardDrop())
		assert.Len(t, filledCells(e.Board()), 4*(i+1))
	}
}

func TestEngineEventuallyTopsOut(t *testing.T) {
	e := engine.NewWithRand(newTestRand(17))

	// Hard-dropping straight down must fill the spawn columns well
	// before this bound.
	const maxPieces = engine.Width * engine.Height
	for i := 0; i < maxPieces; i++ {
		if err := e.SpawnNext(); err != nil {
			assert.ErrorIs(t, err, engine.ErrBlocked)
			return
		}
		e.HardDrop()
	}
	t.Fatal("board never filled up")
}

func TestResetClearsEverything(t *testing.T) {
	e := engine.NewWithRand(newTestRand(19))
	require.NoError(t, e.SpawnNext())
	e.HardDrop()

	e.Reset()

	_, ok := e.Cursor()
	assert.False(t, ok)
	assert.Empty(t, filledCells(e.Board()))
	assert.Empty(t, e.BagRemaining())
}
