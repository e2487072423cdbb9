// Package debugui provides immediate-mode inspection panels for a live
// engine using Dear ImGui. Frontends call UI.Render once per frame
// between their ImGui backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/plus3/tetrion/engine"
)

// UI bundles the standard inspection panels.
type UI struct {
	Board *BoardViewer
	Piece *PieceInspector
	Bag   *BagViewer
	Stats *TickStats
}

// New creates a UI with every panel enabled at default sizes.
func New() *UI {
	return &UI{
		Board: NewBoardViewer(),
		Piece: &PieceInspector{},
		Bag:   &BagViewer{},
		Stats: NewTickStats(120),
	}
}

// Render draws every panel for the given engine. deltaTime is the frame
// time in seconds, used by the tick stats panel.
func (u *UI) Render(eng *engine.Engine, deltaTime float32) {
	u.Board.Render(eng)
	u.Piece.Render(eng)
	u.Bag.Render(eng)
	u.Stats.Render(deltaTime)
}
