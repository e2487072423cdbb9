package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrion/engine"
)

// PieceInspector shows the falling piece's placement and the board's
// verdict on it.
type PieceInspector struct{}

// Render draws the piece window.
func (p *PieceInspector) Render(eng *engine.Engine) {
	if !imgui.BeginV("Falling Piece", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	piece, ok := eng.Cursor()
	if !ok {
		imgui.Text("no piece falling (spawn pending)")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Kind: %s (%s)", piece.Kind, piece.Kind.Color()))
	imgui.Text(fmt.Sprintf("Position: (%d, %d)", piece.Position.X, piece.Position.Y))
	imgui.Text(fmt.Sprintf("Rotation: %s", piece.Rotation))
	imgui.Text(fmt.Sprintf("Placeable: %t", eng.Board().IsPlaceable(piece)))
	imgui.Text(fmt.Sprintf("Resting: %t", eng.CursorHasHitBottom()))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PieceCells", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Cell")
		imgui.TableSetupColumn("Coordinate")
		imgui.TableHeadersRow()

		coords, _, _ := eng.CursorCells()
		for i, c := range coords {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", i))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%d, %d)", c.X, c.Y))
		}

		imgui.EndTable()
	}

	imgui.End()
}
