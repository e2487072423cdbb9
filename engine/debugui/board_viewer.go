package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrion/engine"
)

var cellColors = map[engine.Color]imgui.Vec4{
	engine.ColorYellow: imgui.NewVec4(0.9, 0.8, 0.1, 1),
	engine.ColorCyan:   imgui.NewVec4(0.2, 0.8, 0.9, 1),
	engine.ColorPurple: imgui.NewVec4(0.7, 0.3, 0.9, 1),
	engine.ColorOrange: imgui.NewVec4(0.9, 0.5, 0.1, 1),
	engine.ColorBlue:   imgui.NewVec4(0.2, 0.3, 0.9, 1),
	engine.ColorGreen:  imgui.NewVec4(0.3, 0.8, 0.2, 1),
	engine.ColorRed:    imgui.NewVec4(0.9, 0.2, 0.2, 1),
}

// BoardViewer draws the playfield and the falling piece as filled
// rectangles on the window draw list, bottom row at the bottom.
type BoardViewer struct {
	CellSize float32
}

func NewBoardViewer() *BoardViewer {
	return &BoardViewer{CellSize: 16}
}

// Render draws the board window.
func (v *BoardViewer) Render(eng *engine.Engine) {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	width := v.CellSize * float32(engine.Width)
	height := v.CellSize * float32(engine.Height)

	frame := imgui.ColorU32Vec4(imgui.NewVec4(0.5, 0.5, 0.5, 1))
	drawList.AddRect(origin, imgui.NewVec2(origin.X+width, origin.Y+height), frame)

	for coord, cell := range eng.Board().Cells() {
		if cell.Filled {
			v.fillCell(drawList, origin, coord, cellColors[cell.Color])
		}
	}

	if coords, color, ok := eng.CursorCells(); ok {
		shadow := cellColors[color]
		shadow.W = 0.3
		for _, c := range dropShadow(eng) {
			v.fillCell(drawList, origin, c, shadow)
		}
		for _, c := range coords {
			v.fillCell(drawList, origin, c, cellColors[color])
		}
	}

	imgui.Dummy(imgui.NewVec2(width, height))
	imgui.End()
}

// dropShadow returns the cells the falling piece would occupy after a
// hard drop.
func dropShadow(eng *engine.Engine) [4]engine.Coord {
	piece, _ := eng.Cursor()
	for {
		lower := piece
		lower.Position.Y--
		if eng.Board().IsClipping(lower) {
			break
		}
		piece = lower
	}
	coords, _ := piece.Cells()
	return coords
}

func (v *BoardViewer) fillCell(drawList *imgui.DrawList, origin imgui.Vec2, c engine.Coord, color imgui.Vec4) {
	// Engine row 0 is the bottom; screen y grows downward.
	x := origin.X + float32(c.X)*v.CellSize
	y := origin.Y + float32(engine.Height-1-c.Y)*v.CellSize
	drawList.AddRectFilled(
		imgui.NewVec2(x+1, y+1),
		imgui.NewVec2(x+v.CellSize-1, y+v.CellSize-1),
		imgui.ColorU32Vec4(color),
	)
}
