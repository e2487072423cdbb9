package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrion/engine"
)

// Board cells are drawn two characters wide so the playfield looks
// square in a terminal.
const (
	cellWidth = 2
	originX   = 2
	originY   = 1
)

var cellStyles = map[engine.Color]tcell.Style{
	engine.ColorYellow: tcell.StyleDefault.Background(tcell.ColorYellow),
	engine.ColorCyan:   tcell.StyleDefault.Background(tcell.ColorAqua),
	engine.ColorPurple: tcell.StyleDefault.Background(tcell.ColorPurple),
	engine.ColorOrange: tcell.StyleDefault.Background(tcell.ColorOrange),
	engine.ColorBlue:   tcell.StyleDefault.Background(tcell.ColorBlue),
	engine.ColorGreen:  tcell.StyleDefault.Background(tcell.ColorGreen),
	engine.ColorRed:    tcell.StyleDefault.Background(tcell.ColorRed),
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func (g *game) draw() {
	g.screen.Clear()
	g.drawBorder()

	for coord, cell := range g.eng.Board().Cells() {
		if cell.Filled {
			g.drawCell(coord, cellStyles[cell.Color])
		}
	}

	if coords, color, ok := g.eng.CursorCells(); ok {
		for _, c := range coords {
			g.drawCell(c, cellStyles[color])
		}
	}

	g.drawSidebar()

	if g.over {
		g.drawText(originX+2, originY+engine.Height/2, " GAME OVER ", overStyle)
		g.drawText(originX+2, originY+engine.Height/2+1, " r=restart ", overStyle)
	}

	g.screen.Show()
}

// drawCell paints one board cell, flipping the row because the engine's
// row 0 is the bottom of the board.
func (g *game) drawCell(c engine.Coord, style tcell.Style) {
	x := originX + c.X*cellWidth
	y := originY + (engine.Height - 1 - c.Y)
	for i := 0; i < cellWidth; i++ {
		g.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (g *game) drawBorder() {
	right := originX + engine.Width*cellWidth
	bottom := originY + engine.Height

	for y := originY; y < bottom; y++ {
		g.screen.SetContent(originX-1, y, '│', nil, borderStyle)
		g.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := originX - 1; x <= right; x++ {
		g.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	g.screen.SetContent(originX-1, bottom, '└', nil, borderStyle)
	g.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (g *game) drawSidebar() {
	x := originX + engine.Width*cellWidth + 3

	g.drawText(x, originY, "tetrion", textStyle.Bold(true))

	if piece, ok := g.eng.Cursor(); ok {
		g.drawText(x, originY+2, fmt.Sprintf("piece: %s %s", piece.Kind, piece.Rotation), textStyle)
	}

	bag := g.eng.BagRemaining()
	line := "bag:   "
	for _, kind := range bag {
		line += kind.String()
	}
	g.drawText(x, originY+3, line, textStyle)

	controls := []string{
		"←/h  move left",
		"→/l  move right",
		"↑/z  rotate cw",
		"x    rotate ccw",
		"↓    soft drop",
		"spc  hard drop",
		"r    restart",
		"q    quit",
	}
	for i, s := range controls {
		g.drawText(x, originY+5+i, s, textStyle)
	}
}

func (g *game) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
