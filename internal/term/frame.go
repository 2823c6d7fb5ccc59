package term

import (
	"fmt"
	"image/color"

	"gridsnake/internal/snake"

	"github.com/nsf/termbox-go"
)

// cellCols is the number of terminal columns used per grid cell, which keeps
// cells roughly square in a typical font.
const cellCols = 2

const statusHelp = "WASD/arrows move  P pause  R restart  Esc quit"

// Frame is a terminal-sized picture of the board plus a status line.
type Frame struct {
	W, H  int
	Cells []termbox.Cell
}

func newFrame(w, h int) Frame {
	f := Frame{W: w, H: h, Cells: make([]termbox.Cell, w*h)}
	for i := range f.Cells {
		f.Cells[i] = termbox.Cell{Ch: ' ', Fg: termbox.ColorDefault, Bg: termbox.ColorDefault}
	}
	return f
}

func (f Frame) set(x, y int, ch rune, fg, bg termbox.Attribute) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.Cells[y*f.W+x] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

func (f Frame) text(x, y int, s string, fg, bg termbox.Attribute) {
	for _, r := range s {
		f.set(x, y, r, fg, bg)
		x++
	}
}

// At returns the cell at (x, y).
func (f Frame) At(x, y int) termbox.Cell { return f.Cells[y*f.W+x] }

// compose draws a bordered board from the display cells, the state banner and
// a status line below the board.
func compose(snap snake.Snapshot, cells []uint8, palette []color.RGBA) Frame {
	boardW := snake.GridWidth*cellCols + 2
	boardH := snake.GridHeight + 2
	f := newFrame(boardW, boardH+1)

	bg := xterm(snake.Background(snap.State))
	border := xterm(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	for y := 0; y < boardH; y++ {
		for x := 0; x < boardW; x++ {
			f.set(x, y, ' ', termbox.ColorDefault, bg)
		}
	}
	for x := 1; x < boardW-1; x++ {
		f.set(x, 0, '─', border, bg)
		f.set(x, boardH-1, '─', border, bg)
	}
	for y := 1; y < boardH-1; y++ {
		f.set(0, y, '│', border, bg)
		f.set(boardW-1, y, '│', border, bg)
	}
	f.set(0, 0, '┌', border, bg)
	f.set(boardW-1, 0, '┐', border, bg)
	f.set(0, boardH-1, '└', border, bg)
	f.set(boardW-1, boardH-1, '┘', border, bg)

	for i, c := range cells {
		if c == snake.CellEmpty || int(c) >= len(palette) {
			continue
		}
		x := 1 + (i%snake.GridWidth)*cellCols
		y := 1 + i/snake.GridWidth
		cellBg := xterm(palette[c])
		ch := ' '
		if c == snake.CellHead {
			ch = '▪'
		}
		for dx := 0; dx < cellCols; dx++ {
			f.set(x+dx, y, ch, termbox.ColorBlack, cellBg)
		}
	}

	if msg, col, ok := snake.Overlay(snap.State); ok {
		banner := " " + msg + " "
		x := (boardW - len(banner)) / 2
		f.text(x, boardH/2, banner, xterm(col)|termbox.AttrBold, bg)
	}

	status := fmt.Sprintf("SCORE %d  %s", snap.Score, statusHelp)
	f.text(0, boardH, status, termbox.ColorDefault, termbox.ColorDefault)
	return f
}

// xterm maps c to the nearest entry of the 256-color palette, expressed as a
// termbox attribute for Output256 mode.
func xterm(c color.RGBA) termbox.Attribute {
	if c.R == c.G && c.G == c.B && c.R > 8 && c.R < 248 {
		return termbox.Attribute(232+(int(c.R)-8)/10) + 1
	}
	idx := 16 + 36*cubeLevel(c.R) + 6*cubeLevel(c.G) + cubeLevel(c.B)
	return termbox.Attribute(idx) + 1
}

func cubeLevel(v uint8) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (int(v) - 35) / 40
	}
}
