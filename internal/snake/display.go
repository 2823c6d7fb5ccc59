package snake

import "image/color"

// Display cell values written by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

var (
	colorBody = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorFood = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	backgroundPlaying = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	backgroundPaused  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	backgroundOver    = color.RGBA{R: 0, G: 0, B: 0, A: 255}

	overlayPaused = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	overlayOver   = color.RGBA{R: 255, G: 20, B: 147, A: 255}
)

var snakePalette = []color.RGBA{
	CellEmpty: {},
	CellBody:  colorBody,
	CellHead:  colorBody,
	CellFood:  colorFood,
}

// Palette maps display cell values to colors. CellEmpty is transparent so the
// state background shows through.
func (g *Game) Palette() []color.RGBA { return snakePalette }

// Cells rebuilds and returns the row-major display buffer. Body and food are
// only drawn while the game is not over.
func (g *Game) Cells() []uint8 {
	g.display.Clear()
	if g.state == StateOver {
		return g.display.Cells()
	}
	g.display.Set(g.food.X, g.food.Y, CellFood)
	for i, p := range g.body {
		v := CellBody
		if i == 0 {
			v = CellHead
		}
		g.display.Set(p.X, p.Y, v)
	}
	return g.display.Cells()
}

// Background returns the board tint for s.
func Background(s State) color.RGBA {
	switch s {
	case StatePaused:
		return backgroundPaused
	case StateOver:
		return backgroundOver
	default:
		return backgroundPlaying
	}
}

// Overlay returns the banner shown on top of the board and false while playing.
func Overlay(s State) (string, color.RGBA, bool) {
	switch s {
	case StatePaused:
		return "PAUSED", overlayPaused, true
	case StateOver:
		return "GAME OVER", overlayOver, true
	default:
		return "", color.RGBA{}, false
	}
}
