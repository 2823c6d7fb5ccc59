package snake

import (
	"slices"

	pkgcore "gridsnake/pkg/core"
)

// respawnFood moves the food to a random cell not covered by the body. Draws
// are uniform over the flat cell index and capped at one per cell; after that
// a free cell is chosen directly. It reports false, leaving the food in place,
// when the body covers the whole board.
func (g *Game) respawnFood() bool {
	total := GridWidth * GridHeight
	for attempt := 0; attempt < total; attempt++ {
		p := cellAt(g.rng.IntN(total))
		if !slices.Contains(g.body, p) {
			g.food = p
			return true
		}
	}

	p, ok := pkgcore.Pick(g.rng, g.freeCells())
	if !ok {
		return false
	}
	g.food = p
	return true
}

func (g *Game) freeCells() []Point {
	occupied := make([]bool, GridWidth*GridHeight)
	for _, p := range g.body {
		if p.InBounds() {
			occupied[p.Y*GridWidth+p.X] = true
		}
	}
	free := make([]Point, 0, max(0, len(occupied)-len(g.body)))
	for i, taken := range occupied {
		if !taken {
			free = append(free, cellAt(i))
		}
	}
	return free
}

func cellAt(index int) Point {
	return Point{X: index % GridWidth, Y: index / GridWidth}
}
