package snake

import "slices"

// Step advances the game by one tick. It does nothing unless the game is
// playing.
func (g *Game) Step() {
	if g.state != StatePlaying {
		return
	}
	g.ticks++

	next := g.body[0].Add(g.direction.Offset())
	if !next.InBounds() {
		g.state = StateOver
		return
	}

	ate := next == g.food
	candidate := g.candidateBody(ate)
	if collides(candidate, next) {
		g.body = candidate
		g.state = StateOver
		return
	}

	g.body = append([]Point{next}, candidate...)
	if ate {
		g.score++
		g.respawnFood()
	}
}

// candidateBody is the body the new head will be attached to: the full body
// when growing, otherwise the body without its tail. The vacated tail cell is
// therefore free for the head to enter on the same tick.
func (g *Game) candidateBody(grow bool) []Point {
	if grow {
		return g.body
	}
	return g.body[:len(g.body)-1]
}

func collides(body []Point, head Point) bool {
	return slices.Contains(body, head)
}
