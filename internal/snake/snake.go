// Package snake implements the simulation core of a grid snake game: the body,
// the per-tick transition, food placement and the playing/paused/over
// lifecycle. It never blocks and never fails; front ends drive it from a
// single goroutine.
package snake

import (
	"fmt"
	"time"

	"gridsnake/internal/core"
	pkgcore "gridsnake/pkg/core"
)

const (
	// GridWidth is the number of columns on the board.
	GridWidth = 40
	// GridHeight is the number of rows on the board.
	GridHeight = 30
)

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// InBounds reports whether p lies on the board.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is the heading of the snake.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Offset returns the unit step applied to the head for d.
func (d Direction) Offset() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the lifecycle phase of a game.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Game is the complete game context. The zero value is not usable; construct
// it with New or NewWithSeed.
type Game struct {
	body      []Point
	direction Direction
	food      Point
	state     State
	score     int
	ticks     uint64

	rng     *pkgcore.RNG
	display *core.ByteGrid
}

// Snapshot is a read-only view of the game for rendering.
type Snapshot struct {
	Body      []Point
	Food      Point
	Direction Direction
	State     State
	Score     int
}

// New returns a game in its starting position with a clock-seeded food RNG.
func New() *Game {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a game in its starting position whose food placement is
// driven by seed.
func NewWithSeed(seed int64) *Game {
	g := &Game{display: core.NewByteGrid(GridWidth, GridHeight)}
	g.Reset(seed)
	return g
}

// Reset reseeds the food RNG and restores the starting position regardless of
// the current state.
func (g *Game) Reset(seed int64) {
	g.rng = pkgcore.NewRNG(seed)
	g.restore()
}

func (g *Game) restore() {
	g.body = []Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	g.direction = DirRight
	g.food = Point{X: 3, Y: 3}
	g.state = StatePlaying
	g.score = 0
	g.ticks = 0
}

// Name identifies the game.
func (g *Game) Name() string { return "snake" }

// Size returns the board dimensions.
func (g *Game) Size() core.Size { return core.Size{W: GridWidth, H: GridHeight} }

// Body returns the body head first. The slice must not be modified.
func (g *Game) Body() []Point { return g.body }

// Head returns the first body segment.
func (g *Game) Head() Point { return g.body[0] }

func (g *Game) Direction() Direction { return g.direction }
func (g *Game) Food() Point { return g.food }
func (g *Game) State() State { return g.state }
func (g *Game) Score() int { return g.score }

// Ticks counts the transitions executed since the game started or restarted.
func (g *Game) Ticks() uint64 { return g.ticks }

// Snapshot copies the render-relevant state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      append([]Point(nil), g.body...),
		Food:      g.food,
		Direction: g.direction,
		State:     g.state,
		Score:     g.score,
	}
}
