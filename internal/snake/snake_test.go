package snake

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestNewStartingPosition(t *testing.T) {
	g := NewWithSeed(1)

	want := []Point{{3, 1}, {2, 1}, {1, 1}}
	if !slices.Equal(g.Body(), want) {
		t.Fatalf("initial body %v, expected %v", g.Body(), want)
	}
	if g.Direction() != DirRight {
		t.Fatalf("initial direction %v, expected right", g.Direction())
	}
	if g.Food() != (Point{3, 3}) {
		t.Fatalf("initial food %v, expected (3,3)", g.Food())
	}
	if g.State() != StatePlaying {
		t.Fatalf("initial state %v, expected playing", g.State())
	}
	if g.Score() != 0 || g.Ticks() != 0 {
		t.Fatalf("initial score/ticks %d/%d, expected 0/0", g.Score(), g.Ticks())
	}
	if s := g.Size(); s.W != GridWidth || s.H != GridHeight {
		t.Fatalf("size %+v does not match grid constants", s)
	}
}

func TestReversalRejected(t *testing.T) {
	g := NewWithSeed(1)

	g.MoveLeft()
	if g.Direction() != DirRight {
		t.Fatalf("left while heading right changed direction to %v", g.Direction())
	}
	g.MoveUp()
	if g.Direction() != DirUp {
		t.Fatalf("up while heading right gave %v", g.Direction())
	}
	g.MoveDown()
	if g.Direction() != DirUp {
		t.Fatalf("down while heading up changed direction to %v", g.Direction())
	}
	g.MoveRight()
	g.MoveDown()
	if g.Direction() != DirDown {
		t.Fatalf("down after right gave %v", g.Direction())
	}
	g.MoveDown()
	if g.Direction() != DirDown {
		t.Fatal("repeating the current direction must keep it")
	}
}

func TestDirectionAcceptedInEveryState(t *testing.T) {
	g := NewWithSeed(1)
	g.TogglePause()
	g.MoveUp()
	if g.Direction() != DirUp {
		t.Fatalf("turn while paused gave %v", g.Direction())
	}

	g.state = StateOver
	g.MoveLeft()
	if g.Direction() != DirLeft {
		t.Fatalf("turn while over gave %v", g.Direction())
	}
	g.MoveRight()
	if g.Direction() != DirLeft {
		t.Fatal("reversal must be rejected while over as well")
	}
}

func TestTogglePause(t *testing.T) {
	g := NewWithSeed(1)

	g.TogglePause()
	if g.State() != StatePaused {
		t.Fatalf("state after one toggle %v, expected paused", g.State())
	}
	g.TogglePause()
	if g.State() != StatePlaying {
		t.Fatalf("state after two toggles %v, expected playing", g.State())
	}

	g.state = StateOver
	g.TogglePause()
	if g.State() != StateOver {
		t.Fatalf("toggle while over moved state to %v", g.State())
	}
}

func TestRestartGating(t *testing.T) {
	g := NewWithSeed(1)
	g.Step()
	g.MoveDown()
	before := g.Snapshot()

	g.Restart()
	if !snapshotsEqual(before, g.Snapshot()) {
		t.Fatal("restart while playing must have no effect")
	}

	g.TogglePause()
	paused := g.Snapshot()
	g.Restart()
	if !snapshotsEqual(paused, g.Snapshot()) {
		t.Fatal("restart while paused must have no effect")
	}

	g.TogglePause()
	g.body = []Point{{0, 0}, {1, 0}, {2, 0}}
	g.direction = DirUp
	g.score = 7
	g.food = Point{10, 10}
	g.Step()
	if g.State() != StateOver {
		t.Fatalf("expected game over after leaving the board, got %v", g.State())
	}

	g.Restart()
	fresh := NewWithSeed(1).Snapshot()
	if !snapshotsEqual(fresh, g.Snapshot()) {
		t.Fatalf("restart while over gave %+v, expected %+v", g.Snapshot(), fresh)
	}
	if g.Ticks() != 0 {
		t.Fatalf("restart must clear the tick counter, got %d", g.Ticks())
	}
}

func TestResetDeterministic(t *testing.T) {
	a := NewWithSeed(99)
	b := NewWithSeed(99)
	for i := 0; i < 20; i++ {
		a.respawnFood()
		b.respawnFood()
		if a.Food() != b.Food() {
			t.Fatalf("respawn %d diverged: %v vs %v", i, a.Food(), b.Food())
		}
	}

	a.Reset(5)
	b.Reset(5)
	if !snapshotsEqual(a.Snapshot(), NewWithSeed(5).Snapshot()) {
		t.Fatal("Reset must restore the starting position")
	}
	a.respawnFood()
	b.respawnFood()
	if a.Food() != b.Food() {
		t.Fatal("Reset with equal seeds must give equal food sequences")
	}
}

func TestApplyDispatch(t *testing.T) {
	g := NewWithSeed(1)

	g.Apply(CmdNone)
	g.Apply(CmdLeft)
	if g.Direction() != DirRight {
		t.Fatal("CmdLeft while heading right must be rejected")
	}
	g.Apply(CmdUp)
	if g.Direction() != DirUp {
		t.Fatalf("CmdUp gave %v", g.Direction())
	}
	g.Apply(CmdLeft)
	if g.Direction() != DirLeft {
		t.Fatalf("CmdLeft gave %v", g.Direction())
	}
	g.Apply(CmdDown)
	if g.Direction() != DirDown {
		t.Fatalf("CmdDown gave %v", g.Direction())
	}
	g.Apply(CmdRight)
	if g.Direction() != DirRight {
		t.Fatalf("CmdRight gave %v", g.Direction())
	}
	g.Apply(CmdPause)
	if g.State() != StatePaused {
		t.Fatalf("CmdPause gave %v", g.State())
	}
	g.Apply(CmdPause)
	g.state = StateOver
	g.Apply(CmdRestart)
	if g.State() != StatePlaying {
		t.Fatalf("CmdRestart while over gave %v", g.State())
	}
}

func TestSnapshotCopiesBody(t *testing.T) {
	g := NewWithSeed(1)
	snap := g.Snapshot()
	snap.Body[0] = Point{20, 20}
	if g.Head() != (Point{3, 1}) {
		t.Fatal("mutating a snapshot must not affect the game")
	}
}

// TestRandomPlayKeepsInvariants drives the game with random turns and checks
// the at-rest invariants after every tick.
func TestRandomPlayKeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	turns := []Command{CmdUp, CmdDown, CmdLeft, CmdRight}

	for game := 0; game < 20; game++ {
		g := NewWithSeed(int64(game))
		for step := 0; step < 2000 && g.State() == StatePlaying; step++ {
			if r.IntN(4) == 0 {
				g.Apply(turns[r.IntN(len(turns))])
			}
			prevLen := len(g.Body())
			prevScore := g.Score()
			g.Step()

			body := g.Body()
			if len(body) == 0 {
				t.Fatal("body must never be empty")
			}
			if g.Score() != prevScore && g.Score() != prevScore+1 {
				t.Fatalf("score jumped from %d to %d", prevScore, g.Score())
			}
			if g.Score() == prevScore+1 && len(body) != prevLen+1 {
				t.Fatalf("eating must grow the body by one: %d -> %d", prevLen, len(body))
			}
			if g.State() == StateOver {
				break
			}
			if g.Score() == prevScore && len(body) != prevLen {
				t.Fatalf("moving without eating changed length %d -> %d", prevLen, len(body))
			}
			seen := make(map[Point]bool, len(body))
			for _, p := range body {
				if !p.InBounds() {
					t.Fatalf("segment %v out of bounds while playing", p)
				}
				if seen[p] {
					t.Fatalf("segment %v appears twice in %v", p, body)
				}
				seen[p] = true
			}
			if seen[g.Food()] {
				t.Fatalf("food %v lies on the body", g.Food())
			}
		}
	}
}

func snapshotsEqual(a, b Snapshot) bool {
	return slices.Equal(a.Body, b.Body) &&
		a.Food == b.Food &&
		a.Direction == b.Direction &&
		a.State == b.State &&
		a.Score == b.Score
}

func TestNewMatchesSeededStart(t *testing.T) {
	if !snapshotsEqual(New().Snapshot(), NewWithSeed(1).Snapshot()) {
		t.Fatal("New must produce the same starting position as NewWithSeed")
	}
	if New().Name() != "snake" {
		t.Fatal("unexpected name")
	}
}
