//go:build ebiten

package app

import (
	"log"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the snake simulation to the ebiten.Game interface.
type Game struct {
	game    *snake.Game
	painter *render.GridPainter
	overlay *ui.Overlay
	cadence *core.Cadence
	logger  *log.Logger

	keys      []ebiten.Key
	lastState snake.State
}

// New constructs a Game driving g. Lifecycle events are written to logger
// when it is non-nil.
func New(g *snake.Game, cfg *Config, logger *log.Logger) *Game {
	return &Game{
		game:      g,
		painter:   render.NewGridPainter(render.NewLayout(g.Size())),
		overlay:   ui.NewOverlay(),
		cadence:   core.NewCadence(cfg.FramesPerTick),
		logger:    logger,
		lastState: g.State(),
	}
}

// Update applies this frame's key presses in order and advances the
// simulation on the configured cadence.
func (a *Game) Update() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		a.game.Apply(commandForKey(k))
	}

	if a.cadence.Advance() {
		a.game.Step()
	}
	a.observe()
	return nil
}

// Draw renders the current game snapshot.
func (a *Game) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	a.painter.Draw(screen, a.game.Cells(), a.game.Palette(), snake.Background(snap.State))
	a.overlay.Draw(screen, snap)
}

// Layout returns the logical screen size.
func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.painter.Size()
}

func (a *Game) observe() {
	state := a.game.State()
	if state == a.lastState {
		return
	}
	if a.logger != nil {
		switch {
		case state == snake.StateOver:
			a.logger.Printf("game over: score %d after %d ticks", a.game.Score(), a.game.Ticks())
		case a.lastState == snake.StateOver:
			a.logger.Printf("new game")
		}
	}
	if a.lastState == snake.StateOver {
		a.cadence.Reset()
	}
	a.lastState = state
}

func commandForKey(k ebiten.Key) snake.Command {
	switch k {
	case ebiten.KeyW, ebiten.KeyArrowUp:
		return snake.CmdUp
	case ebiten.KeyS, ebiten.KeyArrowDown:
		return snake.CmdDown
	case ebiten.KeyA, ebiten.KeyArrowLeft:
		return snake.CmdLeft
	case ebiten.KeyD, ebiten.KeyArrowRight:
		return snake.CmdRight
	case ebiten.KeyP:
		return snake.CmdPause
	case ebiten.KeyR:
		return snake.CmdRestart
	default:
		return snake.CmdNone
	}
}
