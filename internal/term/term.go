// Package term is a terminal front end for the snake game built on termbox.
package term

import (
	"context"
	"fmt"
	"log"

	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/nsf/termbox-go"
)

// Options controls pacing and logging of the terminal loop.
type Options struct {
	FPS           int
	FramesPerTick int
	Logger        *log.Logger
}

// screen is the part of the terminal the loop talks to.
type screen interface {
	Events() <-chan termbox.Event
	Show(Frame) error
}

// Run takes over the terminal and plays until the player quits, ctx is
// cancelled, or the terminal fails.
func Run(ctx context.Context, game *snake.Game, opts Options) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc)

	scr := newTermboxScreen()
	defer scr.stop()
	return loop(ctx, scr, game, core.NewFrameClock(opts.FPS), opts)
}

// loop runs one iteration per frame: drain input, maybe tick, draw, wait.
func loop(ctx context.Context, scr screen, game *snake.Game, clock *core.FrameClock, opts Options) error {
	cadence := core.NewCadence(opts.FramesPerTick)
	last := game.State()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		quit, err := drain(scr.Events(), game)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if cadence.Advance() {
			game.Step()
		}
		if state := game.State(); state != last {
			logTransition(opts.Logger, game, last)
			if last == snake.StateOver {
				cadence.Reset()
			}
			last = state
		}

		if err := scr.Show(compose(game.Snapshot(), game.Cells(), game.Palette())); err != nil {
			return fmt.Errorf("term: draw: %w", err)
		}
		clock.Wait()
	}
}

// drain applies every pending input event in arrival order without blocking.
func drain(events <-chan termbox.Event, game *snake.Game) (quit bool, err error) {
	for {
		select {
		case ev := <-events:
			if ev.Type == termbox.EventError {
				return false, fmt.Errorf("term: input: %w", ev.Err)
			}
			cmd, quit := commandForEvent(ev)
			if quit {
				return true, nil
			}
			game.Apply(cmd)
		default:
			return false, nil
		}
	}
}

func logTransition(logger *log.Logger, game *snake.Game, from snake.State) {
	if logger == nil {
		return
	}
	switch {
	case game.State() == snake.StateOver:
		logger.Printf("game over: score %d after %d ticks", game.Score(), game.Ticks())
	case from == snake.StateOver:
		logger.Printf("new game")
	}
}

// termboxScreen forwards termbox events from a polling goroutine and blits
// frames to the terminal.
type termboxScreen struct {
	events chan termbox.Event
	done   chan struct{}
}

func newTermboxScreen() *termboxScreen {
	s := &termboxScreen{
		events: make(chan termbox.Event, 16),
		done:   make(chan struct{}),
	}
	go s.poll()
	return s
}

func (s *termboxScreen) poll() {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *termboxScreen) Events() <-chan termbox.Event { return s.events }

func (s *termboxScreen) Show(f Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			termbox.SetCell(x, y, c.Ch, c.Fg, c.Bg)
		}
	}
	return termbox.Flush()
}

func (s *termboxScreen) stop() { close(s.done) }
