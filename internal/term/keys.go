package term

import (
	"gridsnake/internal/snake"

	"github.com/nsf/termbox-go"
)

// commandForEvent maps a terminal key event to a game command. quit is true
// for Esc, Ctrl-C and q.
func commandForEvent(ev termbox.Event) (cmd snake.Command, quit bool) {
	if ev.Type != termbox.EventKey {
		return snake.CmdNone, false
	}
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return snake.CmdNone, true
	case termbox.KeyArrowUp:
		return snake.CmdUp, false
	case termbox.KeyArrowDown:
		return snake.CmdDown, false
	case termbox.KeyArrowLeft:
		return snake.CmdLeft, false
	case termbox.KeyArrowRight:
		return snake.CmdRight, false
	}
	switch ev.Ch {
	case 'w', 'W':
		return snake.CmdUp, false
	case 's', 'S':
		return snake.CmdDown, false
	case 'a', 'A':
		return snake.CmdLeft, false
	case 'd', 'D':
		return snake.CmdRight, false
	case 'p', 'P':
		return snake.CmdPause, false
	case 'r', 'R':
		return snake.CmdRestart, false
	case 'q', 'Q':
		return snake.CmdNone, true
	}
	return snake.CmdNone, false
}
