package snake

// Command is a single player intent delivered by a front end.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdRestart
)

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdPause:
		return "pause"
	case CmdRestart:
		return "restart"
	default:
		return "none"
	}
}

// Apply dispatches cmd to the matching operation. CmdNone is ignored.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CmdUp:
		g.MoveUp()
	case CmdDown:
		g.MoveDown()
	case CmdLeft:
		g.MoveLeft()
	case CmdRight:
		g.MoveRight()
	case CmdPause:
		g.TogglePause()
	case CmdRestart:
		g.Restart()
	}
}

func (g *Game) MoveUp() { g.turn(DirUp) }
func (g *Game) MoveDown() { g.turn(DirDown) }
func (g *Game) MoveLeft() { g.turn(DirLeft) }
func (g *Game) MoveRight() { g.turn(DirRight) }

// turn changes the heading in any state unless d reverses it.
func (g *Game) turn(d Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.direction = d
}

// TogglePause flips between playing and paused. Over is left alone.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// Restart starts a fresh game once the current one is over. The food RNG keeps
// its stream so consecutive games differ.
func (g *Game) Restart() {
	if g.state != StateOver {
		return
	}
	g.restore()
}
