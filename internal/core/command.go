package core

// Command represents a semantic player intent, abstracted from physical key
// presses. The input adapter produces at most one command per polling cycle;
// the session consumes commands without knowing their source.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdReload // restart the current level from its template
	CmdQuit   // terminate the outer loop (handled by the platform)
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdReload:
		return "Reload"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a movement command.
// The second return value is false for non-movement commands.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdMoveUp:
		return DirUp, true
	case CmdMoveDown:
		return DirDown, true
	case CmdMoveLeft:
		return DirLeft, true
	case CmdMoveRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}
