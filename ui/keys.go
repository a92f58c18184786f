package ui

// action is the result of routing one input token in normal mode.
type action int

const (
	actionNoop action = iota
	actionQuit
	actionMoveUp
	actionMoveDown
	actionRefresh
	actionKill
)

// Key bindings as constants for consistency.
const (
	keyQuit     = "q"
	keyQuitAlt  = "ctrl+c"
	keyUp       = "up"
	keyDown     = "down"
	keyRefresh  = "r"
	keyKill     = "k"
	keyFilter   = "/"
	keyHelp     = "?"
	keyConfirm  = "1"
	keySortPID  = "p"
	keySortName = "n"
	keySortMem  = "m"
)

// dispatch maps one key to an action. Pure; letter bindings are
// case-insensitive. Kill requires a row to target, and navigation past
// either boundary is a no-op (enforced in selection.move).
func dispatch(key string, count int) action {
	switch key {
	case keyQuit, "Q", keyQuitAlt:
		return actionQuit
	case keyUp:
		return actionMoveUp
	case keyDown:
		return actionMoveDown
	case keyRefresh, "R":
		return actionRefresh
	case keyKill, "K":
		if count > 0 {
			return actionKill
		}
		return actionNoop
	}
	return actionNoop
}
