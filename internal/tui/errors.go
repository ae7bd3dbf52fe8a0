package tui

import "errors"

// ErrUserQuit is returned by [TUI.Run] when the program was interrupted
// instead of left through the Exit menu entry.
var ErrUserQuit = errors.New("user quit")
