package main

import (
	"os"

	"golang.org/x/sys/unix"
)

const defaultCols = 80

// terminalCols reports the width of the terminal attached to stderr. Stdout
// is often redirected when previews are piped somewhere, so it is not asked.
func terminalCols() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultCols
	}
	return int(ws.Col)
}
