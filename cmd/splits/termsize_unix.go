//go:build unix

package main

import "golang.org/x/sys/unix"

// terminalWidth returns the column count of the terminal on fd, or fallback
// when fd is not a terminal.
func terminalWidth(fd, fallback int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return fallback
	}
	return int(ws.Col)
}
