//go:build !unix

package main

func terminalWidth(fd, fallback int) int {
	return fallback
}
