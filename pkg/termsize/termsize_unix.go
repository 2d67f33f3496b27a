//go:build unix

package termsize

import "golang.org/x/sys/unix"

// terminalColumns reads the window size of fd with TIOCGWINSZ.
func terminalColumns(fd int) (int, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return int(ws.Col), true
}
