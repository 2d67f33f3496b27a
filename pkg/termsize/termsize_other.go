//go:build !unix

package termsize

import "golang.org/x/term"

// terminalColumns asks the console for its size. Platforms without a
// console API report false and fall back to DefaultColumns.
func terminalColumns(fd int) (int, bool) {
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	return width, true
}
