// Package termsize detects the width of the terminal attached to a file
// descriptor.
//
// Resolution order is the COLUMNS environment variable, then the terminal
// itself, then DefaultColumns.
package termsize

import (
	"os"
	"strconv"
	"strings"
)

// DefaultColumns is the fallback width used when neither COLUMNS nor the
// terminal report a usable value.
const DefaultColumns = 80

// Result holds the result of width detection.
type Result struct {
	// Columns is the terminal width in character cells.
	Columns int

	// Reliable indicates whether the value came from COLUMNS or the
	// terminal (true) or is the fallback default (false).
	Reliable bool
}

// Width returns the width of the terminal on fd.
func Width(fd int) Result {
	if cols, ok := columnsFromEnv(); ok {
		return Result{Columns: cols, Reliable: true}
	}
	cols, ok := terminalColumns(fd)
	if !ok || cols <= 0 {
		return Result{Columns: DefaultColumns, Reliable: false}
	}
	return Result{Columns: cols, Reliable: true}
}

// Columns is a convenience function that returns just the width.
func Columns(fd int) int {
	return Width(fd).Columns
}

// Stdout returns the width of the terminal on standard output.
func Stdout() int {
	return Columns(int(os.Stdout.Fd()))
}

func columnsFromEnv() (int, bool) {
	v := strings.TrimSpace(os.Getenv("COLUMNS"))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
