package usage

import (
	"fmt"
	"io"
	"strings"
)

// LineRenderer rewrites the current terminal line in place. Each refresh
// blanks the full terminal width first so a shorter string leaves no
// residue from a longer one.
type LineRenderer struct {
	w     io.Writer
	width func() int
}

// NewLineRenderer returns a renderer writing to w. width is queried on
// every refresh so terminal resizes are picked up.
func NewLineRenderer(w io.Writer, width func() int) *LineRenderer {
	return &LineRenderer{w: w, width: width}
}

// Refresh clears the line and writes text without a trailing newline.
func (r *LineRenderer) Refresh(text string) error {
	if err := r.Clear(); err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, text); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return flush(r.w)
}

// Clear blanks the line and returns the cursor to its start.
func (r *LineRenderer) Clear() error {
	n := r.width()
	if n < 0 {
		n = 0
	}
	if _, err := io.WriteString(r.w, "\r"+strings.Repeat(" ", n)+"\r"); err != nil {
		return fmt.Errorf("clear progress line: %w", err)
	}
	return nil
}

type flusher interface {
	Flush() error
}

// flush pushes buffered output to the terminal when w is buffered.
func flush(w io.Writer) error {
	f, ok := w.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
