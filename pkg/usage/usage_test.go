package usage

import (
	"errors"
	"strings"

	"github.com/eunmann/s3du/pkg/inventory"
)

// testWidth keeps the clearing run short enough to spell out in expectations.
const testWidth = 4

var clearSeq = "\r" + strings.Repeat(" ", testWidth) + "\r"

func fixedWidth() int { return testWidth }

// fakeLister serves canned pagers and records which buckets were opened.
type fakeLister struct {
	pagers map[string]inventory.Pager
	opened []string
}

func (f *fakeLister) ListObjects(bucket string) inventory.Pager {
	f.opened = append(f.opened, bucket)
	if p, ok := f.pagers[bucket]; ok {
		return p
	}
	return inventory.NewSlicePager()
}

// progressTexts returns the strings passed to Refresh for one bucket
// section, in order.
func progressTexts(section string) []string {
	parts := strings.Split(section, clearSeq)
	if len(parts) < 3 {
		return nil
	}
	return parts[1 : len(parts)-1]
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("broken pipe")
	}
	w.after--
	return len(p), nil
}
