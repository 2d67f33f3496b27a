// Package usage aggregates per-bucket object counts and sizes from paginated
// listings and reports them.
package usage

import (
	"fmt"

	"github.com/eunmann/s3du/pkg/humanfmt"
	"github.com/eunmann/s3du/pkg/inventory"
)

// Tally is the running count and size for one bucket. Both totals only grow.
type Tally struct {
	Bucket     string
	FileCount  uint64
	TotalBytes uint64
}

// Add folds a page into the tally. Empty pages are ignored and reported
// as false so callers can skip redundant progress updates.
func (t *Tally) Add(p inventory.Page) bool {
	if p.Empty() {
		return false
	}
	t.FileCount += uint64(len(p.Records))
	t.TotalBytes += p.Size()
	return true
}

// String renders the tally as shown on the progress and totals lines,
// e.g. "2.00 MB (3 files)".
func (t Tally) String() string {
	return fmt.Sprintf("%s (%d files)", humanfmt.Bytes(t.TotalBytes), t.FileCount)
}

// Row freezes the tally into a report row.
func (t Tally) Row() Row {
	return Row{Name: t.Bucket, FileCount: t.FileCount, TotalBytes: t.TotalBytes}
}

// Row is one line of the final report.
type Row struct {
	Name       string
	FileCount  uint64
	TotalBytes uint64
}
