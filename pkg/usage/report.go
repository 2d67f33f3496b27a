package usage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/eunmann/s3du/internal/logctx"
	"github.com/eunmann/s3du/pkg/inventory"
	"github.com/eunmann/s3du/pkg/logging"
)

// Header is the first row of the report table.
var Header = []string{"name", "file count", "size"}

// Report runs the aggregator over a list of buckets and writes the final
// CSV table once every bucket has been processed.
type Report struct {
	lister inventory.ObjectLister
	out    io.Writer
	agg    *Aggregator
}

// NewReport creates a report that lists objects through lister and writes
// all output, progress included, to out. width supplies the terminal width
// for the progress line.
func NewReport(lister inventory.ObjectLister, out io.Writer, width func() int) *Report {
	return &Report{
		lister: lister,
		out:    out,
		agg:    NewAggregator(out, NewLineRenderer(out, width)),
	}
}

// Run processes buckets strictly in order. The first error stops the run
// before the table is written, so a table on out always means every
// bucket completed. An empty list yields a header-only table.
func (r *Report) Run(ctx context.Context, buckets []string) ([]Row, error) {
	rows := make([]Row, 0, len(buckets))
	for _, bucket := range buckets {
		bctx := logctx.WithStr(ctx, "bucket", bucket)
		tally, err := r.agg.Aggregate(bctx, bucket, r.lister.ListObjects(bucket))
		if err != nil {
			return nil, err
		}
		rows = append(rows, tally.Row())
	}

	start := time.Now()
	if err := WriteTable(r.out, rows); err != nil {
		return nil, err
	}
	logging.ReportWritten(logctx.FromContext(ctx), time.Since(start)).
		Int("rows", len(rows)).
		Log("report written")

	return rows, nil
}

// WriteTable writes rows as CSV with raw integer totals.
func WriteTable(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.FormatUint(row.FileCount, 10),
			strconv.FormatUint(row.TotalBytes, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write report row %s: %w", row.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return flush(w)
}
