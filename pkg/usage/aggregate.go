package usage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/eunmann/s3du/internal/logctx"
	"github.com/eunmann/s3du/pkg/inventory"
	"github.com/eunmann/s3du/pkg/logging"
)

// Aggregator totals one bucket at a time, printing a header, a live
// progress line and a final totals line to out.
type Aggregator struct {
	out      io.Writer
	progress *LineRenderer
}

// NewAggregator creates an aggregator that writes to out and uses
// progress for the live line. progress must write to the same stream.
func NewAggregator(out io.Writer, progress *LineRenderer) *Aggregator {
	return &Aggregator{out: out, progress: progress}
}

// Aggregate pulls every page from pager and returns the bucket's totals.
// Pages are requested one at a time. A listing error aborts the bucket and
// no tally is returned.
func (a *Aggregator) Aggregate(ctx context.Context, bucket string, pager inventory.Pager) (Tally, error) {
	log := logctx.FromContext(ctx)
	start := time.Now()

	underline := strings.Repeat("-", utf8.RuneCountInString(bucket))
	if _, err := fmt.Fprintf(a.out, "%s\n%s\n", bucket, underline); err != nil {
		return Tally{}, fmt.Errorf("write bucket header: %w", err)
	}

	tally := Tally{Bucket: bucket}
	pages := 0
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return Tally{}, fmt.Errorf("list bucket %s: %w", bucket, err)
		}
		pages++

		if !tally.Add(page) {
			log.Debug().Int("page", pages).Msg("empty page skipped")
			continue
		}
		log.Debug().
			Int("page", pages).
			Int("keys", page.KeyCount).
			Uint64("files", tally.FileCount).
			Uint64("bytes", tally.TotalBytes).
			Msg("page fetched")

		if err := a.progress.Refresh(tally.String()); err != nil {
			return Tally{}, err
		}
	}

	if err := a.progress.Clear(); err != nil {
		return Tally{}, err
	}
	if _, err := fmt.Fprintf(a.out, "%s\n\n", tally); err != nil {
		return Tally{}, fmt.Errorf("write bucket totals: %w", err)
	}
	if err := flush(a.out); err != nil {
		return Tally{}, err
	}

	logging.BucketCompleted(log, time.Since(start)).
		Count("files", tally.FileCount).
		Bytes("bytes", tally.TotalBytes).
		Int("pages", pages).
		Log("bucket aggregated")

	return tally, nil
}
