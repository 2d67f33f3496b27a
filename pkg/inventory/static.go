package inventory

import (
	"context"
	"strconv"
)

// SlicePager serves a fixed sequence of pages from memory. An error set with
// FailAt is returned instead of the page at that index.
type SlicePager struct {
	pages  []Page
	next   int
	failAt int
	err    error
}

// NewSlicePager returns a Pager over pages.
func NewSlicePager(pages ...Page) *SlicePager {
	return &SlicePager{pages: pages, failAt: -1}
}

// FailAt makes the i-th NextPage call return err.
func (p *SlicePager) FailAt(i int, err error) *SlicePager {
	p.failAt = i
	p.err = err
	return p
}

// HasMorePages implements Pager.
func (p *SlicePager) HasMorePages() bool {
	return p.next < len(p.pages) || p.next == p.failAt
}

// NextPage implements Pager.
func (p *SlicePager) NextPage(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	i := p.next
	p.next++
	if i == p.failAt {
		return Page{}, p.err
	}
	return p.pages[i], nil
}

// Fetched returns how many pages have been requested so far.
func (p *SlicePager) Fetched() int {
	return p.next
}

// NewPage builds a page whose KeyCount matches the number of sizes given.
// Keys are generated from prefix.
func NewPage(prefix string, sizes ...uint64) Page {
	records := make([]Record, len(sizes))
	for i, s := range sizes {
		records[i] = Record{Key: prefix + "/" + strconv.Itoa(i), Size: s}
	}
	return Page{KeyCount: len(records), Records: records}
}
