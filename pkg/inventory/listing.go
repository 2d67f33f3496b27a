// Package inventory describes object listings returned by a storage provider.
package inventory

import "context"

// Record represents a single object from a bucket listing.
type Record struct {
	Key  string
	Size uint64
}

// Page is one batch of records returned by a single listing request.
type Page struct {
	// KeyCount is the number of keys the provider reported for this page.
	// A zero count marks the page as empty regardless of Records.
	KeyCount int
	Records  []Record
}

// Empty reports whether the page carries no records.
func (p Page) Empty() bool {
	return p.KeyCount == 0
}

// Size returns the sum of the record sizes in the page.
func (p Page) Size() uint64 {
	var total uint64
	for _, r := range p.Records {
		total += r.Size
	}
	return total
}

// Pager pulls the pages of one bucket listing, one request at a time.
type Pager interface {
	// HasMorePages reports whether NextPage may be called again.
	HasMorePages() bool
	// NextPage fetches the next page. It blocks until the request completes.
	NextPage(ctx context.Context) (Page, error)
}

// ObjectLister opens paginated object listings keyed by bucket name.
type ObjectLister interface {
	ListObjects(bucket string) Pager
}

// Lister enumerates buckets and their objects.
type Lister interface {
	ObjectLister
	// ListBuckets returns every bucket visible to the caller, in provider order.
	ListBuckets(ctx context.Context) ([]string, error)
}
