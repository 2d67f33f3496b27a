// Package s3list lists buckets and bucket contents through the AWS SDK.
package s3list

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/eunmann/s3du/internal/logctx"
	"github.com/eunmann/s3du/pkg/inventory"
)

// DefaultRegion is used when neither the flags nor the shared AWS config
// name a region. Bucket listing works against the global endpoint from it.
const DefaultRegion = "us-east-1"

// Options configures how the client reaches the storage provider.
type Options struct {
	// Region overrides the region from the shared AWS config.
	Region string
	// Endpoint is the base URL of an S3-compatible service. Empty means AWS.
	Endpoint string
	// Profile selects a shared config profile.
	Profile string
	// UsePathStyle addresses buckets as path segments instead of subdomains.
	UsePathStyle bool
	// AccessKey and SecretKey, when both set, replace the default
	// credential chain with static credentials.
	AccessKey string
	SecretKey string
	// PageSize caps the keys returned per listing request (0 = provider default).
	PageSize int32
}

// Client provides the listing operations used by the usage report.
type Client struct {
	s3Client *s3.Client
	pageSize int32
}

// NewClient creates a new S3 client using the default AWS configuration
// chain, adjusted by opts.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return NewClientWithConfig(cfg, opts), nil
}

// NewClientWithConfig creates a new S3 client with a custom AWS config.
func NewClientWithConfig(cfg aws.Config, opts Options) *Client {
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return &Client{
		s3Client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			if opts.Endpoint != "" {
				o.BaseEndpoint = aws.String(opts.Endpoint)
			}
			o.UsePathStyle = opts.UsePathStyle
		}),
		pageSize: opts.PageSize,
	}
}

// ListBuckets returns the names of every bucket visible to the credentials,
// in the order the provider returns them.
func (c *Client) ListBuckets(ctx context.Context) ([]string, error) {
	var names []string
	p := s3.NewListBucketsPaginator(c.s3Client, &s3.ListBucketsInput{})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			logAPIError(ctx, "list buckets", err)
			return nil, fmt.Errorf("list buckets: %w", err)
		}
		for _, b := range out.Buckets {
			names = append(names, aws.ToString(b.Name))
		}
	}
	return names, nil
}

// ListObjects opens a paginated listing of bucket. No request is made
// until the first NextPage call.
func (c *Client) ListObjects(bucket string) inventory.Pager {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	return &objectPager{
		bucket: bucket,
		p: s3.NewListObjectsV2Paginator(c.s3Client, input, func(o *s3.ListObjectsV2PaginatorOptions) {
			if c.pageSize > 0 {
				o.Limit = c.pageSize
			}
		}),
	}
}

// objectPager adapts the SDK paginator to inventory.Pager.
type objectPager struct {
	bucket string
	p      *s3.ListObjectsV2Paginator
}

func (op *objectPager) HasMorePages() bool {
	return op.p.HasMorePages()
}

func (op *objectPager) NextPage(ctx context.Context) (inventory.Page, error) {
	out, err := op.p.NextPage(ctx)
	if err != nil {
		logAPIError(ctx, "list objects", err)
		return inventory.Page{}, fmt.Errorf("list objects s3://%s: %w", op.bucket, err)
	}
	return toPage(out), nil
}

// toPage converts one ListObjectsV2 response. KeyCount gates the page; a
// provider that omits it is trusted on the number of Contents returned.
func toPage(out *s3.ListObjectsV2Output) inventory.Page {
	records := make([]inventory.Record, 0, len(out.Contents))
	for _, obj := range out.Contents {
		size := aws.ToInt64(obj.Size)
		if size < 0 {
			size = 0
		}
		records = append(records, inventory.Record{
			Key:  aws.ToString(obj.Key),
			Size: uint64(size),
		})
	}

	count := len(records)
	if out.KeyCount != nil {
		count = int(aws.ToInt32(out.KeyCount))
	}
	return inventory.Page{KeyCount: count, Records: records}
}

// logAPIError records the service error code, which the wrapped error text
// buries in request metadata.
func logAPIError(ctx context.Context, op string, err error) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	log := logctx.FromContext(ctx)
	log.Error().
		Str("op", op).
		Str("code", apiErr.ErrorCode()).
		Str("message", apiErr.ErrorMessage()).
		Msg("S3 request failed")
}
