package cli

import (
	"errors"
	"fmt"

	"github.com/eunmann/s3du/pkg/logging"
	"github.com/eunmann/s3du/pkg/s3list"
)

// maxPageSize is the largest MaxKeys S3 honours for ListObjectsV2.
const maxPageSize = 1000

// Config holds the command-line and environment settings.
type Config struct {
	accessKey string
	endpoint  string
	logHuman  bool
	logLevel  string
	pageSize  int
	pathStyle bool
	profile   string
	region    string
	secretKey string
}

func (c *Config) validate() error {
	if (c.accessKey == "") != (c.secretKey == "") {
		return errors.New("both --access-key and --secret-key must be provided together")
	}
	if c.pageSize < 0 || c.pageSize > maxPageSize {
		return fmt.Errorf("invalid page size (must be between 0-%d inclusive): %d", maxPageSize, c.pageSize)
	}
	if _, err := logging.ParseLevel(c.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	return nil
}

func (c *Config) s3Options() s3list.Options {
	return s3list.Options{
		Region:       c.region,
		Endpoint:     c.endpoint,
		Profile:      c.profile,
		UsePathStyle: c.pathStyle,
		AccessKey:    c.accessKey,
		SecretKey:    c.secretKey,
		PageSize:     int32(c.pageSize),
	}
}
