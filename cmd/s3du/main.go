// Command s3du reports object count and total size for S3 buckets.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/s3du/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
