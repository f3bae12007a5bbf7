// Package upload stores user files and returns durable URLs for them.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Uploader stores a file and returns a URL the rest of the app can keep.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// FromEnv selects the upload backend from PATHWISE_UPLOAD_BACKEND.
// "local" (the default) stores files next to the database; "s3" stores them
// in the bucket named by PATHWISE_S3_BUCKET.
func FromEnv(ctx context.Context, dataDir string) (Uploader, error) {
	switch backend := os.Getenv("PATHWISE_UPLOAD_BACKEND"); backend {
	case "", "local":
		return NewLocalUploader(dataDir)
	case "s3":
		return NewS3Uploader(ctx)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", backend)
	}
}
