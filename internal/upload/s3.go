package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores files in an S3 bucket and returns https object URLs.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Uploader builds an uploader from the standard AWS environment plus
// PATHWISE_S3_BUCKET. PATHWISE_S3_ACCESS_KEY and PATHWISE_S3_SECRET_KEY,
// when both set, take precedence over the default credential chain.
func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	bucket := os.Getenv("PATHWISE_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("PATHWISE_S3_BUCKET is required for the s3 upload backend")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	accessKey := os.Getenv("PATHWISE_S3_ACCESS_KEY")
	secretKey := os.Getenv("PATHWISE_S3_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: cfg.Region,
	}, nil
}

// Upload puts the object under uploads/ with a unique key.
func (u *S3Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := "uploads/" + uuid.NewString() + "-" + sanitize(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
