// Package storage uploads applicant CVs to S3 and returns public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader stores uploaded files in an S3 bucket.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
	logger *log.Logger
}

// NewUploader loads AWS credentials from the environment and pins the
// client to the given region and bucket.
func NewUploader(ctx context.Context, region, bucket string, logger *log.Logger) (*Uploader, error) {
	if logger == nil {
		logger = log.Default()
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		logger: logger,
	}, nil
}

// Upload writes data under a random key preserving the original extension
// and returns the object's public URL.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		u.logger.Printf("❌ Failed to upload %s to S3: %v", filename, err)
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	u.logger.Printf("✅ Uploaded %s (%d bytes)", key, len(data))
	return url, nil
}
