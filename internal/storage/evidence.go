package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// EvidenceStore persists approval screenshots and returns an opaque reference
// key. File contents are validated upstream; the store only moves bytes.
type EvidenceStore interface {
	Save(ctx context.Context, body io.Reader, size int64, contentType string) (string, error)
}

// S3Config carries connection settings for the object store. Works with any
// S3-compatible endpoint (AWS, MinIO).
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3EvidenceStore stores screenshots in an S3 bucket under date-partitioned
// random keys.
type S3EvidenceStore struct {
	client *s3.Client
	bucket string
}

var _ EvidenceStore = (*S3EvidenceStore)(nil)

// NewS3EvidenceStore builds an S3-backed store.
func NewS3EvidenceStore(ctx context.Context, cfg S3Config) (*S3EvidenceStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3EvidenceStore{client: client, bucket: cfg.Bucket}, nil
}

// Save uploads the screenshot and returns its object key.
func (s *S3EvidenceStore) Save(ctx context.Context, body io.Reader, size int64, contentType string) (string, error) {
	key := storageKey()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload evidence: %w", err)
	}
	return key, nil
}

func storageKey() string {
	d := time.Now()
	return fmt.Sprintf("approvals/%d/%02d/%v", d.Year(), int(d.Month()), uuid.New())
}
