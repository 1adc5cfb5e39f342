package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore is the file storage capability used by the upload flows.
// Implemented by S3Store; swapped for a mock in tests.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(u string) string
	IsConfigured() bool
}

// Provider selects the S3-compatible backend.
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
)

// Config holds configuration for S3-compatible storage.
type Config struct {
	Provider        Provider
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string

	// Wasabi needs an explicit endpoint and path-style addressing.
	WasabiEndpoint string
}

// S3Store stores uploaded files (resumes, avatars, logos) in a bucket.
type S3Store struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Store creates the store. An unconfigured store is still returned so the
// server can boot without credentials; uploads then fail at call time.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return &S3Store{}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	var publicBase string

	switch cfg.Provider {
	case ProviderWasabi:
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + cfg.WasabiEndpoint)
			o.UsePathStyle = true // Wasabi requires path-style
		})
		publicBase = fmt.Sprintf("https://%s/%s", cfg.WasabiEndpoint, cfg.Bucket)
	default:
		client = s3.NewFromConfig(awsCfg)
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: publicBase,
	}, nil
}

// IsConfigured reports whether uploads can be served.
func (s *S3Store) IsConfigured() bool {
	return s.client != nil
}

// Put uploads the object and returns its public URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("storage not configured")
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}

// Delete removes the object. Missing objects are not an error.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if s.client == nil || key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// KeyFromURL recovers the object key from a stored public URL so the previous
// file can be deleted before a replacement is written.
func (s *S3Store) KeyFromURL(u string) string {
	if s.publicBase == "" || u == "" {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(u, s.publicBase), "/")
}
