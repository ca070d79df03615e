// Package storage wraps the two S3-compatible stores the slide pipeline
// touches: the private object store the extractor writes frames and
// manifests to, and the public blob store slide images are served from.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/recapd/recapd/pkg/config"
)

// newS3Client builds an S3 client for one S3-compatible endpoint. Path-style
// addressing keeps non-AWS endpoints (MinIO and friends) working.
func newS3Client(ctx context.Context, cfg *config.S3Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = true
	})
	return client, nil
}

// ObjectStore reads extractor output from the private bucket.
type ObjectStore struct {
	client *s3.Client
	bucket string
}

// NewObjectStore connects to the private object store.
func NewObjectStore(ctx context.Context, cfg *config.S3Config) (*ObjectStore, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

// Get downloads one object in full.
func (o *ObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &o.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// BlobStore uploads publicly served blobs and resolves their public URLs.
type BlobStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewBlobStore connects to the public blob store.
func NewBlobStore(ctx context.Context, cfg *config.S3Config, publicBaseURL string) (*BlobStore, error) {
	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &BlobStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Put uploads a blob under the given key and returns its public URL. Uploads
// are idempotent: re-running a step overwrites the same key with the same
// bytes.
func (b *BlobStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &b.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put blob %s: %w", key, err)
	}
	return b.PublicURL(key), nil
}

// PublicURL returns the public URL a key is served from.
func (b *BlobStore) PublicURL(key string) string {
	return b.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}
