package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/nakamauwu/parcelmate/types"
)

// Minio stores post images. Objects are publicly readable under PublicURL.
type Minio struct {
	baseCtx        context.Context
	cleanupTimeout time.Duration
	client         *minio.Client
	publicURL      *url.URL
	errChan        chan error
}

func New(ctx context.Context, client *minio.Client, publicURL *url.URL, cleanupTimeout time.Duration) *Minio {
	return &Minio{
		baseCtx:        ctx,
		cleanupTimeout: cleanupTimeout,
		client:         client,
		publicURL:      publicURL,
		errChan:        make(chan error, 1),
	}
}

// Errs reports cleanup failures.
func (m *Minio) Errs() <-chan error {
	return m.errChan
}

// Upload puts the file in the bucket and returns a function that removes it again,
// used to roll back when the database write that follows fails.
func (m *Minio) Upload(ctx context.Context, bucket string, file types.Attachment) (func(), error) {
	info, err := m.client.PutObject(ctx, bucket, file.Path, file.Reader(), int64(file.FileSize), minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	return func() {
		ctx, cancel := context.WithTimeout(m.baseCtx, m.cleanupTimeout)
		defer cancel()

		if err := m.client.RemoveObject(ctx, bucket, file.Path, minio.RemoveObjectOptions{
			VersionID: info.VersionID,
		}); err != nil {
			select {
			case m.errChan <- fmt.Errorf("remove object %s: %w", file.Path, err):
			default:
			}
		}
	}, nil
}

// ObjectURL is the public address of an uploaded object.
func (m *Minio) ObjectURL(bucket, path string) string {
	return m.publicURL.JoinPath(bucket, path).String()
}

// CreateReadOnlyBucket creates a bucket and sets up read-only public access policy
func (m *Minio) CreateReadOnlyBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket exists: %w", err)
	}

	if !exists {
		err := m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	err = m.client.SetBucketPolicy(ctx, bucketName, readOnlyPolicy(bucketName))
	if err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}

	return nil
}

func readOnlyPolicy(bucketName string) string {
	return fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": "*",
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, bucketName)
}
