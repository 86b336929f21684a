package assets

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// keyPrefix namespaces this application's objects inside the bucket.
const keyPrefix = "garderoba"

// requestTimeout bounds every outbound object-storage call so a slow provider
// cannot stall a request indefinitely.
const requestTimeout = 15 * time.Second

// S3 stores blobs in an S3-compatible bucket. Objects are keyed
// <app>/<ownerID>/<filename> and served directly by the provider.
type S3 struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// S3Options configures the remote backend.
type S3Options struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool

	// PublicURL is the base URL objects are fetchable from.
	PublicURL string
}

// NewS3 creates an S3-compatible backend.
func NewS3(opts S3Options) (*S3, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	publicURL := opts.PublicURL
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)
	}

	return &S3{client: client, bucket: opts.Bucket, publicURL: publicURL}, nil
}

// Store uploads the blob under the owner's namespace. The handle is the object key.
func (s *S3) Store(ctx context.Context, ownerID int64, data []byte, mime, originalName string) (*StoredAsset, error) {
	if err := validate(data, mime); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d/%s", keyPrefix, ownerID, newFilename(originalName))

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: mime})
	if err != nil {
		return nil, fmt.Errorf("uploading object: %w", err)
	}

	return &StoredAsset{
		URL:    s.publicURL + "/" + key,
		Handle: key,
	}, nil
}

// Remove deletes an object by key.
func (s *S3) Remove(ctx context.Context, handle string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := s.client.RemoveObject(ctx, s.bucket, handle, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing object: %w", err)
	}
	return nil
}
