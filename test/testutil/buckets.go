package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type TestBuckets struct {
	Storage *storage.Storage
	Buckets storage.Buckets
	Client  *minio.Client
	Cleanup func() error
}

// SetupTestBuckets creates a fresh pair of image and video buckets and a
// Storage bound to them.
func SetupTestBuckets(cfg MinIOConfig) (*TestBuckets, error) {
	ctx := context.Background()
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create minio client: %w", err)
	}

	suffix := time.Now().UnixNano()
	buckets := storage.Buckets{
		Images: fmt.Sprintf("images-%d", suffix),
		Videos: fmt.Sprintf("videos-%d", suffix),
	}

	strg, err := storage.NewStorage(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL, "", buckets)
	if err != nil {
		return nil, err
	}
	for _, b := range []string{buckets.Images, buckets.Videos} {
		if err := strg.InitBucket(b); err != nil {
			return nil, fmt.Errorf("could not create bucket %q: %w", b, err)
		}
	}

	cleanup := func() error {
		// remove all objects and then the buckets themselves
		for _, b := range []string{buckets.Images, buckets.Videos} {
			for obj := range client.ListObjects(ctx, b, minio.ListObjectsOptions{Recursive: true}) {
				if obj.Err != nil {
					continue
				}
				_ = client.RemoveObject(ctx, b, obj.Key, minio.RemoveObjectOptions{})
			}
			if err := client.RemoveBucket(ctx, b); err != nil {
				return fmt.Errorf("could not remove bucket %q: %w", b, err)
			}
		}
		return nil
	}

	return &TestBuckets{
		Storage: strg,
		Buckets: buckets,
		Client:  client,
		Cleanup: cleanup,
	}, nil
}
