package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Buckets names the bucket used for each media type.
type Buckets struct {
	Images string
	Videos string
}

type Storage struct {
	client    minioClient
	buckets   Buckets
	publicURL string
	now       func() time.Time
}

var (
	_ port.MediaStore    = (*Storage)(nil)
	_ port.FileStorage   = (*Storage)(nil)
	_ port.ObjectLocator = (*Storage)(nil)
)

// NewStorage connects to MinIO. Object URLs are built from publicURL, or
// from the endpoint when publicURL is empty.
func NewStorage(endpoint, accessKey, secretKey string, useSSL bool, publicURL string, buckets Buckets) (*Storage, error) {
	logger.Info(context.Background(), "initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + endpoint
	}

	return newStorage(client, publicURL, buckets), nil
}

func newStorage(client minioClient, publicURL string, buckets Buckets) *Storage {
	return &Storage{
		client:    client,
		buckets:   buckets,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// InitBucket creates the bucket when it does not exist yet.
func (s *Storage) InitBucket(bucket string) error {
	ctx := context.Background()
	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		logger.Infof(ctx, "bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

// Upload stores data under a fresh key and returns its public URL.
func (s *Storage) Upload(ctx context.Context, data []byte, kind model.MediaType, hint string) (port.StoredObject, error) {
	bucket, err := s.bucketFor(kind)
	if err != nil {
		return port.StoredObject{}, fmt.Errorf("%w: %w", media.ErrUpload, err)
	}
	key := ObjectKey(hint, data, s.now())

	logger.Infof(ctx, "uploading file %q into bucket %q...", key, bucket)
	_, err = s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimetype.Detect(data).String(),
	})
	if err != nil {
		return port.StoredObject{}, fmt.Errorf("%w: %w", media.ErrUpload, mapMinioErr(err))
	}

	return port.StoredObject{
		Bucket: bucket,
		Key:    key,
		URL:    s.ObjectURL(bucket, key),
	}, nil
}

// ObjectURL is the public URL of a stored object.
func (s *Storage) ObjectURL(bucket, key string) string {
	return s.publicURL + "/" + bucket + "/" + key
}

// LocateObject resolves a URL built by ObjectURL. URLs outside the public
// prefix or the configured buckets are not ours.
func (s *Storage) LocateObject(url string) (port.StoredObject, bool) {
	rest, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok {
		return port.StoredObject{}, false
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || key == "" {
		return port.StoredObject{}, false
	}
	if bucket != s.buckets.Images && bucket != s.buckets.Videos {
		return port.StoredObject{}, false
	}
	return port.StoredObject{Bucket: bucket, Key: key, URL: url}, true
}

func (s *Storage) bucketFor(kind model.MediaType) (string, error) {
	var bucket string
	switch kind {
	case model.MediaTypeImage:
		bucket = s.buckets.Images
	case model.MediaTypeVideo:
		bucket = s.buckets.Videos
	}
	if bucket == "" {
		return "", fmt.Errorf("no bucket configured for media type %q", kind)
	}
	return bucket, nil
}

func (s *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	logger.Infof(ctx, "getting file %q from bucket %q...", fileKey, bucket)

	obj, err := s.client.GetObject(ctx, bucket, fileKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}

func (s *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	logger.Infof(ctx, "saving file %q into bucket %q...", fileKey, bucket)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}

	_, err := s.client.PutObject(ctx, bucket, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}
