package mock

import (
	"bytes"
	"context"
	"io"
)

// Storage implements port.FileStorage for tests.
type Storage struct {
	// stored values
	GetOut io.ReadSeeker

	// captured inputs
	Bucket    string
	ObjectKey string
	SavedKey  string
	SavedData []byte
	SavedOpts map[string]string

	// errors
	InitBucketErr error
	GetErr        error
	SaveErr       error

	// call flags
	InitBucketCalled bool
	GetCalled        bool
	SaveCalled       bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.Bucket = bucket
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKey = fileKey
	m.SavedOpts = opts
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.SavedData = data
	return nil
}
