package mock

import (
	"context"
	"time"
)

// Cache implements port.Cache for tests. It keeps a generation like the
// Redis cache: DeleteRecordList bumps it and a stale SetRecordList is dropped.
type Cache struct {
	// stored values
	ListOut []byte

	// etag values
	EtagList string

	// generation
	Gen int64

	// captured inputs
	TTL    time.Duration
	GotGen int64

	// errors
	GetListErr     error
	GetEtagListErr error
	GenErr         error
	DelListErr     error

	// call flags
	GetListCalled     bool
	GetEtagListCalled bool
	SetListCalled     bool
	DelListCalled     bool
}

func (c *Cache) GetRecordList(ctx context.Context) ([]byte, error) {
	c.GetListCalled = true
	if c.GetListErr != nil {
		return nil, c.GetListErr
	}
	return c.ListOut, nil
}

func (c *Cache) GetEtagRecordList(ctx context.Context) (string, error) {
	c.GetEtagListCalled = true
	if c.GetEtagListErr != nil {
		return "", c.GetEtagListErr
	}
	return c.EtagList, nil
}

func (c *Cache) RecordListGeneration(ctx context.Context) (int64, error) {
	if c.GenErr != nil {
		return 0, c.GenErr
	}
	return c.Gen, nil
}

func (c *Cache) SetRecordList(ctx context.Context, gen int64, data []byte, etag string, ttl time.Duration) {
	c.SetListCalled = true
	c.GotGen = gen
	if gen != c.Gen {
		return
	}
	c.ListOut = data
	c.EtagList = etag
	c.TTL = ttl
}

func (c *Cache) DeleteRecordList(ctx context.Context) error {
	c.DelListCalled = true
	if c.DelListErr != nil {
		return c.DelListErr
	}
	c.Gen++
	c.ListOut = nil
	c.EtagList = ""
	return nil
}
