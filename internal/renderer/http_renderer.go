package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer keeping rendered output for ttl.
func NewHTTPRenderer(cache port.Cache, ttl time.Duration) port.HTTPRenderer {
	return &httpRenderer{cache: cache, ttl: ttl}
}

// RenderListRecords fetches the records listing either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderListRecords(ctx context.Context, lister port.RecordLister) ([]byte, string, error) {
	raw, err := r.cache.GetRecordList(ctx)
	etag, errEtag := r.cache.GetEtagRecordList(ctx)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	// read before listing: an insert landing in between bumps it and the
	// write below is dropped
	gen, genErr := r.cache.RecordListGeneration(ctx)

	out, err := lister.ListRecords(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = ETag(raw)
	if genErr == nil {
		r.cache.SetRecordList(ctx, gen, raw, etag, r.ttl)
	}

	return raw, etag, nil
}

// ETag is the quoted CRC32 of raw.
func ETag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
