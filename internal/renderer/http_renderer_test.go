package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fhuszti/captions-ms-go/internal/cache"
	"github.com/fhuszti/captions-ms-go/internal/mock"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/repository/memory"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
)

func TestRenderListRecords_Cases(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{ListOut: []byte(`[]`), EtagList: "\"1234\""}
		r := NewHTTPRenderer(c, time.Minute)
		lister := &mock.Pipeline{}

		out, etag, err := r.RenderListRecords(ctx, lister)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(c.ListOut) {
			t.Errorf("raw mismatch: got %s want %s", out, c.ListOut)
		}
		if etag != c.EtagList {
			t.Errorf("etag mismatch: got %s want %s", etag, c.EtagList)
		}
		if lister.Called {
			t.Error("lister should not be called on cache hit")
		}
		if c.SetListCalled {
			t.Error("cache should not be set on hit")
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		recs := []model.StoredRecord{{ID: uuid.NewUUID(), Caption: "a", MediaType: model.MediaTypeImage}}
		lister := &mock.Pipeline{RecordsOut: recs}
		r := NewHTTPRenderer(c, 5*time.Minute)

		out, etag, err := r.RenderListRecords(ctx, lister)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(recs)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if !lister.Called {
			t.Error("lister should be called on cache miss")
		}
		if !c.SetListCalled {
			t.Error("cache should be written on miss")
		}
		if c.EtagList != expEtag || c.TTL != 5*time.Minute {
			t.Errorf("cached etag %s ttl %s", c.EtagList, c.TTL)
		}
	})

	t.Run("cache error falls through", func(t *testing.T) {
		c := &mock.Cache{ListOut: []byte(`[]`), EtagList: "\"1\"", GetEtagListErr: errors.New("redis down")}
		lister := &mock.Pipeline{RecordsOut: []model.StoredRecord{}}
		r := NewHTTPRenderer(c, time.Minute)

		out, _, err := r.RenderListRecords(ctx, lister)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !lister.Called || string(out) != "[]" {
			t.Errorf("expected a fresh listing, got %s", out)
		}
	})

	t.Run("generation unreadable", func(t *testing.T) {
		c := &mock.Cache{GenErr: errors.New("redis down")}
		lister := &mock.Pipeline{RecordsOut: []model.StoredRecord{}}
		r := NewHTTPRenderer(c, time.Minute)

		if _, _, err := r.RenderListRecords(ctx, lister); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.SetListCalled {
			t.Error("cache should not be written without a generation")
		}
	})

	t.Run("invalidated while listing", func(t *testing.T) {
		c := &mock.Cache{Gen: 3}
		lister := &invalidatingLister{cache: c}
		r := NewHTTPRenderer(c, time.Minute)

		if _, _, err := r.RenderListRecords(ctx, lister); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.GotGen != 3 {
			t.Errorf("set with generation %d; want 3", c.GotGen)
		}
		if c.ListOut != nil || c.EtagList != "" {
			t.Errorf("stale listing cached: %s %s", c.ListOut, c.EtagList)
		}
	})

	t.Run("lister error", func(t *testing.T) {
		c := &mock.Cache{}
		lister := &mock.Pipeline{Err: errors.New("fail")}
		r := NewHTTPRenderer(c, time.Minute)

		if _, _, err := r.RenderListRecords(ctx, lister); err == nil || err.Error() != "fail" {
			t.Fatalf("expected fail error, got %v", err)
		}
		if c.SetListCalled {
			t.Error("cache should not be written on error")
		}
	})
}

type invalidatingLister struct {
	cache *mock.Cache
}

func (l *invalidatingLister) ListRecords(ctx context.Context) ([]model.StoredRecord, error) {
	_ = l.cache.DeleteRecordList(ctx)
	return []model.StoredRecord{}, nil
}

// insertingLister reads the listing, then lets one upload land before the
// renderer gets to write it to the cache.
type insertingLister struct {
	pipeline *media.Pipeline
	image    []byte
	done     bool
}

func (l *insertingLister) ListRecords(ctx context.Context) ([]model.StoredRecord, error) {
	out, err := l.pipeline.ListRecords(ctx)
	if err != nil || l.done {
		return out, err
	}
	l.done = true
	if _, err := l.pipeline.CaptionFromImage(ctx, port.MediaRequest{Data: l.image, OriginalName: "r2.png"}); err != nil {
		return nil, err
	}
	return out, nil
}

func TestRenderListRecords_InsertDuringRender(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	c := cache.NewCache(mr.Addr(), "")
	t.Cleanup(func() { _ = c.Close() })

	repo := memory.NewRecordRepository(uuid.NewUUID)
	p := media.NewPipeline(media.Deps{Records: repo, Cache: c}, media.AllTiers())

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if _, err := p.CaptionFromImage(ctx, port.MediaRequest{Data: buf.Bytes(), OriginalName: "r1.png"}); err != nil {
		t.Fatalf("CaptionFromImage: %v", err)
	}

	r := NewHTTPRenderer(c, time.Minute)
	if _, _, err := r.RenderListRecords(ctx, &insertingLister{pipeline: p, image: buf.Bytes()}); err != nil {
		t.Fatalf("RenderListRecords: %v", err)
	}

	if cached, err := c.GetRecordList(ctx); err != nil || cached != nil {
		t.Fatalf("stale listing cached: %s, %v", cached, err)
	}

	raw, _, err := r.RenderListRecords(ctx, p)
	if err != nil {
		t.Fatalf("RenderListRecords: %v", err)
	}
	var got []model.StoredRecord
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	stored, _ := repo.ListAll(ctx)
	if len(got) != 2 || len(got) != len(stored) {
		t.Fatalf("listing has %d records; store has %d", len(got), len(stored))
	}
	if got[0].OriginalFilename != "r2.png" {
		t.Errorf("newest record = %q; want r2.png", got[0].OriginalFilename)
	}

	cached, err := c.GetRecordList(ctx)
	if err != nil || string(cached) != string(raw) {
		t.Errorf("cached listing = %s, %v; want the fresh one", cached, err)
	}
}

func TestETag(t *testing.T) {
	if got := ETag([]byte("abc")); got != "\"352441c2\"" {
		t.Errorf("ETag(abc) = %s", got)
	}
}
