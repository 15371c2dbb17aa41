package media

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"path"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/catalog"
	"github.com/fhuszti/captions-ms-go/internal/encoder"
	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Tiers switches each degradation tier on or off.
type Tiers struct {
	Inference      bool
	Upload         bool
	InlineFallback bool
	Persistence    bool
}

// AllTiers enables every tier.
func AllTiers() Tiers {
	return Tiers{Inference: true, Upload: true, InlineFallback: true, Persistence: true}
}

// Deps gathers the capabilities the pipeline degrades across. Any of
// Inference, Store, Records, Cache and Tasks may be nil.
type Deps struct {
	Inference port.InferenceProvider
	Store     port.MediaStore
	Encoder   port.LocalEncoder
	Records   port.RecordStore
	Samples   port.SampleAssets
	Catalog   *catalog.Catalog
	Cache     port.Cache
	Tasks     port.TaskDispatcher
}

// Pipeline runs every request through inference, storage and persistence,
// falling back tier by tier instead of failing the request.
type Pipeline struct {
	inference port.InferenceProvider
	store     port.MediaStore
	encoder   port.LocalEncoder
	records   port.RecordStore
	samples   port.SampleAssets
	catalog   *catalog.Catalog
	cache     port.Cache
	tasks     port.TaskDispatcher
	tiers     Tiers
}

var (
	_ port.ImageCaptioner      = (*Pipeline)(nil)
	_ port.ImageGenerator      = (*Pipeline)(nil)
	_ port.VideoCaptioner      = (*Pipeline)(nil)
	_ port.AnimatedVideoPicker = (*Pipeline)(nil)
	_ port.RecordLister        = (*Pipeline)(nil)
)

func NewPipeline(d Deps, tiers Tiers) *Pipeline {
	p := &Pipeline{
		inference: d.Inference,
		store:     d.Store,
		encoder:   d.Encoder,
		records:   d.Records,
		samples:   d.Samples,
		catalog:   d.Catalog,
		cache:     d.Cache,
		tasks:     d.Tasks,
		tiers:     tiers,
	}
	if p.encoder == nil {
		p.encoder = encoder.NewDataURIEncoder()
	}
	if p.catalog == nil {
		p.catalog = catalog.NewDefault()
	}
	return p
}

// ActiveTiers reports which tiers can currently be used.
func (p *Pipeline) ActiveTiers() Tiers {
	return Tiers{
		Inference:      p.inferenceActive(),
		Upload:         p.uploadActive(),
		InlineFallback: p.tiers.InlineFallback,
		Persistence:    p.persistenceActive(),
	}
}

func (p *Pipeline) inferenceActive() bool {
	return p.tiers.Inference && p.inference != nil && p.inference.Available()
}

func (p *Pipeline) uploadActive() bool {
	return p.tiers.Upload && p.store != nil
}

func (p *Pipeline) persistenceActive() bool {
	return p.tiers.Persistence && p.records != nil
}

// storeMedia uploads data and returns its URL. When the upload tier fails
// and inline is allowed, the data is returned as a data URI instead.
func (p *Pipeline) storeMedia(ctx context.Context, data []byte, kind model.MediaType, hint, mimeType string, inline bool) (string, error) {
	uploadErr := ErrUpload
	if p.uploadActive() {
		obj, err := p.store.Upload(ctx, data, kind, hint)
		if err == nil {
			p.enqueueOptimise(ctx, kind, obj)
			return obj.URL, nil
		}
		uploadErr = wrapAs(ErrUpload, err)
		logger.Warnf(ctx, "⚠️  upload of %s %q failed: %v", kind, hint, err)
	}

	if inline && p.tiers.InlineFallback {
		return p.encoder.Encode(data, mimeType), nil
	}
	return "", uploadErr
}

func (p *Pipeline) enqueueOptimise(ctx context.Context, kind model.MediaType, obj port.StoredObject) {
	if p.tasks == nil || kind != model.MediaTypeImage {
		return
	}
	if err := p.tasks.EnqueueOptimiseMedia(ctx, obj.Bucket, obj.Key); err != nil {
		logger.Warnf(ctx, "⚠️  failed to enqueue optimisation of %s/%s: %v", obj.Bucket, obj.Key, err)
	}
}

// persist stores the record on a best-effort basis. A nil id means the
// record was not kept.
func (p *Pipeline) persist(ctx context.Context, rec model.NewRecord) *uuid.UUID {
	if !p.persistenceActive() {
		return nil
	}
	id, err := p.records.Insert(ctx, rec)
	if err != nil {
		logger.Warnf(ctx, "⚠️  failed to persist %s record: %v", rec.MediaType, err)
		return nil
	}
	if p.cache != nil {
		if err := p.cache.DeleteRecordList(ctx); err != nil {
			logger.Warnf(ctx, "⚠️  failed to invalidate records cache: %v", err)
		}
	}
	return &id
}

// detectMimeType sniffs data and falls back to the file extension when the
// content is not recognised.
func detectMimeType(data []byte, name string) string {
	detected := baseMimeType(mimetype.Detect(data).String())
	if detected != "application/octet-stream" && detected != "text/plain" {
		return detected
	}
	if byExt := baseMimeType(mime.TypeByExtension(strings.ToLower(path.Ext(name)))); byExt != "" {
		return byExt
	}
	return detected
}

func isDecodableImage(data []byte) bool {
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}
