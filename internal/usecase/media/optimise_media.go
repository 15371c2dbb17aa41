package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

type mediaOptimiserSrv struct {
	opt  port.FileOptimiser
	strg port.FileStorage
}

func NewMediaOptimiser(opt port.FileOptimiser, strg port.FileStorage) port.MediaOptimiser {
	return &mediaOptimiserSrv{opt, strg}
}

// OptimiseMedia re-encodes an uploaded image and stores it next to the
// original. The original object is left untouched so issued URLs keep
// working.
func (m *mediaOptimiserSrv) OptimiseMedia(ctx context.Context, in port.OptimiseMediaInput) error {
	mimeType := MimeTypeFromKey(in.ObjectKey)
	if !IsImage(mimeType) {
		return fmt.Errorf("object %q is not an image", in.ObjectKey)
	}

	originalReader, err := m.strg.GetFile(ctx, in.Bucket, in.ObjectKey)
	if err != nil {
		return err
	}
	defer func(originalReader io.ReadSeekCloser) {
		_ = originalReader.Close()
	}(originalReader)

	compressedReader, newMimeType, err := m.opt.Compress(mimeType, originalReader)
	if err != nil {
		return err
	}
	defer func(compressedReader io.ReadCloser) {
		_ = compressedReader.Close()
	}(compressedReader)

	ext, err := MimeTypeToExtension(newMimeType)
	if err != nil {
		return err
	}
	variantKey := OptimisedKey(in.ObjectKey, ext)

	if err := m.strg.SaveFile(
		ctx,
		in.Bucket,
		variantKey,
		compressedReader,
		-1, // streaming mode
		map[string]string{
			"Content-Type": newMimeType,
		},
	); err != nil {
		return fmt.Errorf("failed to save optimised file %q inside bucket %q: %w", variantKey, in.Bucket, err)
	}

	logger.Infof(ctx, "✅  optimised %s/%s into %s", in.Bucket, in.ObjectKey, variantKey)
	return nil
}

// OptimisedKey returns the key of the optimised variant of objectKey.
func OptimisedKey(objectKey, ext string) string {
	return optimisedPrefix + strings.TrimSuffix(objectKey, path.Ext(objectKey)) + ext
}
