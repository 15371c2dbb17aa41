package media

import (
	"fmt"
	"mime"
	"path"
	"strings"
)

const MaxUploadSize = 25 * 1024 * 1024 // 25 MB

var mimeExtensions = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/bmp":       ".bmp",
	"image/tiff":      ".tiff",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(baseMimeType(mimeType), "image/")
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(baseMimeType(mimeType), "video/")
}

// MimeTypeToExtension returns the object key extension for a mime type.
func MimeTypeToExtension(mimeType string) (string, error) {
	if ext, ok := mimeExtensions[baseMimeType(mimeType)]; ok {
		return ext, nil
	}
	return "", fmt.Errorf("unsupported mime-type %q", mimeType)
}

// MimeTypeFromKey guesses the mime type of a stored object from its key.
func MimeTypeFromKey(objectKey string) string {
	ext := strings.ToLower(path.Ext(objectKey))
	for mt, e := range mimeExtensions {
		if e == ext {
			return mt
		}
	}
	switch ext {
	case ".jpeg":
		return "image/jpeg"
	case ".tif":
		return "image/tiff"
	}
	return baseMimeType(mime.TypeByExtension(ext))
}

func baseMimeType(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
