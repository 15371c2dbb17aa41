package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/gabriel-vasile/mimetype"
)

const maxStemLength = 64

// ObjectKey builds a unique key from a client supplied file name.
func ObjectKey(hint string, data []byte, now time.Time) string {
	return fmt.Sprintf("%s_%d%s", sanitiseStem(hint), now.UnixNano(), extensionFor(hint, data))
}

// sanitiseStem keeps lower-case letters, digits, dashes and underscores
// of the base name, replacing anything else with an underscore.
func sanitiseStem(hint string) string {
	base := path.Base(strings.ReplaceAll(hint, "\\", "/"))
	stem := strings.TrimSuffix(base, path.Ext(base))

	var b strings.Builder
	for _, r := range strings.ToLower(stem) {
		switch {
		case isASCIIAlnum(r), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "_-")
	if len(out) > maxStemLength {
		out = out[:maxStemLength]
	}
	if out == "" {
		return "media"
	}
	return out
}

// extensionFor prefers the sniffed content type over the client extension.
func extensionFor(hint string, data []byte) string {
	if ext, err := media.MimeTypeToExtension(mimetype.Detect(data).String()); err == nil {
		return ext
	}
	ext := strings.ToLower(path.Ext(hint))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if !isASCIIAlnum(r) {
			return ""
		}
	}
	return ext
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
