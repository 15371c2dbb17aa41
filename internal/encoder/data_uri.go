// Package encoder builds inline media references used when no object store
// can take the upload.
package encoder

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/port"
)

const defaultMimeType = "application/octet-stream"

type DataURIEncoder struct{}

// compile-time check: DataURIEncoder must satisfy port.LocalEncoder
var _ port.LocalEncoder = DataURIEncoder{}

func NewDataURIEncoder() DataURIEncoder {
	return DataURIEncoder{}
}

// Encode returns a base64 data URI carrying data.
func (DataURIEncoder) Encode(data []byte, mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

var ErrNotDataURI = errors.New("encoder: not a base64 data URI")

// Decode reverses Encode.
func Decode(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	mimeType, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, ErrNotDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}
