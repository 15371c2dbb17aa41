package mock

import (
	"bytes"
	"io"
)

// FileOptimiser implements port.FileOptimiser for tests.
type FileOptimiser struct {
	CompressOut []byte
	MimeOut     string

	CompressErr error

	GotMimeType    string
	CompressCalled bool
}

func (m *FileOptimiser) Compress(mimeType string, r io.Reader) (io.ReadCloser, string, error) {
	m.CompressCalled = true
	m.GotMimeType = mimeType
	if m.CompressErr != nil {
		return nil, "", m.CompressErr
	}
	return io.NopCloser(bytes.NewReader(m.CompressOut)), m.MimeOut, nil
}
