package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
)

// multipartMemory is how much of a multipart body is kept in memory before
// spilling to temp files.
const multipartMemory = 8 << 20

// readUpload reads the multipart file in field. A missing field or an
// unnamed file yields an empty request, which the pipeline rejects.
func readUpload(r *http.Request, field string, kind model.MediaType) (port.MediaRequest, error) {
	in := port.MediaRequest{Kind: kind}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return in, err
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return in, nil
		}
		return in, fmt.Errorf("parse multipart form: %w", err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return in, fmt.Errorf("read form file %q: %w", field, err)
	}
	defer file.Close()

	if header.Filename == "" {
		return in, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return in, fmt.Errorf("read form file %q: %w", field, err)
	}

	in.Data = data
	in.OriginalName = header.Filename
	in.ContentType = header.Header.Get("Content-Type")
	return in, nil
}
