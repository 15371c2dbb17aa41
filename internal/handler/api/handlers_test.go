package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fhuszti/captions-ms-go/internal/catalog"
	"github.com/fhuszti/captions-ms-go/internal/mock"
	"github.com/fhuszti/captions-ms-go/internal/model"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/fhuszti/captions-ms-go/internal/uuid"
	guuid "github.com/google/uuid"
)

func multipartRequest(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func TestGenerateCaptionHandler(t *testing.T) {
	id := uuid.UUID(guuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	tests := []struct {
		name         string
		field        string
		filename     string
		svcOut       port.MediaResult
		svcErr       error
		wantStatus   int
		wantError    string
		wantFilename string
	}{
		{
			name:         "success",
			field:        "image",
			filename:     "my_dog_photo.jpg",
			svcOut:       port.MediaResult{Caption: "a dog", MediaURL: "data:image/png;base64,AA==", RecordID: &id},
			wantStatus:   http.StatusOK,
			wantFilename: "my_dog_photo.jpg",
		},
		{
			name:       "missing field reaches the pipeline empty",
			field:      "",
			svcErr:     media.ErrNoImage,
			wantStatus: http.StatusBadRequest,
			wantError:  "No image provided",
		},
		{
			name:         "not an image",
			field:        "image",
			filename:     "notes.txt",
			svcErr:       media.ErrInvalidImage,
			wantStatus:   http.StatusBadRequest,
			wantError:    "File is not a supported image",
			wantFilename: "notes.txt",
		},
		{
			name:         "unexpected error",
			field:        "image",
			filename:     "a.png",
			svcErr:       errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantError:    "could not caption image",
			wantFilename: "a.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.Pipeline{MediaOut: tc.svcOut, Err: tc.svcErr}
			req := multipartRequest(t, "/api/generate-caption", tc.field, tc.filename, pngBytes(t))
			rec := httptest.NewRecorder()

			GenerateCaptionHandler(svc).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if !svc.Called {
				t.Fatal("pipeline not called")
			}
			if svc.GotMedia.Kind != model.MediaTypeImage {
				t.Errorf("kind = %q; want image", svc.GotMedia.Kind)
			}
			if svc.GotMedia.OriginalName != tc.wantFilename {
				t.Errorf("filename = %q; want %q", svc.GotMedia.OriginalName, tc.wantFilename)
			}
			if tc.wantError != "" {
				if got := decodeError(t, rec); got != tc.wantError {
					t.Errorf("error = %q; want %q", got, tc.wantError)
				}
				return
			}

			var got port.MediaResult
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if got.Caption != "a dog" || got.RecordID == nil || *got.RecordID != id {
				t.Errorf("body = %+v", got)
			}
		})
	}
}

func TestGenerateCaptionHandler_NotMultipart(t *testing.T) {
	svc := &mock.Pipeline{Err: media.ErrNoImage}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-caption", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	GenerateCaptionHandler(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if len(svc.GotMedia.Data) != 0 {
		t.Error("pipeline should receive an empty request")
	}
}

func TestGenerateCaptionHandler_DegradedPipeline(t *testing.T) {
	p := media.NewPipeline(media.Deps{}, media.Tiers{InlineFallback: true})
	req := multipartRequest(t, "/api/generate-caption", "image", "my_dog_photo.jpg", pngBytes(t))
	rec := httptest.NewRecorder()

	GenerateCaptionHandler(p).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var got port.MediaResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if want := catalog.NewDefault().Captions[catalog.Dog]; got.Caption != want {
		t.Errorf("caption = %q; want %q", got.Caption, want)
	}
	if !strings.HasPrefix(got.MediaURL, "data:image/png;base64,") {
		t.Errorf("media url = %q; want an inline data URI", got.MediaURL)
	}
	if got.RecordID != nil {
		t.Errorf("record id = %v; want nil", got.RecordID)
	}
}

func TestVideoCaptionHandler(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "no video", svcErr: media.ErrNoVideo, wantStatus: http.StatusBadRequest, wantError: "No video provided"},
		{name: "upload failed", svcErr: fmt.Errorf("%w: minio down", media.ErrUpload), wantStatus: http.StatusBadGateway, wantError: "Could not store media"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.Pipeline{
				MediaOut: port.MediaResult{Caption: "waves", Summary: "a beach", MediaURL: "https://cdn/videos/beach.mp4", AnimatedURL: "https://cdn/anim.mp4"},
				Err:      tc.svcErr,
			}
			req := multipartRequest(t, "/api/video-caption", "video", "beach.mp4", []byte("not really a video"))
			rec := httptest.NewRecorder()

			VideoCaptionHandler(svc).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if svc.GotMedia.Kind != model.MediaTypeVideo {
				t.Errorf("kind = %q; want video", svc.GotMedia.Kind)
			}
			if string(svc.GotMedia.Data) != "not really a video" {
				t.Errorf("data = %q", svc.GotMedia.Data)
			}
			if tc.wantError != "" {
				if got := decodeError(t, rec); got != tc.wantError {
					t.Errorf("error = %q; want %q", got, tc.wantError)
				}
				return
			}
			var got port.MediaResult
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if got.Summary != "a beach" || got.AnimatedURL != "https://cdn/anim.mp4" {
				t.Errorf("body = %+v", got)
			}
		})
	}
}

func TestCaptionJSONHandlers(t *testing.T) {
	type handlerFactory func(*mock.Pipeline) http.HandlerFunc
	handlers := map[string]handlerFactory{
		"generate-image": func(p *mock.Pipeline) http.HandlerFunc { return GenerateImageHandler(p) },
		"animated-video": func(p *mock.Pipeline) http.HandlerFunc { return AnimatedVideoHandler(p) },
	}

	tests := []struct {
		name          string
		body          string
		svcErr        error
		wantStatus    int
		wantCalled    bool
		wantError     string
		wantFieldErrs map[string]string
	}{
		{
			name:       "success",
			body:       `{"caption":"a puppy in the park","style":"watercolor"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "malformed json",
			body:       `{"caption":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request payload",
		},
		{
			name:          "bad style",
			body:          `{"caption":"a dog","style":"<b>bold</b>"}`,
			wantStatus:    http.StatusBadRequest,
			wantFieldErrs: map[string]string{"style": "style"},
		},
		{
			name:       "empty caption",
			body:       `{}`,
			svcErr:     media.ErrNoCaption,
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
			wantError:  "No caption provided",
		},
		{
			name:       "generation unavailable",
			body:       `{"caption":"a dog"}`,
			svcErr:     media.ErrGenerationUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCalled: true,
			wantError:  "Generation is currently unavailable",
		},
	}

	for hname, factory := range handlers {
		for _, tc := range tests {
			t.Run(hname+"/"+tc.name, func(t *testing.T) {
				svc := &mock.Pipeline{
					MediaOut:    port.MediaResult{Caption: "a puppy in the park", MediaURL: "https://cdn/images/dog.png"},
					AnimatedOut: port.AnimatedVideoResult{VideoURL: "https://cdn/anim/dog.mp4"},
					Err:         tc.svcErr,
				}
				req := httptest.NewRequest(http.MethodPost, "/api/"+hname, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
				rec := httptest.NewRecorder()

				factory(svc).ServeHTTP(rec, req)

				if rec.Code != tc.wantStatus {
					t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
				}
				if svc.Called != tc.wantCalled {
					t.Fatalf("called = %v; want %v", svc.Called, tc.wantCalled)
				}
				if tc.wantError != "" {
					if got := decodeError(t, rec); got != tc.wantError {
						t.Errorf("error = %q; want %q", got, tc.wantError)
					}
				}
				if tc.wantFieldErrs != nil {
					var got map[string]string
					if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
						t.Fatalf("invalid body: %v", err)
					}
					for f, tag := range tc.wantFieldErrs {
						if got[f] != tag {
							t.Errorf("field %q: got %q, want %q", f, got[f], tag)
						}
					}
				}
				if tc.name == "success" {
					if svc.GotCaption.Text != "a puppy in the park" || svc.GotCaption.Style != "watercolor" {
						t.Errorf("caption request = %+v", svc.GotCaption)
					}
				}
			})
		}
	}
}

func TestListRecordsHandler(t *testing.T) {
	raw := []byte(`[{"id":"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}]`)
	const etag = `"0badf00d"`

	tests := []struct {
		name        string
		ifNoneMatch string
		renderErr   error
		wantStatus  int
		wantBody    string
		wantETag    bool
	}{
		{name: "fresh listing", wantStatus: http.StatusOK, wantBody: string(raw), wantETag: true},
		{name: "matching etag", ifNoneMatch: etag, wantStatus: http.StatusNotModified, wantETag: true},
		{name: "stale etag", ifNoneMatch: `"deadbeef"`, wantStatus: http.StatusOK, wantBody: string(raw), wantETag: true},
		{name: "persistence unavailable", renderErr: media.ErrPersistence, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.Pipeline{}
			renderer := &mock.HTTPRenderer{ListOut: raw, EtagList: etag, ListErr: tc.renderErr}
			req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
			if tc.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tc.ifNoneMatch)
			}
			rec := httptest.NewRecorder()

			ListRecordsHandler(renderer, svc).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if renderer.Lister != svc {
				t.Error("renderer should receive the lister")
			}
			if tc.wantETag && rec.Header().Get("ETag") != etag {
				t.Errorf("ETag = %q; want %q", rec.Header().Get("ETag"), etag)
			}
			if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
				t.Errorf("body = %q; want %q", rec.Body.String(), tc.wantBody)
			}
			if tc.wantStatus == http.StatusNotModified && rec.Body.Len() != 0 {
				t.Errorf("304 should have an empty body, got %q", rec.Body.String())
			}
		})
	}
}

type tierReporter struct{ tiers media.Tiers }

func (r tierReporter) ActiveTiers() media.Tiers { return r.tiers }

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(tierReporter{media.Tiers{Inference: false, Upload: true, InlineFallback: true}}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var got HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	want := map[string]bool{"inference": false, "upload": true, "inline_fallback": true, "persistence": false}
	for k, v := range want {
		if got.Tiers[k] != v {
			t.Errorf("tier %q = %v; want %v", k, got.Tiers[k], v)
		}
	}
	if got.Status != "ok" {
		t.Errorf("status = %q", got.Status)
	}
}

func TestWriteUseCaseError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{&http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge},
		{fmt.Errorf("wrap: %w", media.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: list failed", media.ErrPersistence), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: put failed", media.ErrUpload), http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeUseCaseError(rec, httptest.NewRequest(http.MethodGet, "/", nil), "fallback", tc.err)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if rec.Header().Get("Cache-Control") != "no-store, max-age=0, must-revalidate" {
				t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestFallbackHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	MethodNotAllowedHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/records", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d; want 405", rec.Code)
	}
}
