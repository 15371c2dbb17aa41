package encoder

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mime     string
		wantMime string
	}{
		{"png bytes", []byte{0x89, 'P', 'N', 'G', 0, 1, 2}, "image/png", "image/png"},
		{"empty payload", []byte{}, "image/jpeg", "image/jpeg"},
		{"missing mime", []byte("hello"), "", defaultMimeType},
		{"padded mime", []byte("x"), "  video/mp4 ", "video/mp4"},
	}

	enc := NewDataURIEncoder()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uri := enc.Encode(tc.data, tc.mime)
			if !strings.HasPrefix(uri, "data:"+tc.wantMime+";base64,") {
				t.Fatalf("uri = %q; want data URI for %q", uri, tc.wantMime)
			}

			mime, got, err := Decode(uri)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if mime != tc.wantMime {
				t.Errorf("mime = %q; want %q", mime, tc.wantMime)
			}
			if !bytes.Equal(got, tc.data) {
				t.Errorf("data = %v; want %v", got, tc.data)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{
		"https://cdn.example.com/x.png",
		"data:image/png,plain",
		"data:image/png;base64",
	} {
		if _, _, err := Decode(in); !errors.Is(err, ErrNotDataURI) {
			t.Errorf("Decode(%q) err = %v; want ErrNotDataURI", in, err)
		}
	}

	if _, _, err := Decode("data:image/png;base64,!!!"); err == nil {
		t.Error("expected base64 error, got nil")
	}
}
