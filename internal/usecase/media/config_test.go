package media

import "testing"

func TestMimeHelpers(t *testing.T) {
	if !IsImage("image/png") || !IsImage("IMAGE/JPEG; q=1") || IsImage("video/mp4") {
		t.Error("IsImage misclassified")
	}
	if !IsVideo("video/mp4") || IsVideo("image/png") {
		t.Error("IsVideo misclassified")
	}

	ext, err := MimeTypeToExtension("image/jpeg")
	if err != nil || ext != ".jpg" {
		t.Errorf("MimeTypeToExtension(image/jpeg) = %q, %v", ext, err)
	}
	for mt, want := range map[string]string{"image/bmp": ".bmp", "image/tiff": ".tiff"} {
		if ext, err := MimeTypeToExtension(mt); err != nil || ext != want {
			t.Errorf("MimeTypeToExtension(%s) = %q, %v; want %q", mt, ext, err, want)
		}
	}
	if _, err := MimeTypeToExtension("application/zip"); err == nil {
		t.Error("expected error for unsupported mime-type")
	}

	cases := map[string]string{
		"images/dog_1.png":  "image/png",
		"images/dog_1.jpeg": "image/jpeg",
		"videos/clip.mp4":   "video/mp4",
		"images/scan.bmp":   "image/bmp",
		"images/scan.tif":   "image/tiff",
		"images/scan.tiff":  "image/tiff",
	}
	for key, want := range cases {
		if got := MimeTypeFromKey(key); got != want {
			t.Errorf("MimeTypeFromKey(%q) = %q; want %q", key, got, want)
		}
	}
}
