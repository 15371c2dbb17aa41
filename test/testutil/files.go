package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// GeneratePNG generates a simple RGBA image and encodes it to PNG
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}
