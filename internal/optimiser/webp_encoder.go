package optimiser

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type webpEncoder struct{}

var _ WebPEncoder = webpEncoder{}

func NewWebPEncoder() WebPEncoder {
	return webpEncoder{}
}

func (webpEncoder) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

func (webpEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
