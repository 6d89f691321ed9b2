//go:build !linux || !cgo

package codec

import (
	"github.com/disintegration/imaging"
	"image"
	"io"
)

func newJpegCodec(options Options) Codec {
	quality := options.JpegQuality
	if quality < 1 || quality > 100 {
		quality = DefaultJpegQuality
	}
	return Codec{
		Decode: decodeWithImaging,
		Encode: func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, toEncodable(img), imaging.JPEG, imaging.JPEGQuality(quality))
		},
	}
}
