//go:build linux && cgo

package codec

import (
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"io"
)

func newJpegCodec(options Options) Codec {
	quality := options.JpegQuality
	if quality < 1 || quality > 100 {
		quality = DefaultJpegQuality
	}
	encoderOptions := &jpeg.EncoderOptions{
		Quality:        quality,
		OptimizeCoding: true,
	}
	return Codec{
		Decode: func(r io.Reader) (image.Image, error) {
			return jpeg.Decode(r, &jpeg.DecoderOptions{})
		},
		Encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, toEncodable(img), encoderOptions)
		},
	}
}
