package codec

import (
	"github.com/disintegration/imaging"
	"image"
	"image/color"
	"image/color/palette"
	"image/png"
	"io"
	"vincit.fi/image-resizer/api/apitype"
)

const (
	DefaultJpegQuality = 75
	DefaultGifColors   = 256
)

type Options struct {
	JpegQuality    int
	PngCompression png.CompressionLevel
	GifColors      int
}

func DefaultOptions() Options {
	return Options{
		JpegQuality:    DefaultJpegQuality,
		PngCompression: png.DefaultCompression,
		GifColors:      DefaultGifColors,
	}
}

func PngCompressionFromName(name string) png.CompressionLevel {
	switch name {
	case "none":
		return png.NoCompression
	case "fast":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	}
	return png.DefaultCompression
}

// NewDefaultRegistry registers JPEG, GIF and PNG.
func NewDefaultRegistry(options Options) *Registry {
	registry := NewRegistry()
	registry.Register(apitype.JPEG, newJpegCodec(options))
	registry.Register(apitype.GIF, newGifCodec(options))
	registry.Register(apitype.PNG, newPngCodec(options))
	return registry
}

func decodeWithImaging(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

func newPngCodec(options Options) Codec {
	return Codec{
		Decode: decodeWithImaging,
		Encode: func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(options.PngCompression))
		},
	}
}

func newGifCodec(options Options) Codec {
	numColors := options.GifColors
	if numColors < 2 || numColors > 256 {
		numColors = DefaultGifColors
	}
	return Codec{
		Decode: decodeWithImaging,
		Encode: func(w io.Writer, img image.Image) error {
			return imaging.Encode(w, img, imaging.GIF,
				imaging.GIFNumColors(numColors),
				imaging.GIFQuantizer(transparentQuantizer{}))
		},
	}
}

// transparentQuantizer reserves the last palette entry for the fully
// transparent color so transparent areas survive GIF encoding.
type transparentQuantizer struct{}

func (s transparentQuantizer) Quantize(p color.Palette, _ image.Image) color.Palette {
	size := cap(p) - 1
	if size > len(palette.Plan9) {
		size = len(palette.Plan9)
	}
	p = append(p, palette.Plan9[:size]...)
	return append(p, color.Transparent)
}
