package codec

import (
	"image"
	"image/draw"
)

// toEncodable converts images the JPEG encoders cannot take directly
// (NRGBA from the resamplers, paletted, 16-bit) to RGBA.
func toEncodable(img image.Image) image.Image {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.RGBA:
		return img
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
