// Package testutil builds sample images for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// GradientImage is fully opaque.
func GradientImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: 128, A: 255})
		}
	}
	return img
}

// HalfTransparentImage has an opaque red left half and a fully transparent
// right half.
func HalfTransparentImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width/2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func Encode(t *testing.T, img image.Image, format imaging.Format) []byte {
	t.Helper()
	buffer := &bytes.Buffer{}
	require.Nil(t, imaging.Encode(buffer, img, format))
	return buffer.Bytes()
}

func WriteFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.Nil(t, os.WriteFile(path, data, 0o644))
	return path
}

func DecodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(data))
	require.Nil(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// MinimalExif is a little-endian TIFF block with a single Orientation tag.
func MinimalExif() []byte {
	return []byte{
		'I', 'I', 0x2A, 0x00, // byte order and magic
		0x08, 0x00, 0x00, 0x00, // offset of IFD0
		0x01, 0x00, // one entry
		0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, // Orientation SHORT 1
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
}

// ExifWithDimensions is a little-endian TIFF block with an Orientation tag in
// IFD0 and an EXIF IFD holding PixelXDimension as SHORT and PixelYDimension
// as LONG.
func ExifWithDimensions(width uint16, height uint32) []byte {
	data := []byte{
		'I', 'I', 0x2A, 0x00, // byte order and magic
		0x08, 0x00, 0x00, 0x00, // offset of IFD0
		0x02, 0x00, // two entries
		0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, // Orientation SHORT 1
		0x69, 0x87, 0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x26, 0x00, 0x00, 0x00, // EXIF IFD at 38
		0x00, 0x00, 0x00, 0x00, // no next IFD
		0x02, 0x00, // two entries
		0x02, 0xA0, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // PixelXDimension SHORT
		0x03, 0xA0, 0x04, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // PixelYDimension LONG
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	binary.LittleEndian.PutUint16(data[48:50], width)
	binary.LittleEndian.PutUint32(data[60:64], height)
	return data
}
