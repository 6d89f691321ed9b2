package codec

import (
	"bytes"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/common/testutil"
)

func TestInsertExif_ReadExif(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	registry := NewDefaultRegistry(DefaultOptions())
	encoded, err := registry.Encode(apitype.JPEG, testutil.GradientImage(32, 16))
	r.Nil(err)

	_, err = ReadExif(encoded)
	a.NotNil(err, "encoder output has no EXIF")

	withExif, err := InsertExif(encoded, testutil.MinimalExif())
	r.Nil(err)

	raw, err := ReadExif(withExif)
	r.Nil(err)
	a.Equal(testutil.MinimalExif(), raw)

	decoded, err := registry.Decode(apitype.JPEG, withExif)
	r.Nil(err)
	a.Equal(32, decoded.Bounds().Dx())
	a.Equal(16, decoded.Bounds().Dy())
}

func TestInsertExif_AfterJfif(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	jfif := []byte{
		0xFF, 0xD8,
		0xFF, 0xE0, 0x00, 0x04, 'J', 'F',
		0xFF, 0xD9,
	}
	withExif, err := InsertExif(jfif, []byte{1, 2})
	r.Nil(err)

	expected := []byte{
		0xFF, 0xD8,
		0xFF, 0xE0, 0x00, 0x04, 'J', 'F',
		0xFF, 0xE1, 0x00, 0x0A, 'E', 'x', 'i', 'f', 0x00, 0x00, 1, 2,
		0xFF, 0xD9,
	}
	a.Equal(expected, withExif)
}

func TestInsertExif_Errors(t *testing.T) {
	a := assert.New(t)

	_, err := InsertExif([]byte("not a jpeg"), testutil.MinimalExif())
	a.Equal(ErrNotJpeg, err)

	_, err = InsertExif([]byte{0xFF, 0xD8, 0xFF, 0xD9}, make([]byte, 0xFFFF))
	a.Equal(ErrExifTooLarge, err)

	_, err = InsertExif([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x40, 'J'}, testutil.MinimalExif())
	a.Equal(errTruncatedSegment, err)
}

func TestReadExif_NotJpeg(t *testing.T) {
	a := assert.New(t)

	_, err := ReadExif(testutil.Encode(t, testutil.GradientImage(4, 4), imaging.PNG))
	a.NotNil(err)
}

func TestUpdateExifDimensions(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	updated, err := UpdateExifDimensions(testutil.ExifWithDimensions(64, 32), apitype.SizeOf(32, 16))
	r.Nil(err)
	a.Equal(testutil.ExifWithDimensions(32, 16), updated)

	registry := NewDefaultRegistry(DefaultOptions())
	encoded, err := registry.Encode(apitype.JPEG, testutil.GradientImage(32, 16))
	r.Nil(err)
	withExif, err := InsertExif(encoded, updated)
	r.Nil(err)

	decoded, err := exif.Decode(bytes.NewReader(withExif))
	r.Nil(err)
	width, err := decoded.Get(exif.PixelXDimension)
	r.Nil(err)
	height, err := decoded.Get(exif.PixelYDimension)
	r.Nil(err)
	widthValue, err := width.Int(0)
	a.Nil(err)
	a.Equal(32, widthValue)
	heightValue, err := height.Int(0)
	a.Nil(err)
	a.Equal(16, heightValue)
}

func TestUpdateExifDimensions_KeepsOriginal(t *testing.T) {
	a := assert.New(t)

	original := testutil.ExifWithDimensions(64, 32)
	_, err := UpdateExifDimensions(original, apitype.SizeOf(32, 16))
	a.Nil(err)
	a.Equal(testutil.ExifWithDimensions(64, 32), original)

	updated, err := UpdateExifDimensions(testutil.MinimalExif(), apitype.SizeOf(32, 16))
	a.Nil(err)
	a.Equal(testutil.MinimalExif(), updated)
}

func TestUpdateExifDimensions_Malformed(t *testing.T) {
	a := assert.New(t)

	truncatedIfd := testutil.ExifWithDimensions(64, 32)[:44]
	badOffset := testutil.MinimalExif()
	badOffset[4] = 0xF0

	tests := []struct {
		name string
		data []byte
	}{
		{name: "Too short", data: []byte{'I', 'I', 0x2A}},
		{name: "Unknown byte order", data: []byte{'X', 'X', 0x2A, 0x00, 0x08, 0x00, 0x00, 0x00}},
		{name: "Wrong magic", data: []byte{'I', 'I', 0x2B, 0x00, 0x08, 0x00, 0x00, 0x00}},
		{name: "IFD0 outside block", data: badOffset},
		{name: "Truncated EXIF IFD", data: truncatedIfd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UpdateExifDimensions(tt.data, apitype.SizeOf(1, 1))
			a.Equal(ErrMalformedExif, err)
		})
	}
}
